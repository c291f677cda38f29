package feed

import "time"

// Item is one relevant, not-yet-seen headline produced during a run.
// Items are ephemeral: built by the Aggregator, handed to the alert
// pipeline, and discarded when the run ends.
type Item struct {
	Identity    string // stable token for cross-run deduplication
	Title       string
	Link        string
	Source      string // feed display name
	PublishedAt string // original publication timestamp, best effort; may be empty
	Summary     string
	Score       int
	Priority    int // originating feed's weight, higher = more trusted
	Category    string
	Urgent      bool // title contains an urgency trigger
}

// Config describes one RSS source. Static, read-only at runtime.
type Config struct {
	Name string `json:"name"`
	URL  string `json:"url"`

	// Priority orders feeds for fetching; higher fetches first, so the
	// most trusted source wins when the same headline appears twice.
	Priority int `json:"priority"`

	// PolitenessMS is the pause before hitting this feed, to avoid
	// bursting external endpoints.
	PolitenessMS int `json:"politeness_ms"`
}

// Politeness returns the pre-fetch delay for this feed.
func (c Config) Politeness() time.Duration {
	return time.Duration(c.PolitenessMS) * time.Millisecond
}

// DefaultFeeds is the curated list of market-news RSS sources.
// Priority: higher = more trusted, fetched first.
var DefaultFeeds = []Config{
	{Name: "Reuters Business", URL: "https://www.reutersagency.com/feed/?best-topics=business-finance&format=rss", Priority: 10, PolitenessMS: 1000},
	{Name: "Yahoo Finance", URL: "https://finance.yahoo.com/news/rssindex", Priority: 8, PolitenessMS: 1000},
	{Name: "MarketWatch", URL: "http://feeds.marketwatch.com/marketwatch/topstories/", Priority: 7, PolitenessMS: 1000},
	{Name: "Investing.com", URL: "https://www.investing.com/rss/news.rss", Priority: 6, PolitenessMS: 1000},
}
