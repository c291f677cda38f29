package feed

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

// summaryMaxLen caps entry summaries after HTML stripping.
const summaryMaxLen = 280

// Entry is one raw headline from a feed, before scoring.
type Entry struct {
	Title     string
	Link      string
	Published string // feed's own timestamp string; may be empty
	Summary   string
}

// Fetcher retrieves recent entries from RSS/Atom feeds.
type Fetcher struct {
	client     *http.Client
	maxEntries int
}

// NewFetcher creates a Fetcher with the given HTTP timeout and per-feed
// entry cap.
func NewFetcher(timeout time.Duration, maxEntries int) *Fetcher {
	return &Fetcher{
		client:     &http.Client{Timeout: timeout},
		maxEntries: maxEntries,
	}
}

// Fetch retrieves up to maxEntries most-recent entries from the feed at
// url. The caller decides what to do with them; nothing is stored here.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]Entry, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Set a user agent to be a good citizen
	req.Header.Set("User-Agent", "marketpulse/1.0 (+https://github.com/infblueocean/marketpulse)")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	parsed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	count := len(parsed.Items)
	if count > f.maxEntries {
		count = f.maxEntries
	}

	entries := make([]Entry, 0, count)
	for _, item := range parsed.Items[:count] {
		entries = append(entries, Entry{
			Title:     item.Title,
			Link:      item.Link,
			Published: publishedString(item),
			Summary:   truncate(stripTags(item.Description), summaryMaxLen),
		})
	}
	return entries, nil
}

// publishedString returns the entry's publication time as the feed gave
// it, falling back to the parsed time re-rendered, or "" if unknown.
func publishedString(item *gofeed.Item) string {
	if item.Published != "" {
		return item.Published
	}
	if item.Updated != "" {
		return item.Updated
	}
	if item.PublishedParsed != nil {
		return item.PublishedParsed.Format(time.RFC1123)
	}
	return ""
}

// stripTags removes HTML markup and collapses whitespace. Feed
// descriptions routinely embed anchor tags and entities.
func stripTags(s string) string {
	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
			b.WriteRune(' ')
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(html.UnescapeString(b.String())), " ")
}

// truncate shortens s to maxLen runes, not bytes, to avoid breaking
// UTF-8 characters.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
