// Package notify ranks aggregated items, renders them as Discord
// webhook payloads, and delivers them.
package notify

import (
	"fmt"
	"sort"
	"time"

	"github.com/infblueocean/marketpulse/internal/feed"
)

// titleMaxLen caps embed titles; Discord rejects anything near 256.
const titleMaxLen = 200

// Severity tier colors, urgent down to default.
const (
	colorUrgent   = 0xE74C3C
	colorHigh     = 0xE67E22
	colorElevated = 0xF1C40F
	colorDefault  = 0x2ECC71
)

// Score boundaries between the non-urgent tiers.
const (
	highScore     = 60
	elevatedScore = 40
)

// Select ranks items by score descending, then feed priority
// descending, and truncates to the send budget so a noisy cycle cannot
// flood the webhook.
func Select(items []feed.Item, budget int) []feed.Item {
	ranked := make([]feed.Item, len(items))
	copy(ranked, items)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Priority > ranked[j].Priority
	})
	if budget > 0 && len(ranked) > budget {
		ranked = ranked[:budget]
	}
	return ranked
}

// Formatter renders items into webhook payloads. The mapping is
// deterministic given Now; tests pin it.
type Formatter struct {
	Username  string
	AvatarURL string
	Now       func() time.Time
}

// NewFormatter returns a Formatter with the bot's standard identity.
func NewFormatter() *Formatter {
	return &Formatter{
		Username:  "Market Pulse",
		AvatarURL: "https://cdn-icons-png.flaticon.com/512/2491/2491417.png",
		Now:       time.Now,
	}
}

// Format renders one item as a single-embed Discord message. Severity
// tiers: urgent > high score > elevated score > default, each with its
// own color and emoji.
func (f *Formatter) Format(item feed.Item) Message {
	emoji, color := severity(item)

	impact := "📊 Market Info"
	if item.Urgent {
		impact = "🚨 HIGH IMPACT"
	}

	footer := "Market Pulse"
	if item.PublishedAt != "" {
		footer = fmt.Sprintf("Market Pulse • %s", item.PublishedAt)
	}

	return Message{
		Username:  f.Username,
		AvatarURL: f.AvatarURL,
		Embeds: []Embed{{
			Title:       fmt.Sprintf("%s %s", emoji, truncate(item.Title, titleMaxLen)),
			URL:         item.Link,
			Color:       color,
			Description: item.Summary,
			Fields: []Field{
				{Name: "Source", Value: item.Source, Inline: true},
				{Name: "Impact", Value: impact, Inline: true},
				{Name: "Category", Value: item.Category, Inline: true},
			},
			Footer:    &Footer{Text: footer},
			Timestamp: f.Now().UTC().Format(time.RFC3339),
		}},
	}
}

func severity(item feed.Item) (emoji string, color int) {
	switch {
	case item.Urgent:
		return "🚨", colorUrgent
	case item.Score >= highScore:
		return "⚠️", colorHigh
	case item.Score >= elevatedScore:
		return "📈", colorElevated
	default:
		return "📊", colorDefault
	}
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
