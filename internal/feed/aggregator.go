// Package feed models headlines and drives one full polling pass over
// the configured RSS sources.
package feed

import (
	"context"
	"sort"
	"time"

	"github.com/infblueocean/marketpulse/internal/logging"
)

// EntrySource fetches raw entries for a feed URL.
type EntrySource interface {
	Fetch(ctx context.Context, url string) ([]Entry, error)
}

// Scorer decides relevance and labels for a headline.
type Scorer interface {
	IsRelevant(title string) (bool, int)
	IsUrgent(title string) bool
	Categorize(title string) string
}

// SeenStore tracks identities that have already been alerted.
type SeenStore interface {
	Contains(identity string) bool
	Record(identity string) error
}

// Aggregator runs the fetch-score-dedup pipeline over a feed set.
type Aggregator struct {
	source EntrySource
	scorer Scorer
	seen   SeenStore
}

// NewAggregator wires an Aggregator from its collaborators.
func NewAggregator(source EntrySource, scorer Scorer, seen SeenStore) *Aggregator {
	return &Aggregator{source: source, scorer: scorer, seen: seen}
}

// FetchAll makes one full pass over the configured feeds, highest
// priority first, and returns the newly-relevant items in traversal
// order. A failure on one feed is logged and skipped; the rest of the
// pass continues and partial results are returned.
//
// Identities are recorded as seen during traversal, not at the end, so
// a headline syndicated verbatim across feeds within one run is emitted
// only for the highest-priority feed that carries it.
func (a *Aggregator) FetchAll(ctx context.Context, configs []Config) []Item {
	sorted := make([]Config, len(configs))
	copy(sorted, configs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority > sorted[j].Priority
	})

	var items []Item
	for i, cfg := range sorted {
		if i > 0 && cfg.Politeness() > 0 {
			time.Sleep(cfg.Politeness())
		}

		logging.Debug("checking feed", "feed", cfg.Name)
		entries, err := a.source.Fetch(ctx, cfg.URL)
		if err != nil {
			logging.Warn("feed fetch failed", "feed", cfg.Name, "err", err)
			continue
		}

		fresh := 0
		for _, e := range entries {
			relevant, sc := a.scorer.IsRelevant(e.Title)
			if !relevant {
				continue
			}

			id := Identity(e.Title)
			if a.seen.Contains(id) {
				continue
			}
			// Record during traversal, not at the end: lower-priority
			// copies of this headline later in the pass must see the
			// mark, and earlier marks must survive a crash mid-run.
			if err := a.seen.Record(id); err != nil {
				logging.Warn("failed to record seen item", "identity", id, "err", err)
			}

			items = append(items, Item{
				Identity:    id,
				Title:       e.Title,
				Link:        e.Link,
				Source:      cfg.Name,
				PublishedAt: e.Published,
				Summary:     e.Summary,
				Score:       sc,
				Priority:    cfg.Priority,
				Category:    a.scorer.Categorize(e.Title),
				Urgent:      a.scorer.IsUrgent(e.Title),
			})
			fresh++
		}
		logging.Info("feed checked", "feed", cfg.Name, "entries", len(entries), "new", fresh)
	}
	return items
}
