package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/infblueocean/marketpulse/internal/config"
	"github.com/infblueocean/marketpulse/internal/feed"
	"github.com/infblueocean/marketpulse/internal/logging"
	"github.com/infblueocean/marketpulse/internal/notify"
	"github.com/infblueocean/marketpulse/internal/score"
	"github.com/infblueocean/marketpulse/internal/seen"
)

// runScan is a dry run: fetch and score everything, print what would be
// alerted, but never touch the seen-store or the webhook. The webhook
// secret is not required here.
func runScan() {
	fs := flag.NewFlagSet("scan", flag.ExitOnError)
	all := fs.Bool("all", false, "print every relevant item, not just the send budget")
	fs.Parse(os.Args[1:])

	cfg, err := config.Load()
	if err != nil {
		logging.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	ctx := context.Background()
	scorer := score.NewScorer(cfg.Taxonomy, cfg.Weights)
	fetcher := feed.NewFetcher(fetchTimeout, cfg.MaxPerFeed)
	// A throwaway store: cross-feed dedup still works within the scan,
	// but nothing persists and prior runs are ignored.
	agg := feed.NewAggregator(fetcher, scorer, seen.NewMemory())

	items := agg.FetchAll(ctx, cfg.Feeds)
	if len(items) == 0 {
		fmt.Println("no relevant headlines right now")
		return
	}

	picked := items
	if !*all {
		picked = notify.Select(items, cfg.SendBudget)
	}

	fmt.Printf("%d relevant headline(s), showing %d:\n\n", len(items), len(picked))
	for _, item := range picked {
		urgent := " "
		if item.Urgent {
			urgent = "!"
		}
		fmt.Printf("%s %4d  [%-20s] %-22s %s\n",
			urgent, item.Score, truncate(item.Source, 20), item.Category, truncate(item.Title, 90))
	}
}
