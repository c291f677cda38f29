package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/infblueocean/marketpulse/internal/config"
	"github.com/infblueocean/marketpulse/internal/feed"
	"github.com/infblueocean/marketpulse/internal/logging"
	"github.com/infblueocean/marketpulse/internal/notify"
	"github.com/infblueocean/marketpulse/internal/score"
)

const fetchTimeout = 15 * time.Second

// runRun executes one full cycle: fetch, score, dedup, record, send.
func runRun() {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	budget := fs.Int("budget", 0, "override the send budget")
	fs.Parse(os.Args[1:])

	cfg, err := config.Load()
	if err != nil {
		logging.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	// The webhook is the one required secret. Fail before any network
	// activity so a misconfigured runner exits loudly and immediately.
	if cfg.WebhookURL == "" {
		logging.Error("DISCORD_WEBHOOK not set; configure the webhook secret")
		os.Exit(1)
	}
	if *budget > 0 {
		cfg.SendBudget = *budget
	}

	store, err := openStore(cfg)
	if err != nil {
		logging.Error("failed to open seen-store", "path", cfg.StatePath, "err", err)
		os.Exit(1)
	}
	defer store.Close()

	ctx := context.Background()
	scorer := score.NewScorer(cfg.Taxonomy, cfg.Weights)
	fetcher := feed.NewFetcher(fetchTimeout, cfg.MaxPerFeed)
	agg := feed.NewAggregator(fetcher, scorer, store)

	start := time.Now()
	items := agg.FetchAll(ctx, cfg.Feeds)
	if len(items) == 0 {
		logging.Info("no new market movers", "feeds", len(cfg.Feeds), "elapsed", time.Since(start).Round(time.Millisecond))
		return
	}

	client := notify.NewClient(cfg.WebhookURL)
	formatter := notify.NewFormatter()
	deliveryLog := logging.WithPrefix("notify")

	sent, failed := 0, 0
	for _, item := range notify.Select(items, cfg.SendBudget) {
		if err := client.Send(ctx, formatter.Format(item)); err != nil {
			failed++
			deliveryLog.Error("delivery failed", "title", truncate(item.Title, 60), "err", err)
			continue
		}
		sent++
		deliveryLog.Info("alert sent", "title", truncate(item.Title, 60), "score", item.Score, "source", item.Source)
	}

	logging.Info("run complete",
		"feeds", len(cfg.Feeds),
		"new", len(items),
		"sent", sent,
		"failed", failed,
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
}
