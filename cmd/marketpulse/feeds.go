package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/infblueocean/marketpulse/internal/config"
	"github.com/infblueocean/marketpulse/internal/feed"
	"github.com/infblueocean/marketpulse/internal/logging"
)

// runFeeds prints the configured feed table in fetch order.
func runFeeds() {
	cfg, err := config.Load()
	if err != nil {
		logging.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	feeds := make([]feed.Config, len(cfg.Feeds))
	copy(feeds, cfg.Feeds)
	sort.SliceStable(feeds, func(i, j int) bool { return feeds[i].Priority > feeds[j].Priority })

	fmt.Printf("%-20s %8s %10s  %s\n", "NAME", "PRIORITY", "DELAY(ms)", "URL")
	for _, f := range feeds {
		fmt.Printf("%-20s %8d %10d  %s\n", f.Name, f.Priority, f.PolitenessMS, f.URL)
	}
}
