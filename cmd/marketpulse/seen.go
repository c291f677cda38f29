package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/infblueocean/marketpulse/internal/config"
	"github.com/infblueocean/marketpulse/internal/logging"
)

// runSeen inspects (or wipes) the seen-store.
func runSeen() {
	fs := flag.NewFlagSet("seen", flag.ExitOnError)
	clear := fs.Bool("clear", false, "wipe the seen-store")
	fs.Parse(os.Args[1:])

	cfg, err := config.Load()
	if err != nil {
		logging.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	store, err := openStore(cfg)
	if err != nil {
		logging.Error("failed to open seen-store", "path", cfg.StatePath, "err", err)
		os.Exit(1)
	}
	defer store.Close()

	if *clear {
		if err := store.Clear(); err != nil {
			logging.Error("failed to clear seen-store", "err", err)
			os.Exit(1)
		}
		fmt.Println("seen-store cleared")
		return
	}

	entries := store.Entries()
	fmt.Printf("path:    %s (%s)\n", cfg.StatePath, cfg.StateBackend)
	fmt.Printf("entries: %d\n", len(entries))
	if len(entries) == 0 {
		return
	}

	var oldest, newest time.Time
	for _, ts := range entries {
		if oldest.IsZero() || ts.Before(oldest) {
			oldest = ts
		}
		if ts.After(newest) {
			newest = ts
		}
	}
	fmt.Printf("oldest:  %s (%s ago)\n", oldest.Format(time.RFC3339), time.Since(oldest).Round(time.Minute))
	fmt.Printf("newest:  %s (%s ago)\n", newest.Format(time.RFC3339), time.Since(newest).Round(time.Minute))
}
