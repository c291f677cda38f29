// Command marketpulse polls market-news RSS feeds, scores headlines for
// impact, deduplicates against a persisted seen-store, and posts alerts
// to a Discord webhook. Designed for scheduled one-shot execution
// (GitHub Actions cron or similar), not as a long-running service.
//
// Usage:
//
//	marketpulse               Full cycle (same as "run")
//	marketpulse run           Fetch, score, dedup, send alerts
//	marketpulse scan          Dry run: print would-be alerts, send nothing
//	marketpulse seen          Inspect the seen-store
//	marketpulse feeds         Print the configured feed table
package main

import (
	"fmt"
	"os"

	"github.com/infblueocean/marketpulse/internal/logging"
)

const usage = `marketpulse — breaking market-news webhook alerter

Usage:
  marketpulse [command] [flags]

Commands:
  run         Full cycle: fetch, score, dedup, send alerts (default)
  scan        Dry run: fetch and score, print would-be alerts, send nothing
  seen        Inspect the seen-store (-clear wipes it)
  feeds       Print the configured feed table in priority order

Environment:
  DISCORD_WEBHOOK             Webhook URL (required for run)
  MARKETPULSE_CONFIG          JSON config file (default: marketpulse.json)
  MARKETPULSE_STATE           Seen-store path (default: seen_news.json)
  MARKETPULSE_STATE_BACKEND   "file" or "sqlite" (default: file)
  LOG_LEVEL / DEBUG           Log verbosity

Run 'marketpulse <command> -h' for command-specific help.
`

func main() {
	logging.Init()

	cmd := "run"
	if len(os.Args) > 1 {
		cmd = os.Args[1]
		// Strip the program name + subcommand so flag sets see only their flags
		os.Args = os.Args[1:]
	}

	switch cmd {
	case "run":
		runRun()
	case "scan":
		runScan()
	case "seen":
		runSeen()
	case "feeds":
		runFeeds()
	case "-h", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "marketpulse: unknown command %q\n\n", cmd)
		fmt.Print(usage)
		os.Exit(1)
	}
}
