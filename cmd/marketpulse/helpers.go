package main

import (
	"fmt"

	"github.com/infblueocean/marketpulse/internal/config"
	"github.com/infblueocean/marketpulse/internal/logging"
	"github.com/infblueocean/marketpulse/internal/seen"
)

// openStore opens the configured seen-store backend. A file-backend
// purge write-back failure is survivable, so it only warns.
func openStore(cfg *config.Config) (seen.Store, error) {
	switch cfg.StateBackend {
	case config.BackendSQLite:
		return seen.OpenSQLite(cfg.StatePath, cfg.Retention())
	case config.BackendFile:
		store, err := seen.OpenFile(cfg.StatePath, cfg.Retention())
		if err != nil {
			logging.Warn("seen-store maintenance failed", "path", cfg.StatePath, "err", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown state backend %q", cfg.StateBackend)
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
