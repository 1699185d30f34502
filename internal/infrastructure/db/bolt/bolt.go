package bolt

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"
)

const defaultTimeout = time.Second

// Config captures the settings for opening the local state file.
type Config struct {
	Path    string
	Timeout time.Duration
}

// Open opens (or creates) the bbolt file at cfg.Path. The lock wait is bounded
// by cfg.Timeout so a second panel process fails fast instead of hanging.
func Open(cfg Config) (*bolt.DB, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	if dir := filepath.Dir(cfg.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("bolt mkdir: %w", err)
		}
	}

	db, err := bolt.Open(cfg.Path, 0o600, &bolt.Options{Timeout: timeout})
	if err != nil {
		return nil, fmt.Errorf("bolt open: %w", err)
	}
	return db, nil
}
