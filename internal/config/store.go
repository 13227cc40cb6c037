package config

import (
	"fmt"
	"os"

	"punchclock/internal/store"
	"punchclock/internal/store/sqlite"
)

// OpenStore opens the persistent key-value store described by the
// configuration, creating the data directory if needed.
func OpenStore(cfg *Config) (store.Store, error) {
	if err := os.MkdirAll(cfg.Storage.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	kv, err := sqlite.NewWithTimeouts(cfg.GetDatabasePath(),
		cfg.Storage.QueryTimeout, cfg.Storage.WriteTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	return kv, nil
}

// OpenTestStore opens an ephemeral in-memory store for testing.
func OpenTestStore() (store.Store, error) {
	kv, err := sqlite.New(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test store: %w", err)
	}

	return kv, nil
}
