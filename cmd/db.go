package cmd

import (
	"context"
	"fmt"

	"github.com/Aarav718/seedkit/internal/config"
	"github.com/Aarav718/seedkit/internal/database"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// openAdapter connects and pings the configured database. The caller owns
// the returned adapter and must Close it.
func openAdapter(ctx context.Context, cfg *config.Config) (database.DatabaseAdapter, error) {
	dbURL, err := cfg.GetDatabaseURL()
	if err != nil {
		return nil, err
	}

	adapter := database.NewAdapter(cfg.Database.Provider)
	if err := adapter.Connect(ctx, dbURL); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := adapter.Ping(ctx); err != nil {
		adapter.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return adapter, nil
}
