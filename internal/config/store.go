package config

import (
	"context"
	"log/slog"

	"vault-tracker/internal/blob"
	"vault-tracker/internal/repository/sqlite"
)

// OpenStore opens the tracking database in the configured vault directory.
func OpenStore(ctx context.Context, config *Config, logger *slog.Logger, opts ...sqlite.Option) (*sqlite.Store, error) {
	loc, err := config.Location()
	if err != nil {
		return nil, err
	}

	logger.Debug("opening tracking database", "path", config.GetDatabasePath())
	base := []sqlite.Option{sqlite.WithLocation(loc), sqlite.WithLogger(logger)}
	return sqlite.Open(ctx, blob.NewDirStore(config.Vault.Dir), config.Vault.DBFilename, append(base, opts...)...)
}
