package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avoronin/go-sync-keeper/internal/logger"
	"github.com/avoronin/go-sync-keeper/models"
)

// configRepository is the SQLite-backed implementation of [ConfigRepository].
// The sync_config table holds at most one row (id = 1); the repository is
// the only code path that touches it.
type configRepository struct {
	*DB
	logger *logger.Logger
}

// NewConfigRepository constructs a [ConfigRepository] backed by the provided
// database connection and logger.
func NewConfigRepository(db *DB, logger *logger.Logger) ConfigRepository {
	return &configRepository{
		DB:     db,
		logger: logger,
	}
}

// Get implements [ConfigRepository]. Returns [ErrConfigNotFound] when the
// single row does not exist yet.
func (r *configRepository) Get(ctx context.Context) (models.SyncConfig, error) {
	var cfg models.SyncConfig

	row := r.DB.QueryRowContext(ctx, getSyncConfig)
	err := row.Scan(
		&cfg.DeviceID,
		&cfg.DeviceToken,
		&cfg.Role,
		&cfg.MasterID,
		&cfg.APIURL,
		&cfg.EncryptionKey,
		&cfg.DeviceName,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.SyncConfig{}, ErrConfigNotFound
	}
	if err != nil {
		return models.SyncConfig{}, fmt.Errorf("get sync config: %w", err)
	}

	return cfg, nil
}

// Save implements [ConfigRepository]. The upsert keeps the table at exactly
// one row.
func (r *configRepository) Save(ctx context.Context, cfg models.SyncConfig) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, saveSyncConfig,
		cfg.DeviceID,
		cfg.DeviceToken,
		cfg.Role,
		cfg.MasterID,
		cfg.APIURL,
		cfg.EncryptionKey,
		cfg.DeviceName,
	)
	if err != nil {
		log.Err(err).
			Str("func", "configRepository.Save").
			Str("device_id", cfg.DeviceID).
			Msg("failed to persist sync config")
		return fmt.Errorf("save sync config: %w", err)
	}

	return nil
}

// Wipe implements [ConfigRepository]. Credentials are cleared in place so
// the device id survives for a later re-pairing.
func (r *configRepository) Wipe(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, wipeSyncConfig); err != nil {
		log.Err(err).
			Str("func", "configRepository.Wipe").
			Msg("failed to wipe sync config")
		return fmt.Errorf("wipe sync config: %w", err)
	}

	return nil
}
