package store

import (
	"context"
	"fmt"
	"time"

	"github.com/avoronin/go-sync-keeper/internal/logger"
)

// appliedRepository is the SQLite-backed implementation of
// [AppliedRepository]. The ON CONFLICT DO NOTHING in markMessageApplied
// makes MarkApplied idempotent on its own.
type appliedRepository struct {
	*DB
	logger *logger.Logger
}

func NewAppliedRepository(db *DB, logger *logger.Logger) AppliedRepository {
	return &appliedRepository{
		DB:     db,
		logger: logger,
	}
}

// IsApplied implements [AppliedRepository].
func (r *appliedRepository) IsApplied(ctx context.Context, messageID string) (bool, error) {
	var n int
	if err := r.DB.QueryRowContext(ctx, isMessageApplied, messageID).Scan(&n); err != nil {
		return false, fmt.Errorf("check applied message: %w", err)
	}
	return n > 0, nil
}

// MarkApplied implements [AppliedRepository].
func (r *appliedRepository) MarkApplied(ctx context.Context, messageID string) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, markMessageApplied, messageID, time.Now().UTC()); err != nil {
		log.Err(err).
			Str("func", "appliedRepository.MarkApplied").
			Str("message_id", messageID).
			Msg("failed to record applied message")
		return fmt.Errorf("mark message applied: %w", err)
	}

	return nil
}
