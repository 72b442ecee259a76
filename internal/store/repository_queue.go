package store

import (
	"context"
	"fmt"

	"github.com/avoronin/go-sync-keeper/internal/logger"
	"github.com/avoronin/go-sync-keeper/models"
)

// queueRepository is the SQLite-backed implementation of [QueueRepository].
// The AUTOINCREMENT seq column preserves causal (FIFO) order across process
// restarts.
type queueRepository struct {
	*DB
	logger *logger.Logger
}

func NewQueueRepository(db *DB, logger *logger.Logger) QueueRepository {
	return &queueRepository{
		DB:     db,
		logger: logger,
	}
}

// Enqueue implements [QueueRepository].
func (r *queueRepository) Enqueue(ctx context.Context, delta models.Delta) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, enqueueDelta,
		delta.RecordID,
		delta.Kind,
		delta.Data,
		delta.ModifiedAt,
		delta.DeviceID,
	)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.Enqueue").
			Str("record_id", delta.RecordID).
			Msg("failed to enqueue outbound delta")
		return fmt.Errorf("enqueue delta: %w", err)
	}

	return nil
}

// Oldest implements [QueueRepository].
func (r *queueRepository) Oldest(ctx context.Context, limit int) ([]QueuedDelta, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildOldestQuery(limit)
	if err != nil {
		log.Err(err).Str("func", "queueRepository.Oldest").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "queueRepository.Oldest").
			Int("limit", limit).
			Msg("failed to read outbound queue")
		return nil, fmt.Errorf("read outbound queue: %w", err)
	}
	defer rows.Close()

	var out []QueuedDelta
	for rows.Next() {
		var qd QueuedDelta
		if err = rows.Scan(
			&qd.Seq,
			&qd.Delta.RecordID,
			&qd.Delta.Kind,
			&qd.Delta.Data,
			&qd.Delta.ModifiedAt,
			&qd.Delta.DeviceID,
		); err != nil {
			return nil, fmt.Errorf("scan outbound queue row: %w", err)
		}
		out = append(out, qd)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate outbound queue: %w", err)
	}

	return out, nil
}

// Remove implements [QueueRepository]. No-op when seqs is empty.
func (r *queueRepository) Remove(ctx context.Context, seqs ...int64) error {
	if len(seqs) == 0 {
		return nil
	}

	log := logger.FromContext(ctx)

	query, args, err := buildRemoveQueueQuery(seqs)
	if err != nil {
		log.Err(err).Str("func", "queueRepository.Remove").Msg("failed to create query")
		return err
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "queueRepository.Remove").
			Int("count", len(seqs)).
			Msg("failed to remove pushed entries")
		return fmt.Errorf("remove queue entries: %w", err)
	}

	return nil
}

// Size implements [QueueRepository].
func (r *queueRepository) Size(ctx context.Context) (int, error) {
	var n int
	if err := r.DB.QueryRowContext(ctx, queueSize).Scan(&n); err != nil {
		return 0, fmt.Errorf("count outbound queue: %w", err)
	}
	return n, nil
}
