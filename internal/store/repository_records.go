package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/avoronin/go-sync-keeper/internal/logger"
	"github.com/avoronin/go-sync-keeper/models"
)

// recordRepository is the SQLite-backed implementation of
// [RecordRepository]. Record content stays ciphered; the table is opaque to
// everything but the keychain.
type recordRepository struct {
	*DB
	logger *logger.Logger
}

func NewRecordRepository(db *DB, logger *logger.Logger) RecordRepository {
	return &recordRepository{
		DB:     db,
		logger: logger,
	}
}

// Get implements [RecordRepository].
func (r *recordRepository) Get(ctx context.Context, recordID string) (models.Record, error) {
	var rec models.Record

	row := r.DB.QueryRowContext(ctx, getRecord, recordID)
	err := row.Scan(
		&rec.RecordID,
		&rec.Data,
		&rec.ModifiedAt,
		&rec.DeviceID,
		&rec.Deleted,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Record{}, ErrRecordNotFound
	}
	if err != nil {
		return models.Record{}, fmt.Errorf("get record %s: %w", recordID, err)
	}

	return rec, nil
}

// Upsert implements [RecordRepository].
func (r *recordRepository) Upsert(ctx context.Context, rec models.Record) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, upsertRecord,
		rec.RecordID,
		rec.Data,
		rec.ModifiedAt,
		rec.DeviceID,
		rec.Deleted,
	)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.Upsert").
			Str("record_id", rec.RecordID).
			Msg("failed to upsert record")
		return fmt.Errorf("upsert record %s: %w", rec.RecordID, err)
	}

	return nil
}

// List implements [RecordRepository].
func (r *recordRepository) List(ctx context.Context, filter RecordFilter) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListRecordsQuery(filter)
	if err != nil {
		log.Err(err).Str("func", "recordRepository.List").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "recordRepository.List").
			Int("record ids count", len(filter.RecordIDs)).
			Msg("failed to list records")
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	var out []models.Record
	for rows.Next() {
		var rec models.Record
		if err = rows.Scan(
			&rec.RecordID,
			&rec.Data,
			&rec.ModifiedAt,
			&rec.DeviceID,
			&rec.Deleted,
		); err != nil {
			return nil, fmt.Errorf("scan record row: %w", err)
		}
		out = append(out, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}

	return out, nil
}
