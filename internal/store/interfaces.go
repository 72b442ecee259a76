// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronin

// Package store implements the client's durable local state on SQLite:
// the single sync configuration row, the FIFO outbound delta queue, the
// applied-message set, and the local record replica that incoming deltas
// merge into.
//
// All repositories share one [*DB] connection. Mutation serialisation is the
// caller's responsibility: the service layer guarantees that each table is
// only written from inside a guarded cycle.
package store

import (
	"context"

	"github.com/avoronin/go-sync-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ConfigRepository is the single accessor for the persisted [models.SyncConfig].
// No other component reads or writes the configuration row.
type ConfigRepository interface {
	// Get returns the persisted configuration. Returns [ErrConfigNotFound]
	// if the installation has never been initialised.
	Get(ctx context.Context) (models.SyncConfig, error)

	// Save writes cfg as the single configuration row, creating it on
	// first use.
	Save(ctx context.Context, cfg models.SyncConfig) error

	// Wipe clears the credential fields (token, role, master id,
	// encryption key, api url) while keeping the device id and name, so
	// the installation returns to the unpaired state.
	Wipe(ctx context.Context) error
}

// QueuedDelta is an outbound queue entry: a delta plus its FIFO sequence
// number assigned at enqueue time.
type QueuedDelta struct {
	Seq   int64
	Delta models.Delta
}

// QueueRepository is the durable FIFO queue of deltas awaiting push.
type QueueRepository interface {
	// Enqueue appends delta to the queue in causal order.
	Enqueue(ctx context.Context, delta models.Delta) error

	// Oldest returns up to limit entries in FIFO order without removing
	// them. limit <= 0 means no limit.
	Oldest(ctx context.Context, limit int) ([]QueuedDelta, error)

	// Remove deletes the entries with the given sequence numbers. Called
	// only after a successful push; a failed push leaves the queue intact.
	Remove(ctx context.Context, seqs ...int64) error

	// Size returns the number of pending entries.
	Size(ctx context.Context) (int, error)
}

// AppliedRepository is the persisted applied-message set that keeps delta
// application idempotent under relay-level redelivery.
type AppliedRepository interface {
	// IsApplied reports whether messageID was applied before.
	IsApplied(ctx context.Context, messageID string) (bool, error)

	// MarkApplied records messageID as applied.
	MarkApplied(ctx context.Context, messageID string) error
}

// RecordRepository is the local record replica the sync engine merges
// incoming deltas into.
type RecordRepository interface {
	// Get returns the record with the given id. Returns [ErrRecordNotFound]
	// if it does not exist.
	Get(ctx context.Context, recordID string) (models.Record, error)

	// Upsert writes rec, replacing any previous state of the same record.
	Upsert(ctx context.Context, rec models.Record) error

	// List returns records, optionally filtered and limited. Deleted
	// records are excluded unless includeDeleted is set.
	List(ctx context.Context, filter RecordFilter) ([]models.Record, error)
}

// RecordFilter narrows a [RecordRepository.List] call.
type RecordFilter struct {
	RecordIDs      []string
	IncludeDeleted bool
	Limit          int
}

// ClientStorages aggregates all local repositories behind one handle the
// way the service layer consumes them.
type ClientStorages struct {
	Config  ConfigRepository
	Queue   QueueRepository
	Applied AppliedRepository
	Records RecordRepository
}
