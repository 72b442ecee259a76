// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronin

// Package service implements the sync subsystem's behaviour: pairing,
// cluster membership, heartbeating, master promotion, delta sync, and
// revocation. Components talk to the relay only through
// [transport.RelayTransport] and to durable state only through the store
// repositories, so every piece is testable in isolation.
package service

import (
	"context"
	"time"

	"github.com/avoronin/go-sync-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// PairingService bootstraps masters, issues and claims short pairing codes,
// and registers slaves.
type PairingService interface {
	// BootstrapMaster registers this installation as the first master of a
	// brand-new cluster against the relay at apiURL. passphrase, when
	// non-empty, derives the optional recovery key sent to the relay.
	// On success the full sync configuration is persisted.
	BootstrapMaster(ctx context.Context, apiURL, passphrase string) (models.SyncConfig, error)

	// Initiate asks the relay for a single-use short code. Master only.
	Initiate(ctx context.Context) (models.PairingSession, error)

	// Claim redeems shortCode on an unpaired device and caches the
	// returned payload so RegisterSlave can be retried without a new code
	// while the session is still valid.
	Claim(ctx context.Context, shortCode string) (models.PairingPayload, error)

	// RegisterSlave mints this device's own token using the payload cached
	// by Claim and persists the sync configuration.
	RegisterSlave(ctx context.Context) (models.SyncConfig, error)

	// Rename updates the device display name at the relay and locally.
	Rename(ctx context.Context, name string) error
}

// MembershipService caches the known device roster and liveness data.
type MembershipService interface {
	// Refresh replaces the cached roster wholesale from the relay.
	Refresh(ctx context.Context) (models.ClusterState, error)

	// Cached returns the current cached view without a network call.
	Cached() models.ClusterState

	// ApplyStatus folds a heartbeat's cluster status into the cache.
	ApplyStatus(status models.ClusterStatus)

	// IsMasterAlive reports whether the master was seen within threshold
	// or the most recent heartbeat explicitly reported it alive.
	IsMasterAlive(threshold time.Duration) bool
}

// HeartbeatService is the periodic liveness probe.
type HeartbeatService interface {
	// Run drives the probe loop until ctx is cancelled.
	Run(ctx context.Context)

	// Tick performs one probe immediately.
	Tick(ctx context.Context) error

	// Wake fires one out-of-cadence probe, used after the app regains
	// foreground visibility.
	Wake()
}

// PromotionState is the position of the promotion state machine.
type PromotionState string

const (
	PromotionIdle       PromotionState = "idle"
	PromotionEvaluating PromotionState = "evaluating"
	PromotionRequesting PromotionState = "requesting"
	PromotionPromoted   PromotionState = "promoted"
	PromotionRejected   PromotionState = "rejected"
)

// PromotionService converts a slave into a master once the current master
// is judged unreachable. The relay remains the sole arbiter.
type PromotionService interface {
	// Evaluate runs the state machine once:
	// Idle → Evaluating → Requesting → {Promoted | Rejected→Idle}.
	// Returns the terminal state of this run.
	Evaluate(ctx context.Context) (PromotionState, error)

	// State returns the current machine state.
	State() PromotionState
}

// SyncEngineService owns the outbound delta queue and the push/pull cycles.
type SyncEngineService interface {
	// SaveRecord stores ciphered record content locally, enqueues the
	// matching delta, and schedules a debounced push. A fresh record id is
	// generated when recordID is empty.
	SaveRecord(ctx context.Context, recordID string, data models.CipheredRecord) (models.Record, error)

	// DeleteRecord tombstones the record locally and enqueues a delete
	// delta.
	DeleteRecord(ctx context.Context, recordID string) error

	// PushCycle encrypts the queued batch and ships it to every peer.
	// Concurrent triggers of the same kind are coalesced into one
	// pending run.
	PushCycle(ctx context.Context) error

	// PullCycle fetches pending messages, skips already-applied ones, and
	// merges fresh deltas into the local replica.
	PullCycle(ctx context.Context) error

	// Triggered returns the channel the engine signals when a debounced
	// local change is ready to push.
	Triggered() <-chan struct{}
}

// SyncJobService runs push/pull on a ticker in the background.
type SyncJobService interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()

	// Wake runs one out-of-cadence push+pull pass, used after the app
	// regains foreground visibility.
	Wake()
}

// RevocationService removes devices from the cluster.
type RevocationService interface {
	// Revoke removes targetID. Revoking self wipes the local sync
	// configuration; revoking a peer refreshes the cached roster.
	// Returns the number of devices the relay will notify.
	Revoke(ctx context.Context, targetID, reason string) (int, error)
}
