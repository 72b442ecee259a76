// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronin

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-sync-keeper client. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the device display name.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Transport holds relay address and timeout settings for outbound calls.
	Transport Transport `envPrefix:"TRANSPORT_"`

	// Workers holds configuration for the background sync and heartbeat
	// cycles.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// DeviceName is the human-readable label this device registers with
	// the relay (e.g. "workstation", "laptop").
	// Env: APP_DEVICE_NAME
	DeviceName string `env:"DEVICE_NAME"`
}

// Storage groups the configuration for the local persistence backend.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database that stores
// the sync configuration, the outbound queue, the applied-message set, and
// the local record replica.
type DB struct {
	// DSN is the SQLite file path
	// (e.g. "/home/user/.sync-keeper/client.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Transport holds network settings used by the outbound transport layer.
type Transport struct {
	// APIURL is an explicit relay base URL override. When empty, the relay
	// address persisted during pairing is used.
	// Env: TRANSPORT_API_URL
	APIURL string `env:"API_URL"`

	// RequestTimeout is the maximum duration allowed for a single relay
	// call before it is abandoned (e.g. "30s", "1m").
	// Env: TRANSPORT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds the cadences of the background cycles.
type Workers struct {
	// HeartbeatInterval is the base interval between liveness probes.
	// Env: WORKERS_HEARTBEAT_INTERVAL
	HeartbeatInterval time.Duration `env:"HEARTBEAT_INTERVAL"`

	// SyncInterval is the base interval between push/pull cycles.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// DebounceWindow coalesces bursts of local edits into one push batch.
	// Env: WORKERS_DEBOUNCE_WINDOW
	DebounceWindow time.Duration `env:"DEBOUNCE_WINDOW"`
}

// GetStructuredConfig loads, merges, and validates the client configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
