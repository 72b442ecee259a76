// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronin

package config

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants that must hold before defaults are applied.
//
// Kept permissive on purpose: all cadence and timeout fields may be zero at
// this stage because [GetClientConfig] fills in the documented defaults.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Transport.RequestTimeout <= 0 {
		return ErrInvalidTransportConfigs
	}

	if cfg.Workers.HeartbeatInterval <= 0 || cfg.Workers.SyncInterval <= 0 || cfg.Workers.DebounceWindow <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
