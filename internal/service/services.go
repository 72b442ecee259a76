// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronin

package service

import (
	"time"

	"github.com/avoronin/go-sync-keeper/internal/crypto"
	"github.com/avoronin/go-sync-keeper/internal/store"
	"github.com/avoronin/go-sync-keeper/internal/transport"
)

// Options carries the tunables the services are built with.
type Options struct {
	DeviceName        string
	HeartbeatInterval time.Duration
	DebounceWindow    time.Duration
}

type ClientServices struct {
	Pairing    PairingService
	Membership MembershipService
	Heartbeat  HeartbeatService
	Promotion  PromotionService
	SyncEngine SyncEngineService
	SyncJob    SyncJobService
	Revocation RevocationService
}

func NewClientServices(storages *store.ClientStorages, relay transport.RelayTransport, keychain crypto.KeyChainService, bootstrap *transport.BootstrapStore, opts Options) *ClientServices {
	membership := NewMembershipService(storages.Config, relay)
	promotion := NewPromotionService(storages.Config, relay, membership, opts.HeartbeatInterval)
	engine := NewSyncEngine(storages, relay, keychain, membership, opts.DebounceWindow)

	return &ClientServices{
		Pairing:    NewPairingService(storages.Config, relay, keychain, bootstrap, opts.DeviceName),
		Membership: membership,
		Heartbeat:  NewHeartbeatService(storages.Config, relay, membership, promotion, opts.HeartbeatInterval),
		Promotion:  promotion,
		SyncEngine: engine,
		SyncJob:    NewSyncJob(engine),
		Revocation: NewRevocationService(storages.Config, relay, membership),
	}
}
