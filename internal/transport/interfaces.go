// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronin

// Package transport provides the single request/response primitive every
// sync component uses to talk to the relay.
//
// All relay endpoints share one calling convention: JSON body in, a uniform
// `{success, ...}` envelope out. [RelayTransport.Send] owns the request
// timeout, the lazy API-base resolution, and the mapping of every failure
// into a typed [*Error] whose [Kind] callers can switch on exhaustively.
// Retry policy stays with the caller.
package transport

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/transport_mock.go -package=mock

// Relay endpoint names. Send prefixes them with the resolved API base.
const (
	EndpointPair       = "pair"
	EndpointInitiate   = "pairing/initiate"
	EndpointClaim      = "pairing/claim"
	EndpointPush       = "push"
	EndpointPull       = "pull"
	EndpointHeartbeat  = "heartbeat"
	EndpointDevices    = "devices"
	EndpointRevoke     = "revoke"
	EndpointDeviceName = "device-name"
	EndpointPromote    = "promote"
)

// RelayTransport is the uniform request primitive to the relay.
type RelayTransport interface {
	// Send POSTs body as JSON to endpoint and decodes the successful
	// envelope into out (out may be nil when the caller only cares about
	// success). Every failure is returned as a [*Error]; no call outlives
	// the configured request timeout.
	Send(ctx context.Context, endpoint string, body any, out any) error
}

// BaseResolver yields the relay API base URL for the next call.
type BaseResolver interface {
	// Resolve returns the API base, consulting in order: the explicit
	// override, the persisted sync configuration, and the bootstrap
	// fallback store used only before pairing completes. Returns a
	// [*Error] with [KindConfig] when no source yields a URL.
	Resolve(ctx context.Context) (string, error)
}
