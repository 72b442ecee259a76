// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronin

// Package client implements the sync client application runtime.
//
// It wires the local storage, the relay transport, the keychain, the sync
// services, and the background workers into a single process lifecycle.
package client
