// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronin

// Package crypto implements the keychain collaborator the sync engine and
// the pairing coordinator rely on: cluster key generation and transport,
// AES-256-GCM delta encryption, and the Argon2id recovery-key derivation.
//
// Everything outside this package treats keys and ciphertext as opaque;
// nothing here talks to the network or the database.
package crypto

import "github.com/avoronin/go-sync-keeper/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_mock.go -package=mock

// KeyChainService defines every cryptographic operation the sync subsystem
// needs. Implementations must be safe for concurrent use.
type KeyChainService interface {
	// GenerateClusterKey returns a fresh 256-bit key shared by all paired
	// devices of a cluster. Called once, by the bootstrapping master.
	GenerateClusterKey() ([]byte, error)

	// ExportKey encodes key for embedding into the pairing payload and
	// the persisted sync configuration.
	ExportKey(key []byte) string

	// ImportKey decodes an exported key back to raw bytes.
	ImportKey(exported string) ([]byte, error)

	// EncryptDelta seals plaintext with key and returns the wire payload:
	// base64 nonce (IV) plus base64 ciphertext.
	EncryptDelta(key, plaintext []byte) (models.EncryptedPayload, error)

	// DecryptDelta opens payload with key. Returns an error if the key is
	// wrong or the ciphertext was tampered with.
	DecryptDelta(key []byte, payload models.EncryptedPayload) ([]byte, error)

	// GenerateSalt returns 16 random bytes for recovery-key derivation.
	GenerateSalt() ([]byte, error)

	// DeriveRecoveryKey derives a relay-storable recovery credential from
	// the user's passphrase with Argon2id. Deterministic for a given
	// passphrase and salt.
	DeriveRecoveryKey(passphrase string, salt []byte) []byte

	// Fingerprint returns a best-effort hash of this installation's
	// environment, sent as advisory corroboration during pairing claims.
	Fingerprint() string
}
