// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Voronin

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"runtime"

	"golang.org/x/crypto/argon2"

	"github.com/avoronin/go-sync-keeper/models"
)

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target (e.g. mobile vs. desktop).
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewKeyChainService constructs a [KeyChainService] with the Argon2id
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewKeyChainService() KeyChainService {
	return &keyChainService{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}
}

// GenerateClusterKey implements [KeyChainService]. It reads 32 random bytes
// from the OS CSPRNG. Returns an error if the random read fails.
func (k *keyChainService) GenerateClusterKey() ([]byte, error) {
	key := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, err
	}
	return key, nil
}

// ExportKey implements [KeyChainService].
func (k *keyChainService) ExportKey(key []byte) string {
	return base64.StdEncoding.EncodeToString(key)
}

// ImportKey implements [KeyChainService]. The exported form must decode to
// a 256-bit key.
func (k *keyChainService) ImportKey(exported string) ([]byte, error) {
	key, err := base64.StdEncoding.DecodeString(exported)
	if err != nil {
		return nil, fmt.Errorf("decode exported key: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("exported key has wrong length %d", len(key))
	}
	return key, nil
}

// EncryptDelta implements [KeyChainService]. It seals plaintext with
// AES-256-GCM under a fresh random 12-byte nonce. The nonce travels as the
// payload IV so the receiving side never has to guess it.
func (k *keyChainService) EncryptDelta(key, plaintext []byte) (models.EncryptedPayload, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return models.EncryptedPayload{}, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return models.EncryptedPayload{}, err
	}

	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)
	return models.EncryptedPayload{
		IV:   base64.StdEncoding.EncodeToString(nonce),
		Data: models.CipheredDelta(base64.StdEncoding.EncodeToString(ciphertext)),
	}, nil
}

// DecryptDelta implements [KeyChainService]. Any authentication failure
// (wrong key, truncated or tampered ciphertext) is returned as an error;
// the caller is expected to skip the offending message, not abort the pull.
func (k *keyChainService) DecryptDelta(key []byte, payload models.EncryptedPayload) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce, err := base64.StdEncoding.DecodeString(payload.IV)
	if err != nil {
		return nil, fmt.Errorf("decode payload iv: %w", err)
	}
	if len(nonce) != gcm.NonceSize() {
		return nil, fmt.Errorf("payload iv has wrong length %d", len(nonce))
	}

	ciphertext, err := base64.StdEncoding.DecodeString(string(payload.Data))
	if err != nil {
		return nil, fmt.Errorf("decode payload data: %w", err)
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("open payload: %w", err)
	}

	return plaintext, nil
}

// GenerateSalt implements [KeyChainService]. It reads 16 random bytes from
// the OS CSPRNG.
func (k *keyChainService) GenerateSalt() ([]byte, error) {
	salt := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// DeriveRecoveryKey implements [KeyChainService]. It derives a 256-bit
// credential from passphrase and salt using Argon2id with the parameters
// stored in the receiver. The result may be sent to the relay; the
// passphrase itself never leaves the device.
func (k *keyChainService) DeriveRecoveryKey(passphrase string, salt []byte) []byte {
	return argon2.IDKey(
		[]byte(passphrase),
		salt,
		k.argonTime,
		k.argonMemory,
		k.argonThreads,
		k.argonKeyLen,
	)
}

// Fingerprint implements [KeyChainService]. It hashes the host name, OS and
// architecture into a stable hex digest. Advisory only: pairing never gates
// on it.
func (k *keyChainService) Fingerprint() string {
	hostname, _ := os.Hostname()

	h := sha256.New()
	h.Write([]byte(hostname))
	h.Write([]byte(runtime.GOOS))
	h.Write([]byte(runtime.GOARCH))
	return hex.EncodeToString(h.Sum(nil))
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
