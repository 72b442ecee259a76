package models

import "time"

type (
	// CipheredDelta is an encrypted, base64-encoded delta batch. The relay
	// and the local database treat it as an opaque string.
	CipheredDelta string

	// CipheredRecord is the encrypted content of a single local record.
	// Only the keychain can interpret it.
	CipheredRecord string
)

// EncryptedPayload is the wire form of an encrypted delta batch: the GCM
// nonce (IV) and the ciphertext, both base64-encoded.
type EncryptedPayload struct {
	IV   string        `json:"iv"`
	Data CipheredDelta `json:"data"`
}

// SyncMessage is one store-and-forward envelope held by the relay. Each
// message is consumed at most once per recipient: MessageID is recorded in
// the persisted applied-set so that relay-level redelivery stays idempotent.
type SyncMessage struct {
	MessageID string           `json:"message_id"`
	From      string           `json:"from"`
	To        string           `json:"to,omitempty"`
	Payload   EncryptedPayload `json:"payload"`
	CreatedAt time.Time        `json:"created_at"`
}
