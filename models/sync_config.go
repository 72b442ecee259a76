package models

// SyncConfig is the single durable configuration record this subsystem owns.
// It exists from successful pairing until self-revocation and is read and
// written exclusively through the store's config repository; components never
// keep private copies of its fields.
type SyncConfig struct {
	// DeviceID is the stable unique identifier of this installation.
	DeviceID string `json:"device_id"`

	// DeviceToken is the relay-issued credential for authenticated calls.
	DeviceToken string `json:"device_token"`

	// Role is the current cluster role persisted after pairing or promotion.
	Role Role `json:"role"`

	// MasterID identifies the cluster's current master device.
	MasterID string `json:"master_id"`

	// APIURL is the relay base URL learned during pairing.
	APIURL string `json:"api_url"`

	// EncryptionKey is the exported cluster key shared by all paired
	// devices. Opaque to this subsystem; only the keychain interprets it.
	EncryptionKey string `json:"encryption_key"`

	// DeviceName is the human-readable label registered with the relay.
	DeviceName string `json:"device_name"`
}

// Paired reports whether the device currently holds a usable cluster
// membership. An empty token means every sync operation must fail fast
// locally with a configuration error instead of calling the relay.
func (c SyncConfig) Paired() bool {
	return c.DeviceToken != "" && c.Role != RoleUnpaired && c.Role != ""
}
