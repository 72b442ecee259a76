package models

// Request bodies for the relay endpoints. Every authenticated request
// carries the device id and the relay-issued token; the relay validates the
// pair on each call.

// PairRequest registers a device with the relay. Bootstrap is set only by
// the very first master of a new cluster; slaves set MasterID instead.
type PairRequest struct {
	DeviceID    string `json:"device_id"`
	Role        Role   `json:"role"`
	Bootstrap   bool   `json:"bootstrap,omitempty"`
	MasterID    string `json:"master_id,omitempty"`
	RecoveryKey string `json:"recovery_key,omitempty"`
	DeviceName  string `json:"device_name,omitempty"`
}

// InitiateRequest asks the relay for a single-use short pairing code.
type InitiateRequest struct {
	DeviceID    string         `json:"device_id"`
	DeviceToken string         `json:"device_token"`
	Payload     PairingPayload `json:"payload"`
}

// ClaimRequest redeems a short code. Fingerprint is advisory corroboration
// only; the relay records it but never gates the claim on it.
type ClaimRequest struct {
	ShortCode   string `json:"short_code"`
	Fingerprint string `json:"fingerprint,omitempty"`
}

// PushRequest stores one encrypted message for another device.
type PushRequest struct {
	DeviceID    string           `json:"device_id"`
	DeviceToken string           `json:"device_token"`
	To          string           `json:"to"`
	Payload     EncryptedPayload `json:"payload"`
}

// PullRequest fetches the messages pending for this device.
type PullRequest struct {
	DeviceID    string `json:"device_id"`
	DeviceToken string `json:"device_token"`
}

// HeartbeatRequest reports liveness and fetches the cluster status.
type HeartbeatRequest struct {
	DeviceID    string `json:"device_id"`
	DeviceToken string `json:"device_token"`
}

// DevicesRequest fetches the full device roster.
type DevicesRequest struct {
	DeviceID    string `json:"device_id"`
	DeviceToken string `json:"device_token"`
}

// RevokeRequest removes a device (possibly the caller itself) from the
// cluster.
type RevokeRequest struct {
	DeviceID       string `json:"device_id"`
	DeviceToken    string `json:"device_token"`
	TargetDeviceID string `json:"target_device_id"`
	Reason         string `json:"reason,omitempty"`
}

// DeviceNameRequest renames the calling device in the roster.
type DeviceNameRequest struct {
	DeviceID    string `json:"device_id"`
	DeviceToken string `json:"device_token"`
	DeviceName  string `json:"device_name"`
}

// PromoteRequest asks the relay to hand the master role to the caller.
// MasterID names the master being superseded so the relay can verify the
// request is not acting on a stale view.
type PromoteRequest struct {
	DeviceID    string `json:"device_id"`
	DeviceToken string `json:"device_token"`
	MasterID    string `json:"master_id"`
}
