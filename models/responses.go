package models

import "time"

// Envelope is the uniform response wrapper used by every relay endpoint.
// Successful responses embed it with Success=true next to the
// endpoint-specific fields; failures carry the error kind and message.
type Envelope struct {
	Success bool `json:"success"`

	// Error is the machine-readable error kind reported by the relay
	// (rate_limit, http_error, timeout, network_error). Empty on success.
	Error string `json:"error,omitempty"`

	// Message is the human-readable failure description.
	Message string `json:"message,omitempty"`

	// HTTPStatus mirrors the HTTP status code on http_error responses.
	HTTPStatus int `json:"httpStatus,omitempty"`

	// RetryAfter is the mandatory delay in seconds on rate_limit responses.
	RetryAfter int `json:"retryAfter,omitempty"`
}

// PairResponse is returned by the pair endpoint.
type PairResponse struct {
	Envelope
	DeviceToken string `json:"device_token"`
}

// InitiateResponse is returned by pairing/initiate.
type InitiateResponse struct {
	Envelope
	ShortCode string    `json:"short_code"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ClaimResponse is returned by pairing/claim.
type ClaimResponse struct {
	Envelope
	Payload PairingPayload `json:"payload"`
}

// PushResponse is returned by push.
type PushResponse struct {
	Envelope
	MessageID string `json:"message_id"`
}

// PullResponse is returned by pull.
type PullResponse struct {
	Envelope
	Messages []SyncMessage `json:"messages"`
}

// ClusterStatus is the liveness summary embedded in heartbeat responses.
type ClusterStatus struct {
	MasterAlive bool         `json:"master_alive"`
	Devices     []DeviceInfo `json:"devices,omitempty"`
}

// HeartbeatResponse is returned by heartbeat.
type HeartbeatResponse struct {
	Envelope
	ClusterStatus ClusterStatus `json:"cluster_status"`
}

// DevicesResponse is returned by the devices roster endpoint.
type DevicesResponse struct {
	Envelope
	Devices []DeviceInfo `json:"devices"`
}

// RevokeResponse is returned by revoke. NotifiedDevices counts the peers
// the relay will notify; fan-out itself is the relay's responsibility.
type RevokeResponse struct {
	Envelope
	NotifiedDevices int `json:"notified_devices"`
}

// DeviceNameResponse is returned by device-name.
type DeviceNameResponse struct {
	Envelope
}

// PromoteResponse is returned by promote. NotifiedSlaves counts the slaves
// the relay will inform about the role change.
type PromoteResponse struct {
	Envelope
	NotifiedSlaves int `json:"notified_slaves"`
}
