package models

import "time"

// Role is the cluster role of a device as known to the relay.
type Role string

const (
	// RoleMaster marks the single authoritative device of a cluster.
	RoleMaster Role = "master"

	// RoleSlave marks a paired device that follows the master.
	RoleSlave Role = "slave"

	// RoleUnpaired marks a device that holds no cluster membership,
	// either because it was never paired or because it revoked itself.
	RoleUnpaired Role = "unpaired"
)

// DeviceIdentity describes this installation's own identity within the
// cluster. It is created once per installation; DeviceToken is the secret
// credential minted by the relay on pairing and is wiped on self-revocation.
type DeviceIdentity struct {
	// DeviceID is the stable unique identifier of this installation.
	DeviceID string `json:"device_id"`

	// DeviceToken is the relay-issued credential. It is sent only to the
	// relay and never appears in sync payloads.
	DeviceToken string `json:"device_token"`

	// Role is the last locally observed cluster role.
	Role Role `json:"role"`

	// DeviceName is the human-readable label shown in device rosters.
	DeviceName string `json:"device_name"`
}

// DeviceInfo is a single roster entry as reported by the relay.
type DeviceInfo struct {
	DeviceID string     `json:"device_id"`
	Role     Role       `json:"role"`
	Name     string     `json:"name"`
	LastSeen *time.Time `json:"last_seen,omitempty"`
}
