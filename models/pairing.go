package models

import "time"

// PairingPayloadVersion is the protocol version embedded in the payload a
// master publishes when it issues a short code. Slaves refuse payloads with
// a version they do not understand.
const PairingPayloadVersion = 1

// PairingSession is the master-side view of an issued short code. Ephemeral
// and single-use; it lives only between initiate and a successful claim or
// the server-enforced expiry.
type PairingSession struct {
	ShortCode string    `json:"short_code"`
	ExpiresAt time.Time `json:"expires_at"`
}

// PairingPayload is the self-configuration bundle a slave receives when it
// claims a short code. It carries everything the slave needs to register
// itself: the master's identity, the exported cluster encryption key, and
// the relay base URL.
type PairingPayload struct {
	// V is the pairing protocol version, see PairingPayloadVersion.
	V int `json:"v"`

	MasterID      string `json:"master_id"`
	EncryptionKey string `json:"encryption_key"`
	APIURL        string `json:"api_url"`
}
