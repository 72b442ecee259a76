package models

import "time"

// DeltaKind is the mutation type carried by a Delta.
type DeltaKind string

const (
	DeltaUpsert DeltaKind = "upsert"
	DeltaDelete DeltaKind = "delete"
)

// Delta is a single mutation of a local record, the unit exchanged between
// devices inside SyncMessage payloads. The record content itself stays
// encrypted end to end; ModifiedAt and DeviceID drive last-writer-wins
// conflict resolution on the receiving side.
type Delta struct {
	// RecordID is the logical identity of the mutated record, stable
	// across all devices.
	RecordID string `json:"record_id"`

	Kind DeltaKind      `json:"kind"`
	Data CipheredRecord `json:"data,omitempty"`

	// ModifiedAt is the mutation timestamp embedded by the producing
	// device. Wall clock, compared across devices by the merge rule.
	ModifiedAt time.Time `json:"modified_at"`

	// DeviceID identifies the device that produced the mutation. Used as
	// the deterministic tiebreak when two deltas carry equal timestamps.
	DeviceID string `json:"device_id"`
}

// Supersedes reports whether d wins a last-writer-wins comparison against
// other. Later ModifiedAt wins; on an exact tie the lexicographically
// greater source DeviceID wins, so every replica resolves the same way
// regardless of arrival order.
func (d Delta) Supersedes(other Delta) bool {
	if !d.ModifiedAt.Equal(other.ModifiedAt) {
		return d.ModifiedAt.After(other.ModifiedAt)
	}
	return d.DeviceID > other.DeviceID
}

// Record is a local replica entry, the merge target of incoming deltas.
type Record struct {
	RecordID   string         `json:"record_id"`
	Data       CipheredRecord `json:"data"`
	ModifiedAt time.Time      `json:"modified_at"`
	DeviceID   string         `json:"device_id"`
	Deleted    bool           `json:"deleted"`
}

// ToRecord returns the record state that results from applying d, assuming
// d has already won the merge comparison.
func (d Delta) ToRecord() Record {
	return Record{
		RecordID:   d.RecordID,
		Data:       d.Data,
		ModifiedAt: d.ModifiedAt,
		DeviceID:   d.DeviceID,
		Deleted:    d.Kind == DeltaDelete,
	}
}
