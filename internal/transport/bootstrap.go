package transport

import (
	"encoding/json"
	"fmt"
	"os"
)

// BootstrapStore is the file-backed fallback holding the relay URL before
// the first pairing completes. Once SyncConfig exists it is never consulted
// again, but the file is kept so a wiped device can re-pair against the same
// relay.
type BootstrapStore struct {
	path string
}

type bootstrapState struct {
	APIURL string `json:"api_url"`
}

// NewBootstrapStore creates a store persisting to path.
func NewBootstrapStore(path string) *BootstrapStore {
	return &BootstrapStore{path: path}
}

// Load returns the stored URL, or empty when the file does not exist.
func (b *BootstrapStore) Load() (string, error) {
	raw, err := os.ReadFile(b.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read bootstrap store: %w", err)
	}

	var st bootstrapState
	if err = json.Unmarshal(raw, &st); err != nil {
		return "", fmt.Errorf("decode bootstrap store: %w", err)
	}

	return st.APIURL, nil
}

// Save writes url to the store.
func (b *BootstrapStore) Save(url string) error {
	raw, err := json.Marshal(bootstrapState{APIURL: url})
	if err != nil {
		return fmt.Errorf("encode bootstrap store: %w", err)
	}

	if err = os.WriteFile(b.path, raw, 0o600); err != nil {
		return fmt.Errorf("write bootstrap store: %w", err)
	}

	return nil
}
