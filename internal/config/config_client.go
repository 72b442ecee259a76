package config

import (
	"fmt"
	"time"
)

// Defaults applied by [GetClientConfig] when the merged configuration leaves
// a field unset.
const (
	// DefaultRequestTimeout bounds every relay call.
	DefaultRequestTimeout = 30 * time.Second
	// DefaultHeartbeatInterval is the base liveness probe cadence.
	DefaultHeartbeatInterval = 60 * time.Second
	// DefaultSyncInterval is the base push/pull cadence.
	DefaultSyncInterval = 60 * time.Second
	// DefaultDebounceWindow coalesces bursts of local edits into one batch.
	DefaultDebounceWindow = 2 * time.Second
	// DefaultDeviceName labels a device whose owner never named it.
	DefaultDeviceName = "unnamed device"
	// DefaultDBFileName is the SQLite file used when no path is configured.
	DefaultDBFileName = "sync-keeper.db"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// DeviceName is the display name registered with the relay.
	DeviceName string
}

// ClientTransport holds network settings used by the client transport layer.
type ClientTransport struct {
	// APIURL is an explicit relay base URL override; empty means "use the
	// URL persisted during pairing".
	APIURL string
	// RequestTimeout is the default timeout for outbound relay requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains background cycle settings.
type ClientWorkers struct {
	// HeartbeatInterval defines how often the liveness probe runs.
	HeartbeatInterval time.Duration
	// SyncInterval defines how often push/pull cycles run.
	SyncInterval time.Duration
	// DebounceWindow defines the local edit coalescing window.
	DebounceWindow time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Transport contains relay address and timeout settings.
	Transport ClientTransport
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background cycle settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from
// the merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields
// relevant to the client runtime, applies the documented defaults for every
// unset cadence or timeout, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			DeviceName: cfg.App.DeviceName,
		},
		Transport: ClientTransport{
			APIURL:         cfg.Transport.APIURL,
			RequestTimeout: cfg.Transport.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{
			HeartbeatInterval: cfg.Workers.HeartbeatInterval,
			SyncInterval:      cfg.Workers.SyncInterval,
			DebounceWindow:    cfg.Workers.DebounceWindow,
		},
	}
	clientCfg.applyDefaults()

	if err = clientCfg.validate(); err != nil {
		return nil, fmt.Errorf("error validating client config: %w", err)
	}

	return clientCfg, nil
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.App.DeviceName == "" {
		cfg.App.DeviceName = DefaultDeviceName
	}
	if cfg.Transport.RequestTimeout <= 0 {
		cfg.Transport.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDBFileName
	}
	if cfg.Workers.HeartbeatInterval <= 0 {
		cfg.Workers.HeartbeatInterval = DefaultHeartbeatInterval
	}
	if cfg.Workers.SyncInterval <= 0 {
		cfg.Workers.SyncInterval = DefaultSyncInterval
	}
	if cfg.Workers.DebounceWindow <= 0 {
		cfg.Workers.DebounceWindow = DefaultDebounceWindow
	}
}
