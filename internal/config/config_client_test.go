package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientConfig_ApplyDefaults_AllUnset(t *testing.T) {
	cfg := &ClientConfig{}

	cfg.applyDefaults()

	assert.Equal(t, DefaultDeviceName, cfg.App.DeviceName)
	assert.Equal(t, DefaultRequestTimeout, cfg.Transport.RequestTimeout)
	assert.Equal(t, DefaultDBFileName, cfg.Storage.DB.DSN)
	assert.Equal(t, DefaultHeartbeatInterval, cfg.Workers.HeartbeatInterval)
	assert.Equal(t, DefaultSyncInterval, cfg.Workers.SyncInterval)
	assert.Equal(t, DefaultDebounceWindow, cfg.Workers.DebounceWindow)
}

func TestClientConfig_ApplyDefaults_PreservesExplicitValues(t *testing.T) {
	cfg := &ClientConfig{
		App:       ClientApp{DeviceName: "laptop"},
		Transport: ClientTransport{APIURL: "https://relay.local", RequestTimeout: 10 * time.Second},
		Storage:   ClientStorage{DB: ClientDB{DSN: "/tmp/x.db"}},
		Workers: ClientWorkers{
			HeartbeatInterval: 15 * time.Second,
			SyncInterval:      20 * time.Second,
			DebounceWindow:    time.Second,
		},
	}

	cfg.applyDefaults()

	assert.Equal(t, "laptop", cfg.App.DeviceName)
	assert.Equal(t, 10*time.Second, cfg.Transport.RequestTimeout)
	assert.Equal(t, "/tmp/x.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 15*time.Second, cfg.Workers.HeartbeatInterval)
	assert.Equal(t, 20*time.Second, cfg.Workers.SyncInterval)
	assert.Equal(t, time.Second, cfg.Workers.DebounceWindow)
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *ClientConfig)
		wantErr error
	}{
		{
			name:   "valid after defaults",
			mutate: func(cfg *ClientConfig) {},
		},
		{
			name:    "empty dsn",
			mutate:  func(cfg *ClientConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "zero timeout",
			mutate:  func(cfg *ClientConfig) { cfg.Transport.RequestTimeout = 0 },
			wantErr: ErrInvalidTransportConfigs,
		},
		{
			name:    "zero heartbeat interval",
			mutate:  func(cfg *ClientConfig) { cfg.Workers.HeartbeatInterval = 0 },
			wantErr: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &ClientConfig{}
			cfg.applyDefaults()
			tt.mutate(cfg)

			err := cfg.validate()

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
