package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-api-url relay base URL override
//	-d local database path
//	-c/-config json file path with configs
//	-device-name device display name
//	-request-timeout relay request timeout (e.g., "30s", "1m")
//	-heartbeat-interval liveness probe interval (e.g., "60s")
//	-sync-interval push/pull cycle interval (e.g., "60s")
//	-debounce-window local edit coalescing window (e.g., "2s")
func ParseFlags() *StructuredConfig {
	var apiURL string
	var databaseDSN string
	var jsonConfigPath string
	var deviceName string
	var requestTimeout time.Duration
	var heartbeatInterval time.Duration
	var syncInterval time.Duration
	var debounceWindow time.Duration

	flag.StringVar(&apiURL, "api-url", "", "Relay base URL override")
	flag.StringVar(&databaseDSN, "d", "", "Local database path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&deviceName, "device-name", "", "Device display name")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&heartbeatInterval, "heartbeat-interval", 0, "Heartbeat interval (e.g., 60s)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Sync cycle interval (e.g., 60s)")
	flag.DurationVar(&debounceWindow, "debounce-window", 0, "Edit coalescing window (e.g., 2s)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			DeviceName: deviceName,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Transport: Transport{
			APIURL:         apiURL,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			HeartbeatInterval: heartbeatInterval,
			SyncInterval:      syncInterval,
			DebounceWindow:    debounceWindow,
		},
		JSONFilePath: jsonConfigPath,
	}
}
