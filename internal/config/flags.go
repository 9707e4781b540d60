package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN (server record store)
//	-local-db local SQLite database file path (device agent)
//	-server-url sync server base URL (device agent)
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-sync-interval periodic sync trigger interval
//	-sync-cooldown hold-off window after a transport failure
//	-probe-interval connectivity probe interval
func ParseFlags() *StructuredConfig {
	var serverAddress string
	var databaseDSN string
	var localDBPath string
	var serverURL string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var syncInterval time.Duration
	var syncCooldown time.Duration
	var probeInterval time.Duration
	var appVersion string

	flag.StringVar(&serverAddress, "a", "", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&localDBPath, "local-db", "", "Local SQLite database file path")
	flag.StringVar(&serverURL, "server-url", "", "Sync server base URL")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Periodic sync trigger interval")
	flag.DurationVar(&syncCooldown, "sync-cooldown", 0, "Cooldown after transport failure")
	flag.DurationVar(&probeInterval, "probe-interval", 0, "Connectivity probe interval")
	flag.StringVar(&appVersion, "version", "", "Application version string")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Version: appVersion,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Local: LocalDB{
				Path: localDBPath,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			BaseURL:        serverURL,
			RequestTimeout: requestTimeout,
		},
		Sync: Sync{
			Interval:      syncInterval,
			Cooldown:      syncCooldown,
			ProbeInterval: probeInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
