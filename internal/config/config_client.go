package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the device's transport layer.
type ClientAdapter struct {
	// BaseURL is the sync server base address.
	BaseURL string
	// RequestTimeout is the timeout for the sync round trip.
	RequestTimeout time.Duration
}

// ClientStorage holds local durable store settings for the device.
type ClientStorage struct {
	// Path is the SQLite database file path.
	Path string
}

// ClientSync holds the device's trigger-policy settings.
type ClientSync struct {
	// Interval is the periodic sync trigger interval.
	Interval time.Duration
	// Cooldown is the hold-off window after a transport failure.
	Cooldown time.Duration
	// ProbeInterval is the connectivity probe interval.
	ProbeInterval time.Duration
}

// ClientConfig is the device-agent configuration view assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains transport address and timeout.
	Adapter ClientAdapter
	// Storage contains local store settings.
	Storage ClientStorage
	// Sync contains trigger-policy settings.
	Sync ClientSync
}

// GetClientConfig builds and validates a client-specific config view from
// the merged structured configuration. It loads the base config via
// [GetStructuredConfig], maps only the fields relevant to the device agent,
// and validates the result.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			Path: cfg.Storage.Local.Path,
		},
		Sync: ClientSync{
			Interval:      cfg.Sync.Interval,
			Cooldown:      cfg.Sync.Cooldown,
			ProbeInterval: cfg.Sync.ProbeInterval,
		},
	}

	return clientCfg, clientCfg.validate()
}
