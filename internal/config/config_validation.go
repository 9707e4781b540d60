package config

import (
	"strings"
	"time"
)

// Fallbacks used when no source supplies a value. The windows follow the
// engine's trigger policy: a minute-scale periodic re-evaluation and a
// minutes-scale cooldown after a transport failure.
const (
	defaultRequestTimeout = 15 * time.Second
	defaultSyncInterval   = time.Minute
	defaultSyncCooldown   = 5 * time.Minute
	defaultProbeInterval  = 30 * time.Second
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Sync.Interval == 0 {
		cfg.Sync.Interval = defaultSyncInterval
	}
	if cfg.Sync.Cooldown == 0 {
		cfg.Sync.Cooldown = defaultSyncCooldown
	}
	if cfg.Sync.ProbeInterval == 0 {
		cfg.Sync.ProbeInterval = defaultProbeInterval
	}
}

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants shared by both binaries. Role-specific requirements are checked
// by [ClientConfig.validate] and the server bootstrap respectively.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.Path == "" || strings.Contains(cfg.Storage.Path, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Sync.Interval == 0 || cfg.Sync.Cooldown == 0 {
		return ErrInvalidSyncConfigs
	}

	return nil
}
