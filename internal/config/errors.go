package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing server URL or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid local storage settings:
	// the queue must live in a file so it survives process restarts, so an
	// empty or in-memory path is refused.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidSyncConfigs indicates invalid trigger-policy settings
	// (for example, zero sync interval or cooldown).
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
)
