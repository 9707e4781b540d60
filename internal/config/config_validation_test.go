package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &StructuredConfig{}

	cfg.applyDefaults()

	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, time.Minute, cfg.Sync.Interval)
	assert.Equal(t, 5*time.Minute, cfg.Sync.Cooldown)
	assert.Equal(t, 30*time.Second, cfg.Sync.ProbeInterval)
}

func TestApplyDefaults_DoesNotOverride(t *testing.T) {
	cfg := &StructuredConfig{
		Sync: Sync{
			Interval: 10 * time.Second,
			Cooldown: time.Minute,
		},
	}

	cfg.applyDefaults()

	assert.Equal(t, 10*time.Second, cfg.Sync.Interval)
	assert.Equal(t, time.Minute, cfg.Sync.Cooldown)
}

func validClientConfig() *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			BaseURL:        "http://localhost:8080",
			RequestTimeout: 15 * time.Second,
		},
		Storage: ClientStorage{
			Path: "/var/lib/vitalog/local.db",
		},
		Sync: ClientSync{
			Interval:      time.Minute,
			Cooldown:      5 * time.Minute,
			ProbeInterval: 30 * time.Second,
		},
	}
}

func TestClientConfigValidate(t *testing.T) {
	require.NoError(t, validClientConfig().validate())
}

func TestClientConfigValidate_Storage(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "empty path", path: ""},
		{name: "in-memory path", path: "file::memory:?cache=shared"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			cfg.Storage.Path = tt.path

			assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
		})
	}
}

func TestClientConfigValidate_Adapter(t *testing.T) {
	cfg := validClientConfig()
	cfg.Adapter.BaseURL = ""

	assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)
}

func TestClientConfigValidate_Sync(t *testing.T) {
	cfg := validClientConfig()
	cfg.Sync.Cooldown = 0

	assert.ErrorIs(t, cfg.validate(), ErrInvalidSyncConfigs)
}
