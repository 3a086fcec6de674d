package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "data/flights.db", cfg.Store.Path)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("STORE_PATH", "/tmp/catalog.db")
	t.Setenv("CACHE_ENABLED", "true")
	t.Setenv("CACHE_ADDR", "redis:6379")
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "/tmp/catalog.db", cfg.Store.Path)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, "redis:6379", cfg.Cache.Addr)
	assert.True(t, cfg.IsProduction())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "port out of range", key: "SERVER_PORT", value: "70000"},
		{name: "zero port", key: "SERVER_PORT", value: "0"},
		{name: "bad log level", key: "LOG_LEVEL", value: "verbose"},
		{name: "bad log format", key: "LOG_FORMAT", value: "xml"},
		{name: "bad app env", key: "APP_ENV", value: "qa"},
		{name: "empty store path", key: "STORE_PATH", value: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_CacheValidation(t *testing.T) {
	t.Setenv("CACHE_ENABLED", "true")
	t.Setenv("CACHE_TTL", "0s")

	_, err := Load()
	assert.Error(t, err)
}
