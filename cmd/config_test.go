package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("SERVICE_PORT_HTTP", "8080")
	t.Setenv("REDIS_ADDR", "redis://localhost:6379")
	for _, name := range []string{"SERVICE_PORT_GRPC", "STORE_BACKEND", "BADGER_PATH", "SERVER_TTL", "SWEEP_INTERVAL", "STORE_TIMEOUT", "LOG_LEVEL"} {
		t.Setenv(name, "")
	}
}

func TestLoadConfig_Ok(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "redis://localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, 0, cfg.GRPCPort)
	assert.Equal(t, BackendRedis, cfg.StoreBackend)
	assert.Equal(t, 60*time.Second, cfg.ServerTTL)
	assert.Equal(t, time.Second, cfg.SweepInterval)
	assert.Equal(t, 2*time.Second, cfg.StoreTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfig_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SERVICE_PORT_HTTP", "9000")
	t.Setenv("SERVICE_PORT_GRPC", "9001")
	t.Setenv("STORE_BACKEND", "Badger")
	t.Setenv("BADGER_PATH", "/var/lib/serverbrowser")
	t.Setenv("SERVER_TTL", "90s")
	t.Setenv("SWEEP_INTERVAL", "500ms")
	t.Setenv("STORE_TIMEOUT", "1s")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.HTTPPort)
	assert.Equal(t, 9001, cfg.GRPCPort)
	assert.Equal(t, BackendBadger, cfg.StoreBackend)
	assert.Equal(t, "/var/lib/serverbrowser", cfg.BadgerPath)
	assert.Equal(t, 90*time.Second, cfg.ServerTTL)
	assert.Equal(t, 500*time.Millisecond, cfg.SweepInterval)
	assert.Equal(t, time.Second, cfg.StoreTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_MemoryBackendWithoutRedis(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("STORE_BACKEND", "memory")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, BackendMemory, cfg.StoreBackend)
	assert.Empty(t, cfg.Redis.Addr)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name          string
		env           map[string]string
		expectedError string
	}{
		{
			name:          "service port required",
			env:           map[string]string{"SERVICE_PORT_HTTP": ""},
			expectedError: "SERVICE_PORT_HTTP is required",
		},
		{
			name:          "invalid service port",
			env:           map[string]string{"SERVICE_PORT_HTTP": "not-a-number"},
			expectedError: "SERVICE_PORT_HTTP",
		},
		{
			name:          "invalid grpc port",
			env:           map[string]string{"SERVICE_PORT_GRPC": "grpc"},
			expectedError: "SERVICE_PORT_GRPC",
		},
		{
			name:          "redis addr required for redis backend",
			env:           map[string]string{"REDIS_ADDR": ""},
			expectedError: "REDIS_ADDR is required",
		},
		{
			name:          "unknown backend",
			env:           map[string]string{"STORE_BACKEND": "etcd"},
			expectedError: "STORE_BACKEND",
		},
		{
			name:          "invalid ttl",
			env:           map[string]string{"SERVER_TTL": "a minute"},
			expectedError: "SERVER_TTL",
		},
		{
			name:          "non-positive ttl",
			env:           map[string]string{"SERVER_TTL": "0s"},
			expectedError: "must be positive",
		},
		{
			name:          "sub-second ttl",
			env:           map[string]string{"SERVER_TTL": "500ms"},
			expectedError: "must be at least 1s",
		},
		{
			name:          "invalid sweep interval",
			env:           map[string]string{"SWEEP_INTERVAL": "-1s"},
			expectedError: "SWEEP_INTERVAL",
		},
		{
			name:          "invalid store timeout",
			env:           map[string]string{"STORE_TIMEOUT": "fast"},
			expectedError: "STORE_TIMEOUT",
		},
		{
			name:          "invalid log level",
			env:           map[string]string{"LOG_LEVEL": "verbose"},
			expectedError: "LOG_LEVEL",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := LoadConfig()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.expectedError)
		})
	}
}

func TestServerBrowserConfig_LevelFilter(t *testing.T) {
	for _, lvl := range []string{"debug", "info", "warn", "error", "unknown"} {
		cfg := &ServerBrowserConfig{LogLevel: lvl}
		assert.NotNil(t, cfg.LevelFilter(), lvl)
	}
}
