package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"serverbrowser/adapters/myredis"
	"serverbrowser/repository"

	"github.com/go-kit/log/level"
)

// Store backends selected by STORE_BACKEND.
const (
	BackendRedis  = "redis"
	BackendMemory = "memory"
	BackendBadger = "badger"
)

type ServerBrowserConfig struct {
	Redis         myredis.RedisConfig
	HTTPPort      int
	GRPCPort      int
	StoreBackend  string
	BadgerPath    string
	ServerTTL     time.Duration
	SweepInterval time.Duration
	StoreTimeout  time.Duration
	LogLevel      string
}

// LoadConfig loads configuration from environment variables.
// SERVICE_PORT_HTTP is required; REDIS_ADDR is required for the redis backend.
func LoadConfig() (*ServerBrowserConfig, error) {
	config := &ServerBrowserConfig{
		StoreBackend:  BackendRedis,
		ServerTTL:     repository.DefaultTTL,
		SweepInterval: time.Second,
		StoreTimeout:  2 * time.Second,
		LogLevel:      "info",
	}

	httpPortStr := os.Getenv("SERVICE_PORT_HTTP")
	if httpPortStr == "" {
		return nil, fmt.Errorf("SERVICE_PORT_HTTP is required")
	}
	httpPort, err := strconv.Atoi(httpPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVICE_PORT_HTTP: %w", err)
	}
	config.HTTPPort = httpPort

	if v := os.Getenv("SERVICE_PORT_GRPC"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SERVICE_PORT_GRPC: %w", err)
		}
		config.GRPCPort = port
	}

	if v := os.Getenv("STORE_BACKEND"); v != "" {
		config.StoreBackend = strings.ToLower(v)
	}
	switch config.StoreBackend {
	case BackendRedis:
		redisAddr := os.Getenv("REDIS_ADDR")
		if redisAddr == "" {
			return nil, fmt.Errorf("REDIS_ADDR is required")
		}
		config.Redis.Addr = redisAddr
	case BackendMemory, BackendBadger:
		config.Redis.Addr = os.Getenv("REDIS_ADDR")
	default:
		return nil, fmt.Errorf("invalid STORE_BACKEND %q: must be one of %s, %s, %s", config.StoreBackend, BackendRedis, BackendMemory, BackendBadger)
	}

	config.BadgerPath = os.Getenv("BADGER_PATH")

	if config.ServerTTL, err = durationEnv("SERVER_TTL", config.ServerTTL); err != nil {
		return nil, err
	}
	if config.ServerTTL < time.Second {
		return nil, fmt.Errorf("invalid SERVER_TTL: must be at least 1s, got %s", config.ServerTTL)
	}
	if config.SweepInterval, err = durationEnv("SWEEP_INTERVAL", config.SweepInterval); err != nil {
		return nil, err
	}
	if config.StoreTimeout, err = durationEnv("STORE_TIMEOUT", config.StoreTimeout); err != nil {
		return nil, err
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		config.LogLevel = strings.ToLower(v)
	}
	if _, ok := levelFilters[config.LogLevel]; !ok {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: must be one of debug, info, warn, error", config.LogLevel)
	}

	return config, nil
}

var levelFilters = map[string]func() level.Option{
	"debug": level.AllowDebug,
	"info":  level.AllowInfo,
	"warn":  level.AllowWarn,
	"error": level.AllowError,
}

// LevelFilter returns the go-kit level filter for LogLevel.
func (c *ServerBrowserConfig) LevelFilter() level.Option {
	if f, ok := levelFilters[c.LogLevel]; ok {
		return f()
	}
	return level.AllowInfo()
}

// durationEnv reads a positive Go duration from name, or returns def when unset.
func durationEnv(name string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(name)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive, got %s", name, d)
	}
	return d, nil
}
