package main

import (
	"context"
	"fmt"
	"time"

	"serverbrowser/adapters/memstore"
	"serverbrowser/adapters/mybadger"
	"serverbrowser/adapters/myredis"
	"serverbrowser/interfaces"
	"serverbrowser/metrics"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// badgerGCInterval is how often the badger value log is compacted.
const badgerGCInterval = 5 * time.Minute

// storeBackend is the ExpiringStore picked by STORE_BACKEND together with its background loop.
type storeBackend struct {
	store interfaces.ExpiringStore
	// run blocks until ctx is done. Nil when the backend has no background work.
	run   func(ctx context.Context) error
	close func() error
}

// openStore creates the configured store and checks that it answers.
func openStore(ctx context.Context, config *ServerBrowserConfig, m *metrics.Metrics, logger log.Logger) (*storeBackend, error) {
	var backend *storeBackend
	switch config.StoreBackend {
	case BackendRedis:
		redisClient, err := myredis.NewRedisUniversalClient(
			config.Redis.Addr,
			myredis.WithTimeout(config.StoreTimeout),
			myredis.WithMaxRetries(1),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create Redis client: %w", err)
		}
		backend = &storeBackend{
			store: myredis.NewStore(redisClient),
			close: redisClient.Close,
		}
	case BackendMemory:
		store := memstore.New(
			memstore.WithLogger(logger),
			memstore.WithSweepHook(m.Swept),
		)
		backend = &storeBackend{
			store: store,
			run: func(ctx context.Context) error {
				return store.Run(ctx, config.SweepInterval)
			},
			close: store.Close,
		}
	case BackendBadger:
		store, err := mybadger.Open(mybadger.Config{Path: config.BadgerPath, GCDiscardRatio: 0.5}, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to open badger: %w", err)
		}
		backend = &storeBackend{
			store: store,
			run: func(ctx context.Context) error {
				return store.RunGC(ctx, badgerGCInterval)
			},
			close: store.Close,
		}
	default:
		return nil, fmt.Errorf("unknown store backend %q", config.StoreBackend)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := backend.store.Ping(pingCtx); err != nil {
		_ = backend.close()
		return nil, fmt.Errorf("failed to connect to %s store: %w", config.StoreBackend, err)
	}
	level.Info(logger).Log("msg", "Store connected", "backend", config.StoreBackend)

	return backend, nil
}
