// Package repository translates server records to expiring store entries.
package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"serverbrowser/domain"
	"serverbrowser/interfaces"
	"serverbrowser/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

const (
	// KeyPrefix namespaces every server entry: server:<ip>:<port>.
	KeyPrefix = "server:"
	// DefaultTTL bounds how stale a listed server can be.
	DefaultTTL = 60 * time.Second
)

// ServerRepository owns the key scheme and the TTL of server entries.
type ServerRepository struct {
	store  interfaces.ExpiringStore
	prefix string
	ttl    time.Duration
	logger log.Logger
}

// Option configures a ServerRepository.
type Option func(*ServerRepository)

// WithTTL overrides DefaultTTL.
func WithTTL(ttl time.Duration) Option {
	return func(r *ServerRepository) {
		r.ttl = ttl
	}
}

// WithKeyPrefix overrides KeyPrefix.
func WithKeyPrefix(prefix string) Option {
	return func(r *ServerRepository) {
		r.prefix = prefix
	}
}

// NewServerRepository creates a ServerRepository. Panics on nil store, empty prefix or non-positive ttl.
func NewServerRepository(store interfaces.ExpiringStore, logger log.Logger, options ...Option) *ServerRepository {
	if store == nil {
		panic("repository.servers.go: store is required")
	}
	r := &ServerRepository{
		store:  store,
		prefix: KeyPrefix,
		ttl:    DefaultTTL,
		logger: log.WithPrefix(logger, "component", "ServerRepository"),
	}
	for _, opt := range options {
		opt(r)
	}
	if r.prefix == "" {
		panic("repository.servers.go: key prefix is required")
	}
	if r.ttl <= 0 {
		panic("repository.servers.go: ttl must be positive")
	}
	return r
}

// Key returns the store key for id: prefix + ip + ":" + port.
func (r *ServerRepository) Key(id domain.ServerID) string {
	return r.prefix + id.IP + ":" + strconv.Itoa(id.Port)
}

// TTL returns the lifetime given to every saved entry.
func (r *ServerRepository) TTL() time.Duration {
	return r.ttl
}

// FindAll scans the prefix and fetches the values in one round trip.
// A key may expire between the scan and the fetch; such positions are skipped.
// Values that can't be decoded are skipped and logged.
func (r *ServerRepository) FindAll(ctx context.Context) ([]domain.ServerInfo, error) {
	keys, err := r.store.Keys(ctx, r.prefix)
	if err != nil {
		return nil, fmt.Errorf("findAll failed to list keys, err: %w", err)
	}

	servers := make([]domain.ServerInfo, 0, len(keys))
	if len(keys) == 0 {
		return servers, nil
	}

	values, err := r.store.MultiGet(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("findAll failed to fetch %d values, err: %w", len(keys), err)
	}

	for i, v := range values {
		if !v.Found {
			continue
		}
		var s domain.ServerInfo
		if err := json.Unmarshal(v.Value, &s); err != nil {
			level.Warn(r.logger).Log("msg", "Skipping undecodable server entry", "key", keys[i], "err", err)
			continue
		}
		servers = append(servers, s)
	}

	return servers, nil
}

// Save writes the record under its identity key, overwriting any prior entry and resetting the TTL.
func (r *ServerRepository) Save(ctx context.Context, server domain.ServerInfo) error {
	if err := server.Validate(); err != nil {
		return err
	}

	bytes, err := json.Marshal(server)
	if err != nil {
		return service.NewInternalServerError("Server marshal error", fmt.Errorf("can't marshal server %s, err: %w", server.ID(), err))
	}

	if err := r.store.Set(ctx, r.Key(server.ID()), bytes, r.ttl); err != nil {
		return fmt.Errorf("save failed to write server %s, err: %w", server.ID(), err)
	}
	return nil
}

// Remove deletes the entry for id and reports whether a live one existed.
func (r *ServerRepository) Remove(ctx context.Context, id domain.ServerID) (bool, error) {
	removed, err := r.store.Delete(ctx, r.Key(id))
	if err != nil {
		return false, fmt.Errorf("remove failed to delete server %s, err: %w", id, err)
	}
	return removed, nil
}
