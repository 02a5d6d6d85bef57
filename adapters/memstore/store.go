// Package memstore is an in-process implementation of interfaces.ExpiringStore.
//
// Expired entries are hidden on every read and reclaimed by a background sweep (Run).
// The sweep only frees memory; correctness never depends on it having run.
package memstore

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"serverbrowser/domain"
	"serverbrowser/service"

	"github.com/benbjohnson/clock"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

type entry struct {
	value     []byte
	expiresAt time.Time
}

func (e entry) expired(now time.Time) bool {
	return !now.Before(e.expiresAt)
}

// Store keeps entries in a map guarded by a RWMutex.
// The value and expiry of a key are always replaced together under the write lock.
type Store struct {
	mu      sync.RWMutex
	data    map[string]entry
	clock   clock.Clock
	logger  log.Logger
	swept   func(n int)
	closeMu sync.Mutex
	closed  bool
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces the wall clock, e.g. with clock.NewMock() in tests.
func WithClock(c clock.Clock) Option {
	return func(s *Store) {
		s.clock = c
	}
}

// WithLogger sets the logger used by the sweep loop.
func WithLogger(logger log.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithSweepHook is called after every sweep with the number of reclaimed entries.
func WithSweepHook(fn func(n int)) Option {
	return func(s *Store) {
		s.swept = fn
	}
}

// New creates an empty Store.
func New(options ...Option) *Store {
	s := &Store{
		data:   make(map[string]entry),
		clock:  clock.New(),
		logger: log.NewNopLogger(),
		swept:  func(int) {},
	}
	for _, opt := range options {
		opt(s)
	}
	s.logger = log.WithPrefix(s.logger, "component", "MemStore")
	return s
}

func (s *Store) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return service.NewBadParameterError("ttl must be positive", fmt.Errorf("got ttl %s for key '%s'", ttl, key))
	}
	if err := s.check(ctx); err != nil {
		return err
	}

	stored := make([]byte, len(value))
	copy(stored, value)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = entry{value: stored, expiresAt: s.clock.Now().Add(ttl)}
	return nil
}

func (s *Store) Get(ctx context.Context, key string) (domain.Lookup, error) {
	if err := s.check(ctx); err != nil {
		return domain.Lookup{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lookup(key, s.clock.Now()), nil
}

func (s *Store) Keys(ctx context.Context, prefix string) ([]string, error) {
	if err := s.check(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.clock.Now()
	keys := make([]string, 0)
	for k, e := range s.data {
		if strings.HasPrefix(k, prefix) && !e.expired(now) {
			keys = append(keys, k)
		}
	}
	return keys, nil
}

func (s *Store) MultiGet(ctx context.Context, keys []string) ([]domain.Lookup, error) {
	if err := s.check(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.clock.Now()
	out := make([]domain.Lookup, len(keys))
	for i, k := range keys {
		out[i] = s.lookup(k, now)
	}
	return out, nil
}

func (s *Store) Delete(ctx context.Context, key string) (bool, error) {
	if err := s.check(ctx); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[key]
	if !ok {
		return false, nil
	}
	delete(s.data, key)
	return !e.expired(s.clock.Now()), nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.check(ctx)
}

// Len returns the number of physically held entries, expired or not.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// Sweep removes every expired entry and returns how many were removed.
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	n := 0
	for k, e := range s.data {
		if e.expired(now) {
			delete(s.data, k)
			n++
		}
	}
	return n
}

// Run sweeps every interval until ctx is done. It blocks.
func (s *Store) Run(ctx context.Context, interval time.Duration) error {
	ticker := s.clock.Ticker(interval)
	defer ticker.Stop()

	level.Info(s.logger).Log("msg", "Sweeper started", "interval", interval)
	for {
		select {
		case <-ctx.Done():
			level.Info(s.logger).Log("msg", "Sweeper stopped")
			return nil
		case <-ticker.C:
			n := s.Sweep()
			s.swept(n)
			if n > 0 {
				level.Debug(s.logger).Log("msg", "Swept expired entries", "count", n)
			}
		}
	}
}

// Close makes every further call fail with store_unavailable.
func (s *Store) Close() error {
	s.closeMu.Lock()
	defer s.closeMu.Unlock()
	s.closed = true
	return nil
}

func (s *Store) lookup(key string, now time.Time) domain.Lookup {
	e, ok := s.data[key]
	if !ok || e.expired(now) {
		return domain.Miss()
	}
	value := make([]byte, len(e.value))
	copy(value, e.value)
	return domain.Hit(value)
}

// check fails the call when ctx is already done or the store is closed.
func (s *Store) check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return service.NewStoreUnavailableError("Memory store call cancelled", err)
	}
	s.closeMu.Lock()
	defer s.closeMu.Unlock()
	if s.closed {
		return service.NewStoreUnavailableError("Memory store is closed", nil)
	}
	return nil
}
