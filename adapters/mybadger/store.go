// Package mybadger implements interfaces.ExpiringStore on top of BadgerDB.
//
// Entries are written with badger's own TTL, which has second granularity; badger hides
// expired entries from Get and from iterators, and reclaims them during compaction.
package mybadger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"serverbrowser/domain"
	"serverbrowser/service"

	"github.com/dgraph-io/badger/v4"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// conflictRetries bounds how often a read-modify-write transaction is retried on ErrConflict.
const conflictRetries = 3

// Config holds BadgerDB settings.
type Config struct {
	// Path is the data directory. Empty means in-memory.
	Path string
	// GCDiscardRatio is passed to RunValueLogGC.
	GCDiscardRatio float64
}

type badgerStore struct {
	db       *badger.DB
	inMemory bool
	ratio    float64
	logger   log.Logger
}

// Open opens (or creates) a BadgerDB and wraps it as an expiring store.
func Open(cfg Config, logger log.Logger) (*badgerStore, error) {
	logger = log.WithPrefix(logger, "component", "BadgerStore")

	opts := badger.DefaultOptions(cfg.Path).
		WithLogger(&badgerLogger{logger: logger}).
		WithInMemory(cfg.Path == "")

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("can't open badger at '%s': %w", cfg.Path, err)
	}

	ratio := cfg.GCDiscardRatio
	if ratio <= 0 || ratio >= 1 {
		ratio = 0.5
	}

	return &badgerStore{
		db:       db,
		inMemory: cfg.Path == "",
		ratio:    ratio,
		logger:   logger,
	}, nil
}

func (b *badgerStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return service.NewBadParameterError("ttl must be positive", fmt.Errorf("got ttl %s for key '%s'", ttl, key))
	}
	if err := ctx.Err(); err != nil {
		return service.NewStoreUnavailableError("Badger write key error", err)
	}

	e := badger.NewEntry([]byte(key), value)
	e.ExpiresAt = expiresAt(time.Now(), ttl)
	err := b.db.Update(func(txn *badger.Txn) error {
		return txn.SetEntry(e)
	})
	if err != nil {
		return service.NewStoreUnavailableError("Badger write key error", fmt.Errorf("can't write key '%s' to badger, err: %w", key, err))
	}
	return nil
}

// expiresAt converts now+ttl to badger's whole-second ExpiresAt, rounding up
// so an entry is never dropped before its ttl has elapsed.
func expiresAt(now time.Time, ttl time.Duration) uint64 {
	exp := now.Add(ttl)
	secs := exp.Unix()
	if exp.Nanosecond() > 0 {
		secs++
	}
	return uint64(secs)
}

func (b *badgerStore) Get(ctx context.Context, key string) (domain.Lookup, error) {
	if err := ctx.Err(); err != nil {
		return domain.Lookup{}, service.NewStoreUnavailableError("Badger read key error", err)
	}

	var out domain.Lookup
	err := b.db.View(func(txn *badger.Txn) error {
		var err error
		out, err = get(txn, key)
		return err
	})
	if err != nil {
		return domain.Lookup{}, service.NewStoreUnavailableError("Badger read key error", fmt.Errorf("can't read key '%s' from badger, err: %w", key, err))
	}
	return out, nil
}

func (b *badgerStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, service.NewStoreUnavailableError("Badger get keys error", err)
	}

	keys := make([]string, 0)
	err := b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(prefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			keys = append(keys, string(it.Item().KeyCopy(nil)))
		}
		return nil
	})
	if err != nil {
		return nil, service.NewStoreUnavailableError("Badger get keys error", fmt.Errorf("badger iterate prefix '%s' error, err: %w", prefix, err))
	}
	return keys, nil
}

// MultiGet reads every key inside one read transaction, so the values come from a single snapshot.
func (b *badgerStore) MultiGet(ctx context.Context, keys []string) ([]domain.Lookup, error) {
	if err := ctx.Err(); err != nil {
		return nil, service.NewStoreUnavailableError("Badger multi get error", err)
	}

	out := make([]domain.Lookup, len(keys))
	err := b.db.View(func(txn *badger.Txn) error {
		for i, k := range keys {
			l, err := get(txn, k)
			if err != nil {
				return err
			}
			out[i] = l
		}
		return nil
	})
	if err != nil {
		return nil, service.NewStoreUnavailableError("Badger multi get error", fmt.Errorf("badger get of %d keys error, err: %w", len(keys), err))
	}
	return out, nil
}

func (b *badgerStore) Delete(ctx context.Context, key string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, service.NewStoreUnavailableError("Badger delete key error", err)
	}

	var removed bool
	var err error
	for attempt := 0; attempt < conflictRetries; attempt++ {
		err = b.db.Update(func(txn *badger.Txn) error {
			removed = false
			_, err := txn.Get([]byte(key))
			if errors.Is(err, badger.ErrKeyNotFound) {
				return nil
			}
			if err != nil {
				return err
			}
			removed = true
			return txn.Delete([]byte(key))
		})
		if !errors.Is(err, badger.ErrConflict) {
			break
		}
	}
	if err != nil {
		return false, service.NewStoreUnavailableError("Badger delete key error", fmt.Errorf("can't delete key '%s' from badger, err: %w", key, err))
	}
	return removed, nil
}

func (b *badgerStore) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return service.NewStoreUnavailableError("Badger ping error", err)
	}
	if b.db.IsClosed() {
		return service.NewStoreUnavailableError("Badger ping error", badger.ErrDBClosed)
	}
	return nil
}

// RunGC runs value-log garbage collection every interval until ctx is done.
// It is a no-op loop for in-memory databases, which have no value log.
func (b *badgerStore) RunGC(ctx context.Context, interval time.Duration) error {
	if b.inMemory {
		<-ctx.Done()
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			b.runGC()
		}
	}
}

func (b *badgerStore) runGC() {
	rounds := 0
	for {
		err := b.db.RunValueLogGC(b.ratio)
		if err != nil {
			if !errors.Is(err, badger.ErrNoRewrite) {
				level.Warn(b.logger).Log("msg", "Value log GC failed", "err", err)
			}
			break
		}
		rounds++
	}
	if rounds > 0 {
		level.Debug(b.logger).Log("msg", "Value log GC rewrote files", "rounds", rounds)
	}
}

func (b *badgerStore) Close() error {
	return b.db.Close()
}

func get(txn *badger.Txn, key string) (domain.Lookup, error) {
	item, err := txn.Get([]byte(key))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return domain.Miss(), nil
	}
	if err != nil {
		return domain.Lookup{}, err
	}
	value, err := item.ValueCopy(nil)
	if err != nil {
		return domain.Lookup{}, err
	}
	return domain.Hit(value), nil
}

// badgerLogger adapts go-kit log to badger.Logger.
type badgerLogger struct {
	logger log.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	level.Error(l.logger).Log("msg", fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	level.Warn(l.logger).Log("msg", fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	level.Debug(l.logger).Log("msg", fmt.Sprintf(format, args...))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	level.Debug(l.logger).Log("msg", fmt.Sprintf(format, args...))
}
