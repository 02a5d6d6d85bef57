package myredis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"serverbrowser/domain"
	"serverbrowser/service"

	"github.com/go-redis/redis/v8"
)

// scanCount is the COUNT hint passed to SCAN.
const scanCount = 100

type redisStore struct {
	client redis.UniversalClient
}

// NewStore creates redis implementation of interfaces.ExpiringStore.
// Expiry is delegated to redis itself: SET with EX/PX, and redis never returns expired keys.
func NewStore(client redis.UniversalClient) *redisStore {
	return &redisStore{
		client: client,
	}
}

func (r *redisStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return service.NewBadParameterError("ttl must be positive", fmt.Errorf("got ttl %s for key '%s'", ttl, key))
	}

	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		return service.NewStoreUnavailableError("Redis write key error", fmt.Errorf("can't write key '%s' to redis, err: %w", key, err))
	}

	return nil
}

func (r *redisStore) Get(ctx context.Context, key string) (domain.Lookup, error) {
	bytes, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Miss(), nil
	}
	if err != nil {
		return domain.Lookup{}, service.NewStoreUnavailableError("Redis read key error", fmt.Errorf("can't read key '%s' from redis, err: %w", key, err))
	}

	return domain.Hit(bytes), nil
}

// Keys walks the keyspace with SCAN rather than KEYS so a large registry does not block redis.
// SCAN may report a key more than once; duplicates are dropped.
func (r *redisStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	match := escapeGlob(prefix) + "*"
	seen := make(map[string]struct{})
	keys := make([]string, 0)

	var cursor uint64
	for {
		batch, next, err := r.client.Scan(ctx, cursor, match, scanCount).Result()
		if err != nil {
			return nil, service.NewStoreUnavailableError("Redis get keys error", fmt.Errorf("redis scan '%s' error, err: %w", match, err))
		}
		for _, k := range batch {
			if !strings.HasPrefix(k, prefix) {
				continue
			}
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}

	return keys, nil
}

func (r *redisStore) MultiGet(ctx context.Context, keys []string) ([]domain.Lookup, error) {
	if len(keys) == 0 {
		return []domain.Lookup{}, nil
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, service.NewStoreUnavailableError("Redis multi get error", fmt.Errorf("redis mget of %d keys error, err: %w", len(keys), err))
	}

	out := make([]domain.Lookup, len(keys))
	for i, v := range values {
		switch s := v.(type) {
		case string:
			out[i] = domain.Hit([]byte(s))
		case []byte:
			out[i] = domain.Hit(s)
		default:
			out[i] = domain.Miss()
		}
	}

	return out, nil
}

func (r *redisStore) Delete(ctx context.Context, key string) (bool, error) {
	n, err := r.client.Del(ctx, key).Result()
	if err != nil {
		return false, service.NewStoreUnavailableError("Redis delete key error", fmt.Errorf("can't delete key '%s' from redis, err: %w", key, err))
	}
	return n > 0, nil
}

func (r *redisStore) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return service.NewStoreUnavailableError("Redis ping error", err)
	}
	return nil
}

// escapeGlob quotes the characters redis MATCH treats as pattern syntax.
func escapeGlob(s string) string {
	var b strings.Builder
	for _, c := range s {
		switch c {
		case '*', '?', '[', ']', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(c)
	}
	return b.String()
}
