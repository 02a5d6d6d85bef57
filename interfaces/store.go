package interfaces

import (
	"context"
	"time"

	"serverbrowser/domain"
)

// ExpiringStore is a key-value store where every entry expires ttl after its last write.
// Values are opaque bytes; the store knows nothing about what they encode.
// Implementations must be safe for concurrent use without caller-side locking.
//
// Every method returns store_unavailable when the backend cannot serve the call.
// A failed call never degrades into an empty result.
//
//go:generate moq -stub -out mock/store.go -pkg mock . ExpiringStore
type ExpiringStore interface {
	// Set stores value under key, overwriting any existing value and resetting expiration to now+ttl.
	// Returns:
	// 1) nil on success;
	// 2) store_unavailable when the backend write fails.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Get returns the live value for key.
	// Returns:
	// 1) (Lookup{Found: true}, nil) when a live value exists;
	// 2) (Lookup{Found: false}, nil) when the key is absent or expired;
	// 3) (Lookup{}, store_unavailable) when the backend read fails.
	Get(ctx context.Context, key string) (domain.Lookup, error)

	// Keys returns all live keys starting with prefix, in no particular order.
	// Returns an empty slice when nothing matches; store_unavailable on backend failure.
	Keys(ctx context.Context, prefix string) ([]string, error)

	// MultiGet fetches keys in one round trip. The result has one Lookup per key, in order;
	// keys without a live value yield Found=false, not an error.
	MultiGet(ctx context.Context, keys []string) ([]domain.Lookup, error)

	// Delete removes key and reports whether a live entry was actually removed.
	Delete(ctx context.Context, key string) (bool, error)

	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error
}
