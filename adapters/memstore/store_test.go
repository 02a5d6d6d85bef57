package memstore

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"serverbrowser/domain"
	"serverbrowser/service"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() (*Store, *clock.Mock) {
	mock := clock.NewMock()
	return New(WithClock(mock)), mock
}

func TestStore_SetGet(t *testing.T) {
	ctx := context.Background()

	t.Run("live value is returned", func(t *testing.T) {
		s, _ := newTestStore()
		require.NoError(t, s.Set(ctx, "server:a:1", []byte("a"), time.Minute))

		got, err := s.Get(ctx, "server:a:1")
		require.NoError(t, err)
		assert.Equal(t, domain.Hit([]byte("a")), got)
	})

	t.Run("value expires exactly at ttl", func(t *testing.T) {
		s, mock := newTestStore()
		require.NoError(t, s.Set(ctx, "server:a:1", []byte("a"), time.Minute))

		mock.Add(time.Minute - time.Nanosecond)
		got, err := s.Get(ctx, "server:a:1")
		require.NoError(t, err)
		assert.True(t, got.Found)

		mock.Add(time.Nanosecond)
		got, err = s.Get(ctx, "server:a:1")
		require.NoError(t, err)
		assert.False(t, got.Found)
		assert.Equal(t, 1, s.Len(), "expired entry is hidden before it is reclaimed")
	})

	t.Run("overwrite replaces value and resets ttl", func(t *testing.T) {
		s, mock := newTestStore()
		require.NoError(t, s.Set(ctx, "k", []byte("v1"), time.Minute))
		mock.Add(40 * time.Second)
		require.NoError(t, s.Set(ctx, "k", []byte("v2"), time.Minute))
		mock.Add(40 * time.Second)

		got, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, domain.Hit([]byte("v2")), got)
	})

	t.Run("stored value is a copy", func(t *testing.T) {
		s, _ := newTestStore()
		value := []byte("abc")
		require.NoError(t, s.Set(ctx, "k", value, time.Minute))
		value[0] = 'x'

		got, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "abc", string(got.Value))

		got.Value[0] = 'y'
		again, err := s.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "abc", string(again.Value))
	})

	t.Run("non-positive ttl is rejected", func(t *testing.T) {
		s, _ := newTestStore()
		err := s.Set(ctx, "k", []byte("v"), -time.Second)
		require.Error(t, err)
		assert.True(t, service.IsBadParameterError(err))
	})
}

func TestStore_KeysAndMultiGet(t *testing.T) {
	ctx := context.Background()
	s, mock := newTestStore()
	require.NoError(t, s.Set(ctx, "server:a:1", []byte("a"), time.Minute))
	require.NoError(t, s.Set(ctx, "server:b:2", []byte("b"), 10*time.Second))
	require.NoError(t, s.Set(ctx, "user:1", []byte("u"), time.Minute))

	keys, err := s.Keys(ctx, "server:")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"server:a:1", "server:b:2"}, keys)

	mock.Add(10 * time.Second)

	keys, err = s.Keys(ctx, "server:")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"server:a:1"}, keys)

	values, err := s.MultiGet(ctx, []string{"server:a:1", "server:b:2", "missing"})
	require.NoError(t, err)
	assert.Equal(t, []domain.Lookup{domain.Hit([]byte("a")), domain.Miss(), domain.Miss()}, values)

	empty, err := s.Keys(ctx, "nothing:")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	s, mock := newTestStore()

	require.NoError(t, s.Set(ctx, "live", []byte("v"), time.Minute))
	require.NoError(t, s.Set(ctx, "stale", []byte("v"), time.Second))
	mock.Add(time.Second)

	tests := []struct {
		name    string
		key     string
		removed bool
	}{
		{name: "live entry", key: "live", removed: true},
		{name: "already removed", key: "live", removed: false},
		{name: "expired but not reclaimed", key: "stale", removed: false},
		{name: "never written", key: "missing", removed: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			removed, err := s.Delete(ctx, tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.removed, removed)
		})
	}
	assert.Equal(t, 0, s.Len())
}

func TestStore_Sweep(t *testing.T) {
	ctx := context.Background()
	s, mock := newTestStore()
	require.NoError(t, s.Set(ctx, "a", []byte("a"), time.Second))
	require.NoError(t, s.Set(ctx, "b", []byte("b"), time.Minute))

	assert.Equal(t, 0, s.Sweep())
	mock.Add(time.Second)
	assert.Equal(t, 1, s.Sweep())
	assert.Equal(t, 1, s.Len())
}

func TestStore_Run(t *testing.T) {
	mock := clock.NewMock()
	var mu sync.Mutex
	total := 0
	s := New(WithClock(mock), WithSweepHook(func(n int) {
		mu.Lock()
		total += n
		mu.Unlock()
	}))
	require.NoError(t, s.Set(context.Background(), "a", []byte("a"), time.Second))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, time.Second) }()

	require.Eventually(t, func() bool {
		mock.Add(time.Second)
		return s.Len() == 0
	}, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, total)
}

func TestStore_Unavailable(t *testing.T) {
	t.Run("closed", func(t *testing.T) {
		s, _ := newTestStore()
		require.NoError(t, s.Close())

		_, err := s.Keys(context.Background(), "server:")
		require.Error(t, err)
		assert.True(t, service.IsStoreUnavailableError(err))
		assert.True(t, service.IsStoreUnavailableError(s.Ping(context.Background())))
	})

	t.Run("cancelled context", func(t *testing.T) {
		s, _ := newTestStore()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := s.Set(ctx, "k", []byte("v"), time.Minute)
		require.Error(t, err)
		assert.True(t, service.IsStoreUnavailableError(err))
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s := New()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("server:10.0.0.%d:27015", i%4)
			for j := 0; j < 100; j++ {
				assert.NoError(t, s.Set(ctx, key, []byte(fmt.Sprint(j)), time.Minute))
				_, err := s.Keys(ctx, "server:")
				assert.NoError(t, err)
				_, err = s.Delete(ctx, key)
				assert.NoError(t, err)
				s.Sweep()
			}
		}(i)
	}
	wg.Wait()
}
