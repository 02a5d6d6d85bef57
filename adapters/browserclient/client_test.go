package browserclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"serverbrowser/adapters/memstore"
	"serverbrowser/api"
	"serverbrowser/domain"
	"serverbrowser/handlers"
	"serverbrowser/registry"
	"serverbrowser/repository"
	"serverbrowser/service"

	"github.com/benbjohnson/clock"
	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var arena = domain.ServerInfo{Name: "Arena", IP: "10.0.0.5", Port: 27015, Players: 3, Ping: 40, DedicatedServer: true}

// newTestRegistry serves the full registry stack over a memory store driven by storeClock.
func newTestRegistry(t *testing.T, storeClock clock.Clock) *httptest.Server {
	t.Helper()
	logger := log.NewNopLogger()
	store := memstore.New(memstore.WithClock(storeClock))
	repo := repository.NewServerRepository(store, logger)

	e := echo.New()
	validator, err := handlers.NewRequestValidator(api.Spec)
	require.NoError(t, err)
	e.Use(validator)
	service.RegisterErrorHandler(e, logger)
	handlers.RegisterHandlers(e, handlers.NewHTTPServer(registry.NewService(repo, nil, logger), store, repo.TTL(), time.Second, logger))

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv
}

func TestNew_Panics(t *testing.T) {
	t.Run("baseURL_empty", func(t *testing.T) {
		assert.PanicsWithValue(t, "browserclient.client.go: baseURL is required", func() {
			New("", &http.Client{})
		})
	})
	t.Run("client_nil", func(t *testing.T) {
		assert.PanicsWithValue(t, "browserclient.client.go: http client is required", func() {
			New("http://localhost:8080", nil)
		})
	})
}

func TestClient_RegisterListUnregister(t *testing.T) {
	ctx := context.Background()
	storeClock := clock.NewMock()
	srv := newTestRegistry(t, storeClock)
	c := New(srv.URL, srv.Client())

	servers, err := c.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, servers)
	assert.Empty(t, servers)

	result, err := c.Register(ctx, arena)
	require.NoError(t, err)
	assert.True(t, result.Created)
	assert.Equal(t, arena, result.Server)

	refreshed := arena
	refreshed.Players = 5
	result, err = c.Register(ctx, refreshed)
	require.NoError(t, err)
	assert.False(t, result.Created)

	servers, err = c.List(ctx)
	require.NoError(t, err)
	require.Len(t, servers, 1)
	assert.Equal(t, 5, servers[0].Players)

	require.NoError(t, c.Unregister(ctx, arena.ID()))
	require.NoError(t, c.Unregister(ctx, arena.ID()), "already gone is not an error")

	servers, err = c.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, servers)
}

func TestClient_UnregisterZonedIPv6(t *testing.T) {
	ctx := context.Background()
	srv := newTestRegistry(t, clock.NewMock())
	c := New(srv.URL, srv.Client())

	zoned := domain.ServerInfo{Name: "LAN", IP: "fe80::1%eth0", Port: 27015}
	result, err := c.Register(ctx, zoned)
	require.NoError(t, err)
	assert.True(t, result.Created)

	require.NoError(t, c.Unregister(ctx, zoned.ID()))

	servers, err := c.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, servers)
}

func TestClient_RegistrationExpires(t *testing.T) {
	ctx := context.Background()
	storeClock := clock.NewMock()
	srv := newTestRegistry(t, storeClock)
	c := New(srv.URL, srv.Client())

	_, err := c.Register(ctx, arena)
	require.NoError(t, err)

	storeClock.Add(repository.DefaultTTL)

	servers, err := c.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, servers)

	result, err := c.Register(ctx, arena)
	require.NoError(t, err)
	assert.True(t, result.Created, "a server that lapsed is created again")
}

func TestClient_RegisterRejected(t *testing.T) {
	srv := newTestRegistry(t, clock.NewMock())
	c := New(srv.URL, srv.Client())

	_, err := c.Register(context.Background(), domain.ServerInfo{Name: "Arena", IP: "10.0.0.5", Port: 70000})
	require.Error(t, err)
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
	assert.Equal(t, service.ErrBadParameter, statusErr.Code)
}

func TestClient_StoreUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":{"code":"store_unavailable","message":"Redis get keys error"}}`))
	}))
	defer srv.Close()
	c := New(srv.URL, srv.Client())

	servers, err := c.List(context.Background())
	require.Error(t, err)
	assert.Nil(t, servers, "a failing registry is not an empty one")
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, service.ErrStoreUnavailable, statusErr.Code)
	assert.Contains(t, err.Error(), "503")
}

func TestClient_Heartbeat(t *testing.T) {
	storeClock := clock.NewMock()
	srv := newTestRegistry(t, storeClock)
	beatClock := clock.NewMock()
	c := New(srv.URL, srv.Client(), WithClock(beatClock))
	observer := New(srv.URL, srv.Client())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Heartbeat(ctx, arena, 20*time.Second) }()

	listed := func() int {
		servers, err := observer.List(context.Background())
		if err != nil {
			return -1
		}
		return len(servers)
	}
	require.Eventually(t, func() bool { return listed() == 1 }, 2*time.Second, 10*time.Millisecond)

	// Each tick refreshes the ttl, so the server outlives a single ttl window.
	for i := 0; i < 4; i++ {
		storeClock.Add(20 * time.Second)
		beatClock.Add(20 * time.Second)
		time.Sleep(20 * time.Millisecond)
	}
	assert.Equal(t, 1, listed())

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Heartbeat did not return after cancel")
	}
	assert.Equal(t, 0, listed(), "heartbeat unregisters on exit")
}

func TestClient_HeartbeatWithCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set(headerHeartbeatTTL, "30")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"name":"Arena","ip":"10.0.0.5","port":27015,"players":3,"ping":40,"dedicatedServer":true}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := New(srv.URL, srv.Client(), WithClock(clock.NewMock()))
	require.NoError(t, c.Heartbeat(ctx, arena, 0))
}

func TestParseTTL(t *testing.T) {
	assert.Equal(t, 60*time.Second, parseTTL("60"))
	assert.Equal(t, time.Duration(0), parseTTL(""))
	assert.Equal(t, time.Duration(0), parseTTL("-1"))
	assert.Equal(t, time.Duration(0), parseTTL("soon"))
}
