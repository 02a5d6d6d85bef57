// Package handlers contains http handlers for serverbrowser.
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"serverbrowser/interfaces"
	"serverbrowser/service"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
)

// HeaderHeartbeatTTL tells heartbeat senders how long a registration stays live.
const HeaderHeartbeatTTL = "X-Heartbeat-Ttl-Seconds"

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HTTPServer implements ServerInterface.
type HTTPServer struct {
	registry     interfaces.ServerRegistry
	pinger       Pinger
	heartbeatTTL time.Duration
	storeTimeout time.Duration
	logger       log.Logger
}

// NewHTTPServer creates a new HTTPServer.
// storeTimeout bounds every registry call; zero disables the bound.
func NewHTTPServer(registry interfaces.ServerRegistry, pinger Pinger, heartbeatTTL, storeTimeout time.Duration, logger log.Logger) *HTTPServer {
	logger = log.WithPrefix(logger, "component", "HTTPServer")
	return &HTTPServer{
		registry:     registry,
		pinger:       pinger,
		heartbeatTTL: heartbeatTTL,
		storeTimeout: storeTimeout,
		logger:       logger,
	}
}

// GetServers (GET /servers) returns the live servers. Returns 200 with [] when none are live, 503 when the store fails.
func (h *HTTPServer) GetServers(ectx echo.Context) error {
	ctx, cancel := h.storeContext(ectx)
	defer cancel()

	servers, err := h.registry.GetAllServers(ctx)
	if err != nil {
		return fmt.Errorf("getServers failed to list servers, err: %w", err)
	}

	h.setTTLHeader(ectx)
	return ectx.JSON(http.StatusOK, toServersResponse(servers))
}

// AddServer (POST /servers) registers or refreshes a server. Returns 201 when created, 200 when refreshed,
// 400 on parse/validation error, 503 on store error.
func (h *HTTPServer) AddServer(ectx echo.Context) error {
	var req RegisterServerRequest
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("invalid request body", err)
	}

	server, err := fromRegisterServerRequest(req)
	if err != nil {
		return fmt.Errorf("addServer failed to convert request to server, err: %w", err)
	}

	ctx, cancel := h.storeContext(ectx)
	defer cancel()

	result, err := h.registry.CreateOrRefresh(ctx, server)
	if err != nil {
		return fmt.Errorf("addServer failed to register server, err: %w", err)
	}

	h.setTTLHeader(ectx)
	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	return ectx.JSON(status, toServerInfo(result.Server))
}

// RemoveServer (DELETE /servers/{ip}/{port}) unregisters a server. Returns 204, or 404 when nothing was live.
func (h *HTTPServer) RemoveServer(ectx echo.Context, ip string, port int) error {
	id, err := fromServerPath(ip, port)
	if err != nil {
		return fmt.Errorf("removeServer failed to convert path to server id, err: %w", err)
	}

	ctx, cancel := h.storeContext(ectx)
	defer cancel()

	if err := h.registry.Unregister(ctx, id); err != nil {
		return fmt.Errorf("removeServer failed to unregister server, err: %w", err)
	}

	return ectx.NoContent(http.StatusNoContent)
}

// GetHealth (GET /health) pings the store. Returns 200 or 503.
func (h *HTTPServer) GetHealth(ectx echo.Context) error {
	ctx, cancel := h.storeContext(ectx)
	defer cancel()

	if err := h.pinger.Ping(ctx); err != nil {
		return service.NewStoreUnavailableError("store is unreachable", err)
	}

	return ectx.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

func (h *HTTPServer) storeContext(ectx echo.Context) (context.Context, context.CancelFunc) {
	ctx := ectx.Request().Context()
	if h.storeTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, h.storeTimeout)
}

func (h *HTTPServer) setTTLHeader(ectx echo.Context) {
	if h.heartbeatTTL > 0 {
		ectx.Response().Header().Set(HeaderHeartbeatTTL, strconv.Itoa(int(h.heartbeatTTL/time.Second)))
	}
}
