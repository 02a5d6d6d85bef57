package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// RegisterServerRequest is the body of POST /servers.
type RegisterServerRequest struct {
	Name            *string `json:"name,omitempty"`
	Ip              string  `json:"ip"`
	Port            int     `json:"port"`
	Players         *int    `json:"players,omitempty"`
	Ping            *int    `json:"ping,omitempty"`
	DedicatedServer *bool   `json:"dedicatedServer,omitempty"`
}

// ServerInfo is one element of GET /servers and the body of POST /servers responses.
type ServerInfo struct {
	Name            string `json:"name"`
	Ip              string `json:"ip"`
	Port            int    `json:"port"`
	Players         int    `json:"players"`
	Ping            int    `json:"ping"`
	DedicatedServer bool   `json:"dedicatedServer"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List live servers.
	// (GET /servers)
	GetServers(ctx echo.Context) error
	// Register a server or refresh its heartbeat.
	// (POST /servers)
	AddServer(ctx echo.Context) error
	// Unregister a server before its heartbeat expires.
	// (DELETE /servers/{ip}/{port})
	RemoveServer(ctx echo.Context, ip string, port int) error
	// Report whether the backing store is reachable.
	// (GET /health)
	GetHealth(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetServers converts echo context to params.
func (w *ServerInterfaceWrapper) GetServers(ctx echo.Context) error {
	return w.Handler.GetServers(ctx)
}

// AddServer converts echo context to params.
func (w *ServerInterfaceWrapper) AddServer(ctx echo.Context) error {
	return w.Handler.AddServer(ctx)
}

// RemoveServer converts echo context to params.
func (w *ServerInterfaceWrapper) RemoveServer(ctx echo.Context) error {
	var err error

	// echo has already unescaped ip.
	ip := ctx.Param("ip")
	if ip == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid format for parameter ip: value is required")
	}

	var port int
	err = runtime.BindStyledParameterWithOptions("simple", "port", ctx.Param("port"), &port, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter port: %s", err))
	}

	return w.Handler.RemoveServer(ctx, ip, port)
}

// GetHealth converts echo context to params.
func (w *ServerInterfaceWrapper) GetHealth(ctx echo.Context) error {
	return w.Handler.GetHealth(ctx)
}

// EchoRouter is satisfied by *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the paths.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/servers", wrapper.GetServers)
	router.POST(baseURL+"/servers", wrapper.AddServer)
	router.DELETE(baseURL+"/servers/:ip/:port", wrapper.RemoveServer)
	router.GET(baseURL+"/health", wrapper.GetHealth)
}
