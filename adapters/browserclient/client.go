// Package browserclient is the game server side of the heartbeat protocol.
package browserclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"serverbrowser/domain"

	"github.com/benbjohnson/clock"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

const (
	// requestTimeout bounds every single call to the registry.
	requestTimeout = 5 * time.Second
	// headerHeartbeatTTL mirrors handlers.HeaderHeartbeatTTL.
	headerHeartbeatTTL = "X-Heartbeat-Ttl-Seconds"
)

// Client talks to the server browser over HTTP: POST /servers, GET /servers and DELETE /servers/{ip}/{port}.
type Client struct {
	baseURL string
	client  *http.Client
	clock   clock.Clock
	logger  log.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithClock replaces the wall clock used by Heartbeat.
func WithClock(c clock.Clock) Option {
	return func(cl *Client) {
		cl.clock = c
	}
}

// WithLogger sets the logger used by Heartbeat.
func WithLogger(logger log.Logger) Option {
	return func(cl *Client) {
		cl.logger = logger
	}
}

// New creates a Client. Panics on empty baseURL or nil client.
//
// baseURL is the registry base URL without a trailing slash (e.g. http://serverbrowser:8080).
func New(baseURL string, client *http.Client, options ...Option) *Client {
	if baseURL == "" {
		panic("browserclient.client.go: baseURL is required")
	}
	if client == nil {
		panic("browserclient.client.go: http client is required")
	}
	c := &Client{
		baseURL: baseURL,
		client:  client,
		clock:   clock.New(),
		logger:  log.NewNopLogger(),
	}
	for _, opt := range options {
		opt(c)
	}
	c.logger = log.WithPrefix(c.logger, "component", "BrowserClient")
	return c
}

// StatusError is returned when the registry answers with an unexpected status.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Code       string
	Message    string
}

func (e *StatusError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("%s %s returned %d", e.Method, e.Path, e.StatusCode)
	}
	return fmt.Sprintf("%s %s returned %d (%s: %s)", e.Method, e.Path, e.StatusCode, e.Code, e.Message)
}

type errorResponse struct {
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Register performs POST /servers. Created is true when the registry answered 201.
func (c *Client) Register(ctx context.Context, s domain.ServerInfo) (domain.ServerCreationResult, error) {
	result, _, err := c.register(ctx, s)
	return result, err
}

// register also returns the heartbeat ttl advertised by the registry, zero when absent.
func (c *Client) register(ctx context.Context, s domain.ServerInfo) (domain.ServerCreationResult, time.Duration, error) {
	body, err := json.Marshal(s)
	if err != nil {
		return domain.ServerCreationResult{}, 0, err
	}

	resp, err := c.do(ctx, http.MethodPost, "/servers", body)
	if err != nil {
		return domain.ServerCreationResult{}, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return domain.ServerCreationResult{}, 0, statusError(resp, http.MethodPost, "/servers")
	}

	var stored domain.ServerInfo
	if err := json.NewDecoder(resp.Body).Decode(&stored); err != nil {
		return domain.ServerCreationResult{}, 0, fmt.Errorf("can't decode register response, err: %w", err)
	}

	return domain.ServerCreationResult{
		Server:  stored,
		Created: resp.StatusCode == http.StatusCreated,
	}, parseTTL(resp.Header.Get(headerHeartbeatTTL)), nil
}

// List performs GET /servers.
func (c *Client) List(ctx context.Context) ([]domain.ServerInfo, error) {
	resp, err := c.do(ctx, http.MethodGet, "/servers", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp, http.MethodGet, "/servers")
	}

	servers := make([]domain.ServerInfo, 0)
	if err := json.NewDecoder(resp.Body).Decode(&servers); err != nil {
		return nil, fmt.Errorf("can't decode server list, err: %w", err)
	}
	return servers, nil
}

// Unregister performs DELETE /servers/{ip}/{port}. A server that is already gone is not an error.
func (c *Client) Unregister(ctx context.Context, id domain.ServerID) error {
	path := "/servers/" + url.PathEscape(id.IP) + "/" + strconv.Itoa(id.Port)
	resp, err := c.do(ctx, http.MethodDelete, path, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusNoContent, http.StatusNotFound:
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	default:
		return statusError(resp, http.MethodDelete, path)
	}
}

// Heartbeat registers s immediately and then on every tick until ctx is done, then unregisters it.
// A failed heartbeat is logged and retried on the next tick.
//
// When interval is not positive, a third of the ttl advertised by the registry is used.
func (c *Client) Heartbeat(ctx context.Context, s domain.ServerInfo, interval time.Duration) error {
	logger := log.With(c.logger, "server", s.ID().String())

	if interval <= 0 {
		interval = DefaultHeartbeatInterval
		if _, ttl, err := c.beat(ctx, s, logger); err == nil && ttl > 0 {
			interval = ttl / 3
		}
	} else {
		_, _, _ = c.beat(ctx, s, logger)
	}

	ticker := c.clock.Ticker(interval)
	defer ticker.Stop()

	level.Info(logger).Log("msg", "Heartbeat started", "interval", interval)
	for {
		select {
		case <-ctx.Done():
			unregisterCtx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()
			if err := c.Unregister(unregisterCtx, s.ID()); err != nil {
				level.Warn(logger).Log("msg", "Failed to unregister on shutdown", "err", err)
			}
			level.Info(logger).Log("msg", "Heartbeat stopped")
			return nil
		case <-ticker.C:
			_, _, _ = c.beat(ctx, s, logger)
		}
	}
}

// DefaultHeartbeatInterval is used when the registry does not advertise its ttl.
const DefaultHeartbeatInterval = 20 * time.Second

func (c *Client) beat(ctx context.Context, s domain.ServerInfo, logger log.Logger) (domain.ServerCreationResult, time.Duration, error) {
	result, ttl, err := c.register(ctx, s)
	if err != nil {
		if ctx.Err() == nil {
			level.Warn(logger).Log("msg", "Heartbeat failed", "err", err)
		}
		return result, ttl, err
	}
	if result.Created {
		level.Info(logger).Log("msg", "Server registered")
	} else {
		level.Debug(logger).Log("msg", "Heartbeat refreshed")
	}
	return result, ttl, nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte) (*http.Response, error) {
	ctx, cancel := context.WithTimeout(ctx, requestTimeout)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		cancel()
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		cancel()
		return nil, err
	}
	resp.Body = &cancelOnClose{ReadCloser: resp.Body, cancel: cancel}
	return resp, nil
}

// cancelOnClose releases the request context once the body is closed.
type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (b *cancelOnClose) Close() error {
	err := b.ReadCloser.Close()
	b.cancel()
	return err
}

func statusError(resp *http.Response, method, path string) error {
	e := &StatusError{Method: method, Path: path, StatusCode: resp.StatusCode}
	var body errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != nil {
		e.Code = body.Error.Code
		e.Message = body.Error.Message
	}
	return e
}

func parseTTL(v string) time.Duration {
	seconds, err := strconv.Atoi(v)
	if err != nil || seconds <= 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}
