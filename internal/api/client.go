package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"
)

// MetricsRecorder receives one observation per outbound request.
type MetricsRecorder interface {
	RecordRequest(op string, status int, elapsed time.Duration)
}

// Client issues authenticated HTTP requests to the remote service. It
// attaches the current bearer token to every request and maps non-2xx
// responses to typed errors.
//
// The token is read by concurrent in-flight requests and mutated only by
// SetToken/ClearToken; both directions are safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	metrics    MetricsRecorder

	mu    sync.RWMutex
	token string

	// OnUnauthorized is invoked on every 401 response, before the
	// authentication error is returned to the caller, so no call site
	// needs bespoke session-expiry handling. It must tolerate running
	// after the session has already been cleared.
	OnUnauthorized func()
}

// New creates a resource client for the remote service.
func New(cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger.With("component", "api-client"),
	}
}

// SetMetrics installs a metrics recorder. Pass nil to disable.
func (c *Client) SetMetrics(rec MetricsRecorder) {
	c.metrics = rec
}

// Token returns the current bearer token ("" when logged out).
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// SetToken installs the bearer token attached to subsequent requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// ClearToken removes the bearer token. Safe to call when already cleared.
func (c *Client) ClearToken() {
	c.SetToken("")
}

// do performs a single JSON request against the remote service. A missing
// token does not short-circuit the call: the server is authoritative and
// the request is expected to fail with an authentication error.
func (c *Client) do(ctx context.Context, op, method, path string, body, out any, fallback string) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return wrapError(op, fmt.Errorf("marshal request: %w", err))
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return wrapError(op, fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	if tok := c.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	c.logger.Debug("request", "op", op, "method", method, "url", url)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.record(op, 0, start)
		return wrapError(op, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.record(op, resp.StatusCode, start)
		return wrapError(op, fmt.Errorf("read response: %w", err))
	}

	c.record(op, resp.StatusCode, start)
	c.logger.Debug("response", "op", op, "status", resp.StatusCode)

	if resp.StatusCode == http.StatusUnauthorized {
		// Global side effect: the session must be torn down before any
		// caller observes the error.
		if c.OnUnauthorized != nil {
			c.OnUnauthorized()
		}
		return fromStatus(op, resp.StatusCode, detailOf(respBody), "session expired, please log in again")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fromStatus(op, resp.StatusCode, detailOf(respBody), fallback)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return wrapError(op, fmt.Errorf("parse response: %w", err))
	}
	return nil
}

func (c *Client) record(op string, status int, start time.Time) {
	if c.metrics != nil {
		c.metrics.RecordRequest(op, status, time.Since(start))
	}
}

// detailOf extracts the remote service's {"detail": "..."} message, if any.
func detailOf(body []byte) string {
	var d detailBody
	if json.Unmarshal(body, &d) == nil {
		return d.Detail
	}
	return ""
}
