// Package gateway is the single chokepoint for network I/O against the
// StellarHub backend. It scopes URLs to the signed-in account, carries the
// ambient session cookie, de-envelopes responses, and centralizes failure
// handling: every failure notifies the user exactly once and is returned to
// the caller, and a 401 invalidates the session process-wide.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/stellarhub/stellarctl/internal/errors"
	"github.com/stellarhub/stellarctl/internal/identity"
	"github.com/stellarhub/stellarctl/internal/log"
	"github.com/stellarhub/stellarctl/internal/notify"
)

// apiRoot marks tenant-agnostic paths. Anything else is rewritten to
// {apiRoot}/{accountID}{path} at call time.
const apiRoot = "/api"

// Fixed user-facing messages, matching the dashboard's toasts.
const (
	networkErrorMessage = "Network error"
	genericErrorMessage = "An unexpected error occurred"
)

// APIError is a structured error reported by the backend.
type APIError struct {
	Message    string
	StatusCode int
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// errorEnvelope is the backend's error wire shape. Responses not matching it
// are treated as network-class failures.
type errorEnvelope struct {
	Error *struct {
		Message    string `json:"message"`
		StatusCode int    `json:"statusCode"`
	} `json:"error"`
}

// Gateway issues HTTP requests against the backend. One cookie jar per
// gateway carries the server session across calls; no bearer header is set.
type Gateway struct {
	baseURL  string
	client   *http.Client
	ids      *identity.Context
	notifier notify.Notifier
	logger   *log.Logger

	invalidateOnce sync.Once
	onInvalidated  func()
}

// Option customizes a Gateway.
type Option func(*Gateway)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(g *Gateway) { g.client = c }
}

// WithNotifier sets the user notification sink.
func WithNotifier(n notify.Notifier) Option {
	return func(g *Gateway) { g.notifier = n }
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *log.Logger) Option {
	return func(g *Gateway) { g.logger = l }
}

// New creates a Gateway for baseURL reading account scope from ids.
func New(baseURL string, ids *identity.Context, opts ...Option) *Gateway {
	jar, _ := cookiejar.New(nil)
	g := &Gateway{
		baseURL:  strings.TrimRight(baseURL, "/"),
		client:   &http.Client{Jar: jar},
		ids:      ids,
		notifier: notify.Discard{},
		logger:   log.DefaultLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.client.Jar == nil {
		g.client.Jar = jar
	}
	return g
}

// OnSessionInvalidated registers the handler run when the backend reports a
// 401. The application shell subscribes once; the handler fires at most once
// per gateway no matter how many in-flight calls fail.
func (g *Gateway) OnSessionInvalidated(fn func()) {
	g.onInvalidated = fn
}

// buildURL applies the scoping rule: a path already under the API root is
// used verbatim, anything else is rewritten to embed the current account ID.
func (g *Gateway) buildURL(path string) string {
	if strings.HasPrefix(path, apiRoot) {
		return g.baseURL + path
	}
	return g.baseURL + apiRoot + "/" + g.ids.Account.Get().ID + path
}

// Get issues a GET and decodes the payload into out.
func (g *Gateway) Get(ctx context.Context, path string, out any) error {
	return g.do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST with a JSON payload and decodes the response into out.
func (g *Gateway) Post(ctx context.Context, path string, payload, out any) error {
	return g.do(ctx, http.MethodPost, path, payload, out)
}

// Put issues a PUT with a JSON payload and decodes the response into out.
func (g *Gateway) Put(ctx context.Context, path string, payload, out any) error {
	return g.do(ctx, http.MethodPut, path, payload, out)
}

// Patch issues a PATCH with a JSON payload and decodes the response into out.
func (g *Gateway) Patch(ctx context.Context, path string, payload, out any) error {
	return g.do(ctx, http.MethodPatch, path, payload, out)
}

// Delete issues a DELETE and decodes the payload into out.
func (g *Gateway) Delete(ctx context.Context, path string, out any) error {
	return g.do(ctx, http.MethodDelete, path, nil, out)
}

func (g *Gateway) do(ctx context.Context, method, path string, payload, out any) error {
	url := g.buildURL(path)

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			g.notifier.Notify(notify.KindError, networkErrorMessage)
			return errors.Wrap(errors.ErrCodeGatewayEncode, "cannot encode request body", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		g.notifier.Notify(notify.KindError, networkErrorMessage)
		return errors.NewNetworkError(err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-Id", uuid.NewString())

	start := time.Now()
	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.WithError(err).Warn("request failed", "method", method, "path", path)
		g.notifier.Notify(notify.KindError, networkErrorMessage)
		return errors.NewNetworkError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		g.notifier.Notify(notify.KindError, networkErrorMessage)
		return errors.NewNetworkError(err)
	}

	g.logger.Debug("request completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return g.fail(resp.StatusCode, data)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			g.notifier.Notify(notify.KindError, networkErrorMessage)
			return errors.Wrap(errors.ErrCodeGatewayDecode, "cannot decode response body", err)
		}
	}
	return nil
}

// fail classifies a non-2xx response. A body matching the error envelope is a
// structured API error; anything else is network-class. The envelope's own
// statusCode, not the transport status, decides session invalidation.
func (g *Gateway) fail(status int, body []byte) error {
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err != nil || env.Error == nil {
		g.notifier.Notify(notify.KindError, networkErrorMessage)
		return errors.NewNetworkError(fmt.Errorf("unexpected response (status %d)", status))
	}

	apiErr := &APIError{
		Message:    env.Error.Message,
		StatusCode: env.Error.StatusCode,
	}

	if apiErr.StatusCode == http.StatusUnauthorized {
		g.invalidateOnce.Do(func() {
			if g.onInvalidated != nil {
				g.onInvalidated()
			}
		})
	}

	message := apiErr.Message
	if message == "" {
		message = genericErrorMessage
	}
	g.notifier.Notify(notify.KindError, message)

	return errors.Wrap(errors.ErrCodeGatewayAPI, message, apiErr)
}

// AsAPIError extracts a structured API error from err, if any.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if stderrors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsNetworkError reports whether err is a network-class failure.
func IsNetworkError(err error) bool {
	var hubErr *errors.HubError
	if stderrors.As(err, &hubErr) {
		return hubErr.Code == errors.ErrCodeGatewayNetwork
	}
	return false
}
