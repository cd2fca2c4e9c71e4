// Copyright (c) 2026 The fdoconf Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	apierrors "fdoconf/cli/internal/errors"
	"fdoconf/cli/internal/manifest"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// envelope status value that marks a successful body.
const statusOK = "ok"

// HTTP implements API over the conformance server's REST endpoints.
// It keeps no state between calls other than the cookie jar of its client.
type HTTP struct {
	// baseURL is the server root all endpoint paths are appended to (e.g., "http://localhost:8080")
	baseURL string
	// endpoints contains the URL paths for each operation
	endpoints manifest.HTTPEndpoints
	// client performs the requests; it carries the session cookie jar
	client *http.Client
	// jar replaces the client's cookie jar when set
	jar       http.CookieJar
	userAgent string
	logger    zerolog.Logger
}

// Option configures an HTTP client during New.
type Option func(*HTTP)

// WithHTTPClient injects a custom *http.Client, e.g. with a logging transport.
func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTP) {
		if c != nil {
			h.client = c
		}
	}
}

// WithCookieJar sets the jar that holds the server session cookie.
func WithCookieJar(jar http.CookieJar) Option {
	return func(h *HTTP) { h.jar = jar }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(h *HTTP) { h.userAgent = ua }
}

// WithLogger sets the logger used for per-request diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(h *HTTP) { h.logger = l }
}

// newHTTP creates a new HTTP client with the given base URL and endpoints.
// No client-side timeout is set; callers bound requests through their context.
func newHTTP(baseURL string, endpoints manifest.HTTPEndpoints, opts ...Option) *HTTP {
	h := &HTTP{
		baseURL:   strings.TrimRight(baseURL, "/"),
		endpoints: endpoints.WithDefaults(),
		client:    &http.Client{},
		userAgent: "fdoconf-cli",
		logger:    log.Logger,
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.jar != nil {
		c := *h.client
		c.Jar = h.jar
		h.client = &c
	}
	return h
}

// Result is the outcome of one request under the shared response contract:
// the HTTP status plus the decoded JSON body.
type Result struct {
	StatusCode int
	// StatusText is the reason phrase of the status line, e.g. "Unauthorized".
	StatusText string
	Body       any
}

// OK reports whether the status is exactly 200.
func (r *Result) OK() bool { return r.StatusCode == http.StatusOK }

// Field returns a top-level string field of an object body.
func (r *Result) Field(key string) (string, bool) {
	obj, ok := r.Body.(map[string]any)
	if !ok {
		return "", false
	}
	v, ok := obj[key]
	if !ok || v == nil {
		return "", false
	}
	if s, ok := v.(string); ok {
		return s, true
	}
	return fmt.Sprint(v), true
}

// Reason is the human-readable failure reason: the body's errorMessage when
// present, otherwise the status text.
func (r *Result) Reason() string {
	if msg, ok := r.Field("errorMessage"); ok {
		return msg
	}
	return r.StatusText
}

// Err converts a non-200 result into a RequestFailed error whose text is Reason.
func (r *Result) Err() error {
	if r.OK() {
		return nil
	}
	return apierrors.Status(r.StatusCode, r.Reason())
}

// EnvelopeErr is Err plus the requirement that the body status equals "ok".
func (r *Result) EnvelopeErr() error {
	if err := r.Err(); err != nil {
		return err
	}
	if status, _ := r.Field("status"); status != statusOK {
		e := apierrors.New(apierrors.UnexpectedResponse, "unexpected error")
		e.StatusCode = r.StatusCode
		return e
	}
	return nil
}

// setStandardHeaders applies the JSON headers every call carries.
func (h *HTTP) setStandardHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if h.userAgent != "" {
		req.Header.Set("User-Agent", h.userAgent)
	}
}

// call performs one request and decodes the JSON answer whatever its status.
// An error means no usable response: transport failure or a body that is not JSON.
func (h *HTTP) call(ctx context.Context, method, path string, body any) (*Result, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s body: %w", path, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	h.setStandardHeaders(req)
	requestID := uuid.NewString()
	req.Header.Set("X-Request-ID", requestID)

	start := time.Now()
	resp, err := h.client.Do(req)
	if err != nil {
		h.logger.Debug().Err(err).Str("request_id", requestID).Str("method", method).Str("path", path).Msg("request failed")
		return nil, err
	}
	defer resp.Body.Close()

	var decoded any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode %s %s response (status %d): %w", method, path, resp.StatusCode, err)
	}

	h.logger.Debug().
		Str("request_id", requestID).
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("api call")

	return &Result{StatusCode: resp.StatusCode, StatusText: statusText(resp), Body: decoded}, nil
}

// statusText extracts the reason phrase from the status line ("404 Not Found" -> "Not Found").
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		return http.StatusText(resp.StatusCode)
	}
	return text
}
