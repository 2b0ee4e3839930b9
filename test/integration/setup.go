// Package integration runs the flights API end to end: the echo server with
// its middleware chain, the use case and the engine adapter talking HTTP to a
// fake flight engine.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	flighthttp "github.com/flights-api/flights-api/internal/adapter/http"
	"github.com/flights-api/flights-api/internal/adapter/http/middleware"
	"github.com/flights-api/flights-api/internal/app"
	"github.com/flights-api/flights-api/internal/config"
	"github.com/flights-api/flights-api/internal/infrastructure/logger"
	"github.com/flights-api/flights-api/test/mock"
)

// TestServer wraps the assembled service and the fake engines behind it.
type TestServer struct {
	Echo       *echo.Echo
	Components *app.Components

	// Engine serves the common fetch mode
	Engine *mock.Engine

	// Browser serves the local fetch mode; nil unless WithLocalMode was given
	Browser *mock.Engine
}

type options struct {
	env       map[string]string
	localMode bool
}

// Option tweaks how a TestServer is configured.
type Option func(*options)

// WithEnv sets a configuration variable.
func WithEnv(key, value string) Option {
	return func(o *options) { o.env[key] = value }
}

// WithLocalMode starts a second fake engine for the local fetch mode.
func WithLocalMode() Option {
	return func(o *options) { o.localMode = true }
}

// NewTestServer configures the service from environment variables the same
// way the server binary does, pointing it at fresh fake engines.
func NewTestServer(t *testing.T, opts ...Option) *TestServer {
	t.Helper()

	o := &options{env: map[string]string{
		"ENGINE_RATE_LIMIT":  "0",
		"ENGINE_BROWSER_URL": "",
		"CACHE_ENABLED":      "false",
		"LOG_LEVEL":          "error",
	}}
	for _, opt := range opts {
		opt(o)
	}

	ts := &TestServer{Engine: mock.NewEngine()}
	t.Cleanup(ts.Engine.Close)
	o.env["ENGINE_BASE_URL"] = ts.Engine.URL()

	if o.localMode {
		ts.Browser = mock.NewEngine()
		t.Cleanup(ts.Browser.Close)
		o.env["ENGINE_BROWSER_URL"] = ts.Browser.URL()
	}

	for k, v := range o.env {
		t.Setenv(k, v)
	}

	cfg, err := config.Load()
	require.NoError(t, err)

	log := logger.Nop()
	components, err := app.Build(context.Background(), cfg, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = components.Close() })

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	middleware.Setup(e, log.Logger)
	flighthttp.RegisterRoutes(e, flighthttp.NewFlightHandler(components.UseCase, log.Logger))

	ts.Echo = e
	ts.Components = components
	return ts
}

// Response is a recorded HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a request against the server. A non-nil body is sent as-is
// when it is a []byte or string and JSON-encoded otherwise.
func (ts *TestServer) Do(method, path string, body any) Response {
	var raw []byte
	switch b := body.(type) {
	case nil:
	case []byte:
		raw = b
	case string:
		raw = []byte(b)
	default:
		raw, _ = json.Marshal(b)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, req)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// Search posts a flight search.
func (ts *TestServer) Search(body any) Response {
	return ts.Do(http.MethodPost, "/api/flights/search", body)
}

// SearchResponse decodes a successful flight search body.
func (r Response) SearchResponse(t *testing.T) flighthttp.SearchFlightsResponse {
	t.Helper()
	var resp flighthttp.SearchFlightsResponse
	require.NoError(t, json.Unmarshal(r.Body, &resp), "body: %s", r.Body)
	return resp
}
