package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(method, target string) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	return e, e.NewContext(req, rec), rec
}

// logEntries splits a zerolog buffer into JSON entries.
func logEntries(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func detailOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	return body["detail"]
}

// =====================================================
// Request ID
// =====================================================

func TestRequestID_GeneratesNewID(t *testing.T) {
	_, c, rec := newContext(http.MethodGet, "/api/health")

	handler := RequestID()(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, handler(c))

	reqID := rec.Header().Get(RequestIDHeader)
	assert.Len(t, reqID, 36, "should be a UUID")
	assert.Equal(t, reqID, GetRequestID(c))
}

func TestRequestID_PropagatesExistingID(t *testing.T) {
	_, c, rec := newContext(http.MethodGet, "/api/health")
	c.Request().Header.Set(RequestIDHeader, "client-id-12345")

	handler := RequestID()(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))

	assert.Equal(t, "client-id-12345", rec.Header().Get(RequestIDHeader))
	assert.Equal(t, "client-id-12345", GetRequestID(c))
}

func TestRequestID_ReplacesUnusableID(t *testing.T) {
	tests := map[string]string{
		"whitespace": "has space",
		"too long":   strings.Repeat("a", maxRequestIDLength+1),
		"control":    "id\x01",
	}
	for name, id := range tests {
		t.Run(name, func(t *testing.T) {
			_, c, rec := newContext(http.MethodGet, "/")
			c.Request().Header.Set(RequestIDHeader, id)

			handler := RequestID()(func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			})
			require.NoError(t, handler(c))

			got := rec.Header().Get(RequestIDHeader)
			assert.NotEqual(t, id, got)
			assert.Len(t, got, 36)
		})
	}
}

func TestGetRequestID_EmptyWhenNotSet(t *testing.T) {
	_, c, _ := newContext(http.MethodGet, "/")
	assert.Empty(t, GetRequestID(c))
}

// =====================================================
// Request logging
// =====================================================

func TestRequestLogger_LogsRequestDetails(t *testing.T) {
	var logBuf bytes.Buffer
	logger := zerolog.New(&logBuf)

	_, c, _ := newContext(http.MethodGet, "/api/airports/search?q=taipei")
	c.Request().Header.Set("User-Agent", "TestAgent/1.0")
	c.Set(requestIDKey, "req-123")

	handler := RequestLogger(logger)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	require.NoError(t, handler(c))

	entries := logEntries(t, &logBuf)
	require.Len(t, entries, 1)
	entry := entries[0]
	assert.Equal(t, "req-123", entry["request_id"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/api/airports/search", entry["path"])
	assert.Equal(t, "q=taipei", entry["query"])
	assert.Equal(t, float64(200), entry["status"])
	assert.Equal(t, "info", entry["level"])
	assert.Contains(t, entry, "duration_ms")
	assert.Equal(t, "TestAgent/1.0", entry["user_agent"])
	assert.Equal(t, "HTTP request", entry["message"])
}

func TestRequestLogger_LevelByStatus(t *testing.T) {
	tests := []struct {
		status    int
		wantLevel string
	}{
		{http.StatusOK, "info"},
		{http.StatusUnprocessableEntity, "warn"},
		{http.StatusInternalServerError, "error"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			var logBuf bytes.Buffer
			_, c, _ := newContext(http.MethodPost, "/api/flights/search")

			handler := RequestLogger(zerolog.New(&logBuf))(func(c echo.Context) error {
				return c.NoContent(tt.status)
			})
			require.NoError(t, handler(c))

			entries := logEntries(t, &logBuf)
			require.Len(t, entries, 1)
			assert.Equal(t, float64(tt.status), entries[0]["status"])
			assert.Equal(t, tt.wantLevel, entries[0]["level"])
		})
	}
}

func TestRequestLogger_RendersReturnedError(t *testing.T) {
	var logBuf bytes.Buffer
	logger := zerolog.New(&logBuf)

	e, c, rec := newContext(http.MethodGet, "/missing")
	e.HTTPErrorHandler = ErrorHandler(logger)

	handler := RequestLogger(logger)(func(c echo.Context) error {
		return echo.ErrNotFound
	})
	require.NoError(t, handler(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not Found", detailOf(t, rec))

	entries := logEntries(t, &logBuf)
	require.Len(t, entries, 1)
	assert.Equal(t, float64(404), entries[0]["status"])
}

func TestRequestLogger_SkipPaths(t *testing.T) {
	var logBuf bytes.Buffer
	_, c, rec := newContext(http.MethodGet, "/api/health")

	handler := RequestLoggerWithConfig(zerolog.New(&logBuf), LoggerConfig{
		SkipPaths: []string{"/api/health"},
	})(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, logBuf.String())
}

// =====================================================
// Recovery
// =====================================================

func TestRecover_Returns500Detail(t *testing.T) {
	var logBuf bytes.Buffer
	_, c, rec := newContext(http.MethodPost, "/api/flights/search")
	c.Set(requestIDKey, "panic-id")

	handler := Recover(zerolog.New(&logBuf))(func(c echo.Context) error {
		panic("secret internal state")
	})

	assert.NotPanics(t, func() {
		require.NoError(t, handler(c))
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	detail := detailOf(t, rec)
	assert.NotEmpty(t, detail)
	assert.NotContains(t, detail, "secret", "panic value must not leak")

	entries := logEntries(t, &logBuf)
	require.Len(t, entries, 1)
	assert.Equal(t, "error", entries[0]["level"])
	assert.Equal(t, "panic-id", entries[0]["request_id"])
	assert.Equal(t, "secret internal state", entries[0]["panic"])
	stack, ok := entries[0]["stack"].(string)
	require.True(t, ok)
	assert.Contains(t, stack, "goroutine")
	assert.Equal(t, "Panic recovered", entries[0]["message"])
}

func TestRecover_RuntimeErrorPanic(t *testing.T) {
	_, c, rec := newContext(http.MethodGet, "/")

	handler := Recover(zerolog.Nop())(func(c echo.Context) error {
		var m map[string]int
		m["x"] = 1
		return nil
	})

	assert.NotPanics(t, func() { _ = handler(c) })
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRecover_PassesThroughNormalRequests(t *testing.T) {
	var logBuf bytes.Buffer
	_, c, rec := newContext(http.MethodGet, "/")

	handler := Recover(zerolog.New(&logBuf))(func(c echo.Context) error {
		return c.String(http.StatusOK, "normal response")
	})
	require.NoError(t, handler(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "normal response", rec.Body.String())
	assert.Empty(t, logBuf.String())
}

func TestRecoverWithConfig_DisableStackPrint(t *testing.T) {
	var logBuf bytes.Buffer
	_, c, _ := newContext(http.MethodGet, "/")

	handler := RecoverWithConfig(zerolog.New(&logBuf), RecoveryConfig{DisablePrintStack: true})(
		func(c echo.Context) error { panic("no stack") },
	)
	_ = handler(c)

	entries := logEntries(t, &logBuf)
	require.Len(t, entries, 1)
	assert.NotContains(t, entries[0], "stack")
}

// =====================================================
// Error handler
// =====================================================

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		err        error
		wantStatus int
		wantDetail string
	}{
		{
			name:       "echo http error",
			method:     http.MethodGet,
			err:        echo.ErrMethodNotAllowed,
			wantStatus: http.StatusMethodNotAllowed,
			wantDetail: "Method Not Allowed",
		},
		{
			name:       "echo http error with custom message",
			method:     http.MethodGet,
			err:        echo.NewHTTPError(http.StatusRequestEntityTooLarge, "body too large"),
			wantStatus: http.StatusRequestEntityTooLarge,
			wantDetail: "body too large",
		},
		{
			name:       "plain error",
			method:     http.MethodGet,
			err:        assert.AnError,
			wantStatus: http.StatusInternalServerError,
			wantDetail: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, c, rec := newContext(tt.method, "/")
			ErrorHandler(zerolog.Nop())(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantDetail, detailOf(t, rec))
		})
	}

	t.Run("head request has no body", func(t *testing.T) {
		_, c, rec := newContext(http.MethodHead, "/")
		ErrorHandler(zerolog.Nop())(echo.ErrNotFound, c)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
}

// =====================================================
// Chain
// =====================================================

func TestSetup_FullChain(t *testing.T) {
	var logBuf bytes.Buffer
	logger := zerolog.New(&logBuf)

	e := echo.New()
	Setup(e, logger)

	e.GET("/api/test", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/api/panic", func(c echo.Context) error {
		panic("chain panic")
	})

	t.Run("normal request", func(t *testing.T) {
		logBuf.Reset()
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/test", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))

		entries := logEntries(t, &logBuf)
		require.Len(t, entries, 1)
		assert.Equal(t, rec.Header().Get(RequestIDHeader), entries[0]["request_id"])
	})

	t.Run("panic", func(t *testing.T) {
		rec := httptest.NewRecorder()
		assert.NotPanics(t, func() {
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/panic", nil))
		})
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
		assert.NotEmpty(t, detailOf(t, rec))
	})

	t.Run("unknown route", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Not Found", detailOf(t, rec))
	})

	t.Run("body too large", func(t *testing.T) {
		e.POST("/api/echo", func(c echo.Context) error {
			_, err := c.Request().Body.Read(make([]byte, 8))
			if err != nil {
				return err
			}
			return c.NoContent(http.StatusOK)
		})
		rec := httptest.NewRecorder()
		body := strings.NewReader(strings.Repeat("x", 2<<20))
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/echo", body))

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	})

	t.Run("health is not logged", func(t *testing.T) {
		e.GET("/api/health", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
		logBuf.Reset()
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, logBuf.String())
	})
}

func TestChain_Length(t *testing.T) {
	assert.Len(t, Chain(zerolog.Nop(), Config{}), 3)
	assert.Len(t, Chain(zerolog.Nop(), DefaultConfig()), 4)
}
