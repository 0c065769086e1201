package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/portal-api/internal/config"
	"github.com/deppfellow/portal-api/internal/errs"
	"github.com/deppfellow/portal-api/internal/server"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(cfg *config.Config) *server.Server {
	logger := zerolog.Nop()
	return &server.Server{Config: cfg, Logger: &logger}
}

func serveError(t *testing.T, err error) (int, errs.HTTPError) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	NewGlobalMiddlewares(newTestServer(&config.Config{})).GlobalErrorHandler(err, c)

	var body errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestGlobalErrorHandler(t *testing.T) {
	t.Run("validation errors keep their field list", func(t *testing.T) {
		status, body := serveError(t, errs.NewValidationFailedError([]errs.FieldError{
			{Field: "email", Reason: "invalid_format", Error: "has an invalid format"},
		}))

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, errs.CodeValidationFailed, body.Code)
		require.Len(t, body.Errors, 1)
		assert.Equal(t, "email", body.Errors[0].Field)
	})

	t.Run("missing rows become 404", func(t *testing.T) {
		status, body := serveError(t, fmt.Errorf("get: table:payments:%w", pgx.ErrNoRows))

		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "PAYMENT_NOT_FOUND", body.Code)
	})

	t.Run("unknown errors hide details", func(t *testing.T) {
		status, body := serveError(t, &pgconn.PgError{Code: "53300", Message: "too many connections for role portal"})

		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, "Internal Server Error", body.Message)
		assert.NotContains(t, body.Message, "portal")
	})

	t.Run("plain errors become 500", func(t *testing.T) {
		status, _ := serveError(t, errors.New("dial tcp: refused"))
		assert.Equal(t, http.StatusInternalServerError, status)
	})

	t.Run("unknown routes", func(t *testing.T) {
		status, body := serveError(t, echo.ErrNotFound)

		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "Route not found", body.Message)
	})
}

func TestRateLimit(t *testing.T) {
	cfg := &config.Config{RateLimit: config.RateLimitConfig{Enabled: true, RequestsPerSecond: 0.001, Burst: 1}}
	limit := NewRateLimitMiddleware(newTestServer(cfg)).Limit()

	e := echo.New()
	handler := limit(func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	call := func() error {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/customers", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		return handler(e.NewContext(req, httptest.NewRecorder()))
	}

	require.NoError(t, call())

	err := call()
	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusTooManyRequests, httpErr.Status)
}

func TestRateLimit_Disabled(t *testing.T) {
	limit := NewRateLimitMiddleware(newTestServer(&config.Config{})).Limit()

	e := echo.New()
	handler := limit(func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	for range 5 {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		assert.NoError(t, handler(e.NewContext(req, httptest.NewRecorder())))
	}
}

func TestRequestIDAndContextLogger(t *testing.T) {
	e := echo.New()
	s := newTestServer(&config.Config{})

	var requestID string
	var hasLogger bool
	handler := RequestID()(NewContextEnhancer(s).EnhanceContext()(func(c echo.Context) error {
		requestID = GetRequestID(c)
		_, hasLogger = c.Get(LoggerKey).(*zerolog.Logger)
		assert.NotNil(t, LoggerFromContext(c.Request().Context()))
		return nil
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	rec := httptest.NewRecorder()

	require.NoError(t, handler(e.NewContext(req, rec)))
	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "req-1", rec.Header().Get(RequestIDHeader))
	assert.True(t, hasLogger)
}

func TestAuthOptional_DisabledPassesThrough(t *testing.T) {
	mw := NewAuthMiddleware(newTestServer(&config.Config{})).Optional()

	called := false
	err := mw(func(c echo.Context) error {
		called = true
		return nil
	})(echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder()))

	require.NoError(t, err)
	assert.True(t, called)
}
