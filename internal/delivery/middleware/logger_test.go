package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"courtcrowd/config"
	deliverycontext "courtcrowd/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoggedEcho(t *testing.T, debug bool) (*echo.Echo, *bytes.Buffer) {
	t.Helper()

	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)
	e.GET("/health", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	e.GET("/courts/:id", func(c echo.Context) error {
		c.Set("userID", "user-1")

		return c.String(http.StatusOK, deliverycontext.GetRequestIDFromContext(c.Request().Context()))
	})
	e.GET("/missing", func(echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "gone")
	})

	return e, buf
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{name: "client id reused", header: "abc-123", wantSame: true},
		{name: "missing id generated", header: ""},
		{name: "malformed id replaced", header: "bad id\twith spaces"},
		{name: "oversized id replaced", header: strings.Repeat("a", 129)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e, _ := newLoggedEcho(t, false)
			req := httptest.NewRequest(http.MethodGet, "/courts/c1", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			require.NotEmpty(t, got)
			assert.Equal(t, got, rec.Body.String())
			if tt.wantSame {
				assert.Equal(t, tt.header, got)
			} else {
				assert.NotEqual(t, tt.header, got)
			}
		})
	}
}

func TestLoggerMiddleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		debug   bool
		target  string
		wantLog bool
		want    []string
	}{
		{name: "success silent without debug", target: "/courts/c1"},
		{
			name:    "success logged in debug",
			debug:   true,
			target:  "/courts/c1?access_token=secret&x=1",
			wantLog: true,
			want:    []string{`"route":"/courts/:id"`, `"user_id":"user-1"`, `"status":200`, "REDACTED", `"request_id"`},
		},
		{name: "health quiet in debug", debug: true, target: "/health"},
		{
			name:    "failure always logged",
			target:  "/missing",
			wantLog: true,
			want:    []string{`"status":404`, `"level":"WARN"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e, buf := newLoggedEcho(t, tt.debug)
			e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tt.target, nil))

			if !tt.wantLog {
				assert.Empty(t, buf.String())

				return
			}
			out := buf.String()
			assert.Contains(t, out, `"msg":"HTTP Request"`)
			assert.NotContains(t, out, "secret")
			for _, want := range tt.want {
				assert.Contains(t, out, want)
			}
		})
	}
}
