package middleware

import (
	"log/slog"
	"net/url"
	"time"

	"courtcrowd/config"
	deliverycontext "courtcrowd/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// quietPaths are polled by probes and scrapers and only logged on failure.
var quietPaths = map[string]struct{}{
	"/health":  {},
	"/metrics": {},
}

// redactedParams never reach the access log. Websocket clients pass their token in the query.
var redactedParams = []string{"access_token"}

// LoggerMiddleware writes one access log line per request.
// Failed requests are always logged; successful ones only in debug mode.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			// Let the error handler write the response so the logged status is final.
			c.Error(err)
		}

		status := c.Response().Status
		if status < 400 && (!m.debug || isQuiet(c)) {
			return nil
		}
		m.logRequest(c, start, status, err)

		return nil
	}
}

func isQuiet(c echo.Context) bool {
	_, ok := quietPaths[c.Request().URL.Path]

	return ok
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, status int, err error) {
	req := c.Request()

	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.String("route", c.Path()),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}
	if userID, ok := c.Get("userID").(string); ok && userID != "" {
		fields = append(fields, slog.String("user_id", userID))
	}
	if query := redactQuery(req.URL.Query()); query != "" {
		fields = append(fields, slog.String("query", query))
	}
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	level := slog.LevelInfo
	switch {
	case status >= 500:
		level = slog.LevelError
	case status >= 400:
		level = slog.LevelWarn
	}

	// The request-scoped logger already carries request_id.
	logger := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger)
	logger.LogAttrs(req.Context(), level, "HTTP Request", fields...)
}

func redactQuery(values url.Values) string {
	if len(values) == 0 {
		return ""
	}
	for _, key := range redactedParams {
		if values.Has(key) {
			values.Set(key, "REDACTED")
		}
	}

	return values.Encode()
}
