package middleware

import (
	"log/slog"
	"regexp"

	deliverycontext "courtcrowd/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// validRequestID bounds client supplied ids before they are echoed in headers and logs.
var validRequestID = regexp.MustCompile(`^[A-Za-z0-9._:-]{1,128}$`)

// RequestIDMiddleware assigns each request an id and a logger tagged with it.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process reuses a well-formed X-Request-Id from the client and generates one otherwise.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if !validRequestID.MatchString(requestID) {
			requestID = uuid.New().String()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		ctx := c.Request().Context()
		ctx = deliverycontext.WithRequestID(ctx, requestID)
		ctx = deliverycontext.WithLogger(ctx, m.logger.With(slog.String("request_id", requestID)))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
