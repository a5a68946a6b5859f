package middleware

import (
	"log/slog"
	"strings"

	"courtcrowd/internal/delivery/api/response"
	deliverycontext "courtcrowd/internal/delivery/context"
	"courtcrowd/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const keyUserID = "userID"

// AuthMiddleware authenticates requests carrying a Supabase access token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the subject as the user id.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := bearerToken(c)
		if !ok {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header must carry a Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		userID := claims.UserID()
		c.Set(keyUserID, userID)
		ctx := deliverycontext.WithLoggerAttrs(c.Request().Context(), slog.String("user_id", userID))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// bearerToken reads the token from the Authorization header. Browsers cannot set headers on
// websocket upgrades, so the access_token query parameter is accepted as well.
func bearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		token := c.QueryParam("access_token")

		return token, token != ""
	}

	token, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found || token == "" {
		return "", false
	}

	return token, true
}

// GetUserID returns the authenticated user id. It must be used after Authenticate.
func GetUserID(c echo.Context) (string, bool) {
	userID, ok := c.Get(keyUserID).(string)

	return userID, ok && userID != ""
}
