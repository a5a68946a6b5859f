package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"courtcrowd/internal/domain/service"
	"courtcrowd/internal/errors"
	mockSvc "courtcrowd/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		header     string
		query      string
		setup      func(m *mockSvc.MockTokenService)
		wantCode   int
		wantUserID string
	}{
		{
			name:   "bearer header",
			header: "Bearer good",
			setup: func(m *mockSvc.MockTokenService) {
				m.EXPECT().ValidateToken("good").
					Return(&service.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "user-1"}}, nil)
			},
			wantCode:   http.StatusOK,
			wantUserID: "user-1",
		},
		{
			name:  "query token",
			query: "?access_token=good",
			setup: func(m *mockSvc.MockTokenService) {
				m.EXPECT().ValidateToken("good").
					Return(&service.Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "user-2"}}, nil)
			},
			wantCode:   http.StatusOK,
			wantUserID: "user-2",
		},
		{
			name:     "missing header",
			setup:    func(*mockSvc.MockTokenService) {},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "not a bearer token",
			header:   "Basic dXNlcjpwYXNz",
			setup:    func(*mockSvc.MockTokenService) {},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:   "invalid token",
			header: "Bearer expired",
			setup: func(m *mockSvc.MockTokenService) {
				m.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired"))
			},
			wantCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tokens := mockSvc.NewMockTokenService(t)
			tt.setup(tokens)
			auth := NewAuthMiddleware(tokens)

			var gotUserID string
			e := echo.New()
			e.GET("/me", func(c echo.Context) error {
				gotUserID, _ = GetUserID(c)

				return c.NoContent(http.StatusOK)
			}, auth.Authenticate)

			req := httptest.NewRequest(http.MethodGet, "/me"+tt.query, nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantUserID, gotUserID)
		})
	}
}
