package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the claims carried by a Supabase access token.
type Claims struct {
	Role  string `json:"role,omitempty"`
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// UserID returns the authenticated user id, carried in the subject claim.
func (c *Claims) UserID() string {
	return c.Subject
}

// TokenService validates access tokens issued by the auth backend.
type TokenService interface {
	// ValidateToken checks the signature and expiry of a token string and returns its claims.
	ValidateToken(tokenString string) (*Claims, error)
}
