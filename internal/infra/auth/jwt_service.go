// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"courtcrowd/config"
	"courtcrowd/internal/domain/service"
	"courtcrowd/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// supabaseTokenService validates HS256 access tokens issued by Supabase Auth.
type supabaseTokenService struct {
	secret   []byte
	audience string
	parser   *jwt.Parser
}

// NewJWTService is the constructor for the Supabase token service.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Supabase == nil || cfg.Supabase.JWTSecret == "" {
		return nil, errors.New("supabase jwt secret must be provided")
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
	}
	if cfg.Supabase.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Supabase.Audience))
	}

	return &supabaseTokenService{
		secret:   []byte(cfg.Supabase.JWTSecret),
		audience: cfg.Supabase.Audience,
		parser:   jwt.NewParser(opts...),
	}, nil
}

// ValidateToken checks the signature, expiry and audience of a token and returns its claims.
func (s *supabaseTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := s.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}
	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}

	return claims, nil
}
