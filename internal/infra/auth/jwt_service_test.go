package auth

import (
	"testing"
	"time"

	"courtcrowd/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_supabase_secret_key_very_long_for_testing"

func testConfig() *config.Config {
	return &config.Config{
		Supabase: &config.SupabaseConfig{
			JWTSecret: testSecret,
			Audience:  "authenticated",
		},
	}
}

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)

	_, err = NewJWTService(&config.Config{Supabase: &config.SupabaseConfig{}})
	assert.Error(t, err)
}

func TestJWTService_ValidateToken(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(testConfig())
	require.NoError(t, err)

	now := time.Now()
	tests := []struct {
		name    string
		token   string
		wantErr bool
		wantSub string
	}{
		{
			name: "valid supabase token",
			token: signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
				"sub":   "u1",
				"aud":   "authenticated",
				"role":  "authenticated",
				"email": "player@example.com",
				"exp":   now.Add(time.Hour).Unix(),
			}),
			wantSub: "u1",
		},
		{
			name: "expired",
			token: signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
				"sub": "u1", "aud": "authenticated", "exp": now.Add(-time.Hour).Unix(),
			}),
			wantErr: true,
		},
		{
			name: "wrong secret",
			token: signToken(t, jwt.SigningMethodHS256, []byte("another-secret"), jwt.MapClaims{
				"sub": "u1", "aud": "authenticated", "exp": now.Add(time.Hour).Unix(),
			}),
			wantErr: true,
		},
		{
			name: "wrong audience",
			token: signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
				"sub": "u1", "aud": "anon", "exp": now.Add(time.Hour).Unix(),
			}),
			wantErr: true,
		},
		{
			name: "missing expiry",
			token: signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
				"sub": "u1", "aud": "authenticated",
			}),
			wantErr: true,
		},
		{
			name: "missing subject",
			token: signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
				"aud": "authenticated", "exp": now.Add(time.Hour).Unix(),
			}),
			wantErr: true,
		},
		{
			name: "wrong algorithm",
			token: signToken(t, jwt.SigningMethodHS512, []byte(testSecret), jwt.MapClaims{
				"sub": "u1", "aud": "authenticated", "exp": now.Add(time.Hour).Unix(),
			}),
			wantErr: true,
		},
		{
			name:    "garbage",
			token:   "clearly-not-a-jwt-token-format",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			claims, err := svc.ValidateToken(tt.token)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, claims)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSub, claims.UserID())
			assert.Equal(t, "authenticated", claims.Role)
			assert.Equal(t, "player@example.com", claims.Email)
		})
	}
}
