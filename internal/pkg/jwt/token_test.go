package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/piresc/dokanbaki/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:     "test-secret-key-for-jwt-signing",
		Expiration: 60,
		Issuer:     "dokan-baki-test",
	}
}

func TestGenerateToken(t *testing.T) {
	cfg := getTestConfig()

	before := time.Now()
	tokenString, expiresAt, err := GenerateToken("u-1", "01712345678", RoleUser, cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	assert.GreaterOrEqual(t, expiresAt, before.Add(60*time.Minute).Unix())

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.Secret), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "u-1", claims["user_id"])
	assert.Equal(t, "01712345678", claims["mobile"])
	assert.Equal(t, RoleUser, claims["role"])
	assert.Equal(t, cfg.Issuer, claims["iss"])
	assert.Equal(t, "HS256", token.Header["alg"])
}

func TestValidateToken(t *testing.T) {
	cfg := getTestConfig()
	validToken, expiresAt, err := GenerateToken("u-1", "01712345678", RoleAdmin, cfg)
	require.NoError(t, err)

	tests := []struct {
		name        string
		setupToken  func() string
		secret      string
		expectError bool
	}{
		{
			name:       "Valid token",
			setupToken: func() string { return validToken },
			secret:     cfg.Secret,
		},
		{
			name:        "Invalid secret",
			setupToken:  func() string { return validToken },
			secret:      "wrong-secret",
			expectError: true,
		},
		{
			name:        "Malformed token",
			setupToken:  func() string { return "invalid.token.string" },
			secret:      cfg.Secret,
			expectError: true,
		},
		{
			name:        "Empty token",
			setupToken:  func() string { return "" },
			secret:      cfg.Secret,
			expectError: true,
		},
		{
			name: "Expired token",
			setupToken: func() string {
				expired := cfg
				expired.Expiration = -1
				token, _, _ := GenerateToken("u-1", "01712345678", RoleUser, expired)
				return token
			},
			secret:      cfg.Secret,
			expectError: true,
		},
		{
			name: "Missing role claim",
			setupToken: func() string {
				token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
					"user_id": "u-1",
					"exp":     time.Now().Add(time.Hour).Unix(),
				})
				s, _ := token.SignedString([]byte(cfg.Secret))
				return s
			},
			secret:      cfg.Secret,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := ValidateToken(tt.setupToken(), tt.secret)

			if tt.expectError {
				assert.ErrorIs(t, err, ErrInvalidToken)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "u-1", claims.UserID)
			assert.Equal(t, "01712345678", claims.Mobile)
			assert.Equal(t, RoleAdmin, claims.Role)
			assert.Equal(t, expiresAt, claims.Expiry)
		})
	}
}
