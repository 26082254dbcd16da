package utils

import (
	"testing"

	appErrors "classbook/pkg/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

const testSecret = "unit-test-secret"

func TestGenerateTokenPair_Roundtrip(t *testing.T) {
	userID := uuid.New()

	pair, err := GenerateTokenPair(userID, "student@example.com", "user", testSecret, 1, 168)
	assert.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.Equal(t, int64(3600), pair.ExpiresIn)

	claims, err := ValidateToken(pair.AccessToken, testSecret)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "student@example.com", claims.Email)
	assert.Equal(t, "user", claims.Role)
	assert.Equal(t, "student@example.com", claims.Subject)
}

func TestValidateToken_Failures(t *testing.T) {
	userID := uuid.New()
	pair, err := GenerateTokenPair(userID, "student@example.com", "user", testSecret, 1, 168)
	assert.NoError(t, err)

	expired, err := GenerateTokenPair(userID, "student@example.com", "user", testSecret, -1, 168)
	assert.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		secret  string
		wantErr error
	}{
		{name: "wrong secret", token: pair.AccessToken, secret: "another-secret", wantErr: appErrors.ErrInvalidToken},
		{name: "malformed token", token: "garbage.token.value", secret: testSecret, wantErr: appErrors.ErrInvalidToken},
		{name: "empty token", token: "", secret: testSecret, wantErr: appErrors.ErrInvalidToken},
		{name: "expired token", token: expired.AccessToken, secret: testSecret, wantErr: appErrors.ErrExpiredToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := ValidateToken(tt.token, tt.secret)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
