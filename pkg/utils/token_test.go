package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	config := JWTConfig{Secret: "test-secret", ExpiryDays: 7}
	userID := uuid.New()

	token, expiresAt, err := GenerateToken(userID, "manager", config)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), expiresAt, time.Minute)

	parsedID, role, err := ParseToken(token, config.Secret)
	require.NoError(t, err)
	assert.Equal(t, userID, parsedID)
	assert.Equal(t, "manager", role)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	config := JWTConfig{Secret: "test-secret", ExpiryDays: 7}

	token, _, err := GenerateToken(uuid.New(), "user", config)
	require.NoError(t, err)

	_, _, err = ParseToken(token, "other-secret")
	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	config := JWTConfig{Secret: "test-secret", ExpiryDays: -1}

	token, _, err := GenerateToken(uuid.New(), "user", config)
	require.NoError(t, err)

	_, _, err = ParseToken(token, config.Secret)
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, _, err := ParseToken("not-a-token", "test-secret")
	assert.Error(t, err)
}
