package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sol1corejz/ecotrack/cmd/config"
)

func TestTokenRoundTrip(t *testing.T) {
	config.JWTSecret = "test-secret"

	userID := uuid.New()
	token, err := GenerateToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := GetUserID(token)
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestGetUserIDRejectsGarbage(t *testing.T) {
	config.JWTSecret = "test-secret"

	_, err := GetUserID("not-a-token")
	assert.Error(t, err)
}

func TestGetUserIDRejectsWrongSecret(t *testing.T) {
	config.JWTSecret = "test-secret"
	token, err := GenerateToken(uuid.New())
	require.NoError(t, err)

	config.JWTSecret = "another-secret"
	_, err = GetUserID(token)
	assert.Error(t, err)
}
