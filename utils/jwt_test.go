package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndVerifyToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "rahasia-test")

	token, err := GenerateToken("user-123", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "rahasia-satu")
	token, err := GenerateToken("user-123", "user")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "rahasia-dua")
	_, err = VerifyToken(token)
	assert.Error(t, err)
}

func TestVerifyTokenGarbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "rahasia-test")
	_, err := VerifyToken("bukan.token.jwt")
	assert.Error(t, err)
}
