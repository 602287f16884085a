package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonbook/config"
)

func withJWTSecret(t *testing.T, secret string) {
	t.Helper()
	prev := config.AppConfig.JWTSecret
	config.AppConfig.JWTSecret = secret
	t.Cleanup(func() { config.AppConfig.JWTSecret = prev })
}

func TestGenerateAndValidateToken(t *testing.T) {
	withJWTSecret(t, "test-secret")

	tokenString, err := GenerateToken("admin", time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	token, err := ValidateToken(tokenString)
	require.NoError(t, err)
	assert.True(t, token.Valid)

	subject, err := ExtractSubjectFromToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "admin", subject)
}

func TestValidateToken_RejectsWrongSecret(t *testing.T) {
	withJWTSecret(t, "test-secret")
	tokenString, err := GenerateToken("admin", time.Minute)
	require.NoError(t, err)

	withJWTSecret(t, "other-secret")
	_, err = ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestValidateToken_RejectsExpiredToken(t *testing.T) {
	withJWTSecret(t, "test-secret")
	tokenString, err := GenerateToken("admin", -time.Minute)
	require.NoError(t, err)

	_, err = ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestHashToken_IsDeterministic(t *testing.T) {
	assert.Equal(t, HashToken("abc"), HashToken("abc"))
	assert.NotEqual(t, HashToken("abc"), HashToken("abd"))
}
