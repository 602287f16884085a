package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"salonbook/config"
)

func configureAdminCredential(t *testing.T, username, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	prevUser := config.AppConfig.AdminUsername
	prevHash := config.AppConfig.AdminPasswordHash
	config.AppConfig.AdminUsername = username
	config.AppConfig.AdminPasswordHash = string(hash)
	t.Cleanup(func() {
		config.AppConfig.AdminUsername = prevUser
		config.AppConfig.AdminPasswordHash = prevHash
	})
}

func TestCheckCredentials_AcceptsConfiguredPair(t *testing.T) {
	configureAdminCredential(t, "owner", "s3cret-pass")
	assert.NoError(t, checkCredentials("owner", "s3cret-pass"))
}

func TestCheckCredentials_RejectsWrongPassword(t *testing.T) {
	configureAdminCredential(t, "owner", "s3cret-pass")
	assert.ErrorIs(t, checkCredentials("owner", "wrong"), ErrInvalidCredentials)
}

func TestCheckCredentials_RejectsUnknownUsername(t *testing.T) {
	configureAdminCredential(t, "owner", "s3cret-pass")
	assert.ErrorIs(t, checkCredentials("intruder", "s3cret-pass"), ErrInvalidCredentials)
}

func TestCheckCredentials_RejectsEmptyInput(t *testing.T) {
	configureAdminCredential(t, "owner", "s3cret-pass")
	assert.ErrorIs(t, checkCredentials("", ""), ErrInvalidCredentials)
	assert.ErrorIs(t, checkCredentials("owner", ""), ErrInvalidCredentials)
	assert.ErrorIs(t, checkCredentials("", "s3cret-pass"), ErrInvalidCredentials)
}
