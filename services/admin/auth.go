package admin

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/go-redis/redis/v8"
	"golang.org/x/crypto/bcrypt"

	"salonbook/config"
	"salonbook/utils"
)

const sessionKeyPrefix = "admin_session:"

// checkCredentials compares the submitted pair against the configured admin
// username and bcrypt password hash. The hash comparison runs on both
// branches so a wrong username costs the same as a wrong password.
func checkCredentials(username, password string) error {
	if username == "" || password == "" {
		return ErrInvalidCredentials
	}

	hash := []byte(config.AppConfig.AdminPasswordHash)
	if subtle.ConstantTimeCompare([]byte(username), []byte(config.AppConfig.AdminUsername)) != 1 {
		bcrypt.CompareHashAndPassword(hash, []byte(password))
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// Login verifies the submitted credential pair against the configured admin
// username and bcrypt password hash. On success it issues a signed session
// token and records its hash in Redis so the session can be revoked.
func (svc *DefaultAuthService) Login(ctx context.Context, username, password string) (string, error) {
	if err := checkCredentials(username, password); err != nil {
		return "", err
	}

	token, err := utils.GenerateToken(username, svc.SessionTTL)
	if err != nil {
		return "", fmt.Errorf("failed to issue session token: %w", err)
	}

	key := sessionKeyPrefix + utils.HashToken(token)
	if err := svc.Sessions.Set(ctx, key, username, svc.SessionTTL).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	return token, nil
}

// Logout revokes the session behind the given token. Revoking an unknown or
// already-expired token is not an error.
func (svc *DefaultAuthService) Logout(ctx context.Context, token string) error {
	key := sessionKeyPrefix + utils.HashToken(token)
	if err := svc.Sessions.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}
	return nil
}

// Verify checks the token signature and that the session has not been
// revoked or expired.
func (svc *DefaultAuthService) Verify(ctx context.Context, token string) error {
	if _, err := utils.ValidateToken(token); err != nil {
		return ErrSessionInvalid
	}

	key := sessionKeyPrefix + utils.HashToken(token)
	if err := svc.Sessions.Get(ctx, key).Err(); err != nil {
		if err == redis.Nil {
			return ErrSessionInvalid
		}
		return fmt.Errorf("failed to look up session: %w", err)
	}
	return nil
}
