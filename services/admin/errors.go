package admin

import "errors"

var (
	// ErrInvalidCredentials is returned for any failed login attempt. The
	// reason (unknown user vs wrong password) is deliberately not disclosed.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrSessionInvalid is returned when a session token fails validation or
	// has been revoked or expired.
	ErrSessionInvalid = errors.New("session is invalid or expired")
)
