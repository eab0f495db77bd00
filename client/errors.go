package client

import crerr "github.com/cockroachdb/errors"

// Sentinel errors callers branch on. Every error returned by the client
// wraps exactly one of these, or none for programming mistakes like a nil
// config.
var (
	// ErrAuthExpired means the service rejected the bearer credential.
	// The session store has already been cleared when this is returned.
	ErrAuthExpired = crerr.New("authentication expired")

	// ErrUnavailable covers transport failures, 5xx responses and an
	// open circuit breaker.
	ErrUnavailable = crerr.New("service unavailable")

	// ErrValidation means the service rejected the request payload.
	ErrValidation = crerr.New("request rejected")

	// ErrNotFound means the requested entity does not exist.
	ErrNotFound = crerr.New("not found")
)
