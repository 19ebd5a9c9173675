package auth

import "errors"

// Failure taxonomy for the auth core. The token-level errors (ErrTokenExpired,
// ErrInvalidSignature, ErrTokenMalformed) never cross the resolver boundary:
// callers of Resolve see only ErrUnauthenticated, whichever check failed.
var (
	// ErrUnauthenticated covers every way a bearer token can fail to resolve
	// to an active account.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrForbidden means the principal is known but lacks the required role.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidCredentials is returned for unknown email, missing stored
	// hash and wrong password alike, so login responses cannot be used to
	// probe which accounts exist.
	ErrInvalidCredentials = errors.New("incorrect email or password")

	ErrTokenExpired     = errors.New("token expired")
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrTokenMalformed   = errors.New("malformed token")
)
