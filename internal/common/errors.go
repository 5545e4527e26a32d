// Package common defines shared constants and sentinel errors used across
// client and server layers of Gamefolio. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Store boundary errors. ErrStoreUnavailable marks transient remote
	// failures; retrying the whole operation is the recovery path.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrValidationRejected is returned when the store refuses an insert or
	// update because of a constraint violation. The caller must correct the
	// input; retrying as-is will fail again.
	ErrValidationRejected = errors.New("validation rejected")

	// Credential gate errors. ErrCredentialCompute means the digest itself
	// could not be computed and must never be reported as a wrong secret.
	ErrCredentialCompute = errors.New("credential digest failure")
	ErrUnauthorized      = errors.New("unauthorized")

	// Session lifecycle errors.
	ErrNotReady           = errors.New("session not initialized")
	ErrAlreadyInitialized = errors.New("session already initialized")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
