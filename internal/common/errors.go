// Package common defines shared constants and sentinel errors used across
// client and server layers of CMSKeeper. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Validation errors caught before a request is sent.
	ErrorValidation = errors.New("validation error")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")

	// Login with bad credentials.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// Missing or rejected session credential on the client.
	ErrSessionInvalid = errors.New("session invalid")
)
