package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain-level error discrimination.
// Services wrap these so handlers can map to HTTP status codes without leaking infrastructure details.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrBadRequest   = errors.New("bad request")
	ErrUpstream     = errors.New("upstream failure")
)

// Named failures. Each wraps the category it is reported under.
var (
	ErrAlreadyExists       = fmt.Errorf("account already exists: %w", ErrConflict)
	ErrInvalidCredentials  = fmt.Errorf("invalid credentials: %w", ErrUnauthorized)
	ErrOTPInvalidOrExpired = fmt.Errorf("otp invalid or expired: %w", ErrUnauthorized)
	// ErrOTPMismatch is reported to callers exactly like an expired code.
	ErrOTPMismatch = fmt.Errorf("otp mismatch: %w", ErrOTPInvalidOrExpired)
)
