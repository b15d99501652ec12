// Package domain defines domain-level errors for the phoneauth feature.
package domain

import "errors"

// Domain errors for phone authentication operations.
// These mirror the error taxonomy surfaced by the identity provider boundary
// and should be handled appropriately by upper layers.
var (
	// ErrInvalidNumber indicates the provider rejected the phone number as malformed.
	ErrInvalidNumber = errors.New("invalid phone number")

	// ErrRateLimited indicates the provider refused to issue another challenge for now.
	ErrRateLimited = errors.New("too many attempts, try again later")

	// ErrInvalidCode indicates the submitted OTP did not match the pending challenge.
	ErrInvalidCode = errors.New("invalid verification code")

	// ErrCodeExpired indicates the pending challenge has expired and must be re-issued.
	ErrCodeExpired = errors.New("verification code expired")

	// ErrChallengeNotFound indicates no pending challenge exists for the given handle.
	ErrChallengeNotFound = errors.New("challenge not found")
)
