// Package usecase implements the business logic for the phoneauth feature.
package usecase

import "errors"

var (
	// ErrInvalidInput is returned when a submitted value fails local validation.
	// It corresponds to a disabled affordance in the UI: no provider request is
	// made and no user notification is raised.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNoPendingChallenge is returned when an OTP is submitted without an
	// in-flight challenge to confirm against.
	ErrNoPendingChallenge = errors.New("no pending challenge")
)
