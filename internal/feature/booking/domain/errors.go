// Package domain defines booking domain errors.
package domain

import "errors"

// ErrBookingNotFound is returned when no booking matches the identifier.
var ErrBookingNotFound = errors.New("booking not found")
