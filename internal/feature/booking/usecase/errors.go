package usecase

import "errors"

// ErrBookingClosed is returned when a status transition targets a booking
// that is already completed or cancelled.
var ErrBookingClosed = errors.New("booking is already closed")
