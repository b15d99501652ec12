// Package domain defines parking domain errors.
package domain

import "errors"

// ErrNoSpots is returned when no active parking spot is available.
var ErrNoSpots = errors.New("no parking spots available")
