// Package usecase implements the business logic for the wallet feature.
package usecase

import "errors"

var (
	// ErrInsufficientPoints is returned when a redemption costs more than the balance.
	ErrInsufficientPoints = errors.New("insufficient points")

	// ErrUnknownAchievement is returned for achievement IDs not in the catalog.
	ErrUnknownAchievement = errors.New("unknown achievement")
)
