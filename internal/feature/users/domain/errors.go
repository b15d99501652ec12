// Package domain defines domain-level errors for the users feature.
package domain

import "errors"

var (
	// ErrUserNotFound indicates that no user record exists for the given criteria.
	ErrUserNotFound = errors.New("user not found")

	// ErrPhoneAlreadyExists indicates that a user with the given phone number
	// already exists. Phone numbers are unique across all user records.
	ErrPhoneAlreadyExists = errors.New("user with this phone number already exists")
)
