// Package usecase implements the business logic for the users feature.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"parksarthi_backend/internal/feature/users/domain"
	"parksarthi_backend/internal/feature/users/domain/entity"
)

// UserRepository abstracts the persistence layer for user records.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user record.
	// It returns domain.ErrPhoneAlreadyExists when the phone number is taken.
	Create(ctx context.Context, u *entity.User) error

	// FindByID retrieves a user matching the subject identifier.
	// It returns domain.ErrUserNotFound when no record exists.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByPhone retrieves a user matching the phone number.
	// It returns domain.ErrUserNotFound when no record exists.
	FindByPhone(ctx context.Context, phoneNumber string) (*entity.User, error)

	// Update persists changes to an existing user record.
	Update(ctx context.Context, u *entity.User) error
}

// userUsecase implements profile management and lazy provisioning.
type userUsecase struct {
	users UserRepository
}

// NewUserUsecase creates a new instance of userUsecase.
func NewUserUsecase(users UserRepository) *userUsecase {
	return &userUsecase{users: users}
}

// EnsureUser provisions a user record for a newly observed session subject.
//
// Only a not-found lookup triggers creation; any other lookup error is
// returned as-is so the caller can log it and let a later session event retry.
// A record that already exists is left untouched, so repeated observations of
// the same session (e.g. a page reload) never create duplicates.
func (u *userUsecase) EnsureUser(ctx context.Context, id, phoneNumber, name, email string) (*entity.User, error) {
	existing, err := u.users.FindByID(ctx, id)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("user lookup: %w", err)
	}

	user := &entity.User{
		ID:          id,
		PhoneNumber: phoneNumber,
		Name:        optional(name),
		Email:       optional(email),
		Level:       1,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("provision user: %w", err)
	}
	slog.Info("user provisioned", "id", id, "phone", phoneNumber)
	return user, nil
}

// GetUser retrieves a user record by subject identifier.
func (u *userUsecase) GetUser(ctx context.Context, id string) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}

// GetUserByPhone retrieves a user record by phone number.
func (u *userUsecase) GetUserByPhone(ctx context.Context, phoneNumber string) (*entity.User, error) {
	return u.users.FindByPhone(ctx, phoneNumber)
}

// CreateUser creates a user record with schema defaults for the gamification
// fields. id may be empty, in which case one is generated by the store.
func (u *userUsecase) CreateUser(ctx context.Context, id, phoneNumber string, name, email *string) (*entity.User, error) {
	user := &entity.User{
		ID:          id,
		PhoneNumber: phoneNumber,
		Name:        name,
		Email:       email,
		Level:       1,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
