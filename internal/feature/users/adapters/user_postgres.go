// Package adapters provides repository implementations for the users feature.
package adapters

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"parksarthi_backend/internal/feature/users/domain"
	"parksarthi_backend/internal/feature/users/domain/entity"
	"parksarthi_backend/internal/feature/users/usecase"
)

// userPostgres is the Postgres implementation of the UserRepository interface.
type userPostgres struct {
	db *gorm.DB
}

// Compile-time check that userPostgres implements UserRepository.
var _ usecase.UserRepository = (*userPostgres)(nil)

// NewUserPostgres creates a new instance of userPostgres with the given gorm.DB connection.
func NewUserPostgres(db *gorm.DB) *userPostgres {
	return &userPostgres{db: db}
}

// Create adds a user record to the database.
// A unique-constraint violation on the phone number maps to domain.ErrPhoneAlreadyExists.
func (r *userPostgres) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrPhoneAlreadyExists
		}
		return err
	}
	return nil
}

// FindByID retrieves a user by subject identifier.
func (r *userPostgres) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByPhone retrieves a user by phone number.
func (r *userPostgres) FindByPhone(ctx context.Context, phoneNumber string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("phone_number = ?", phoneNumber).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Update persists changes to an existing user record.
func (r *userPostgres) Update(ctx context.Context, u *entity.User) error {
	return r.db.WithContext(ctx).Save(u).Error
}

// isUniqueViolation reports whether err is a unique-constraint violation.
// Postgres signals SQLSTATE 23505 through pgconn; the sqlite driver used in
// tests reports a UNIQUE constraint message instead.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
