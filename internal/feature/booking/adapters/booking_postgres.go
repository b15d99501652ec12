// Package adapters provides repository implementations for the booking feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"parksarthi_backend/internal/feature/booking/domain"
	"parksarthi_backend/internal/feature/booking/domain/entity"
	"parksarthi_backend/internal/feature/booking/usecase"
)

// bookingPostgres is the Postgres implementation of the BookingRepository interface.
type bookingPostgres struct {
	db *gorm.DB
}

// Compile-time check that bookingPostgres implements BookingRepository.
var _ usecase.BookingRepository = (*bookingPostgres)(nil)

// NewBookingPostgres creates a new instance of bookingPostgres with the given gorm.DB connection.
func NewBookingPostgres(db *gorm.DB) *bookingPostgres {
	return &bookingPostgres{db: db}
}

// Create adds a booking record to the database.
func (r *bookingPostgres) Create(ctx context.Context, b *entity.Booking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

// FindByID retrieves a booking by identifier.
func (r *bookingPostgres) FindByID(ctx context.Context, id string) (*entity.Booking, error) {
	var b entity.Booking
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}

// ListByUser retrieves all bookings of a user, newest first.
func (r *bookingPostgres) ListByUser(ctx context.Context, userID string) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("booking_time DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// Update persists changes to an existing booking record.
func (r *bookingPostgres) Update(ctx context.Context, b *entity.Booking) error {
	return r.db.WithContext(ctx).Save(b).Error
}
