// Package usecase implements the booking business logic.
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"parksarthi_backend/internal/feature/booking/domain/entity"
	userentity "parksarthi_backend/internal/feature/users/domain/entity"
)

// BookingRepository abstracts booking persistence.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type BookingRepository interface {
	Create(ctx context.Context, b *entity.Booking) error
	FindByID(ctx context.Context, id string) (*entity.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]entity.Booking, error)
	Update(ctx context.Context, b *entity.Booking) error
}

// Rewarder credits gamification rewards when a booking is made.
type Rewarder interface {
	RecordBooking(ctx context.Context, userID string, points int) (*userentity.User, error)
}

// CreateInput carries the fields of a new booking request.
type CreateInput struct {
	UserID        string
	VehicleNumber string
	Location      string
	SlotNumber    *string
	BookingTime   time.Time
	Duration      int
	IsPreBooked   bool
}

// bookingUsecase implements booking creation and lifecycle transitions.
type bookingUsecase struct {
	bookings BookingRepository
	rewards  Rewarder
}

// NewBookingUsecase creates a new instance of bookingUsecase.
// rewards may be nil, in which case no points are credited.
func NewBookingUsecase(bookings BookingRepository, rewards Rewarder) *bookingUsecase {
	return &bookingUsecase{bookings: bookings, rewards: rewards}
}

// Create stores a new active booking and credits the booking reward.
// A reward failure is logged but does not fail the booking.
func (u *bookingUsecase) Create(ctx context.Context, in CreateInput) (*entity.Booking, error) {
	b := &entity.Booking{
		UserID:        in.UserID,
		VehicleNumber: in.VehicleNumber,
		Location:      in.Location,
		SlotNumber:    in.SlotNumber,
		BookingTime:   in.BookingTime,
		Duration:      in.Duration,
		Status:        entity.StatusActive,
		IsPreBooked:   in.IsPreBooked,
		PointsEarned:  entity.DefaultPointsEarned,
	}
	if err := u.bookings.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	if u.rewards != nil {
		if _, err := u.rewards.RecordBooking(ctx, in.UserID, b.PointsEarned); err != nil {
			slog.Error("booking reward failed", "user", in.UserID, "booking", b.ID, "error", err)
		}
	}
	return b, nil
}

// Get retrieves a booking by identifier.
func (u *bookingUsecase) Get(ctx context.Context, id string) (*entity.Booking, error) {
	return u.bookings.FindByID(ctx, id)
}

// ListByUser returns all bookings of a user, newest first.
func (u *bookingUsecase) ListByUser(ctx context.Context, userID string) ([]entity.Booking, error) {
	return u.bookings.ListByUser(ctx, userID)
}

// Complete marks an active booking as completed.
func (u *bookingUsecase) Complete(ctx context.Context, id string) (*entity.Booking, error) {
	return u.transition(ctx, id, entity.StatusCompleted)
}

// Cancel marks an active booking as cancelled.
func (u *bookingUsecase) Cancel(ctx context.Context, id string) (*entity.Booking, error) {
	return u.transition(ctx, id, entity.StatusCancelled)
}

// transition moves an active booking to a terminal status. Terminal bookings
// reject further transitions with ErrBookingClosed.
func (u *bookingUsecase) transition(ctx context.Context, id, status string) (*entity.Booking, error) {
	b, err := u.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.Closed() {
		return nil, fmt.Errorf("%w: %s", ErrBookingClosed, b.Status)
	}

	b.Status = status
	if err := u.bookings.Update(ctx, b); err != nil {
		return nil, fmt.Errorf("persist status: %w", err)
	}
	slog.Info("booking status changed", "booking", id, "status", status)
	return b, nil
}
