// Package entity defines the booking domain model.
package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking status values.
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// DefaultPointsEarned is the reward credited for a standard booking.
const DefaultPointsEarned = 50

// Booking represents a parking reservation.
type Booking struct {
	ID            string    `gorm:"primaryKey;size:128" json:"id"`
	UserID        string    `gorm:"size:128;index" json:"user_id"`
	VehicleNumber string    `gorm:"not null" json:"vehicle_number"`
	Location      string    `gorm:"not null" json:"location"`
	SlotNumber    *string   `json:"slot_number,omitempty"`
	BookingTime   time.Time `gorm:"not null" json:"booking_time"`
	Duration      int       `gorm:"not null" json:"duration"` // minutes
	Status        string    `gorm:"not null;default:active" json:"status"`
	IsPreBooked   bool      `gorm:"default:false" json:"is_pre_booked"`
	PointsEarned  int       `gorm:"default:50" json:"points_earned"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// BeforeCreate assigns a UUID when no identifier was provided.
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// Closed reports whether the booking has reached a terminal status.
func (b *Booking) Closed() bool {
	return b.Status == StatusCompleted || b.Status == StatusCancelled
}
