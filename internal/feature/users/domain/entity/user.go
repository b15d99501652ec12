// Package entity defines the domain entities for the users feature.
package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// User is the durable profile record for an authenticated identity.
// The ID matches the identity provider's subject identifier; records are
// created lazily the first time a session is observed without one, and are
// never deleted by the auth flow.
type User struct {
	// ID is the identity provider's subject identifier.
	ID string `gorm:"primaryKey;size:128" json:"id"`

	// PhoneNumber is the verified phone number, unique across all users.
	PhoneNumber string `gorm:"uniqueIndex;size:20;not null" json:"phone_number"`

	// Name is the optional display name.
	Name *string `json:"name"`

	// Email is the optional contact email.
	Email *string `json:"email"`

	// Points is the gamification points balance.
	Points int `gorm:"not null;default:0" json:"points"`

	// Level is the gamification level, derived from points.
	Level int `gorm:"not null;default:1" json:"level"`

	// TotalBookings counts completed and active bookings.
	TotalBookings int `gorm:"not null;default:0" json:"total_bookings"`

	// Achievements is the ordered list of earned achievement identifiers.
	Achievements datatypes.JSONSlice[string] `json:"achievements"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate assigns a UUID when no provider subject was supplied.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
