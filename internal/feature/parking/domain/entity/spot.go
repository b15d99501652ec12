// Package entity defines the parking domain models.
package entity

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"parksarthi_backend/internal/shared/geo"
)

// ParkingSpot represents a managed parking location.
type ParkingSpot struct {
	ID             string                             `gorm:"primaryKey;size:128" json:"id"`
	Location       string                             `gorm:"not null" json:"location"`
	TotalSlots     int                                `gorm:"not null" json:"total_slots"`
	AvailableSlots int                                `gorm:"not null" json:"available_slots"`
	PricePerHour   int                                `gorm:"not null" json:"price_per_hour"`
	Coordinates    datatypes.JSONType[geo.Coordinate] `json:"coordinates"`
	Amenities      datatypes.JSONSlice[string]        `json:"amenities"`
	IsActive       bool                               `gorm:"default:true" json:"is_active"`
}

// BeforeCreate assigns a UUID when no identifier was provided.
func (s *ParkingSpot) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
