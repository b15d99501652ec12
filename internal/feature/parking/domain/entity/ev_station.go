package entity

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"parksarthi_backend/internal/shared/geo"
)

// EVStation represents an electric-vehicle charging station.
type EVStation struct {
	ID             string                             `gorm:"primaryKey;size:128" json:"id"`
	Name           string                             `gorm:"not null" json:"name"`
	Location       string                             `gorm:"not null" json:"location"`
	Coordinates    datatypes.JSONType[geo.Coordinate] `json:"coordinates"`
	AvailablePorts int                                `gorm:"default:0" json:"available_ports"`
	TotalPorts     int                                `gorm:"not null" json:"total_ports"`
	PricePerKwh    int                                `gorm:"not null" json:"price_per_kwh"`
	IsActive       bool                               `gorm:"default:true" json:"is_active"`
}

// BeforeCreate assigns a UUID when no identifier was provided.
func (s *EVStation) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
