// Package entity defines the vehicle-document domain model.
package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Document types.
const (
	TypeLicense = "license"
	TypeRC      = "rc"
	TypePUC     = "puc"
)

// Document is a stored vehicle document (license, registration, pollution
// certificate).
type Document struct {
	ID         string     `gorm:"primaryKey;size:128" json:"id"`
	UserID     string     `gorm:"size:128;index" json:"user_id"`
	Type       string     `gorm:"not null" json:"type"`
	FileName   string     `gorm:"not null" json:"file_name"`
	FileURL    string     `gorm:"not null" json:"file_url"`
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`
	IsValid    bool       `gorm:"default:true" json:"is_valid"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

// BeforeCreate assigns a UUID when no identifier was provided.
func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

// Expired reports whether the document's expiry date has passed.
func (d *Document) Expired(now time.Time) bool {
	return d.ExpiryDate != nil && d.ExpiryDate.Before(now)
}
