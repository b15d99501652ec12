// Package entity defines the business-inquiry domain model.
package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Inquiry status values.
const (
	StatusPending  = "pending"
	StatusResolved = "resolved"
)

// BusinessInquiry is a partnership request submitted through the site.
type BusinessInquiry struct {
	ID         string    `gorm:"primaryKey;size:128" json:"id"`
	LookingFor string    `gorm:"not null" json:"looking_for"`
	FullName   string    `gorm:"not null" json:"full_name"`
	Email      string    `gorm:"not null" json:"email"`
	Mobile     string    `gorm:"not null" json:"mobile"`
	City       string    `gorm:"not null" json:"city"`
	Message    *string   `json:"message,omitempty"`
	Status     string    `gorm:"default:pending" json:"status"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// BeforeCreate assigns a UUID when no identifier was provided.
func (i *BusinessInquiry) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
