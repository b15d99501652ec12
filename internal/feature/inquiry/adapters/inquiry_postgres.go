// Package adapters provides repository implementations for the inquiry feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"parksarthi_backend/internal/feature/inquiry/domain/entity"
	"parksarthi_backend/internal/feature/inquiry/usecase"
)

// inquiryPostgres is the Postgres implementation of the InquiryRepository interface.
type inquiryPostgres struct {
	db *gorm.DB
}

// Compile-time check that inquiryPostgres implements InquiryRepository.
var _ usecase.InquiryRepository = (*inquiryPostgres)(nil)

// NewInquiryPostgres creates a new instance of inquiryPostgres with the given gorm.DB connection.
func NewInquiryPostgres(db *gorm.DB) *inquiryPostgres {
	return &inquiryPostgres{db: db}
}

// Create adds an inquiry record to the database.
func (r *inquiryPostgres) Create(ctx context.Context, i *entity.BusinessInquiry) error {
	return r.db.WithContext(ctx).Create(i).Error
}

// List retrieves inquiries, newest first, optionally filtered by status.
func (r *inquiryPostgres) List(ctx context.Context, status string) ([]entity.BusinessInquiry, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var inquiries []entity.BusinessInquiry
	if err := q.Find(&inquiries).Error; err != nil {
		return nil, err
	}
	return inquiries, nil
}
