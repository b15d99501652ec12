// Package usecase implements business-inquiry intake.
package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"parksarthi_backend/internal/feature/inquiry/domain/entity"
)

// InquiryRepository abstracts inquiry persistence.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type InquiryRepository interface {
	Create(ctx context.Context, i *entity.BusinessInquiry) error
	List(ctx context.Context, status string) ([]entity.BusinessInquiry, error)
}

// inquiryUsecase records and lists partnership inquiries.
type inquiryUsecase struct {
	inquiries InquiryRepository
}

// NewInquiryUsecase creates a new instance of inquiryUsecase.
func NewInquiryUsecase(inquiries InquiryRepository) *inquiryUsecase {
	return &inquiryUsecase{inquiries: inquiries}
}

// Create stores a new pending inquiry.
func (u *inquiryUsecase) Create(ctx context.Context, i *entity.BusinessInquiry) error {
	i.Status = entity.StatusPending
	if err := u.inquiries.Create(ctx, i); err != nil {
		return fmt.Errorf("create inquiry: %w", err)
	}
	slog.Info("business inquiry received", "city", i.City, "looking_for", i.LookingFor)
	return nil
}

// List returns inquiries, optionally filtered by status.
func (u *inquiryUsecase) List(ctx context.Context, status string) ([]entity.BusinessInquiry, error) {
	return u.inquiries.List(ctx, status)
}
