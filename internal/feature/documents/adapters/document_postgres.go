// Package adapters provides repository implementations for the documents feature.
package adapters

import (
	"context"

	"gorm.io/gorm"

	"parksarthi_backend/internal/feature/documents/domain/entity"
	"parksarthi_backend/internal/feature/documents/usecase"
)

// documentPostgres is the Postgres implementation of the DocumentRepository interface.
type documentPostgres struct {
	db *gorm.DB
}

// Compile-time check that documentPostgres implements DocumentRepository.
var _ usecase.DocumentRepository = (*documentPostgres)(nil)

// NewDocumentPostgres creates a new instance of documentPostgres with the given gorm.DB connection.
func NewDocumentPostgres(db *gorm.DB) *documentPostgres {
	return &documentPostgres{db: db}
}

// Create adds a document record to the database.
func (r *documentPostgres) Create(ctx context.Context, d *entity.Document) error {
	return r.db.WithContext(ctx).Create(d).Error
}

// ListByUser retrieves all documents of a user, newest first.
func (r *documentPostgres) ListByUser(ctx context.Context, userID string) ([]entity.Document, error) {
	var docs []entity.Document
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}

// Update persists changes to an existing document record.
func (r *documentPostgres) Update(ctx context.Context, d *entity.Document) error {
	return r.db.WithContext(ctx).Save(d).Error
}
