// Package usecase implements the vehicle document vault.
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"parksarthi_backend/internal/feature/documents/domain"
	"parksarthi_backend/internal/feature/documents/domain/entity"
)

// DocumentRepository abstracts document persistence.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type DocumentRepository interface {
	Create(ctx context.Context, d *entity.Document) error
	ListByUser(ctx context.Context, userID string) ([]entity.Document, error)
	Update(ctx context.Context, d *entity.Document) error
}

// TextScanner extracts text from an uploaded document image, used to assist
// filing. Scan failures are non-fatal.
type TextScanner interface {
	ScanText(ctx context.Context, imageData []byte) (string, error)
}

// AddInput carries the fields of a new document.
type AddInput struct {
	UserID     string
	Type       string
	FileName   string
	FileURL    string
	ExpiryDate *time.Time
	Image      []byte // optional, scanned when present
}

// documentUsecase stores documents and keeps their validity current.
type documentUsecase struct {
	documents DocumentRepository
	scanner   TextScanner
	now       func() time.Time
}

// NewDocumentUsecase creates a new instance of documentUsecase.
// scanner may be nil, in which case uploads are filed without a text scan.
func NewDocumentUsecase(documents DocumentRepository, scanner TextScanner) *documentUsecase {
	return &documentUsecase{documents: documents, scanner: scanner, now: time.Now}
}

// Add files a document. When an image is attached and a scanner is wired,
// the extracted text is logged for review; a scan failure never blocks the
// upload.
func (u *documentUsecase) Add(ctx context.Context, in AddInput) (*entity.Document, string, error) {
	switch in.Type {
	case entity.TypeLicense, entity.TypeRC, entity.TypePUC:
	default:
		return nil, "", fmt.Errorf("%w: %s", domain.ErrInvalidType, in.Type)
	}

	var scanned string
	if u.scanner != nil && len(in.Image) > 0 {
		text, err := u.scanner.ScanText(ctx, in.Image)
		if err != nil {
			slog.Warn("document text scan failed", "type", in.Type, "error", err)
		} else {
			scanned = text
		}
	}

	d := &entity.Document{
		UserID:     in.UserID,
		Type:       in.Type,
		FileName:   in.FileName,
		FileURL:    in.FileURL,
		ExpiryDate: in.ExpiryDate,
	}
	d.IsValid = !d.Expired(u.now())
	if err := u.documents.Create(ctx, d); err != nil {
		return nil, "", fmt.Errorf("create document: %w", err)
	}
	return d, scanned, nil
}

// ListByUser returns a user's documents with validity re-evaluated against
// the current time. A newly expired document is persisted as invalid.
func (u *documentUsecase) ListByUser(ctx context.Context, userID string) ([]entity.Document, error) {
	docs, err := u.documents.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := u.now()
	for i := range docs {
		if docs[i].IsValid && docs[i].Expired(now) {
			docs[i].IsValid = false
			if err := u.documents.Update(ctx, &docs[i]); err != nil {
				slog.Warn("could not persist expiry", "document", docs[i].ID, "error", err)
			}
		}
	}
	return docs, nil
}
