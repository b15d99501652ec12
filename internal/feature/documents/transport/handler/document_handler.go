// Package handler provides HTTP handlers for the documents feature.
package handler

import (
	"context"
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"parksarthi_backend/internal/feature/documents/domain"
	"parksarthi_backend/internal/feature/documents/domain/entity"
	"parksarthi_backend/internal/feature/documents/transport/http/dto"
	"parksarthi_backend/internal/feature/documents/usecase"
	jwtmw "parksarthi_backend/internal/platform/jwt"
)

// DocumentUsecase defines the vault operations used by this handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type DocumentUsecase interface {
	Add(ctx context.Context, in usecase.AddInput) (*entity.Document, string, error)
	ListByUser(ctx context.Context, userID string) ([]entity.Document, error)
}

// DocumentHandler handles HTTP requests for the vehicle document vault.
type DocumentHandler struct {
	documents DocumentUsecase
}

// NewDocumentHandler creates a new instance of DocumentHandler.
func NewDocumentHandler(documents DocumentUsecase) *DocumentHandler {
	return &DocumentHandler{documents: documents}
}

// Add handles POST /api/documents for the authenticated user.
func (h *DocumentHandler) Add(c *gin.Context) {
	var req dto.AddDocumentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	var image []byte
	if req.Image != "" {
		decoded, err := base64.StdEncoding.DecodeString(req.Image)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid image encoding"})
			return
		}
		image = decoded
	}

	doc, scanned, err := h.documents.Add(c.Request.Context(), usecase.AddInput{
		UserID:     c.GetString(jwtmw.ContextUserID),
		Type:       req.Type,
		FileName:   req.FileName,
		FileURL:    req.FileURL,
		ExpiryDate: req.ExpiryDate,
		Image:      image,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidType) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid document type"})
			return
		}
		slog.Error("document filing failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not file document"})
		return
	}

	resp := gin.H{"document": doc}
	if scanned != "" {
		resp["scanned_text"] = scanned
	}
	c.JSON(http.StatusCreated, resp)
}

// List handles GET /api/documents for the authenticated user.
func (h *DocumentHandler) List(c *gin.Context) {
	docs, err := h.documents.ListByUser(c.Request.Context(), c.GetString(jwtmw.ContextUserID))
	if err != nil {
		slog.Error("document list failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list documents"})
		return
	}
	c.JSON(http.StatusOK, docs)
}

// ServiceHistory handles GET /api/service-history. Demo data, regenerated on
// every call.
func (h *DocumentHandler) ServiceHistory(c *gin.Context) {
	c.JSON(http.StatusOK, usecase.GenerateServiceHistory(time.Now()))
}
