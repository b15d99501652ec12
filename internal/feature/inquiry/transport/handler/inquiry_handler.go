// Package handler provides HTTP handlers for the inquiry feature.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"parksarthi_backend/internal/feature/inquiry/domain/entity"
	"parksarthi_backend/internal/feature/inquiry/transport/http/dto"
)

// InquiryUsecase defines the inquiry operations used by this handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type InquiryUsecase interface {
	Create(ctx context.Context, i *entity.BusinessInquiry) error
	List(ctx context.Context, status string) ([]entity.BusinessInquiry, error)
}

// InquiryHandler handles HTTP requests for business inquiries.
type InquiryHandler struct {
	inquiries InquiryUsecase
}

// NewInquiryHandler creates a new instance of InquiryHandler.
func NewInquiryHandler(inquiries InquiryUsecase) *InquiryHandler {
	return &InquiryHandler{inquiries: inquiries}
}

// Create handles POST /api/business-inquiries.
func (h *InquiryHandler) Create(c *gin.Context) {
	var req dto.CreateInquiryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	inq := &entity.BusinessInquiry{
		LookingFor: req.LookingFor,
		FullName:   req.FullName,
		Email:      req.Email,
		Mobile:     req.Mobile,
		City:       req.City,
		Message:    req.Message,
	}
	if err := h.inquiries.Create(c.Request.Context(), inq); err != nil {
		slog.Error("inquiry creation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not submit inquiry"})
		return
	}
	c.JSON(http.StatusCreated, inq)
}

// List handles GET /api/business-inquiries?status=.
func (h *InquiryHandler) List(c *gin.Context) {
	inquiries, err := h.inquiries.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		slog.Error("inquiry list failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list inquiries"})
		return
	}
	c.JSON(http.StatusOK, inquiries)
}
