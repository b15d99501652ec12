// Package handler provides HTTP handlers for the booking feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"parksarthi_backend/internal/feature/booking/domain"
	"parksarthi_backend/internal/feature/booking/domain/entity"
	"parksarthi_backend/internal/feature/booking/transport/http/dto"
	"parksarthi_backend/internal/feature/booking/usecase"
	jwtmw "parksarthi_backend/internal/platform/jwt"
)

// BookingUsecase defines the booking operations used by this handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type BookingUsecase interface {
	Create(ctx context.Context, in usecase.CreateInput) (*entity.Booking, error)
	Get(ctx context.Context, id string) (*entity.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]entity.Booking, error)
	Complete(ctx context.Context, id string) (*entity.Booking, error)
	Cancel(ctx context.Context, id string) (*entity.Booking, error)
}

// BookingHandler handles HTTP requests for parking bookings.
type BookingHandler struct {
	bookings BookingUsecase
}

// NewBookingHandler creates a new instance of BookingHandler.
func NewBookingHandler(bookings BookingUsecase) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// Create handles POST /api/bookings. The owner is the authenticated user.
func (h *BookingHandler) Create(c *gin.Context) {
	var req dto.CreateBookingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	b, err := h.bookings.Create(c.Request.Context(), usecase.CreateInput{
		UserID:        c.GetString(jwtmw.ContextUserID),
		VehicleNumber: req.VehicleNumber,
		Location:      req.Location,
		SlotNumber:    req.SlotNumber,
		BookingTime:   req.BookingTime,
		Duration:      req.Duration,
		IsPreBooked:   req.IsPreBooked,
	})
	if err != nil {
		slog.Error("booking creation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create booking"})
		return
	}
	c.JSON(http.StatusCreated, b)
}

// List handles GET /api/bookings for the authenticated user.
func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.bookings.ListByUser(c.Request.Context(), c.GetString(jwtmw.ContextUserID))
	if err != nil {
		slog.Error("booking list failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// Get handles GET /api/bookings/:id.
func (h *BookingHandler) Get(c *gin.Context) {
	b, err := h.bookings.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "booking lookup failed")
		return
	}
	c.JSON(http.StatusOK, b)
}

// Complete handles POST /api/bookings/:id/complete.
func (h *BookingHandler) Complete(c *gin.Context) {
	h.transition(c, h.bookings.Complete, "complete failed")
}

// Cancel handles POST /api/bookings/:id/cancel.
func (h *BookingHandler) Cancel(c *gin.Context) {
	h.transition(c, h.bookings.Cancel, "cancel failed")
}

func (h *BookingHandler) transition(c *gin.Context, fn func(context.Context, string) (*entity.Booking, error), msg string) {
	b, err := fn(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, usecase.ErrBookingClosed) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		h.fail(c, err, msg)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) fail(c *gin.Context, err error, msg string) {
	if errors.Is(err, domain.ErrBookingNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}
	slog.Error(msg, "booking", c.Param("id"), "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
