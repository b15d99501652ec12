// Package handler provides HTTP handlers for the users feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"parksarthi_backend/internal/feature/users/domain"
	"parksarthi_backend/internal/feature/users/domain/entity"
	"parksarthi_backend/internal/feature/users/transport/http/dto"
)

// UserUsecase defines the profile operations used by this handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type UserUsecase interface {
	GetUser(ctx context.Context, id string) (*entity.User, error)
	GetUserByPhone(ctx context.Context, phoneNumber string) (*entity.User, error)
	CreateUser(ctx context.Context, id, phoneNumber string, name, email *string) (*entity.User, error)
}

// UserHandler handles HTTP requests for user records.
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler creates a new instance of UserHandler.
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// Get handles GET /api/users/:id.
// A missing record returns 404, which is the signal the provisioning listener
// relies on to create the record lazily.
func (h *UserHandler) Get(c *gin.Context) {
	id := c.Param("id")

	user, err := h.users.GetUser(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		slog.Error("user lookup failed", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// GetByPhone handles GET /api/users?phone=+91XXXXXXXXXX.
func (h *UserHandler) GetByPhone(c *gin.Context) {
	phone := c.Query("phone")
	if phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "phone query parameter required"})
		return
	}

	user, err := h.users.GetUserByPhone(c.Request.Context(), phone)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		slog.Error("user lookup by phone failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// Create handles POST /api/users.
// - binds the request JSON to CreateUserReq
// - validation errors return 400
// - a duplicate phone number returns 409
// - on success returns 201 with the created record
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create user validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := h.users.CreateUser(c.Request.Context(), req.ID, req.PhoneNumber, req.Name, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrPhoneAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "phone number already registered"})
			return
		}
		slog.Error("create user failed", "phone", req.PhoneNumber, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}

	slog.Info("user created", "id", user.ID, "phone", user.PhoneNumber)
	c.JSON(http.StatusCreated, user)
}
