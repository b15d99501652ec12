// Package handler provides HTTP handlers for the wallet feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	usersdomain "parksarthi_backend/internal/feature/users/domain"
	"parksarthi_backend/internal/feature/users/domain/entity"
	"parksarthi_backend/internal/feature/wallet/transport/http/dto"
	"parksarthi_backend/internal/feature/wallet/usecase"
)

// WalletUsecase defines the gamification operations used by this handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type WalletUsecase interface {
	Wallet(ctx context.Context, userID string) (*usecase.Wallet, error)
	AddPoints(ctx context.Context, userID string, points int, reason string) (*entity.User, error)
	Redeem(ctx context.Context, userID string, cost int, reward string) (*entity.User, error)
	UnlockAchievement(ctx context.Context, userID, achievementID string) (*entity.User, error)
}

// WalletHandler handles HTTP requests for wallet and rewards operations.
type WalletHandler struct {
	wallet WalletUsecase
}

// NewWalletHandler creates a new instance of WalletHandler.
func NewWalletHandler(wallet WalletUsecase) *WalletHandler {
	return &WalletHandler{wallet: wallet}
}

// Get handles GET /api/users/:id/wallet.
func (h *WalletHandler) Get(c *gin.Context) {
	wallet, err := h.wallet.Wallet(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err, "wallet lookup failed")
		return
	}
	c.JSON(http.StatusOK, wallet)
}

// AddPoints handles POST /api/users/:id/points.
func (h *WalletHandler) AddPoints(c *gin.Context) {
	var req dto.AddPointsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := h.wallet.AddPoints(c.Request.Context(), c.Param("id"), req.Points, req.Reason)
	if err != nil {
		h.fail(c, err, "add points failed")
		return
	}
	c.JSON(http.StatusOK, user)
}

// Redeem handles POST /api/users/:id/redeem.
func (h *WalletHandler) Redeem(c *gin.Context) {
	var req dto.RedeemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := h.wallet.Redeem(c.Request.Context(), c.Param("id"), req.Cost, req.Reward)
	if err != nil {
		if errors.Is(err, usecase.ErrInsufficientPoints) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		h.fail(c, err, "redeem failed")
		return
	}
	c.JSON(http.StatusOK, user)
}

// UnlockAchievement handles POST /api/users/:id/achievements/:achievementID.
func (h *WalletHandler) UnlockAchievement(c *gin.Context) {
	user, err := h.wallet.UnlockAchievement(c.Request.Context(), c.Param("id"), c.Param("achievementID"))
	if err != nil {
		if errors.Is(err, usecase.ErrUnknownAchievement) {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown achievement"})
			return
		}
		h.fail(c, err, "unlock failed")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *WalletHandler) fail(c *gin.Context, err error, msg string) {
	if errors.Is(err, usersdomain.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	slog.Error(msg, "user", c.Param("id"), "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
