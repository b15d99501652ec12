package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"parksarthi_backend/internal/feature/users/domain/entity"
	"parksarthi_backend/internal/feature/wallet/usecase"
)

// mockWalletUsecase is a mock implementation of the WalletUsecase interface.
type mockWalletUsecase struct {
	WalletFunc            func(ctx context.Context, userID string) (*usecase.Wallet, error)
	AddPointsFunc         func(ctx context.Context, userID string, points int, reason string) (*entity.User, error)
	RedeemFunc            func(ctx context.Context, userID string, cost int, reward string) (*entity.User, error)
	UnlockAchievementFunc func(ctx context.Context, userID, achievementID string) (*entity.User, error)
}

func (m *mockWalletUsecase) Wallet(ctx context.Context, userID string) (*usecase.Wallet, error) {
	if m.WalletFunc != nil {
		return m.WalletFunc(ctx, userID)
	}
	return &usecase.Wallet{Points: 2450, Level: 3, LevelName: "Gold Parker"}, nil
}

func (m *mockWalletUsecase) AddPoints(ctx context.Context, userID string, points int, reason string) (*entity.User, error) {
	if m.AddPointsFunc != nil {
		return m.AddPointsFunc(ctx, userID, points, reason)
	}
	return &entity.User{ID: userID, Points: points}, nil
}

func (m *mockWalletUsecase) Redeem(ctx context.Context, userID string, cost int, reward string) (*entity.User, error) {
	if m.RedeemFunc != nil {
		return m.RedeemFunc(ctx, userID, cost, reward)
	}
	return &entity.User{ID: userID}, nil
}

func (m *mockWalletUsecase) UnlockAchievement(ctx context.Context, userID, achievementID string) (*entity.User, error) {
	if m.UnlockAchievementFunc != nil {
		return m.UnlockAchievementFunc(ctx, userID, achievementID)
	}
	return &entity.User{ID: userID}, nil
}

func setupRouter(uc WalletUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewWalletHandler(uc)
	r := gin.New()
	r.GET("/api/users/:id/wallet", h.Get)
	r.POST("/api/users/:id/points", h.AddPoints)
	r.POST("/api/users/:id/redeem", h.Redeem)
	r.POST("/api/users/:id/achievements/:achievementID", h.UnlockAchievement)
	return r
}

func TestWalletHandler_Get(t *testing.T) {
	r := setupRouter(&mockWalletUsecase{})

	req, _ := http.NewRequest(http.MethodGet, "/api/users/u1/wallet", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Gold Parker")
}

func TestWalletHandler_Redeem(t *testing.T) {
	t.Run("insufficient points maps to 422", func(t *testing.T) {
		r := setupRouter(&mockWalletUsecase{
			RedeemFunc: func(ctx context.Context, userID string, cost int, reward string) (*entity.User, error) {
				return nil, usecase.ErrInsufficientPoints
			},
		})
		body, _ := json.Marshal(gin.H{"cost": 500, "reward": "Free Car Wash"})

		req, _ := http.NewRequest(http.MethodPost, "/api/users/u1/redeem", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("non-positive cost is rejected", func(t *testing.T) {
		r := setupRouter(&mockWalletUsecase{})
		body, _ := json.Marshal(gin.H{"cost": -5, "reward": "Free Car Wash"})

		req, _ := http.NewRequest(http.MethodPost, "/api/users/u1/redeem", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestWalletHandler_UnlockAchievement(t *testing.T) {
	r := setupRouter(&mockWalletUsecase{
		UnlockAchievementFunc: func(ctx context.Context, userID, achievementID string) (*entity.User, error) {
			return nil, usecase.ErrUnknownAchievement
		},
	})

	req, _ := http.NewRequest(http.MethodPost, "/api/users/u1/achievements/time-traveler", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
