// Package handler provides HTTP handlers for the phoneauth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"parksarthi_backend/internal/feature/phoneauth/domain"
	"parksarthi_backend/internal/feature/phoneauth/domain/entity"
	"parksarthi_backend/internal/feature/phoneauth/transport/http/dto"
	"parksarthi_backend/internal/feature/phoneauth/usecase"
)

// ChallengeStore persists pending challenges between the dispatch and verify
// requests. Following Go convention: interfaces are defined by the consumer
// (handler), not the provider (adapters).
type ChallengeStore interface {
	Save(ctx context.Context, id string, ch *entity.PendingChallenge) error
	Find(ctx context.Context, id string) (*entity.PendingChallenge, error)
	Delete(ctx context.Context, id string) error
}

// TokenGenerator mints signed session tokens for verified identities.
type TokenGenerator interface {
	GenerateToken(uid, phoneNumber string) (string, error)
}

// PhoneAuthHandler handles HTTP requests for the phone-OTP authentication flow.
type PhoneAuthHandler struct {
	issuer   usecase.ChallengeIssuer
	store    ChallengeStore
	tokens   TokenGenerator
	sessions usecase.SessionSink
}

// NewPhoneAuthHandler creates a new instance of PhoneAuthHandler.
// sessions receives every verified session and may be nil.
func NewPhoneAuthHandler(issuer usecase.ChallengeIssuer, store ChallengeStore, tokens TokenGenerator, sessions usecase.SessionSink) *PhoneAuthHandler {
	return &PhoneAuthHandler{issuer: issuer, store: store, tokens: tokens, sessions: sessions}
}

// SendOTP handles the challenge-dispatch endpoint.
// - binds the request JSON to SendOTPReq
// - rejects numbers that are not 10 local digits with 400
// - maps provider rejections onto the error taxonomy (400/429/502)
// - on success returns 200 with a server-issued challenge ID
func (h *PhoneAuthHandler) SendOTP(c *gin.Context) {
	var req dto.SendOTPReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("send otp validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	phone, ok := usecase.NormalizePhone(req.PhoneNumber)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "phone number must be 10 digits"})
		return
	}

	handle, err := h.issuer.RequestChallenge(c.Request.Context(), phone, req.RecaptchaToken)
	if err != nil {
		slog.Warn("challenge request failed", "phone", phone, "error", err, "remote_addr", c.ClientIP())
		switch {
		case errors.Is(err, domain.ErrInvalidNumber):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid phone number"})
		case errors.Is(err, domain.ErrRateLimited):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many attempts, try again later"})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": "failed to send OTP"})
		}
		return
	}

	id := uuid.NewString()
	if err := h.store.Save(c.Request.Context(), id, &entity.PendingChallenge{Handle: handle, PhoneNumber: phone}); err != nil {
		slog.Error("challenge store save failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send OTP"})
		return
	}

	slog.Info("otp dispatched", "phone", phone, "challenge_id", id)
	c.JSON(http.StatusOK, gin.H{"challenge_id": id})
}

// VerifyOTP handles the challenge-confirmation endpoint.
// - binds the request JSON to VerifyOTPReq (code must be exactly 6 characters)
// - 404 when no pending challenge exists for the ID
// - 401 on a rejected code; the challenge is retained so the user may retry
// - 410 when the challenge has expired
// - on success consumes the challenge, mints a session token, and publishes
//   the session to the listener stream
func (h *PhoneAuthHandler) VerifyOTP(c *gin.Context) {
	var req dto.VerifyOTPReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("verify otp validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	ctx := c.Request.Context()
	pending, err := h.store.Find(ctx, req.ChallengeID)
	if err != nil {
		if errors.Is(err, domain.ErrChallengeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "challenge not found"})
			return
		}
		slog.Error("challenge store lookup failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "verification failed"})
		return
	}

	session, err := h.issuer.ConfirmChallenge(ctx, pending.Handle, req.Code)
	if err != nil {
		slog.Warn("otp confirmation failed", "challenge_id", req.ChallengeID, "error", err)
		switch {
		case errors.Is(err, domain.ErrInvalidCode):
			// Intentional: the challenge stays so the user can resubmit
			// without a re-issued code.
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid OTP"})
		case errors.Is(err, domain.ErrCodeExpired), errors.Is(err, domain.ErrChallengeNotFound):
			_ = h.store.Delete(ctx, req.ChallengeID)
			c.JSON(http.StatusGone, gin.H{"error": "OTP expired, request a new one"})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": "verification failed"})
		}
		return
	}

	if err := h.store.Delete(ctx, req.ChallengeID); err != nil {
		slog.Error("challenge cleanup failed", "challenge_id", req.ChallengeID, "error", err)
	}

	token, err := h.tokens.GenerateToken(session.UID, session.PhoneNumber)
	if err != nil {
		slog.Error("session token generation failed", "uid", session.UID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "verification failed"})
		return
	}

	if h.sessions != nil {
		h.sessions(session)
	}

	slog.Info("phone login successful", "uid", session.UID, "phone", session.PhoneNumber)
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":           session.UID,
			"phone_number": session.PhoneNumber,
			"name":         session.Name,
			"email":        session.Email,
		},
	})
}
