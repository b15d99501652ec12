// Package handler provides HTTP handlers for the chat feature.
package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"parksarthi_backend/internal/feature/chat/domain/entity"
	"parksarthi_backend/internal/feature/chat/transport/http/dto"
)

// Chatbot defines the conversation operations used by this handler.
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type Chatbot interface {
	SendMessage(ctx context.Context, userMessage string) string
	History() []entity.Message
	ClearHistory()
}

// ChatHandler handles HTTP requests for the assistant conversation.
type ChatHandler struct {
	bot Chatbot
}

// NewChatHandler creates a new instance of ChatHandler.
func NewChatHandler(bot Chatbot) *ChatHandler {
	return &ChatHandler{bot: bot}
}

// Send handles POST /api/chat. Replies are always 200; provider trouble is
// already degraded to an apology inside the bot.
func (h *ChatHandler) Send(c *gin.Context) {
	var req dto.ChatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	reply := h.bot.SendMessage(c.Request.Context(), req.Message)
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// History handles GET /api/chat/history.
func (h *ChatHandler) History(c *gin.Context) {
	c.JSON(http.StatusOK, h.bot.History())
}

// ClearHistory handles DELETE /api/chat/history.
func (h *ChatHandler) ClearHistory(c *gin.Context) {
	h.bot.ClearHistory()
	c.Status(http.StatusNoContent)
}
