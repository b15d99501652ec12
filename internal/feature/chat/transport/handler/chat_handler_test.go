package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"parksarthi_backend/internal/feature/chat/domain/entity"
)

// mockChatbot is a mock implementation of the Chatbot interface.
type mockChatbot struct {
	SendMessageFunc func(ctx context.Context, userMessage string) string
	cleared         bool
}

func (m *mockChatbot) SendMessage(ctx context.Context, userMessage string) string {
	if m.SendMessageFunc != nil {
		return m.SendMessageFunc(ctx, userMessage)
	}
	return "Happy to help!"
}

func (m *mockChatbot) History() []entity.Message {
	return []entity.Message{{Role: entity.RoleUser, Content: "hi"}}
}

func (m *mockChatbot) ClearHistory() { m.cleared = true }

func setupRouter(bot Chatbot) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewChatHandler(bot)
	r := gin.New()
	r.POST("/api/chat", h.Send)
	r.GET("/api/chat/history", h.History)
	r.DELETE("/api/chat/history", h.ClearHistory)
	return r
}

func TestChatHandler_Send(t *testing.T) {
	t.Run("returns the assistant reply", func(t *testing.T) {
		r := setupRouter(&mockChatbot{})

		req, _ := http.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader([]byte(`{"message":"Where can I park?"}`)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Happy to help!")
	})

	t.Run("empty message is rejected", func(t *testing.T) {
		r := setupRouter(&mockChatbot{})

		req, _ := http.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader([]byte(`{}`)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestChatHandler_History(t *testing.T) {
	r := setupRouter(&mockChatbot{})

	req, _ := http.NewRequest(http.MethodGet, "/api/chat/history", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"user"`)
}

func TestChatHandler_ClearHistory(t *testing.T) {
	bot := &mockChatbot{}
	r := setupRouter(bot)

	req, _ := http.NewRequest(http.MethodDelete, "/api/chat/history", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.True(t, bot.cleared)
}
