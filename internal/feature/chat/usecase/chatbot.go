// Package usecase implements the Park Sarthi assistant conversation.
package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"parksarthi_backend/internal/feature/chat/domain/entity"
)

// ChatCompleter generates an assistant reply for a prompt.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type ChatCompleter interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ChatCompleterFunc adapts a function to the ChatCompleter interface.
type ChatCompleterFunc func(ctx context.Context, prompt string) (string, error)

// Complete calls the underlying function.
func (f ChatCompleterFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// FallbackReply is returned when the completer is unreachable. The caller
// never sees an error.
const FallbackReply = "I'm sorry, I'm having trouble connecting right now. Please try again in a moment or contact our support team."

// contextWindow is how many trailing messages are folded into the prompt.
const contextWindow = 4

const systemPrompt = `You are Park Sarthi Assistant, a helpful chatbot for a parking management platform.

Key features you can help with:
- Pre-slot parking booking
- Real-time parking availability
- Traffic challan checking
- Vehicle document storage (License, RC, PUC)
- EV charging station locations
- Valet services
- FASTag services
- Gamification features (points, levels, rewards)

Guidelines:
- Be friendly, helpful, and concise
- Provide actionable suggestions
- When users ask about parking, offer to help them find spots or book slots
- For challan queries, ask for vehicle number
- For EV stations, ask for current location
- Explain gamification benefits when relevant
- Use emojis appropriately but sparingly`

// Chatbot owns one rolling conversation transcript. Handlers share a single
// instance across concurrent requests, so the transcript is mutex-guarded.
type Chatbot struct {
	completer ChatCompleter

	mu      sync.Mutex
	history []entity.Message
}

// NewChatbot creates a new Chatbot backed by the given completer.
func NewChatbot(completer ChatCompleter) *Chatbot {
	return &Chatbot{completer: completer}
}

// SendMessage records the user message, asks the completer for a reply and
// records that too. Completer failures degrade to a fixed apology and leave
// the user message in the transcript for the next attempt.
func (c *Chatbot) SendMessage(ctx context.Context, userMessage string) string {
	c.mu.Lock()
	c.history = append(c.history, entity.Message{
		Role:      entity.RoleUser,
		Content:   userMessage,
		Timestamp: time.Now(),
	})
	prompt := c.buildPrompt(userMessage)
	c.mu.Unlock()

	reply, err := c.completer.Complete(ctx, prompt)
	if err != nil {
		slog.Error("chat completion failed", "error", err)
		return FallbackReply
	}

	c.mu.Lock()
	c.history = append(c.history, entity.Message{
		Role:      entity.RoleAssistant,
		Content:   reply,
		Timestamp: time.Now(),
	})
	c.mu.Unlock()
	return reply
}

// buildPrompt folds the system prompt, the question and the trailing context
// window into one completion request. Callers must hold c.mu.
func (c *Chatbot) buildPrompt(userMessage string) string {
	start := len(c.history) - contextWindow
	if start < 0 {
		start = 0
	}
	var context strings.Builder
	for i, msg := range c.history[start:] {
		if i > 0 {
			context.WriteString("\n")
		}
		context.WriteString(msg.Role + ": " + msg.Content)
	}

	return fmt.Sprintf("%s\n\nUser question: %s\n\nPrevious conversation context: %s\n\nRespond as Park Sarthi Assistant:",
		systemPrompt, userMessage, context.String())
}

// History returns a copy of the transcript.
func (c *Chatbot) History() []entity.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]entity.Message, len(c.history))
	copy(out, c.history)
	return out
}

// ClearHistory drops the transcript.
func (c *Chatbot) ClearHistory() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.history = nil
}
