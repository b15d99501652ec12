// Package gemini provides the Gemini-backed chat completer.
package gemini

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"parksarthi_backend/internal/feature/chat/usecase"
)

// DefaultModel is the Gemini model used for assistant replies.
const DefaultModel = "gemini-1.5-flash"

// GeminiCompleter generates assistant replies through the Gemini API.
type GeminiCompleter struct {
	client *genai.Client
	model  string
}

// Compile-time check that GeminiCompleter implements ChatCompleter.
var _ usecase.ChatCompleter = (*GeminiCompleter)(nil)

// NewGeminiCompleter creates a new GeminiCompleter using ADC.
// Requires GOOGLE_GENAI_USE_VERTEXAI, GOOGLE_CLOUD_PROJECT and
// GOOGLE_CLOUD_LOCATION, or GEMINI_API_KEY.
func NewGeminiCompleter(ctx context.Context) (*GeminiCompleter, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiCompleter{client: client, model: DefaultModel}, nil
}

// Complete generates a reply for the given prompt.
func (g *GeminiCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini API request failed: %w", err)
	}

	return resp.Text(), nil
}
