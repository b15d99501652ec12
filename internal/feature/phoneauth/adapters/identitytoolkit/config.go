// Package identitytoolkit provides a client for the Firebase Identity Toolkit
// phone-verification REST API.
package identitytoolkit

import (
	"os"
	"time"
)

// DefaultBaseURL is the production endpoint of the Identity Toolkit API.
const DefaultBaseURL = "https://identitytoolkit.googleapis.com/v1"

// Config holds configuration for the Identity Toolkit client.
type Config struct {
	APIKey  string        // Web API key of the Firebase project
	BaseURL string        // Base URL for the API
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads Identity Toolkit configuration from environment variables.
func LoadConfig() Config {
	base := os.Getenv("FIREBASE_AUTH_BASE_URL")
	if base == "" {
		base = DefaultBaseURL
	}
	return Config{
		APIKey:  os.Getenv("FIREBASE_API_KEY"),
		BaseURL: base,
		Timeout: 10 * time.Second,
	}
}
