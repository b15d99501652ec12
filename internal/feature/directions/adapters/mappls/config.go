// Package mappls provides a client for the Mappls (MapmyIndia) routing API.
package mappls

import (
	"os"
	"time"
)

// Config holds the settings for the Mappls API client.
type Config struct {
	APIKey  string        // REST API key
	BaseURL string        // e.g. "https://apis.mappls.com/advancedmaps/v1"
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig reads the Mappls settings from environment variables.
func LoadConfig() Config {
	base := os.Getenv("MAPPLS_BASE_URL")
	if base == "" {
		base = "https://apis.mappls.com/advancedmaps/v1"
	}
	return Config{
		APIKey:  os.Getenv("MAPPLS_API_KEY"),
		BaseURL: base,
		Timeout: 10 * time.Second,
	}
}
