package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the process configuration. All values come from the
// environment, optionally seeded from a .env file.
type Config struct {
	Host        string
	Port        string
	Environment string

	// OpenAIAPIKey authenticates against the transcription provider.
	// Missing key is a startup-time fatal condition, never a per-request
	// error.
	OpenAIAPIKey string

	// DatabaseURL selects the transcript store: postgres:// URLs use the
	// PostgreSQL driver, anything else is treated as a SQLite file path.
	DatabaseURL string

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Load reads configuration from the environment, loading a .env file first
// if one exists. It fails fast on missing required values.
func Load() (*Config, error) {
	loadDotEnv()

	cfg := &Config{
		Host:        getEnvOrDefault("HOST", "0.0.0.0"),
		Port:        getEnvOrDefault("PORT", "8000"),
		Environment: getEnvOrDefault("ENVIRONMENT", "development"),

		// Whisper calls block for the length of remote processing, so the
		// write timeout has to cover minutes-long requests.
		ReadTimeout:  10 * time.Minute,
		WriteTimeout: 10 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	cfg.OpenAIAPIKey = strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
	}

	cfg.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable not set")
	}

	return cfg, nil
}

// loadDotEnv loads environment variables from a .env file if one exists.
// Absence is not an error, the variables may be set system-wide.
func loadDotEnv() {
	envPaths := []string{".env", ".env.local"}
	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
