package config

import (
	"os"
	"strconv"
	"time"

	"ecoscan/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	LLM          LLMConfig
	Server       ServerConfig
	Database     DatabaseConfig
	Alternatives AlternativesConfig
}

// LLMConfig holds provider settings and the per-role model assignments.
// Two distinct classifier models give the consensus step genuinely
// independent opinions.
type LLMConfig struct {
	APIKey         string
	BaseURL        string
	ScientistModel string
	CriticModel    string
	ArbiterModel   string
	ScorerModel    string
	VisionModel    string
	SummaryModel   string
	MaxTokens      int
	Timeout        time.Duration
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// DatabaseConfig holds scan-history storage settings.
// An empty URL disables persistence; the audit pipeline runs without it.
type DatabaseConfig struct {
	URL string
}

// AlternativesConfig holds Open Food Facts lookup settings
type AlternativesConfig struct {
	BaseURL string
	Timeout time.Duration
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		LLM: LLMConfig{
			APIKey:         os.Getenv("GROQ_API_KEY"),
			BaseURL:        getEnvOrDefault("LLM_BASE_URL", ""),
			ScientistModel: getEnvOrDefault("SCIENTIST_MODEL", "llama-3.3-70b-versatile"),
			CriticModel:    getEnvOrDefault("CRITIC_MODEL", "llama-3.1-8b-instant"),
			ArbiterModel:   getEnvOrDefault("ARBITER_MODEL", "llama-3.3-70b-versatile"),
			ScorerModel:    getEnvOrDefault("SCORER_MODEL", "llama-3.3-70b-versatile"),
			VisionModel:    getEnvOrDefault("VISION_MODEL", "meta-llama/llama-4-scout-17b-16e-instruct"),
			SummaryModel:   getEnvOrDefault("SUMMARY_MODEL", "llama-3.3-70b-versatile"),
			MaxTokens:      getEnvIntOrDefault("LLM_MAX_TOKENS", 2048),
			Timeout:        time.Duration(getEnvIntOrDefault("LLM_TIMEOUT_SECONDS", 60)) * time.Second,
		},
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Alternatives: AlternativesConfig{
			BaseURL: getEnvOrDefault("OFF_BASE_URL", ""),
			Timeout: time.Duration(getEnvIntOrDefault("OFF_TIMEOUT_SECONDS", 3)) * time.Second,
		},
	}

	if config.LLM.APIKey == "" {
		return nil, errors.ConfigInvalid("GROQ_API_KEY is required")
	}

	return config, nil
}

func getEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvIntOrDefault(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
