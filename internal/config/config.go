package config

import (
	"errors"
	"os"
	"strconv"
)

type Config struct {
	APIPort  string
	LogLevel string
	LogFile  string

	GeminiAPIKey string
	GeminiModel  string

	MaxUploadBytes     int64
	PromptContextChars int

	BreakerEnabled bool
}

// Load reads configuration from the process environment. GEMINI_API_KEY is
// the only required variable; its absence is a fatal startup condition.
func Load() (Config, error) {
	cfg := Config{
		APIPort:  mustEnv("API_PORT", "8080"),
		LogLevel: mustEnv("LOG_LEVEL", "info"),
		LogFile:  os.Getenv("LOG_FILE"),

		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  mustEnv("GEMINI_MODEL", "gemini-pro"),

		MaxUploadBytes:     int64(mustEnvInt("MAX_UPLOAD_BYTES", 10_000_000)),
		PromptContextChars: mustEnvInt("PROMPT_CONTEXT_CHARS", 4000),

		BreakerEnabled: mustEnvBool("BREAKER_ENABLED", true),
	}

	if cfg.GeminiAPIKey == "" {
		return Config{}, errors.New("GEMINI_API_KEY environment variable is not set")
	}
	return cfg, nil
}

func mustEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func mustEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func mustEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}
