package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("API_PORT", "")
	t.Setenv("GEMINI_MODEL", "")
	t.Setenv("MAX_UPLOAD_BYTES", "")
	t.Setenv("PROMPT_CONTEXT_CHARS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.APIPort != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.APIPort)
	}
	if cfg.GeminiModel != "gemini-pro" {
		t.Fatalf("expected default model gemini-pro, got %q", cfg.GeminiModel)
	}
	if cfg.MaxUploadBytes != 10_000_000 {
		t.Fatalf("expected default upload limit 10000000, got %d", cfg.MaxUploadBytes)
	}
	if cfg.PromptContextChars != 4000 {
		t.Fatalf("expected default prompt context 4000, got %d", cfg.PromptContextChars)
	}
	if !cfg.BreakerEnabled {
		t.Fatalf("expected breaker enabled by default")
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("API_PORT", "9999")
	t.Setenv("MAX_UPLOAD_BYTES", "1234")
	t.Setenv("PROMPT_CONTEXT_CHARS", "100")
	t.Setenv("BREAKER_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.APIPort != "9999" {
		t.Fatalf("expected port override, got %q", cfg.APIPort)
	}
	if cfg.MaxUploadBytes != 1234 {
		t.Fatalf("expected upload limit 1234, got %d", cfg.MaxUploadBytes)
	}
	if cfg.PromptContextChars != 100 {
		t.Fatalf("expected prompt context 100, got %d", cfg.PromptContextChars)
	}
	if cfg.BreakerEnabled {
		t.Fatalf("expected breaker disabled")
	}
}

func TestLoadFailsWithoutAPIKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for missing GEMINI_API_KEY")
	}
}
