package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("API_RATE_LIMIT_RPS", "")
	t.Setenv("API_RATE_LIMIT_BURST", "")
	t.Setenv("TYPING_DELAY_MS", "")
	t.Setenv("NATS_SUBJECT", "")
	t.Setenv("CONFIG_FILE", "")

	cfg := Load()
	if cfg.APIRateLimitRPS != 50 {
		t.Fatalf("expected default rate limit 50, got %d", cfg.APIRateLimitRPS)
	}
	if cfg.APIRateLimitBurst != 100 {
		t.Fatalf("expected default burst 100, got %d", cfg.APIRateLimitBurst)
	}
	if cfg.TypingDelayMS != 1500 {
		t.Fatalf("expected default typing delay 1500, got %d", cfg.TypingDelayMS)
	}
	if cfg.NATSSubject != "chat.replies" {
		t.Fatalf("expected default subject chat.replies, got %q", cfg.NATSSubject)
	}
	if !cfg.AuthLocalFallback {
		t.Fatalf("expected local auth fallback enabled by default")
	}
}

func TestLoadParsesOverrides(t *testing.T) {
	t.Setenv("API_RATE_LIMIT_RPS", "5")
	t.Setenv("TYPING_DELAY_MS", "0")
	t.Setenv("AUTH_LOCAL_FALLBACK", "false")
	t.Setenv("CONFIG_FILE", "")

	cfg := Load()
	if cfg.APIRateLimitRPS != 5 {
		t.Fatalf("expected rate limit override, got %d", cfg.APIRateLimitRPS)
	}
	if cfg.TypingDelayMS != 0 {
		t.Fatalf("expected typing delay override, got %d", cfg.TypingDelayMS)
	}
	if cfg.AuthLocalFallback {
		t.Fatalf("expected fallback disabled")
	}
}

func TestLoadAppliesConfigFileOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("api_port: \"9999\"\ntyping_delay_ms: 10\n"), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("API_PORT", "")

	cfg := Load()
	if cfg.APIPort != "9999" {
		t.Fatalf("expected overlay port 9999, got %q", cfg.APIPort)
	}
	if cfg.TypingDelayMS != 10 {
		t.Fatalf("expected overlay typing delay 10, got %d", cfg.TypingDelayMS)
	}
}
