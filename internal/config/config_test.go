package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "4000" {
		t.Fatalf("Port: got %q want %q", cfg.Port, "4000")
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Fatalf("TokenTTL: got %v want %v", cfg.TokenTTL, 24*time.Hour)
	}
	if !cfg.UsingDefaultSecret() {
		t.Fatal("expected default secret when env is empty")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ROOST_PORT", "9999")
	t.Setenv("ROOST_TOKEN_SECRET", "real-secret")
	t.Setenv("ROOST_TOKEN_TTL", "30m")
	t.Setenv("ROOST_DB_PATH", "/tmp/roost-test.db")
	t.Setenv("ROOST_CORS_ORIGIN", "https://app.example.com")

	cfg := Load()

	if cfg.Port != "9999" {
		t.Fatalf("Port: got %q", cfg.Port)
	}
	if cfg.TokenSecret != "real-secret" || cfg.UsingDefaultSecret() {
		t.Fatalf("TokenSecret not overridden: %q", cfg.TokenSecret)
	}
	if cfg.TokenTTL != 30*time.Minute {
		t.Fatalf("TokenTTL: got %v", cfg.TokenTTL)
	}
	if cfg.DBPath != "/tmp/roost-test.db" {
		t.Fatalf("DBPath: got %q", cfg.DBPath)
	}
	if cfg.CORSOrigin != "https://app.example.com" {
		t.Fatalf("CORSOrigin: got %q", cfg.CORSOrigin)
	}
}

func TestLoad_BadTTLIgnored(t *testing.T) {
	t.Setenv("ROOST_TOKEN_TTL", "not-a-duration")

	cfg := Load()
	if cfg.TokenTTL != 24*time.Hour {
		t.Fatalf("bad TTL should keep the default, got %v", cfg.TokenTTL)
	}
}
