package config

import (
	"testing"

	"webpconv/models"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.OutputRoot == "" {
		t.Error("expected a default output root")
	}
	if cfg.Policy != models.PolicySkip {
		t.Errorf("expected default policy skip, got %s", cfg.Policy)
	}
	if cfg.Quality != 80 {
		t.Errorf("expected default quality 80, got %d", cfg.Quality)
	}
	if cfg.Workers != 0 {
		t.Errorf("expected default workers 0 (auto), got %d", cfg.Workers)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level info, got %s", cfg.LogLevel)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("WEBPCONV_COLLISION_POLICY", "rename")
	t.Setenv("WEBPCONV_QUALITY", "55")
	t.Setenv("WEBPCONV_WORKERS", "3")
	t.Setenv("WEBPCONV_OUTPUT_ROOT", "/tmp/converted")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Policy != models.PolicyRename {
		t.Errorf("expected rename policy, got %s", cfg.Policy)
	}
	if cfg.Quality != 55 {
		t.Errorf("expected quality 55, got %d", cfg.Quality)
	}
	if cfg.Workers != 3 {
		t.Errorf("expected workers 3, got %d", cfg.Workers)
	}
	if cfg.OutputRoot != "/tmp/converted" {
		t.Errorf("expected /tmp/converted, got %s", cfg.OutputRoot)
	}
}

func TestLoadRejectsUnknownPolicy(t *testing.T) {
	t.Setenv("WEBPCONV_COLLISION_POLICY", "merge")
	if _, err := Load(); err == nil {
		t.Error("expected error for unknown collision policy")
	}
}

func TestWorkerCount(t *testing.T) {
	if got := WorkerCount(4); got != 4 {
		t.Errorf("expected 4, got %d", got)
	}
	if got := WorkerCount(0); got < 1 {
		t.Errorf("expected a positive auto worker count, got %d", got)
	}
}
