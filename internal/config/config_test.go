package config

import "testing"

func TestLoadFailsWithoutDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("PORT", "8080")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when DATABASE_URL is absent")
	}
}

func TestLoadFailsWithoutPort(t *testing.T) {
	t.Setenv("DATABASE_URL", "sqlite://file::memory:")
	t.Setenv("PORT", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when PORT is absent")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/grimoire")
	t.Setenv("PORT", "8080")
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("APP_SERVICE", "")
	t.Setenv("ENVIRONMENT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.AppName != "grimoire" {
		t.Fatalf("expected default app name, got %q", cfg.AppName)
	}
	if cfg.Environment != "development" {
		t.Fatalf("expected default environment, got %q", cfg.Environment)
	}
	if cfg.Port != "8080" || cfg.DatabaseURL == "" {
		t.Fatalf("unexpected config %+v", cfg)
	}
}
