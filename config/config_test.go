package config

import (
	"testing"

	env "github.com/caarlos0/env/v11"
)

// setRequiredEnv sets the env vars without which parsing fails.
func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("AUTH_ADMIN_USERNAME", "admin")
	t.Setenv("AUTH_ADMIN_PASSWORD", "hunter2")
	t.Setenv("AUTH_TOKEN_SECRET", "test-secret")
}

func TestAppConfig_Defaults(t *testing.T) {
	setRequiredEnv(t)

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if cfg.Postgres.Host != "localhost" {
		t.Errorf("expected default db host localhost, got %q", cfg.Postgres.Host)
	}
	if cfg.Postgres.Port != 5432 {
		t.Errorf("expected default db port 5432, got %d", cfg.Postgres.Port)
	}
	if !cfg.Postgres.RunMigrationsOnStart {
		t.Error("expected migrations on start by default")
	}
	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("expected default http addr :8080, got %q", cfg.HTTP.Addr)
	}
	if cfg.HTTP.MaxPageSize != 100 {
		t.Errorf("expected default max page size 100, got %d", cfg.HTTP.MaxPageSize)
	}
	if cfg.Auth.TokenIssuer != "catalog-api" {
		t.Errorf("expected default issuer catalog-api, got %q", cfg.Auth.TokenIssuer)
	}
	if cfg.Auth.TokenAudience != "catalog-clients" {
		t.Errorf("expected default audience catalog-clients, got %q", cfg.Auth.TokenAudience)
	}
}

func TestAppConfig_MissingRequiredAuth(t *testing.T) {
	t.Setenv("AUTH_ADMIN_USERNAME", "admin")
	// Set but empty must be rejected the same as unset; an empty password
	// or signing secret is never a usable credential.
	t.Setenv("AUTH_ADMIN_PASSWORD", "")
	t.Setenv("AUTH_TOKEN_SECRET", "")

	var cfg AppConfig
	err := env.Parse(&cfg)
	if err == nil {
		t.Fatal("expected error for missing required auth values")
	}
}

func TestAppConfig_EnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6432")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("AUTH_TOKEN_ISSUER", "  issuer-x  ")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if cfg.Postgres.Host != "db.internal" {
		t.Errorf("expected db host override, got %q", cfg.Postgres.Host)
	}
	if cfg.Postgres.Port != 6432 {
		t.Errorf("expected db port override, got %d", cfg.Postgres.Port)
	}
	if cfg.HTTP.Addr != ":9090" {
		t.Errorf("expected http addr override, got %q", cfg.HTTP.Addr)
	}
	if cfg.Auth.TokenIssuer != "issuer-x" {
		t.Errorf("expected sanitized issuer, got %q", cfg.Auth.TokenIssuer)
	}
}

func TestHTTPConfig_SanitizeClampsMaxPageSize(t *testing.T) {
	h := HTTPConfig{MaxPageSize: -5}
	h.Sanitize()
	if h.MaxPageSize != 100 {
		t.Errorf("expected clamped max page size 100, got %d", h.MaxPageSize)
	}
}

func TestAppConfig_DevModeFromNodeEnv(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("NODE_ENV", "development")

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		t.Fatalf("parse config: %v", err)
	}
	cfg.Sanitize()

	if !cfg.IsDev {
		t.Error("expected dev mode from NODE_ENV=development")
	}
}
