package config

import (
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("CATALOG_SOURCE", "")
	t.Setenv("SESSION_TTL_MINUTES", "")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg := FromEnv()
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected addr %q", cfg.HTTPAddr)
	}
	if cfg.CatalogSource != CatalogStatic {
		t.Fatalf("unexpected catalog source %q", cfg.CatalogSource)
	}
	if cfg.SessionTTL != 30*time.Minute || cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("unexpected durations %+v", cfg)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("unexpected origins %v", cfg.CORSAllowedOrigins)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("CATALOG_SOURCE", "Postgres")
	t.Setenv("SESSION_TTL_MINUTES", "5")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "3")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, ,http://b.test")

	cfg := FromEnv()
	if cfg.HTTPAddr != ":9090" || cfg.CatalogSource != CatalogPostgres {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.SessionTTL != 5*time.Minute || cfg.ShutdownTimeout != 3*time.Second {
		t.Fatalf("unexpected durations %+v", cfg)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "http://b.test" {
		t.Fatalf("unexpected origins %v", cfg.CORSAllowedOrigins)
	}
}

func TestFromEnvIgnoresBadDurations(t *testing.T) {
	t.Setenv("SESSION_TTL_MINUTES", "soon")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "-2")
	cfg := FromEnv()
	if cfg.SessionTTL != 30*time.Minute || cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}
