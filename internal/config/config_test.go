package config

import (
	"testing"
	"time"
)

func TestLoadEnvDefaults(t *testing.T) {
	for _, k := range []string{"APP_ENV", "HTTP_PORT", "DB_DRIVER", "DB_PATH", "MAX_UPLOAD_MB", "DB_CONN_MAX_LIFETIME_SEC"} {
		t.Setenv(k, "")
	}

	cfg := LoadEnv()

	if cfg.Server.HTTPPort != "8080" {
		t.Fatalf("expected port 8080, got %q", cfg.Server.HTTPPort)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Fatalf("expected sqlite driver, got %q", cfg.Database.Driver)
	}
	if cfg.Database.DSN() != "data/app.db" {
		t.Fatalf("expected sqlite DSN to be the path, got %q", cfg.Database.DSN())
	}
	if cfg.Database.ConnMaxLifetime != 30*time.Minute {
		t.Fatalf("expected 30m lifetime, got %v", cfg.Database.ConnMaxLifetime)
	}
	if cfg.Import.MaxUploadBytes != 32<<20 {
		t.Fatalf("expected 32MiB upload limit, got %d", cfg.Import.MaxUploadBytes)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", ":9090")
	t.Setenv("DB_DRIVER", "PGX")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost/db")
	t.Setenv("MAX_UPLOAD_MB", "5")
	t.Setenv("LOGGER_DISABLE_CALLER", "true")

	cfg := LoadEnv()

	if cfg.Server.HTTPPort != "9090" {
		t.Fatalf("expected port 9090, got %q", cfg.Server.HTTPPort)
	}
	if cfg.Database.Driver != "pgx" {
		t.Fatalf("expected pgx driver, got %q", cfg.Database.Driver)
	}
	if cfg.Database.DSN() != "postgres://u:p@localhost/db" {
		t.Fatalf("expected DATABASE_URL as DSN, got %q", cfg.Database.DSN())
	}
	if cfg.Import.MaxUploadBytes != 5<<20 {
		t.Fatalf("expected 5MiB upload limit, got %d", cfg.Import.MaxUploadBytes)
	}
	if !cfg.Logger.DisableCaller {
		t.Fatalf("expected caller to be disabled")
	}
}

func TestGetIntFallsBackOnGarbage(t *testing.T) {
	t.Setenv("SOME_INT", "ten")
	if got := GetInt("SOME_INT", 7); got != 7 {
		t.Fatalf("expected fallback 7, got %d", got)
	}
}
