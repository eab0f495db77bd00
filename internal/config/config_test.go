package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_StorageDriverValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("STORAGE_DRIVER", "sqlite")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid STORAGE_DRIVER")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_GridironRequiresKeyWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("GRIDIRON_ENABLED", "true")
	t.Setenv("GRIDIRON_API_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when GRIDIRON_ENABLED=true without GRIDIRON_API_KEY")
	}
}

func TestLoad_GridironConfigParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("GRIDIRON_ENABLED", "true")
	t.Setenv("GRIDIRON_API_KEY", "key-123")
	t.Setenv("GRIDIRON_TIMEOUT", "7s")
	t.Setenv("GRIDIRON_MAX_RETRIES", "2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if !cfg.GridironEnabled {
		t.Fatalf("expected GridironEnabled=true")
	}
	if cfg.GridironAPIKey != "key-123" {
		t.Fatalf("unexpected GridironAPIKey")
	}
	if cfg.GridironTimeout != 7*time.Second {
		t.Fatalf("unexpected GridironTimeout: %s", cfg.GridironTimeout)
	}
	if cfg.GridironMaxRetries != 2 {
		t.Fatalf("unexpected GridironMaxRetries: %d", cfg.GridironMaxRetries)
	}
}

func TestLoad_CacheBackendValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("CACHE_BACKEND", "memcached")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid CACHE_BACKEND")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StorageDriver != StoragePostgres {
		t.Fatalf("unexpected default StorageDriver: %q", cfg.StorageDriver)
	}
	if cfg.CacheBackend != CacheBackendMemory {
		t.Fatalf("unexpected default CacheBackend: %q", cfg.CacheBackend)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected default HTTPAddr: %q", cfg.HTTPAddr)
	}
	if cfg.CacheTTL != 60*time.Second {
		t.Fatalf("unexpected default CacheTTL: %s", cfg.CacheTTL)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("unexpected default CORSAllowedOrigins: %v", cfg.CORSAllowedOrigins)
	}
}
