package app

import (
	"log/slog"
	"testing"
	"time"

	"github.com/nathanpradana/sportsdash/internal/config"
)

func TestNewHTTPServer_MemoryStorage(t *testing.T) {
	cfg := config.Config{
		AppEnv:             config.EnvDev,
		HTTPAddr:           ":8080",
		StorageDriver:      config.StorageMemory,
		CacheEnabled:       true,
		CacheBackend:       config.CacheBackendMemory,
		CacheTTL:           time.Minute,
		AuthGateBaseURL:    "http://localhost:8081",
		AuthGateTimeout:    time.Second,
		CORSAllowedOrigins: []string{"*"},
	}

	srv, cleanup, err := NewHTTPServer(cfg, slog.New(slog.DiscardHandler))
	if err != nil {
		t.Fatalf("build http server: %v", err)
	}
	defer cleanup()

	if srv.Addr != ":8080" {
		t.Fatalf("unexpected server addr: %q", srv.Addr)
	}
	if srv.Handler == nil {
		t.Fatalf("expected router to be set")
	}
}

func TestNewHTTPServer_UnknownStorageDriver(t *testing.T) {
	cfg := config.Config{
		AppEnv:        config.EnvDev,
		HTTPAddr:      ":8080",
		StorageDriver: "sqlite",
	}

	if _, _, err := NewHTTPServer(cfg, slog.New(slog.DiscardHandler)); err == nil {
		t.Fatalf("expected error for unknown storage driver")
	}
}
