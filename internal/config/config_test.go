package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "OPS_PORT", "DATABASE_URL", "TRAIT_CATALOG_PATH", "MAX_BATCH_TRAITS", "REQUEST_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Ops.Port != "8081" {
		t.Errorf("Ops.Port = %q, want 8081", cfg.Ops.Port)
	}
	if cfg.Database.URL != "" {
		t.Errorf("Database.URL = %q, want empty", cfg.Database.URL)
	}
	if cfg.Engine.MaxBatchTraits != 5 {
		t.Errorf("Engine.MaxBatchTraits = %d, want 5", cfg.Engine.MaxBatchTraits)
	}
	if cfg.Server.RequestTimeout != 5*time.Second {
		t.Errorf("Server.RequestTimeout = %v, want 5s", cfg.Server.RequestTimeout)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://localhost/usage")
	t.Setenv("TRAIT_CATALOG_PATH", "/data/traits.xlsx")
	t.Setenv("MAX_BATCH_TRAITS", "3")
	t.Setenv("REQUEST_TIMEOUT", "2s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "9000" {
		t.Errorf("Server.Port = %q, want 9000", cfg.Server.Port)
	}
	if cfg.Database.URL != "postgres://localhost/usage" {
		t.Errorf("Database.URL = %q", cfg.Database.URL)
	}
	if cfg.Catalog.Path != "/data/traits.xlsx" {
		t.Errorf("Catalog.Path = %q", cfg.Catalog.Path)
	}
	if cfg.Engine.MaxBatchTraits != 3 {
		t.Errorf("Engine.MaxBatchTraits = %d, want 3", cfg.Engine.MaxBatchTraits)
	}
	if cfg.Server.RequestTimeout != 2*time.Second {
		t.Errorf("Server.RequestTimeout = %v, want 2s", cfg.Server.RequestTimeout)
	}
}

func TestLoad_RejectsPortCollision(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("OPS_PORT", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected port collision to fail validation")
	}
}

func TestLoad_RejectsBadBatchLimit(t *testing.T) {
	t.Setenv("MAX_BATCH_TRAITS", "0")

	if _, err := Load(); err == nil {
		t.Fatal("expected zero batch limit to fail validation")
	}
}
