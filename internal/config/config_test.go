package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "GIN_MODE", "LOG_LEVEL", "LOG_FORMAT", "CATALOG_SOURCE", "CATALOG_TABLE",
		"CATALOG_LOAD_TIMEOUT", "CATALOG_FALLBACK_STATIC", "AWS_REGION", "DYNAMODB_ENDPOINT"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 8080 || cfg.CatalogSource != CatalogSourceStatic || cfg.CatalogTable != "material_catalog" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.CatalogLoadTimeout != 30*time.Second || !cfg.CatalogFallbackStatic {
		t.Fatalf("unexpected catalog defaults: %+v", cfg)
	}
	if cfg.DynamoDB.Region != "us-east-1" || cfg.DynamoDB.Endpoint != "" {
		t.Fatalf("unexpected dynamodb defaults: %+v", cfg.DynamoDB)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CATALOG_SOURCE", " DynamoDB ")
	t.Setenv("CATALOG_LOAD_TIMEOUT", "5s")
	t.Setenv("DYNAMODB_ENDPOINT", "http://dynamodb:8000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != 9090 || cfg.CatalogSource != CatalogSourceDynamoDB || cfg.CatalogLoadTimeout != 5*time.Second {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.DynamoDB.Endpoint != "http://dynamodb:8000" {
		t.Fatalf("unexpected endpoint %q", cfg.DynamoDB.Endpoint)
	}
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("catalog source", func(t *testing.T) {
		t.Setenv("CATALOG_SOURCE", "s3")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error")
		}
	})
	t.Run("log format", func(t *testing.T) {
		t.Setenv("LOG_FORMAT", "xml")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error")
		}
	})
	t.Run("port", func(t *testing.T) {
		t.Setenv("PORT", "eighty")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error")
		}
	})
}
