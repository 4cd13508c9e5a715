package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v9"
)

const (
	CatalogSourceStatic   = "static"
	CatalogSourceDynamoDB = "dynamodb"
)

// Config holds the service configuration sourced from environment variables.
type Config struct {
	Port      int    `env:"PORT" envDefault:"8080"`
	GinMode   string `env:"GIN_MODE" envDefault:"release"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	CatalogSource         string        `env:"CATALOG_SOURCE" envDefault:"static"`
	CatalogTable          string        `env:"CATALOG_TABLE" envDefault:"material_catalog"`
	CatalogLoadTimeout    time.Duration `env:"CATALOG_LOAD_TIMEOUT" envDefault:"30s"`
	CatalogFallbackStatic bool          `env:"CATALOG_FALLBACK_STATIC" envDefault:"true"`

	DynamoDB DynamoDBConfig
}

// DynamoDBConfig is local-friendly: DynamoDB Local does not validate
// credentials but the AWS SDK requires them.
type DynamoDBConfig struct {
	Region          string `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	Endpoint        string `env:"DYNAMODB_ENDPOINT"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.CatalogSource = strings.ToLower(strings.TrimSpace(cfg.CatalogSource))
	switch cfg.CatalogSource {
	case CatalogSourceStatic, CatalogSourceDynamoDB:
	default:
		return nil, fmt.Errorf("invalid CATALOG_SOURCE %q (want %s or %s)", cfg.CatalogSource, CatalogSourceStatic, CatalogSourceDynamoDB)
	}

	switch strings.ToLower(cfg.LogFormat) {
	case "json", "console":
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q", cfg.LogFormat)
	}

	if cfg.CatalogLoadTimeout <= 0 {
		return nil, fmt.Errorf("CATALOG_LOAD_TIMEOUT must be positive")
	}

	return &cfg, nil
}
