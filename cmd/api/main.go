package main

import (
	"context"
	"log"

	_ "material_estimator/docs"
	"material_estimator/internal/adapter/http/handlers"
	"material_estimator/internal/adapter/http/routes"
	"material_estimator/internal/adapter/persistence/repository"
	"material_estimator/internal/config"
	"material_estimator/internal/domain/catalog"
	"material_estimator/internal/domain/estimation"
	"material_estimator/internal/infrastructure/catalogsource"
	"material_estimator/internal/infrastructure/database"
	"material_estimator/internal/usecase"
	"material_estimator/pkg/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Material Estimator API
// @version         1.0
// @description     Construction material and cost estimates by floor area and design style.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	cat, err := loadCatalog(context.Background(), cfg, zl)
	if err != nil {
		zl.Fatal("[catalog][startup] failed to load catalog", zap.Error(err))
	}

	engine := estimation.NewEngine(cat)
	h := routes.Handlers{
		Estimate: handlers.NewEstimateHandler(usecase.NewEstimateUseCase(engine, zl), zl),
		Catalog:  handlers.NewCatalogHandler(usecase.NewCatalogUseCase(engine)),
	}

	if err := routes.Run(cfg, zl, h); err != nil {
		zl.Fatal("Failed to startup the application", zap.Error(err))
	}
}

func loadCatalog(ctx context.Context, cfg *config.Config, zl *zap.Logger) (*catalog.Catalog, error) {
	if cfg.CatalogSource != config.CatalogSourceDynamoDB {
		return catalogsource.Resolve(ctx, nil, cfg.CatalogLoadTimeout, cfg.CatalogFallbackStatic)
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		if !cfg.CatalogFallbackStatic {
			return nil, err
		}
		zl.Warn("[catalog][startup] dynamodb unavailable, using built-in catalog", zap.Error(err))
		return catalog.Default(), nil
	}

	repo := repository.NewCatalogDynamoRepository(ddb, cfg.CatalogTable)
	loader := catalogsource.NewLoader(repo, zl)
	return catalogsource.Resolve(ctx, loader, cfg.CatalogLoadTimeout, cfg.CatalogFallbackStatic)
}
