package usecase

import (
	"context"

	"material_estimator/internal/domain/catalog"
	"material_estimator/internal/domain/estimation"
)

// ICatalogUseCase exposes the read-only pricing tables.

//go:generate mockgen -source=catalog_usecase.go -destination=../adapter/http/handlers/mocks/mock_catalog_usecase.go -package=mocks

type ICatalogUseCase interface {
	Materials(ctx context.Context, style string) ([]catalog.MaterialEntry, error)
	ComponentImpacts(ctx context.Context) (map[string]map[string]float64, []catalog.KeywordRule)
}

type CatalogUseCase struct {
	catalog *catalog.Catalog
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(engine *estimation.Engine) *CatalogUseCase {
	if engine == nil {
		engine = estimation.NewEngine(nil)
	}
	return &CatalogUseCase{catalog: engine.Catalog()}
}

func (u *CatalogUseCase) Materials(ctx context.Context, style string) ([]catalog.MaterialEntry, error) {
	ds, err := parseStyle(style)
	if err != nil {
		return nil, err
	}
	return u.catalog.Entries(ds)
}

func (u *CatalogUseCase) ComponentImpacts(ctx context.Context) (map[string]map[string]float64, []catalog.KeywordRule) {
	return catalog.ComponentImpacts(), catalog.ComponentRules()
}
