package interfaces

import (
	"context"

	"material_estimator/internal/domain/catalog"
)

// ICatalogRepository abstracts an external store of pricing catalog rows.
//
// The catalog is read once at startup:
//   - entries come back flat, one row per (style, material)
//   - order matters: it becomes the material order of estimates

//go:generate mockgen -source=catalog_repository_interface.go -destination=mocks/mock_catalog_repository.go -package=mock_interfaces

type ICatalogRepository interface {
	ListEntries(ctx context.Context) ([]catalog.StyleEntry, error)
}
