package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"material_estimator/internal/domain/entities"
	"material_estimator/internal/domain/estimation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidComponentChange = errors.New("component added/removed counts must not be negative")
	ErrMissingBaseMaterials   = errors.New("base materials are required")
	ErrInvalidBaseMaterial    = errors.New("base material quantity and prices must not be negative")
)

// IEstimateUseCase exposes the material estimation operations.
//
// These operations map to the estimator endpoints:
//   - POST /estimate => EstimateMaterials()
//   - POST /estimate-from-model-changes => EstimateFromModelChanges()
//   - POST /estimate-from-components => EstimateFromComponents()

//go:generate mockgen -source=estimate_usecase.go -destination=../adapter/http/handlers/mocks/mock_estimate_usecase.go -package=mocks

type IEstimateUseCase interface {
	EstimateMaterials(ctx context.Context, budget, size float64, style string) (entities.Estimate, error)
	EstimateFromModelChanges(ctx context.Context, base map[string]entities.MaterialLine, changes map[string]entities.PartChange, style string) (entities.Estimate, error)
	EstimateFromComponents(ctx context.Context, budget, size float64, style string, components []entities.Component) (entities.Estimate, error)
}

type EstimateUseCase struct {
	engine *estimation.Engine
	log    *zap.Logger
}

var _ IEstimateUseCase = (*EstimateUseCase)(nil)

func NewEstimateUseCase(engine *estimation.Engine, log *zap.Logger) *EstimateUseCase {
	if engine == nil {
		engine = estimation.NewEngine(nil)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &EstimateUseCase{engine: engine, log: log}
}

func (u *EstimateUseCase) EstimateMaterials(ctx context.Context, budget, size float64, style string) (entities.Estimate, error) {
	ds, err := parseStyle(style)
	if err != nil {
		return entities.Estimate{}, err
	}

	est, err := u.engine.Estimate(budget, size, ds)
	if err != nil {
		u.log.Info("[estimate][usecase] base estimate rejected",
			zap.Float64("budget", budget), zap.Float64("size", size), zap.String("style", string(ds)), zap.Error(err))
		return entities.Estimate{}, err
	}

	est = stamp(est)
	u.log.Info("[estimate][usecase] base estimate done",
		zap.String("estimate_id", est.ID), zap.String("style", string(ds)),
		zap.Float64("size", size), zap.Float64("total_cost", est.TotalCost))
	return est, nil
}

// EstimateFromModelChanges rescales caller-provided materials by per-material
// part counts. An empty style defaults to Modern.
func (u *EstimateUseCase) EstimateFromModelChanges(ctx context.Context, base map[string]entities.MaterialLine, changes map[string]entities.PartChange, style string) (entities.Estimate, error) {
	if strings.TrimSpace(style) == "" {
		style = string(entities.DesignStyleModern)
	}
	ds, err := parseStyle(style)
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(base) == 0 {
		return entities.Estimate{}, ErrMissingBaseMaterials
	}
	for name, line := range base {
		if line.Quantity < 0 || line.UnitPrice < 0 || line.TotalPrice < 0 {
			return entities.Estimate{}, fmt.Errorf("%w: %q", ErrInvalidBaseMaterial, name)
		}
	}

	ref := entities.Estimate{Style: ds, Materials: base}
	est := stamp(u.engine.ApplyModelDelta(ref, changes))

	u.log.Info("[estimate][usecase] model changes applied",
		zap.String("estimate_id", est.ID), zap.String("style", string(ds)),
		zap.Int("changes", len(changes)), zap.Float64("total_cost", est.TotalCost))
	return est, nil
}

// EstimateFromComponents runs a base estimate and then applies the component
// deltas to it, judging the result against the same budget.
func (u *EstimateUseCase) EstimateFromComponents(ctx context.Context, budget, size float64, style string, components []entities.Component) (entities.Estimate, error) {
	for _, c := range components {
		if (c.Added != nil && *c.Added < 0) || (c.Removed != nil && *c.Removed < 0) {
			return entities.Estimate{}, fmt.Errorf("%w: %q", ErrInvalidComponentChange, c.Name)
		}
	}

	ds, err := parseStyle(style)
	if err != nil {
		return entities.Estimate{}, err
	}

	base, err := u.engine.Estimate(budget, size, ds)
	if err != nil {
		u.log.Info("[estimate][usecase] component estimate rejected",
			zap.Float64("budget", budget), zap.Float64("size", size), zap.String("style", string(ds)), zap.Error(err))
		return entities.Estimate{}, err
	}

	est := stamp(u.engine.ApplyComponentDelta(base, components, budget))
	u.log.Info("[estimate][usecase] component changes applied",
		zap.String("estimate_id", est.ID), zap.String("style", string(ds)),
		zap.Int("components", len(components)), zap.Float64("base_total", base.TotalCost),
		zap.Float64("total_cost", est.TotalCost))
	return est, nil
}

func parseStyle(style string) (entities.DesignStyle, error) {
	ds, ok := entities.ParseDesignStyle(style)
	if !ok {
		return "", fmt.Errorf("%w: %q", estimation.ErrInvalidStyle, style)
	}
	return ds, nil
}

func stamp(e entities.Estimate) entities.Estimate {
	e.ID = uuid.NewString()
	e.CreatedAt = time.Now().UTC()
	return e
}
