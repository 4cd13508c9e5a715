package estimation

import (
	"errors"
	"fmt"
	"math"

	"material_estimator/internal/domain/catalog"
	"material_estimator/internal/domain/entities"
)

var (
	ErrInvalidStyle   = errors.New("invalid design style. Choose from Modern, Classic, or Rustic")
	ErrBudgetExceeded = errors.New("budget is not enough to cover the estimated total cost")
	ErrInvalidSize    = errors.New("size must not be negative")
)

// Engine computes material estimates against a read-only catalog.
//
// An Engine holds no mutable state; one instance is shared by all requests.
type Engine struct {
	catalog *catalog.Catalog
	rules   []catalog.KeywordRule
}

func NewEngine(c *catalog.Catalog) *Engine {
	if c == nil {
		c = catalog.Default()
	}
	return &Engine{catalog: c, rules: catalog.ComponentRules()}
}

// Catalog exposes the catalog the engine prices against.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Estimate builds the full material breakdown for a floor area in a style.
//
// Budget and size are truncated to integers first. Each line's quantity and
// cost are rounded to two decimals and the rounded costs are summed. When the
// total exceeds the budget the call fails with ErrBudgetExceeded and no
// materials are returned.
func (e *Engine) Estimate(budget, size float64, style entities.DesignStyle) (entities.Estimate, error) {
	entries, err := e.catalog.Entries(style)
	if err != nil {
		return entities.Estimate{}, fmt.Errorf("%w: %q", ErrInvalidStyle, style)
	}

	budget = math.Trunc(budget)
	size = math.Trunc(size)
	if size < 0 {
		return entities.Estimate{}, ErrInvalidSize
	}

	materials := make(map[string]entities.MaterialLine, len(entries))
	totalCost := 0.0
	for _, m := range entries {
		quantity := m.QuantityPerSqm * size
		lineCost := Round2(quantity * m.UnitCost)
		totalCost += lineCost

		materials[m.Material] = entities.MaterialLine{
			Quantity:   Round2(quantity),
			UnitPrice:  m.UnitCost,
			TotalPrice: lineCost,
		}
	}
	totalCost = Round2(totalCost)

	if totalCost > budget {
		return entities.Estimate{}, ErrBudgetExceeded
	}

	return entities.Estimate{
		Style:        style,
		Materials:    materials,
		TotalCost:    totalCost,
		BudgetStatus: BudgetStatus(totalCost, budget),
	}, nil
}

// SumTotals adds up the line totals of materials.
func SumTotals(materials map[string]entities.MaterialLine) float64 {
	total := 0.0
	for _, line := range materials {
		total += line.TotalPrice
	}
	return Round2(total)
}

// rescale multiplies a line's quantity by factor and reprices it.
func rescale(line entities.MaterialLine, factor float64) entities.MaterialLine {
	line.Quantity = Round2(line.Quantity * factor)
	line.TotalPrice = Round2(line.Quantity * line.UnitPrice)
	return line
}
