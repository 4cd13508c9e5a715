package estimation

import (
	"math"

	"material_estimator/internal/domain/catalog"
	"material_estimator/internal/domain/entities"
)

const (
	componentImpact    = 0.1
	maxComponentShrink = 0.9
)

// ApplyComponentDelta rescales the materials of base from a list of named
// structural components.
//
// Each component is mapped to at most one material through the keyword
// rules (first match wins). Components are applied in order, so two
// components hitting the same material compound. The budget verdict is
// recomputed against budget but never turns into an error. base is not
// modified.
func (e *Engine) ApplyComponentDelta(base entities.Estimate, components []entities.Component, budget float64) entities.Estimate {
	out := base.Clone()

	for _, c := range components {
		material, ok := catalog.MatchComponent(e.rules, c.Name, func(m string) bool {
			_, ok := out.Materials[m]
			return ok
		})
		if !ok {
			continue
		}
		if factor := ComponentFactor(c); factor != 1 {
			out.Materials[material] = rescale(out.Materials[material], factor)
		}
	}

	out.TotalCost = SumTotals(out.Materials)
	out.BudgetStatus = BudgetStatus(out.TotalCost, budget)
	return out
}

// ComponentFactor is the quantity multiplier for one component. Added takes
// precedence over Removed; a component with neither is a no-op.
func ComponentFactor(c entities.Component) float64 {
	switch {
	case c.Added != nil:
		return 1 + *c.Added*componentImpact
	case c.Removed != nil:
		return 1 - math.Min(maxComponentShrink, *c.Removed*componentImpact)
	default:
		return 1
	}
}
