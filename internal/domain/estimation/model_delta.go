package estimation

import (
	"math"

	"material_estimator/internal/domain/entities"
)

const (
	modelPartImpact = 0.05
	minScaleFactor  = 0.1
)

// ApplyModelDelta rescales the materials of base by the net number of model
// parts added or removed for each of them.
//
// Each net part moves the quantity by 5%, and the quantity never drops below
// 10% of its previous value. Materials without a delta, and deltas for
// materials not in base, are ignored. No budget check is made. base is not
// modified.
func (e *Engine) ApplyModelDelta(base entities.Estimate, deltas map[string]entities.PartChange) entities.Estimate {
	out := base.Clone()
	out.BudgetStatus = ""

	for material, change := range deltas {
		line, ok := out.Materials[material]
		if !ok {
			continue
		}
		if factor := ModelDeltaFactor(change); factor != 1 {
			out.Materials[material] = rescale(line, factor)
		}
	}

	out.TotalCost = SumTotals(out.Materials)
	return out
}

// ModelDeltaFactor is the quantity multiplier for one material's part change.
func ModelDeltaFactor(change entities.PartChange) float64 {
	net := float64(change.Added - change.Removed)
	return math.Max(minScaleFactor, 1+net*modelPartImpact)
}
