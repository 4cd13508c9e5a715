package response

import (
	"material_estimator/internal/domain/catalog"
	"material_estimator/internal/domain/entities"
)

type MaterialLineResponse struct {
	Quantity   float64 `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

type EstimateResponse struct {
	EstimateID   string                          `json:"estimate_id"`
	DesignStyle  string                          `json:"design_style"`
	Materials    map[string]MaterialLineResponse `json:"materials"`
	TotalCost    float64                         `json:"total_cost"`
	BudgetStatus string                          `json:"budget_status,omitempty"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	materials := make(map[string]MaterialLineResponse, len(e.Materials))
	for name, line := range e.Materials {
		materials[name] = MaterialLineResponse{
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice,
			TotalPrice: line.TotalPrice,
		}
	}
	return EstimateResponse{
		EstimateID:   e.ID,
		DesignStyle:  string(e.Style),
		Materials:    materials,
		TotalCost:    e.TotalCost,
		BudgetStatus: e.BudgetStatus,
	}
}

type CatalogStyleResponse struct {
	DesignStyle string                  `json:"design_style"`
	Materials   []catalog.MaterialEntry `json:"materials"`
}

type ComponentImpactsResponse struct {
	Components map[string]map[string]float64 `json:"components"`
	Rules      []catalog.KeywordRule         `json:"rules"`
}
