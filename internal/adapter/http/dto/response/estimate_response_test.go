package response

import (
	"encoding/json"
	"testing"

	"material_estimator/internal/domain/entities"
)

func TestFromEstimate(t *testing.T) {
	e := entities.Estimate{
		ID:    "est-1",
		Style: entities.DesignStyleRustic,
		Materials: map[string]entities.MaterialLine{
			"Glass": {Quantity: 10, UnitPrice: 750, TotalPrice: 7500},
		},
		TotalCost:    7500,
		BudgetStatus: "Total Cost: ₱7,500.00. Status: Within Budget.",
	}

	res := FromEstimate(e)
	if res.EstimateID != "est-1" || res.DesignStyle != "Rustic" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Materials["Glass"].TotalPrice != 7500 || res.TotalCost != 7500 {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}

	e.Materials["Glass"] = entities.MaterialLine{}
	if res.Materials["Glass"].TotalPrice != 7500 {
		t.Fatalf("response shares state with the estimate")
	}
}

func TestEstimateResponse_OmitsEmptyStatus(t *testing.T) {
	b, err := json.Marshal(FromEstimate(entities.Estimate{ID: "x", Materials: map[string]entities.MaterialLine{}}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var body map[string]any
	_ = json.Unmarshal(b, &body)
	if _, ok := body["budget_status"]; ok {
		t.Fatalf("expected budget_status to be omitted: %s", b)
	}
	if _, ok := body["total_cost"]; !ok {
		t.Fatalf("expected total_cost: %s", b)
	}
}
