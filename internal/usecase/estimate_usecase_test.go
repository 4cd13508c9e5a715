package usecase

import (
	"context"
	"errors"
	"testing"

	"material_estimator/internal/domain/entities"
	"material_estimator/internal/domain/estimation"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func ptr(v float64) *float64 { return &v }

func TestEstimateUseCase_EstimateMaterials(t *testing.T) {
	t.Run("invalid style", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil)
		_, err := uc.EstimateMaterials(context.Background(), 1000, 10, "Gothic")
		if !errors.Is(err, estimation.ErrInvalidStyle) {
			t.Fatalf("expected ErrInvalidStyle, got %v", err)
		}
	})

	t.Run("budget exceeded", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil)
		res, err := uc.EstimateMaterials(context.Background(), 100, 100, "Modern")
		if !errors.Is(err, estimation.ErrBudgetExceeded) {
			t.Fatalf("expected ErrBudgetExceeded, got %v", err)
		}
		if res.ID != "" || len(res.Materials) != 0 {
			t.Fatalf("expected empty result, got %+v", res)
		}
	})

	t.Run("success stamps id and logs", func(t *testing.T) {
		core, logs := observer.New(zap.InfoLevel)
		uc := NewEstimateUseCase(estimation.NewEngine(nil), zap.New(core))

		res, err := uc.EstimateMaterials(context.Background(), 1_000_000, 100, " Modern ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" || res.CreatedAt.IsZero() {
			t.Fatalf("expected id and timestamp, got %+v", res)
		}
		if res.Style != entities.DesignStyleModern || res.TotalCost != 706530 {
			t.Fatalf("unexpected estimate: %+v", res)
		}
		if logs.FilterMessage("[estimate][usecase] base estimate done").Len() != 1 {
			t.Fatalf("expected one completion log, got %v", logs.All())
		}
	})

	t.Run("ids are unique per call", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil)
		a, _ := uc.EstimateMaterials(context.Background(), 1_000_000, 10, "Rustic")
		b, _ := uc.EstimateMaterials(context.Background(), 1_000_000, 10, "Rustic")
		if a.ID == b.ID {
			t.Fatalf("expected distinct ids")
		}
	})
}

func TestEstimateUseCase_EstimateFromModelChanges(t *testing.T) {
	base := map[string]entities.MaterialLine{
		"Cement": {Quantity: 300, UnitPrice: 259, TotalPrice: 77700},
		"Glass":  {Quantity: 20, UnitPrice: 850, TotalPrice: 17000},
	}

	t.Run("defaults to modern", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil)
		res, err := uc.EstimateFromModelChanges(context.Background(), base, map[string]entities.PartChange{"Glass": {Added: 2}}, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Style != entities.DesignStyleModern {
			t.Fatalf("expected Modern, got %s", res.Style)
		}
		if got := res.Materials["Glass"].Quantity; got != 22 {
			t.Fatalf("expected 22, got %v", got)
		}
		if res.TotalCost != 77700+18700 {
			t.Fatalf("unexpected total %v", res.TotalCost)
		}
		if res.BudgetStatus != "" {
			t.Fatalf("expected no verdict, got %q", res.BudgetStatus)
		}
		if base["Glass"].Quantity != 20 {
			t.Fatalf("caller materials mutated")
		}
	})

	t.Run("invalid style", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil)
		_, err := uc.EstimateFromModelChanges(context.Background(), base, nil, "Baroque")
		if !errors.Is(err, estimation.ErrInvalidStyle) {
			t.Fatalf("expected ErrInvalidStyle, got %v", err)
		}
	})

	t.Run("negative base lines rejected", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil)
		for _, line := range []entities.MaterialLine{
			{Quantity: -300, UnitPrice: 259, TotalPrice: 77700},
			{Quantity: 300, UnitPrice: -259, TotalPrice: 77700},
			{Quantity: 300, UnitPrice: 259, TotalPrice: -77700},
		} {
			bad := map[string]entities.MaterialLine{"Cement": line, "Glass": base["Glass"]}
			_, err := uc.EstimateFromModelChanges(context.Background(), bad, map[string]entities.PartChange{"Cement": {Added: 1}}, "Modern")
			if !errors.Is(err, ErrInvalidBaseMaterial) {
				t.Fatalf("%+v: expected ErrInvalidBaseMaterial, got %v", line, err)
			}
		}
	})

	t.Run("missing base", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil)
		_, err := uc.EstimateFromModelChanges(context.Background(), nil, nil, "Modern")
		if !errors.Is(err, ErrMissingBaseMaterials) {
			t.Fatalf("expected ErrMissingBaseMaterials, got %v", err)
		}
	})
}

func TestEstimateUseCase_EstimateFromComponents(t *testing.T) {
	t.Run("negative counts rejected", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil)
		_, err := uc.EstimateFromComponents(context.Background(), 1_000_000, 100, "Modern",
			[]entities.Component{{Name: "wall", Added: ptr(-20)}})
		if !errors.Is(err, ErrInvalidComponentChange) {
			t.Fatalf("expected ErrInvalidComponentChange, got %v", err)
		}
	})

	t.Run("base budget exceeded", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil)
		_, err := uc.EstimateFromComponents(context.Background(), 100, 100, "Modern",
			[]entities.Component{{Name: "wall", Added: ptr(1)}})
		if !errors.Is(err, estimation.ErrBudgetExceeded) {
			t.Fatalf("expected ErrBudgetExceeded, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil)
		res, err := uc.EstimateFromComponents(context.Background(), 1_000_000, 100, "Modern",
			[]entities.Component{{Name: "wall", Quantity: 1, Added: ptr(3)}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Materials["Bricks"].Quantity != 7150 || res.TotalCost != 726330 {
			t.Fatalf("unexpected estimate: %+v", res)
		}
		if res.BudgetStatus != "Total Cost: ₱726,330.00. Status: Within Budget." {
			t.Fatalf("unexpected status %q", res.BudgetStatus)
		}
		if res.ID == "" {
			t.Fatalf("expected id")
		}
	})

	t.Run("verdict may exceed after deltas", func(t *testing.T) {
		uc := NewEstimateUseCase(nil, nil)
		res, err := uc.EstimateFromComponents(context.Background(), 710_000, 100, "Modern",
			[]entities.Component{{Name: "Wall", Added: ptr(10)}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.BudgetStatus != "Total Cost: ₱772,530.00. Status: Exceeds Budget." {
			t.Fatalf("unexpected status %q", res.BudgetStatus)
		}
	})
}

func TestCatalogUseCase(t *testing.T) {
	uc := NewCatalogUseCase(nil)

	entries, err := uc.Materials(context.Background(), "Classic")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 10 || entries[6].Material != "Tiles" || entries[6].UnitCost != 350 {
		t.Fatalf("unexpected entries: %+v", entries)
	}

	if _, err := uc.Materials(context.Background(), "modern"); !errors.Is(err, estimation.ErrInvalidStyle) {
		t.Fatalf("expected ErrInvalidStyle for lowercase style, got %v", err)
	}

	impacts, rules := uc.ComponentImpacts(context.Background())
	if impacts["wall"]["Bricks"] != 1.0 || rules[0].Keyword != "wall" || rules[len(rules)-1].Material != "Paint" {
		t.Fatalf("unexpected impacts/rules: %+v %+v", impacts, rules)
	}
}
