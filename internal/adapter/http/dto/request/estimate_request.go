package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"material_estimator/internal/domain/entities"
)

var (
	ErrMissingFields = errors.New("missing required fields")
)

// Number accepts a JSON number or a numeric string ("1500", " 80.5 ").
// Web forms post numbers as strings; null leaves the value at zero.
type Number float64

func (n *Number) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*n = 0
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("invalid number %q", s)
		}
		*n = Number(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*n = Number(v)
	return nil
}

// EstimateRequest is the payload of POST /estimate.
type EstimateRequest struct {
	Budget      Number `json:"budget"`
	Size        Number `json:"size"`
	DesignStyle string `json:"design_style"`
}

// Validate rejects missing fields. Zero counts as missing for budget and
// size, the same as an absent key.
func (r EstimateRequest) Validate() error {
	if r.Budget == 0 || r.Size == 0 || strings.TrimSpace(r.DesignStyle) == "" {
		return ErrMissingFields
	}
	return nil
}

type ComponentRequest struct {
	Name     string   `json:"name"`
	Quantity Number   `json:"quantity"`
	Added    *float64 `json:"added,omitempty"`
	Removed  *float64 `json:"removed,omitempty"`
}

// ComponentsEstimateRequest is the payload of POST /estimate-from-components.
type ComponentsEstimateRequest struct {
	EstimateRequest
	Components []ComponentRequest `json:"components"`
}

func (r ComponentsEstimateRequest) ToComponents() []entities.Component {
	out := make([]entities.Component, len(r.Components))
	for i, c := range r.Components {
		out[i] = entities.Component{
			Name:     c.Name,
			Quantity: float64(c.Quantity),
			Added:    c.Added,
			Removed:  c.Removed,
		}
	}
	return out
}

type MaterialLineRequest struct {
	Quantity   float64 `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

type PartChangeRequest struct {
	Added   int `json:"added"`
	Removed int `json:"removed"`
}

// ModelChangesRequest is the payload of POST /estimate-from-model-changes.
// Keys are camelCase because the model viewer posts them that way.
type ModelChangesRequest struct {
	BaseMaterials map[string]MaterialLineRequest `json:"baseMaterials"`
	ModelChanges  map[string]PartChangeRequest   `json:"modelChanges"`
	DesignStyle   string                         `json:"designStyle"`
}

func (r ModelChangesRequest) Validate() error {
	if len(r.BaseMaterials) == 0 || r.ModelChanges == nil {
		return ErrMissingFields
	}
	return nil
}

func (r ModelChangesRequest) ToBaseMaterials() map[string]entities.MaterialLine {
	out := make(map[string]entities.MaterialLine, len(r.BaseMaterials))
	for name, m := range r.BaseMaterials {
		out[name] = entities.MaterialLine{Quantity: m.Quantity, UnitPrice: m.UnitPrice, TotalPrice: m.TotalPrice}
	}
	return out
}

func (r ModelChangesRequest) ToPartChanges() map[string]entities.PartChange {
	out := make(map[string]entities.PartChange, len(r.ModelChanges))
	for name, c := range r.ModelChanges {
		out[name] = entities.PartChange{Added: c.Added, Removed: c.Removed}
	}
	return out
}
