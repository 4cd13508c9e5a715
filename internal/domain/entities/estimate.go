package entities

import (
	"sort"
	"strings"
	"time"
)

// DesignStyle selects the pricing/quantity profile used for an estimate.
//
// Domain notes:
//   - Exactly three styles exist; each one defines the same set of materials.
//   - The style is fixed for the lifetime of a request.

type DesignStyle string

const (
	DesignStyleModern  DesignStyle = "Modern"
	DesignStyleClassic DesignStyle = "Classic"
	DesignStyleRustic  DesignStyle = "Rustic"
)

// DesignStyles lists every supported style in catalog order.
func DesignStyles() []DesignStyle {
	return []DesignStyle{DesignStyleModern, DesignStyleClassic, DesignStyleRustic}
}

// ParseDesignStyle matches s against the supported styles. Matching is exact
// after trimming surrounding whitespace.
func ParseDesignStyle(s string) (DesignStyle, bool) {
	s = strings.TrimSpace(s)
	for _, style := range DesignStyles() {
		if string(style) == s {
			return style, true
		}
	}
	return "", false
}

// MaterialLine is the per-material result of an estimate.
//
// Invariant: TotalPrice == round(Quantity * UnitPrice, 2).
type MaterialLine struct {
	Quantity   float64 `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

// Estimate is a material breakdown with its rolled-up cost.
//
// Estimates are request-scoped and never persisted. ID is a correlation id
// stamped by the use case layer so a result can be traced through logs.
type Estimate struct {
	ID           string                  `json:"id"`
	Style        DesignStyle             `json:"design_style"`
	Materials    map[string]MaterialLine `json:"materials"`
	TotalCost    float64                 `json:"total_cost"`
	BudgetStatus string                  `json:"budget_status,omitempty"`
	CreatedAt    time.Time               `json:"created_at"`
}

// Clone returns a copy that shares no mutable state with e.
func (e Estimate) Clone() Estimate {
	out := e
	out.Materials = make(map[string]MaterialLine, len(e.Materials))
	for name, line := range e.Materials {
		out.Materials[name] = line
	}
	return out
}

// MaterialNames returns the material names of e in lexical order.
func (e Estimate) MaterialNames() []string {
	names := make([]string, 0, len(e.Materials))
	for name := range e.Materials {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PartChange counts the 3D-model parts added and removed for one material.
type PartChange struct {
	Added   int `json:"added"`
	Removed int `json:"removed"`
}

// Component is a named structural part (wall, roof, beam...) reported by
// the model viewer. Added and Removed are optional: a nil count means the
// client did not send it, which is different from sending zero.
type Component struct {
	Name     string   `json:"name"`
	Quantity float64  `json:"quantity"`
	Added    *float64 `json:"added,omitempty"`
	Removed  *float64 `json:"removed,omitempty"`
}
