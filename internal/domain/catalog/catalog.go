package catalog

import (
	"errors"
	"fmt"
	"sort"

	"material_estimator/internal/domain/entities"
)

var (
	ErrUnknownStyle        = errors.New("unknown design style")
	ErrMissingStyle        = errors.New("catalog is missing a design style")
	ErrMaterialSetMismatch = errors.New("design styles define different material sets")
	ErrDuplicateMaterial   = errors.New("duplicate material entry")
	ErrInvalidEntry        = errors.New("invalid catalog entry")
)

// MaterialEntry is one material of one design style.
type MaterialEntry struct {
	Material       string  `json:"material"`
	UnitCost       float64 `json:"unit_cost"`
	QuantityPerSqm float64 `json:"quantity_per_sqm"`
}

// StyleEntry ties a MaterialEntry to the style it belongs to. It is the
// flat shape used when a catalog is loaded from an external store.
type StyleEntry struct {
	Style entities.DesignStyle
	MaterialEntry
}

// Catalog is the read-only pricing catalog.
//
// A Catalog is built once at startup and shared by every request. It has no
// exported fields and every accessor returns a copy, so callers cannot
// mutate it.
type Catalog struct {
	styles map[entities.DesignStyle][]MaterialEntry
}

// New builds a catalog from flat entries. Entry order within a style is kept
// and becomes the material iteration order of estimates.
//
// Every supported style must be present and all styles must define the same
// material set.
func New(entries []StyleEntry) (*Catalog, error) {
	styles := make(map[entities.DesignStyle][]MaterialEntry, len(entities.DesignStyles()))
	seen := make(map[entities.DesignStyle]map[string]struct{})

	for _, e := range entries {
		if _, ok := entities.ParseDesignStyle(string(e.Style)); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, e.Style)
		}
		if e.Material == "" || e.UnitCost < 0 || e.QuantityPerSqm < 0 {
			return nil, fmt.Errorf("%w: style=%s material=%q", ErrInvalidEntry, e.Style, e.Material)
		}
		if seen[e.Style] == nil {
			seen[e.Style] = make(map[string]struct{})
		}
		if _, dup := seen[e.Style][e.Material]; dup {
			return nil, fmt.Errorf("%w: style=%s material=%s", ErrDuplicateMaterial, e.Style, e.Material)
		}
		seen[e.Style][e.Material] = struct{}{}
		styles[e.Style] = append(styles[e.Style], e.MaterialEntry)
	}

	var reference []string
	for _, style := range entities.DesignStyles() {
		if len(styles[style]) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrMissingStyle, style)
		}
		names := sortedNames(styles[style])
		if reference == nil {
			reference = names
			continue
		}
		if !equalNames(reference, names) {
			return nil, fmt.Errorf("%w: %s", ErrMaterialSetMismatch, style)
		}
	}

	return &Catalog{styles: styles}, nil
}

// Entries returns the materials of style in catalog order.
func (c *Catalog) Entries(style entities.DesignStyle) ([]MaterialEntry, error) {
	entries, ok := c.styles[style]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, style)
	}
	out := make([]MaterialEntry, len(entries))
	copy(out, entries)
	return out, nil
}

// Materials returns the material names of style in catalog order.
func (c *Catalog) Materials(style entities.DesignStyle) ([]string, error) {
	entries, err := c.Entries(style)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Material
	}
	return names, nil
}

func sortedNames(entries []MaterialEntry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Material
	}
	sort.Strings(names)
	return names
}

func equalNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
