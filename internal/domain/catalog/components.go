package catalog

import (
	"sort"
	"strings"
)

// componentImpacts maps a structural component to the materials it draws
// on, with a relative weight per material.
var componentImpacts = map[string]map[string]float64{
	"wall":       {"Bricks": 1.0, "Cement": 0.3, "Paint": 0.2},
	"floor":      {"Cement": 1.0, "Tiles": 0.8},
	"ceiling":    {"Wood": 1.0},
	"roof":       {"Roofing": 1.0, "Wood": 0.5},
	"foundation": {"Cement": 1.5, "Sand": 0.8, "Gravel": 0.8, "Steel": 0.3},
	"beam":       {"Cement": 0.3, "Steel": 1.0},
	"column":     {"Cement": 0.5, "Steel": 0.7},
	"window":     {"Glass": 1.0, "Wood": 0.2},
	"door":       {"Wood": 1.0},
	"tile":       {"Tiles": 1.0},
}

// ComponentImpacts returns a copy of the component impact table.
func ComponentImpacts() map[string]map[string]float64 {
	out := make(map[string]map[string]float64, len(componentImpacts))
	for component, impacts := range componentImpacts {
		cp := make(map[string]float64, len(impacts))
		for material, w := range impacts {
			cp[material] = w
		}
		out[component] = cp
	}
	return out
}

// ImpactOf returns the material weights of one component.
func ImpactOf(component string) (map[string]float64, bool) {
	impacts, ok := componentImpacts[strings.ToLower(strings.TrimSpace(component))]
	if !ok {
		return nil, false
	}
	out := make(map[string]float64, len(impacts))
	for material, w := range impacts {
		out[material] = w
	}
	return out, true
}

// ComponentNames lists the components of the impact table in lexical order.
func ComponentNames() []string {
	names := make([]string, 0, len(componentImpacts))
	for name := range componentImpacts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// KeywordRule maps a component-name substring to the one material it scales.
type KeywordRule struct {
	Keyword  string `json:"keyword"`
	Material string `json:"material"`
}

// componentRules is evaluated top to bottom; the first applicable rule wins.
var componentRules = []KeywordRule{
	{"wall", "Bricks"},
	{"floor", "Cement"},
	{"roof", "Roofing"},
	{"window", "Glass"},
	{"door", "Wood"},
	{"beam", "Steel"},
	{"column", "Steel"},
	{"foundation", "Cement"},
	{"ceiling", "Wood"},
	{"tile", "Tiles"},
	{"paint", "Paint"},
}

// ComponentRules returns the keyword rules in evaluation order.
func ComponentRules() []KeywordRule {
	out := make([]KeywordRule, len(componentRules))
	copy(out, componentRules)
	return out
}

// MatchComponent returns the material of the first rule whose keyword is a
// substring of the lowercased name and whose material is accepted by has.
// Later rules are not consulted once one matches.
func MatchComponent(rules []KeywordRule, name string, has func(material string) bool) (string, bool) {
	name = strings.ToLower(name)
	for _, r := range rules {
		if strings.Contains(name, r.Keyword) && has(r.Material) {
			return r.Material, true
		}
	}
	return "", false
}
