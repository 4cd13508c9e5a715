package catalog

import "material_estimator/internal/domain/entities"

// Unit costs are PHP retail prices:
//   - Cement: 40kg bag
//   - Sand, Gravel: cubic meter
//   - Bricks: 4" CHB piece
//   - Steel: 6m 10mm rebar
//   - Wood: 1/2" plywood sheet
//   - Tiles: 12x12 tile
//   - Paint: gallon
//   - Roofing: G.I. sheet
//   - Glass: sqm of clear glass
var defaultEntries = []StyleEntry{
	{entities.DesignStyleModern, MaterialEntry{"Cement", 259, 3}},
	{entities.DesignStyleModern, MaterialEntry{"Sand", 1435, 0.14}},
	{entities.DesignStyleModern, MaterialEntry{"Gravel", 1310, 0.14}},
	{entities.DesignStyleModern, MaterialEntry{"Bricks", 12, 55}},
	{entities.DesignStyleModern, MaterialEntry{"Steel", 156, 12}},
	{entities.DesignStyleModern, MaterialEntry{"Wood", 656, 3}},
	{entities.DesignStyleModern, MaterialEntry{"Tiles", 300, 1.5}},
	{entities.DesignStyleModern, MaterialEntry{"Paint", 640, 0.6}},
	{entities.DesignStyleModern, MaterialEntry{"Roofing", 400, 1}},
	{entities.DesignStyleModern, MaterialEntry{"Glass", 850, 0.2}},

	{entities.DesignStyleClassic, MaterialEntry{"Cement", 259, 2.8}},
	{entities.DesignStyleClassic, MaterialEntry{"Sand", 1435, 0.13}},
	{entities.DesignStyleClassic, MaterialEntry{"Gravel", 1310, 0.13}},
	{entities.DesignStyleClassic, MaterialEntry{"Bricks", 12, 50}},
	{entities.DesignStyleClassic, MaterialEntry{"Steel", 156, 10}},
	{entities.DesignStyleClassic, MaterialEntry{"Wood", 656, 4}},
	{entities.DesignStyleClassic, MaterialEntry{"Tiles", 350, 1.7}},
	{entities.DesignStyleClassic, MaterialEntry{"Paint", 640, 0.5}},
	{entities.DesignStyleClassic, MaterialEntry{"Roofing", 450, 1}},
	{entities.DesignStyleClassic, MaterialEntry{"Glass", 950, 0.15}},

	{entities.DesignStyleRustic, MaterialEntry{"Cement", 259, 2.5}},
	{entities.DesignStyleRustic, MaterialEntry{"Sand", 1435, 0.12}},
	{entities.DesignStyleRustic, MaterialEntry{"Gravel", 1310, 0.12}},
	{entities.DesignStyleRustic, MaterialEntry{"Bricks", 12, 60}},
	{entities.DesignStyleRustic, MaterialEntry{"Steel", 156, 9}},
	{entities.DesignStyleRustic, MaterialEntry{"Wood", 656, 6}},
	{entities.DesignStyleRustic, MaterialEntry{"Tiles", 400, 2}},
	{entities.DesignStyleRustic, MaterialEntry{"Paint", 640, 0.7}},
	{entities.DesignStyleRustic, MaterialEntry{"Roofing", 500, 1}},
	{entities.DesignStyleRustic, MaterialEntry{"Glass", 750, 0.1}},
}

var defaultCatalog = mustNew(defaultEntries)

// Default returns the built-in catalog.
func Default() *Catalog {
	return defaultCatalog
}

// DefaultEntries returns a copy of the built-in flat entries, e.g. to seed
// an external catalog table.
func DefaultEntries() []StyleEntry {
	out := make([]StyleEntry, len(defaultEntries))
	copy(out, defaultEntries)
	return out
}

func mustNew(entries []StyleEntry) *Catalog {
	c, err := New(entries)
	if err != nil {
		panic(err)
	}
	return c
}
