package main

import (
	"fmt"
	"strconv"
	"strings"

	"material_estimator/internal/domain/entities"
)

// parsePair splits a name=count flag value.
func parsePair(raw string) (string, float64, error) {
	name, value, ok := strings.Cut(raw, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", 0, fmt.Errorf("invalid value %q: expected name=count", raw)
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return "", 0, fmt.Errorf("invalid count in %q: %w", raw, err)
	}
	return name, n, nil
}

// parseComponents merges --add and --remove values into components, keeping
// the order in which each name first appeared.
func parseComponents(added, removed []string) ([]entities.Component, error) {
	var out []entities.Component
	index := map[string]int{}

	get := func(name string) *entities.Component {
		i, ok := index[name]
		if !ok {
			i = len(out)
			index[name] = i
			out = append(out, entities.Component{Name: name, Quantity: 1})
		}
		return &out[i]
	}

	for _, raw := range added {
		name, n, err := parsePair(raw)
		if err != nil {
			return nil, err
		}
		get(name).Added = &n
	}
	for _, raw := range removed {
		name, n, err := parsePair(raw)
		if err != nil {
			return nil, err
		}
		get(name).Removed = &n
	}
	return out, nil
}

func parsePartChanges(added, removed []string) (map[string]entities.PartChange, error) {
	out := map[string]entities.PartChange{}
	apply := func(values []string, set func(*entities.PartChange, int)) error {
		for _, raw := range values {
			name, n, err := parsePair(raw)
			if err != nil {
				return err
			}
			if n != float64(int(n)) {
				return fmt.Errorf("invalid count in %q: parts must be whole numbers", raw)
			}
			change := out[name]
			set(&change, int(n))
			out[name] = change
		}
		return nil
	}

	if err := apply(added, func(p *entities.PartChange, n int) { p.Added = n }); err != nil {
		return nil, err
	}
	if err := apply(removed, func(p *entities.PartChange, n int) { p.Removed = n }); err != nil {
		return nil, err
	}
	return out, nil
}
