package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"material_estimator/internal/adapter/http/dto/response"
	"material_estimator/internal/domain/catalog"
	"material_estimator/internal/domain/entities"

	"github.com/dustin/go-humanize"
)

func money(v float64) string {
	return "₱" + humanize.FormatFloat("#,###.##", v)
}

func quantity(v float64) string {
	return humanize.FormatFloat("#,###.##", v)
}

// materialOrder lists the estimate's materials in catalog order, followed by
// any names the catalog does not know in lexical order.
func materialOrder(c *catalog.Catalog, est entities.Estimate) []string {
	var names []string
	seen := map[string]bool{}
	if known, err := c.Materials(est.Style); err == nil {
		for _, name := range known {
			if _, ok := est.Materials[name]; ok {
				names = append(names, name)
				seen[name] = true
			}
		}
	}
	for _, name := range est.MaterialNames() {
		if !seen[name] {
			names = append(names, name)
		}
	}
	return names
}

func printEstimate(w io.Writer, c *catalog.Catalog, est entities.Estimate, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(response.FromEstimate(est))
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Material\tQuantity\tUnit price\tTotal price\t\n")
	for _, name := range materialOrder(c, est) {
		line := est.Materials[name]
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n", name, quantity(line.Quantity), money(line.UnitPrice), money(line.TotalPrice))
	}
	fmt.Fprintf(tw, "Total\t\t\t%s\t\n", money(est.TotalCost))
	if err := tw.Flush(); err != nil {
		return err
	}

	if est.BudgetStatus != "" {
		fmt.Fprintln(w, est.BudgetStatus)
	}
	_, err := fmt.Fprintf(w, "Estimate %s (%s)\n", est.ID, est.Style)
	return err
}

func printCatalog(w io.Writer, entries []catalog.MaterialEntry, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "Material\tUnit cost\tQty per sqm\t\n")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t\n", e.Material, money(e.UnitCost), quantity(e.QuantityPerSqm))
	}
	return tw.Flush()
}
