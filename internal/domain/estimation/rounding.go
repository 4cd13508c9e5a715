package estimation

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Round2 rounds the exact binary value of v to two decimal places, ties to
// even. 2.675 is stored just below 2.675 and rounds to 2.67.
func Round2(v float64) float64 {
	d, err := decimal.NewFromString(strconv.FormatFloat(v, 'f', 2, 64))
	if err != nil {
		return v
	}
	f, _ := d.Float64()
	return f
}

// BudgetStatus renders the budget verdict for a total.
func BudgetStatus(totalCost, budget float64) string {
	verdict := "Within Budget"
	if totalCost > budget {
		verdict = "Exceeds Budget"
	}
	return fmt.Sprintf("Total Cost: ₱%s. Status: %s.", humanize.FormatFloat("#,###.##", totalCost), verdict)
}
