package codec

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/archmind/archmind/pkg/design"
)

// bomHeader is the fixed column set of the bill-of-materials export.
var bomHeader = []string{"Part Name", "Quantity", "Unit Cost", "Currency", "Total Cost", "Functionality", "Source Link"}

// WriteBOM writes the bill of materials as CSV, one row per part. Missing
// cost defaults to 0, missing quantity to 1, missing currency to USD; the
// total is quantity times unit cost.
func WriteBOM(w io.Writer, parts []design.Part) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(bomHeader); err != nil {
		return fmt.Errorf("codec: write bom: %w", err)
	}
	for _, p := range parts {
		qty := p.Quantity
		if qty == 0 {
			qty = 1
		}
		cost, _ := strconv.ParseFloat(p.Cost, 64)
		unit := p.CostUnit
		if unit == "" {
			unit = "USD"
		}
		row := []string{
			p.Name,
			strconv.Itoa(qty),
			strconv.FormatFloat(cost, 'f', -1, 64),
			unit,
			strconv.FormatFloat(float64(qty)*cost, 'f', 2, 64),
			p.Functionality,
			p.SourceURL,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("codec: write bom: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// TotalCost sums part costs grouped by currency unit. Parts without a
// parseable cost are skipped entirely rather than counted as zero.
func TotalCost(parts []design.Part) map[string]float64 {
	totals := make(map[string]float64)
	for _, p := range parts {
		cost, err := strconv.ParseFloat(p.Cost, 64)
		if err != nil {
			continue
		}
		qty := p.Quantity
		if qty == 0 {
			qty = 1
		}
		unit := p.CostUnit
		if unit == "" {
			unit = "USD"
		}
		totals[unit] += cost * float64(qty)
	}
	return totals
}
