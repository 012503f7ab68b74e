// Package order computes line-item and grand totals for sale and purchase
// submissions. The forms post parallel arrays of product id, quantity and
// unit price; rows with an empty product reference are skipped entirely so
// they are neither counted nor persisted.
package order

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vbarros/licitasis/internal/money"
)

// Row is a raw line-item row as submitted by the form.
type Row struct {
	ProductID   string
	Quantity    string
	UnitPrice   string
	Observation string
}

// Line is a validated row with its computed total.
type Line struct {
	ProductID   int64
	Quantity    int64
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal
	Observation string
}

// Result carries the validated lines and the grand total, freight included.
type Result struct {
	Lines      []Line
	GrandTotal decimal.Decimal
}

// Aggregate validates the submitted rows and computes per-line totals plus
// the grand total. Freight, when present, is added to the grand total only.
// Rounding to two places happens per line and on the grand total, never on
// intermediate products.
func Aggregate(rows []Row, freight decimal.Decimal) (Result, error) {
	var res Result
	total := decimal.Zero

	for i, r := range rows {
		if strings.TrimSpace(r.ProductID) == "" {
			continue
		}

		productID, err := strconv.ParseInt(strings.TrimSpace(r.ProductID), 10, 64)
		if err != nil {
			return Result{}, fmt.Errorf("row %d: invalid product id %q", i+1, r.ProductID)
		}

		qty, err := strconv.ParseInt(strings.TrimSpace(r.Quantity), 10, 64)
		if err != nil || qty < 1 {
			return Result{}, fmt.Errorf("row %d: quantity must be a whole number of at least 1", i+1)
		}

		unit, err := money.Parse(r.UnitPrice)
		if err != nil {
			return Result{}, fmt.Errorf("row %d: %w", i+1, err)
		}
		if unit.IsNegative() {
			return Result{}, fmt.Errorf("row %d: unit price cannot be negative", i+1)
		}

		lineTotal := money.Round2(unit.Mul(decimal.NewFromInt(qty)))
		res.Lines = append(res.Lines, Line{
			ProductID:   productID,
			Quantity:    qty,
			UnitPrice:   unit,
			Total:       lineTotal,
			Observation: r.Observation,
		})
		total = total.Add(lineTotal)
	}

	res.GrandTotal = money.Round2(total.Add(freight))
	return res, nil
}

// BuildRows zips the parallel form arrays into rows. Missing trailing
// entries in the secondary arrays are treated as empty strings, matching
// how the pages submit partially filled product blocks.
func BuildRows(productIDs, quantities, unitPrices, observations []string) []Row {
	rows := make([]Row, len(productIDs))
	for i := range productIDs {
		rows[i] = Row{ProductID: productIDs[i]}
		if i < len(quantities) {
			rows[i].Quantity = quantities[i]
		}
		if i < len(unitPrices) {
			rows[i].UnitPrice = unitPrices[i]
		}
		if i < len(observations) {
			rows[i].Observation = observations[i]
		}
	}
	return rows
}
