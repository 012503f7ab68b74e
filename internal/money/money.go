// Package money normalizes the monetary values the forms submit. Values arrive
// as free text using either "10.50" or "10,50"; arithmetic is done on
// shopspring decimals and rounded half-up to two places only at the
// storage/display boundary.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Parse converts a form-submitted amount into a decimal. Both "." and ","
// are accepted as the decimal separator; "1.234,56" style thousand
// separators are stripped before parsing.
func Parse(s string) (decimal.Decimal, error) {
	clean := strings.TrimSpace(s)
	if clean == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}

	if strings.Contains(clean, ",") {
		// Comma is the decimal separator, dots are thousand separators.
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.Replace(clean, ",", ".", 1)
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d, nil
}

// ParseOrZero is Parse with the original pages' lenient behavior for
// optional fields: blank or malformed input becomes zero.
func ParseOrZero(s string) decimal.Decimal {
	d, err := Parse(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Round2 rounds half-up to two fraction digits.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Format renders a decimal with exactly two fraction digits for responses.
func Format(d decimal.Decimal) string {
	return d.StringFixed(2)
}
