// Package dateparse validates the DD/MM/YYYY dates submitted by the forms
// and converts them to the canonical YYYY-MM-DD form the tables store.
package dateparse

import (
	"fmt"
	"time"
)

const (
	brLayout  = "02/01/2006"
	isoLayout = "2006-01-02"
)

// ParseBR parses a DD/MM/YYYY date, rejecting out-of-range day/month
// combinations such as 31/02/2024. An ISO date is accepted as a fallback
// since a few legacy pages already submit that form.
func ParseBR(s string) (time.Time, error) {
	if t, err := time.Parse(brLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(isoLayout, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q: expected DD/MM/YYYY", s)
}

// ToISO renders a parsed date in the canonical storage form.
func ToISO(t time.Time) string {
	return t.Format(isoLayout)
}

// FormatBR renders a stored date back in the form the pages display.
func FormatBR(t time.Time) string {
	return t.Format(brLayout)
}
