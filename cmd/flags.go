package cmd

import (
	"github.com/lausa/collective"
	"github.com/lausa/collective/date"
)

// parseDay parses a -d flag value, defaulting to today when empty.
func parseDay(s string) (date.Date, error) {
	if s == "" {
		return date.Today(), nil
	}
	return date.Parse(s)
}

// parseAmount parses an amount flag value like "33.33".
func parseAmount(s string) (collective.Money, error) {
	return collective.ParseAmount(s)
}
