package usecase_test

import (
	"github.com/shopspring/decimal"
)

// dec parses a decimal literal, panicking on malformed test data.
func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// roundTo2 rounds to two decimal places, the production monetary precision.
type roundTo2 struct{}

func (roundTo2) Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
