package rounding

import (
	"github.com/shopspring/decimal"
)

// FixedRounder rounds amounts half away from zero to a fixed number of
// decimal places, matching how monetary columns are declared in the schema.
type FixedRounder struct {
	places int32
}

// NewFixedRounder creates a rounder for the given number of decimal places.
func NewFixedRounder(places int32) *FixedRounder {
	return &FixedRounder{places: places}
}

// Round rounds d to the configured precision.
func (r *FixedRounder) Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(r.places)
}
