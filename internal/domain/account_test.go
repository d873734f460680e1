package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestWithinTolerance(t *testing.T) {
	eps := decimal.RequireFromString("0.01")

	tests := []struct {
		name string
		a    string
		b    string
		want bool
	}{
		{"equal values", "100.00", "100.00", true},
		{"delta below epsilon", "100.005", "100.00", true},
		{"delta exactly epsilon", "100.01", "100.00", true},
		{"delta above epsilon", "100.011", "100.00", false},
		{"negative delta above epsilon", "99.98", "100.00", false},
		{"rounding noise", "49.999999999", "50.00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := decimal.RequireFromString(tt.a)
			b := decimal.RequireFromString(tt.b)
			if got := WithinTolerance(a, b, eps); got != tt.want {
				t.Errorf("WithinTolerance(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestLedgerLineAmount(t *testing.T) {
	line := &LedgerLine{
		Debit:  decimal.RequireFromString("100"),
		Credit: decimal.RequireFromString("40"),
	}

	if got := line.Amount(); !got.Equal(decimal.RequireFromString("60")) {
		t.Errorf("expected amount 60, got %s", got)
	}
}
