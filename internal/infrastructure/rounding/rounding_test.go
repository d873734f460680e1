package rounding

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFixedRounder(t *testing.T) {
	tests := []struct {
		name   string
		places int32
		in     string
		want   string
	}{
		{"rounds down", 2, "10.344", "10.34"},
		{"rounds half up", 2, "10.345", "10.35"},
		{"negative rounds away from zero", 2, "-10.345", "-10.35"},
		{"already exact", 2, "10.30", "10.3"},
		{"zero places", 0, "10.6", "11"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewFixedRounder(tt.places)

			got := r.Round(decimal.RequireFromString(tt.in))
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Fatalf("Round(%s) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}
