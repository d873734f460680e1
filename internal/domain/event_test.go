package domain

import "testing"

func TestNewEvent(t *testing.T) {
	ev := NewEvent(EventProductSaved, "PROD-1",
		WithParam("family", "FAM-2"),
		WithPrevious("family", "FAM-1"),
	)

	if ev.Name() != EventProductSaved {
		t.Errorf("expected name %q, got %q", EventProductSaved, ev.Name())
	}
	if ev.Value() != "PROD-1" {
		t.Errorf("expected value PROD-1, got %q", ev.Value())
	}
	if got := ev.Param("family"); got != "FAM-2" {
		t.Errorf("expected family param FAM-2, got %q", got)
	}
	if got := ev.Param("missing"); got != "" {
		t.Errorf("expected empty string for missing param, got %q", got)
	}

	prev, ok := ev.Previous("family")
	if !ok || prev != "FAM-1" {
		t.Errorf("expected previous family FAM-1, got %q (ok=%v)", prev, ok)
	}
	if _, ok := ev.Previous("code"); ok {
		t.Error("expected no previous value for code")
	}
}

func TestEventWithoutParams(t *testing.T) {
	ev := NewEvent(EventAccountSaved, "ACC-1")

	if got := ev.Param("anything"); got != "" {
		t.Errorf("expected empty param, got %q", got)
	}
	if _, ok := ev.Previous("anything"); ok {
		t.Error("expected no previous values")
	}
}

func TestParseEventName(t *testing.T) {
	tests := []struct {
		raw     string
		wantErr bool
	}{
		{"model.ledgerline.saved", false},
		{"model.purchasedocument.updated", false},
		{"model.unknown.saved", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			name, err := ParseEventName(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.raw)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(name) != tt.raw {
				t.Errorf("expected %q, got %q", tt.raw, name)
			}
		})
	}
}
