package sim

import "testing"

func TestModeStrings(t *testing.T) {
	tests := []struct {
		mode  Mode
		str   string
		label string
	}{
		{Attract, "Attraction", "Mode: Attraction"},
		{Repel, "Repulsion", "Mode: Repulsion"},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			if got := tt.mode.String(); got != tt.str {
				t.Errorf("Expected %q, got %q", tt.str, got)
			}
			if got := tt.mode.Label(); got != tt.label {
				t.Errorf("Expected %q, got %q", tt.label, got)
			}
		})
	}
}

func TestPointerToggle(t *testing.T) {
	var p Pointer
	if p.Mode != Attract {
		t.Fatalf("Expected zero value Attract, got %v", p.Mode)
	}
	p.Toggle()
	if p.Mode != Repel {
		t.Errorf("Expected Repel, got %v", p.Mode)
	}
	p.Toggle()
	if p.Mode != Attract {
		t.Errorf("Expected Attract, got %v", p.Mode)
	}
}
