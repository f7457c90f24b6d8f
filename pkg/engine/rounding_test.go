package engine

import (
	"math"
	"testing"
)

func TestValidateGramRounding(t *testing.T) {
	tests := []struct {
		name      string
		value     float64
		valid     bool
		suggested float64
	}{
		{
			name:      "below 2 on 0.1 increment",
			value:     1.5,
			valid:     true,
			suggested: 1.5,
		},
		{
			name:      "below 2 off increment",
			value:     1.95,
			valid:     false,
			suggested: 2.0,
		},
		{
			name:      "band boundary at 2 is valid",
			value:     2.0,
			valid:     true,
			suggested: 2.0,
		},
		{
			name:      "middle band on 0.5 increment",
			value:     4.5,
			valid:     true,
			suggested: 4.5,
		},
		{
			name:      "middle band off increment",
			value:     4.25,
			valid:     false,
			suggested: 4.5,
		},
		{
			name:      "band boundary at 5 is valid",
			value:     5.0,
			valid:     true,
			suggested: 5.0,
		},
		{
			name:      "above 5 whole unit",
			value:     30,
			valid:     true,
			suggested: 30,
		},
		{
			name:      "above 5 off whole unit",
			value:     30.4,
			valid:     false,
			suggested: 30,
		},
		{
			name:      "tolerance absorbs float noise",
			value:     30.005,
			valid:     true,
			suggested: 30,
		},
		{
			name:      "just past tolerance",
			value:     30.02,
			valid:     false,
			suggested: 30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateGramRounding(tt.value)
			if got.IsValid != tt.valid {
				t.Errorf("ValidateGramRounding(%v).IsValid = %v, want %v", tt.value, got.IsValid, tt.valid)
			}
			if math.Abs(got.SuggestedValue-tt.suggested) > 1e-9 {
				t.Errorf("ValidateGramRounding(%v).SuggestedValue = %v, want %v", tt.value, got.SuggestedValue, tt.suggested)
			}
		})
	}
}

func TestValidateServingsPerContainerRounding(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		valid   bool
		display string
	}{
		{
			name:    "whole count is valid",
			value:   8,
			valid:   true,
			display: "8",
		},
		{
			name:    "fractional count above 2 gets about",
			value:   7.7,
			valid:   false,
			display: "about 8",
		},
		{
			name:    "middle band half increment",
			value:   2.5,
			valid:   true,
			display: "2.5",
		},
		{
			name:    "middle band off increment gets about",
			value:   2.3,
			valid:   false,
			display: "about 2.5",
		},
		{
			name:    "below 2 no about qualifier",
			value:   1.33,
			valid:   false,
			display: "1.3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ValidateServingsPerContainerRounding(tt.value)
			if got.IsValid != tt.valid {
				t.Errorf("IsValid = %v, want %v", got.IsValid, tt.valid)
			}
			if got.SuggestedDisplay != tt.display {
				t.Errorf("SuggestedDisplay = %q, want %q", got.SuggestedDisplay, tt.display)
			}
		})
	}
}

func TestRoundGramBands(t *testing.T) {
	// The increment changes exactly at the band boundaries.
	if got := roundGram(1.99); got != 2.0 {
		t.Errorf("roundGram(1.99) = %v, want 2.0", got)
	}
	if got := roundGram(2.2); got != 2.0 {
		t.Errorf("roundGram(2.2) = %v, want 2.0", got)
	}
	if got := roundGram(4.99); got != 5.0 {
		t.Errorf("roundGram(4.99) = %v, want 5.0", got)
	}
	if got := roundGram(5.4); got != 5.0 {
		t.Errorf("roundGram(5.4) = %v, want 5.0", got)
	}
}
