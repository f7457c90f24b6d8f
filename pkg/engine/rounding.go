package engine

import (
	"fmt"
	"math"
)

// roundingTolerance absorbs floating-point noise when checking whether
// a declared value already sits on its rounding increment.
const roundingTolerance = 0.01

// GramRounding is the outcome of checking a gram quantity against the
// serving-size rounding increments of 21 CFR 101.9(b)(7).
type GramRounding struct {
	// IsValid is true when the input already equals its rounded form
	// within tolerance.
	IsValid bool

	// SuggestedValue is the correctly rounded value.
	SuggestedValue float64
}

// ServingsRounding is the outcome of checking a servings-per-container
// count, including the display text with the "about" qualifier when the
// declared count is not exact.
type ServingsRounding struct {
	// IsValid is true when the input already equals its rounded form
	// within tolerance.
	IsValid bool

	// SuggestedValue is the correctly rounded count.
	SuggestedValue float64

	// SuggestedDisplay is the panel text for the count, prefixed with
	// "about" when the declared count required correction and is 2 or
	// more.
	SuggestedDisplay string
}

// roundToIncrement rounds v to the nearest multiple of inc.
func roundToIncrement(v, inc float64) float64 {
	return math.Round(v/inc) * inc
}

// roundGram applies the three rounding bands of 21 CFR 101.9(b)(7):
// below 2 to the nearest 0.1, in [2, 5) to the nearest 0.5, at or above
// 5 to the nearest whole unit.
func roundGram(v float64) float64 {
	switch {
	case v < 2:
		return roundToIncrement(v, 0.1)
	case v < 5:
		return roundToIncrement(v, 0.5)
	default:
		return math.Round(v)
	}
}

// ValidateGramRounding checks whether a gram quantity already satisfies
// the regulation's rounding increment and returns the corrected value
// if not. Non-numeric input filtering is the caller's responsibility;
// the function never panics on any float.
func ValidateGramRounding(value float64) GramRounding {
	suggested := roundGram(value)
	return GramRounding{
		IsValid:        math.Abs(value-suggested) <= roundingTolerance,
		SuggestedValue: suggested,
	}
}

// ValidateServingsPerContainerRounding checks a servings-per-container
// count against the same three rounding bands and derives the display
// text. When the declared count is not already the rounded value and
// the value is 2 or more, the display carries the literal "about"
// qualifier.
func ValidateServingsPerContainerRounding(value float64) ServingsRounding {
	suggested := roundGram(value)
	valid := math.Abs(value-suggested) <= roundingTolerance

	display := formatCount(suggested)
	if !valid && value >= 2 {
		display = "about " + display
	}

	return ServingsRounding{
		IsValid:          valid,
		SuggestedValue:   suggested,
		SuggestedDisplay: display,
	}
}

// formatCount renders a servings count without a trailing zero fraction.
func formatCount(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}
