// Package normalize converts user-facing text into the typed values stored on
// client records. Parsing never fails loudly: unusable input collapses to nil
// or zero.
package normalize

import (
	"math"
	"strconv"
	"strings"
)

// ParseOptionalNumber returns nil for empty or non-numeric text, otherwise
// the parsed value. Negative values are kept.
func ParseOptionalNumber(text string) *float64 {
	s := strings.TrimSpace(text)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// ParseRequiredNumberOrZero is ParseOptionalNumber with 0 in place of nil.
func ParseRequiredNumberOrZero(text string) float64 {
	if v := ParseOptionalNumber(text); v != nil {
		return *v
	}
	return 0
}

// ParseLineItemNumber parses a line-item quantity or unit price. Negative
// input is clamped to 0.
func ParseLineItemNumber(text string) float64 {
	return NonNegative(ParseRequiredNumberOrZero(text))
}

// NonNegative maps negative, NaN and infinite values to 0.
func NonNegative(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
