package pricing

import (
	"math"
	"strconv"
	"strings"
)

// ParseNumber parses raw as a float64 and substitutes fallback when the value
// is empty, malformed, or non-finite. Every numeric field entering the engine
// goes through here, so a half-typed form value degrades to the fallback
// instead of failing the computation.
func ParseNumber(raw string, fallback float64) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fallback
	}
	return v
}

// ParseOptional parses raw as an optional float64. Empty or malformed input is
// "not set" (nil), which is distinct from an explicit zero. Cost overrides and
// sell rates use this so a deliberate 0 is not confused with no value.
func ParseOptional(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// Round2 rounds to two decimal places, half away from zero. The epsilon nudge
// keeps values sitting just under a .xx5 boundary from being pulled down by
// float representation error.
func Round2(v float64) float64 {
	return math.Round((v+math.Copysign(1e-9, v))*100) / 100
}

// Money renders a dollar amount with thousands grouping, e.g. $1,234.56.
// Presentation only; rendered strings never feed back into computation.
func Money(v float64) string {
	negative := v < 0
	if negative {
		v = -v
	}

	raw := strconv.FormatFloat(Round2(v), 'f', 2, 64)
	intPart, decPart, _ := strings.Cut(raw, ".")

	result := "$" + groupThousands(intPart) + "." + decPart
	if negative {
		result = "-" + result
	}
	return result
}

// Percent renders a percentage rounded to two decimal places, e.g. 70.59%.
func Percent(v float64) string {
	return strconv.FormatFloat(Round2(v), 'f', -1, 64) + "%"
}

func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	remaining := s[:n-3]
	for len(remaining) > 3 {
		result = remaining[len(remaining)-3:] + "," + result
		remaining = remaining[:len(remaining)-3]
	}
	return remaining + "," + result
}

func clamp(v, min, max float64) float64 {
	return math.Max(min, math.Min(max, v))
}
