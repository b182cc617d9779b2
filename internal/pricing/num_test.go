package pricing

import "testing"

func TestParseNumber_FallbackOnMalformedInput(t *testing.T) {
	cases := []struct {
		raw      string
		fallback float64
		want     float64
	}{
		{"4.25", 0, 4.25},
		{" 12 ", 0, 12},
		{"-3.5", 0, -3.5},
		{"", 7, 7},
		{"abc", 0, 0},
		{"12abc", 3, 3},
		{"NaN", 1, 1},
		{"Inf", 1, 1},
		{"-Inf", 1, 1},
	}

	for _, tc := range cases {
		if got := ParseNumber(tc.raw, tc.fallback); got != tc.want {
			t.Errorf("ParseNumber(%q, %v) = %v, want %v", tc.raw, tc.fallback, got, tc.want)
		}
	}
}

func TestParseOptional_DistinguishesUnsetFromZero(t *testing.T) {
	if got := ParseOptional(""); got != nil {
		t.Fatalf("empty input should be nil, got %v", *got)
	}
	if got := ParseOptional("  "); got != nil {
		t.Fatalf("blank input should be nil, got %v", *got)
	}
	if got := ParseOptional("not a number"); got != nil {
		t.Fatalf("malformed input should be nil, got %v", *got)
	}

	got := ParseOptional("0")
	if got == nil || *got != 0 {
		t.Fatalf("explicit zero should parse to a set zero, got %v", got)
	}

	got = ParseOptional("3.00")
	if got == nil || *got != 3 {
		t.Fatalf("expected 3.00 to parse, got %v", got)
	}
}

func TestRound2_HalfUpWithRepresentationError(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{2.675, 2.68}, // stored as 2.67499999...; naive rounding gives 2.67
		{1.005, 1.01},
		{8.0, 8.0},
		{0, 0},
		{-2.675, -2.68},
		{70.58823529, 70.59},
		{9.0909090909, 9.09},
	}

	for _, tc := range cases {
		if got := Round2(tc.in); got != tc.want {
			t.Errorf("Round2(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestMoney_GroupsThousands(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{4.25, "$4.25"},
		{1234.5, "$1,234.50"},
		{1234567.891, "$1,234,567.89"},
		{-42, "-$42.00"},
	}

	for _, tc := range cases {
		if got := Money(tc.in); got != tc.want {
			t.Errorf("Money(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPercent_RendersRoundedValue(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{70.58823529, "70.59%"},
		{0, "0%"},
		{50, "50%"},
		{9.0909, "9.09%"},
	}

	for _, tc := range cases {
		if got := Percent(tc.in); got != tc.want {
			t.Errorf("Percent(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
