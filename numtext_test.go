package pod

import "testing"

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"12.50 KWD", 12.5},
		{"KWD 12.50", 12.5},
		{"10 pcs", 10},
		{"-3.5x", -3.5},
		{"3", 3},
		{"", 0},
		{"abc", 0},
		{"1.2.3", 0},
		{"--5", 0},
		{"-", 0},
		{".", 0},
	}
	for _, tc := range tests {
		if got := ParseNumber(tc.in); got != tc.want {
			t.Errorf("ParseNumber(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{3, "3.00"},
		{0, "0.00"},
		{12.345, "12.35"},
		{-2.5, "-2.50"},
		{1234.5, "1234.50"},
	}
	for _, tc := range tests {
		if got := FormatMoney(tc.in); got != tc.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}

	// The composition stays total: garbage text formats as zero money.
	if got := FormatMoney(ParseNumber("abc")); got != "0.00" {
		t.Errorf("FormatMoney(ParseNumber(abc)) = %q, want 0.00", got)
	}
}
