package billing

import "testing"

func TestPercentageOf(t *testing.T) {
	cases := []struct {
		base, pct, want float64
	}{
		{10000000, 30, 3000000},
		{1000000, 10, 100000},
		{0, 50, 0},
		{100, 0, 0},
		{100, 100, 100},
		{333, 33, 110},        // 109.89 rounds up
		{1500001, 50, 750001}, // 750000.5 rounds half away from zero
	}
	for _, tc := range cases {
		if got := PercentageOf(tc.base, tc.pct); got != tc.want {
			t.Errorf("PercentageOf(%v, %v) = %v, want %v", tc.base, tc.pct, got, tc.want)
		}
	}
}

func TestClampNonNegative(t *testing.T) {
	if got := ClampNonNegative(-500); got != 0 {
		t.Errorf("ClampNonNegative(-500) = %v, want 0", got)
	}
	if got := ClampNonNegative(500); got != 500 {
		t.Errorf("ClampNonNegative(500) = %v, want 500", got)
	}
	if got := ClampNonNegative(0); got != 0 {
		t.Errorf("ClampNonNegative(0) = %v, want 0", got)
	}
}
