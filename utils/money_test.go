package utils

import "testing"

func TestFormatRupiah(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "Rp 0"},
		{500, "Rp 500"},
		{3000000, "Rp 3.000.000"},
		{10000000, "Rp 10.000.000"},
		{1234567, "Rp 1.234.567"},
	}
	for _, tc := range cases {
		if got := FormatRupiah(tc.amount); got != tc.want {
			t.Errorf("FormatRupiah(%v) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}
