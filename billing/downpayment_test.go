package billing

import "testing"

func TestCalculateDownpaymentSplitsBasePrice(t *testing.T) {
	cases := []struct {
		name          string
		basePrice     float64
		percentage    float64
		wantDown      float64
		wantRemaining float64
	}{
		{"thirty percent", 10000000, 30, 3000000, 7000000},
		{"fifty percent", 5000000, 50, 2500000, 2500000},
		{"twenty percent", 1500000, 20, 300000, 1200000},
		{"full percentage", 750000, 100, 750000, 0},
		{"zero percentage", 750000, 0, 0, 750000},
		{"zero base", 0, 40, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dp, err := CalculateDownpayment(tc.basePrice, tc.percentage, true)
			if err != nil {
				t.Fatalf("CalculateDownpayment returned error: %v", err)
			}
			if dp.DownpaymentAmount != tc.wantDown {
				t.Errorf("downpayment = %v, want %v", dp.DownpaymentAmount, tc.wantDown)
			}
			if dp.RemainingAmount != tc.wantRemaining {
				t.Errorf("remaining = %v, want %v", dp.RemainingAmount, tc.wantRemaining)
			}
			if sum := dp.DownpaymentAmount + dp.RemainingAmount; sum != tc.basePrice {
				t.Errorf("downpayment + remaining = %v, want base price %v", sum, tc.basePrice)
			}
		})
	}
}

func TestCalculateDownpaymentDisabled(t *testing.T) {
	for _, pct := range []float64{0, 20, 30, 40, 50, 100} {
		dp, err := CalculateDownpayment(10000000, pct, false)
		if err != nil {
			t.Fatalf("CalculateDownpayment returned error: %v", err)
		}
		if dp.DownpaymentAmount != 0 || dp.RemainingAmount != 0 {
			t.Errorf("disabled downpayment at %v%% = %+v, want zeroes", pct, dp)
		}
	}
}

func TestCalculateDownpaymentRejectsOutOfRange(t *testing.T) {
	if _, err := CalculateDownpayment(1000000, 120, true); err == nil {
		t.Error("expected error for percentage > 100")
	}
	if _, err := CalculateDownpayment(1000000, -5, true); err == nil {
		t.Error("expected error for negative percentage")
	}
	if _, err := CalculateDownpayment(-100, 30, true); err == nil {
		t.Error("expected error for negative base price")
	}
}
