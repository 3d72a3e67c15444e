package billing

import "fmt"

// PresetDownpaymentPercentages are the options offered on the order form.
// Callers may pass other values as long as they stay within [0,100].
var PresetDownpaymentPercentages = []int{20, 30, 40, 50}

// Downpayment is the split of a base price into an upfront part and the rest.
type Downpayment struct {
	DownpaymentAmount float64 `json:"downpayment_amount"`
	RemainingAmount   float64 `json:"remaining_amount"`
}

// CalculateDownpayment derives the downpayment split for an order.
// Disabled downpayment yields (0, 0) regardless of percentage.
// Percentages outside [0,100] are rejected; since pct <= 100 the remaining
// amount can never go negative.
func CalculateDownpayment(basePrice, percentage float64, enabled bool) (Downpayment, error) {
	if !enabled {
		return Downpayment{}, nil
	}
	if basePrice < 0 {
		return Downpayment{}, fmt.Errorf("base price must not be negative, got %v", basePrice)
	}
	if percentage < 0 || percentage > 100 {
		return Downpayment{}, fmt.Errorf("downpayment percentage must be between 0 and 100, got %v", percentage)
	}
	dp := PercentageOf(basePrice, percentage)
	return Downpayment{
		DownpaymentAmount: dp,
		RemainingAmount:   basePrice - dp,
	}, nil
}
