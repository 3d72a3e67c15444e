package billing

import (
	"errors"
	"fmt"
	"strings"
)

// AdjustmentType is the kind of post-hoc invoice correction.
type AdjustmentType string

const (
	AdjustmentDiscount         AdjustmentType = "discount"
	AdjustmentAdditionalCharge AdjustmentType = "additional_charge"
	AdjustmentTax              AdjustmentType = "tax_adjustment"
)

// ApplyMode selects how the adjustment value is interpreted.
type ApplyMode string

const (
	ApplyAsAmount     ApplyMode = "amount"
	ApplyAsPercentage ApplyMode = "percentage"
)

var ErrAdjustmentDescriptionRequired = errors.New("adjustment description is required")

// Adjustment is an ephemeral operation against an invoice; it is applied
// and its note persisted, but it is not stored as its own entity.
type Adjustment struct {
	Type        AdjustmentType `json:"type"`
	ApplyAs     ApplyMode      `json:"apply_as"`
	Amount      float64        `json:"amount"`
	Percentage  float64        `json:"percentage"`
	Description string         `json:"description"`
	Reason      string         `json:"reason"`
}

// AdjustmentResult carries the recomputed invoice figures. Note replaces the
// invoice's previous notes; adjustments do not accumulate an audit trail.
type AdjustmentResult struct {
	AdjustmentAmount float64
	NewSubtotal      float64
	NewTotal         float64
	Note             string
}

// ApplyAdjustment recomputes an invoice's subtotal and total.
// A discount is floored so the subtotal never goes negative. tax_adjustment
// modifies the subtotal exactly like additional_charge; the stored tax_amount
// is left untouched by every adjustment type.
func ApplyAdjustment(subtotal, taxAmount float64, adj Adjustment) (AdjustmentResult, error) {
	if strings.TrimSpace(adj.Description) == "" {
		return AdjustmentResult{}, ErrAdjustmentDescriptionRequired
	}

	var amount float64
	switch adj.ApplyAs {
	case ApplyAsPercentage:
		if adj.Percentage < 0 || adj.Percentage > 100 {
			return AdjustmentResult{}, fmt.Errorf("adjustment percentage must be between 0 and 100, got %v", adj.Percentage)
		}
		amount = PercentageOf(subtotal, adj.Percentage)
	case ApplyAsAmount:
		if adj.Amount < 0 {
			return AdjustmentResult{}, fmt.Errorf("adjustment amount must not be negative, got %v", adj.Amount)
		}
		amount = adj.Amount
	default:
		return AdjustmentResult{}, fmt.Errorf("unknown apply mode %q", adj.ApplyAs)
	}

	var newSubtotal float64
	switch adj.Type {
	case AdjustmentDiscount:
		newSubtotal = ClampNonNegative(subtotal - amount)
	case AdjustmentAdditionalCharge, AdjustmentTax:
		newSubtotal = subtotal + amount
	default:
		return AdjustmentResult{}, fmt.Errorf("unknown adjustment type %q", adj.Type)
	}

	note := strings.TrimSpace(adj.Description)
	if r := strings.TrimSpace(adj.Reason); r != "" {
		note = note + " - " + r
	}

	return AdjustmentResult{
		AdjustmentAmount: amount,
		NewSubtotal:      newSubtotal,
		NewTotal:         newSubtotal + taxAmount,
		Note:             note,
	}, nil
}
