package billing

import (
	"errors"
	"testing"
)

func TestApplyAdjustmentPercentageDiscount(t *testing.T) {
	result, err := ApplyAdjustment(1000000, 0, Adjustment{
		Type:        AdjustmentDiscount,
		ApplyAs:     ApplyAsPercentage,
		Percentage:  10,
		Description: "Loyal customer discount",
	})
	if err != nil {
		t.Fatalf("ApplyAdjustment returned error: %v", err)
	}
	if result.AdjustmentAmount != 100000 {
		t.Errorf("adjustment amount = %v, want 100000", result.AdjustmentAmount)
	}
	if result.NewSubtotal != 900000 {
		t.Errorf("new subtotal = %v, want 900000", result.NewSubtotal)
	}
	if result.NewTotal != 900000 {
		t.Errorf("new total = %v, want 900000", result.NewTotal)
	}
}

func TestApplyAdjustmentDiscountFloorsAtZero(t *testing.T) {
	result, err := ApplyAdjustment(500000, 55000, Adjustment{
		Type:        AdjustmentDiscount,
		ApplyAs:     ApplyAsAmount,
		Amount:      800000,
		Description: "Goodwill discount",
	})
	if err != nil {
		t.Fatalf("ApplyAdjustment returned error: %v", err)
	}
	if result.NewSubtotal != 0 {
		t.Errorf("new subtotal = %v, want 0 (floored)", result.NewSubtotal)
	}
	// Tax is untouched; the total is just the remaining tax.
	if result.NewTotal != 55000 {
		t.Errorf("new total = %v, want 55000", result.NewTotal)
	}
}

func TestApplyAdjustmentAdditionalCharge(t *testing.T) {
	result, err := ApplyAdjustment(2000000, 220000, Adjustment{
		Type:        AdjustmentAdditionalCharge,
		ApplyAs:     ApplyAsAmount,
		Amount:      350000,
		Description: "Rush delivery",
		Reason:      "Deadline moved up two weeks",
	})
	if err != nil {
		t.Fatalf("ApplyAdjustment returned error: %v", err)
	}
	if result.NewSubtotal != 2350000 {
		t.Errorf("new subtotal = %v, want 2350000", result.NewSubtotal)
	}
	if result.NewTotal != result.NewSubtotal+220000 {
		t.Errorf("new total = %v, want subtotal + tax = %v", result.NewTotal, result.NewSubtotal+220000)
	}
	if result.Note != "Rush delivery - Deadline moved up two weeks" {
		t.Errorf("note = %q", result.Note)
	}
}

// tax_adjustment deliberately behaves exactly like additional_charge: it
// moves the subtotal, never the stored tax amount.
func TestApplyAdjustmentTaxMatchesAdditionalCharge(t *testing.T) {
	tax, err := ApplyAdjustment(1000000, 110000, Adjustment{
		Type:        AdjustmentTax,
		ApplyAs:     ApplyAsAmount,
		Amount:      50000,
		Description: "Tax correction",
	})
	if err != nil {
		t.Fatalf("ApplyAdjustment returned error: %v", err)
	}
	charge, err := ApplyAdjustment(1000000, 110000, Adjustment{
		Type:        AdjustmentAdditionalCharge,
		ApplyAs:     ApplyAsAmount,
		Amount:      50000,
		Description: "Tax correction",
	})
	if err != nil {
		t.Fatalf("ApplyAdjustment returned error: %v", err)
	}
	if tax.NewSubtotal != charge.NewSubtotal || tax.NewTotal != charge.NewTotal {
		t.Errorf("tax_adjustment %+v differs from additional_charge %+v", tax, charge)
	}
}

func TestApplyAdjustmentRequiresDescription(t *testing.T) {
	for _, desc := range []string{"", "   "} {
		_, err := ApplyAdjustment(1000000, 0, Adjustment{
			Type:        AdjustmentDiscount,
			ApplyAs:     ApplyAsAmount,
			Amount:      100000,
			Description: desc,
		})
		if !errors.Is(err, ErrAdjustmentDescriptionRequired) {
			t.Errorf("description %q: got err %v, want ErrAdjustmentDescriptionRequired", desc, err)
		}
	}
}

func TestApplyAdjustmentNoteWithoutReason(t *testing.T) {
	result, err := ApplyAdjustment(1000000, 0, Adjustment{
		Type:        AdjustmentDiscount,
		ApplyAs:     ApplyAsAmount,
		Amount:      100000,
		Description: "Promo launch",
	})
	if err != nil {
		t.Fatalf("ApplyAdjustment returned error: %v", err)
	}
	if result.Note != "Promo launch" {
		t.Errorf("note = %q, want bare description", result.Note)
	}
}

func TestApplyAdjustmentRejectsBadInput(t *testing.T) {
	if _, err := ApplyAdjustment(1000000, 0, Adjustment{
		Type: AdjustmentDiscount, ApplyAs: ApplyAsPercentage, Percentage: 150, Description: "x",
	}); err == nil {
		t.Error("expected error for percentage > 100")
	}
	if _, err := ApplyAdjustment(1000000, 0, Adjustment{
		Type: AdjustmentDiscount, ApplyAs: ApplyAsAmount, Amount: -10, Description: "x",
	}); err == nil {
		t.Error("expected error for negative amount")
	}
	if _, err := ApplyAdjustment(1000000, 0, Adjustment{
		Type: "refund", ApplyAs: ApplyAsAmount, Amount: 10, Description: "x",
	}); err == nil {
		t.Error("expected error for unknown adjustment type")
	}
	if _, err := ApplyAdjustment(1000000, 0, Adjustment{
		Type: AdjustmentDiscount, ApplyAs: "ratio", Amount: 10, Description: "x",
	}); err == nil {
		t.Error("expected error for unknown apply mode")
	}
}

// Invariant: total == subtotal + tax after every accepted adjustment.
func TestApplyAdjustmentTotalInvariant(t *testing.T) {
	adjustments := []Adjustment{
		{Type: AdjustmentDiscount, ApplyAs: ApplyAsAmount, Amount: 250000, Description: "a"},
		{Type: AdjustmentDiscount, ApplyAs: ApplyAsPercentage, Percentage: 75, Description: "b"},
		{Type: AdjustmentAdditionalCharge, ApplyAs: ApplyAsPercentage, Percentage: 5, Description: "c"},
		{Type: AdjustmentTax, ApplyAs: ApplyAsAmount, Amount: 90000, Description: "d"},
	}
	subtotal, tax := 1200000.0, 132000.0
	for _, adj := range adjustments {
		result, err := ApplyAdjustment(subtotal, tax, adj)
		if err != nil {
			t.Fatalf("ApplyAdjustment(%+v) returned error: %v", adj, err)
		}
		if result.NewTotal != result.NewSubtotal+tax {
			t.Errorf("total %v != subtotal %v + tax %v", result.NewTotal, result.NewSubtotal, tax)
		}
		subtotal = result.NewSubtotal
	}
}
