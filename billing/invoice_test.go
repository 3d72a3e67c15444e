package billing

import (
	"errors"
	"testing"
)

func TestNewInvoiceTotalsDownpayment(t *testing.T) {
	totals, err := NewInvoiceTotals(OrderInProgress, InvoiceDownpayment, 10000000, 30, 0)
	if err != nil {
		t.Fatalf("NewInvoiceTotals returned error: %v", err)
	}
	if totals.Subtotal != 3000000 {
		t.Errorf("subtotal = %v, want 3000000", totals.Subtotal)
	}
	if totals.Total != 3000000 {
		t.Errorf("total = %v, want 3000000", totals.Total)
	}

	dp, remaining := OrderAfterDownpaymentInvoice(10000000, totals.Subtotal)
	if dp != 3000000 {
		t.Errorf("order downpayment = %v, want 3000000", dp)
	}
	if remaining != 7000000 {
		t.Errorf("order remaining = %v, want 7000000", remaining)
	}
}

func TestNewInvoiceTotalsFull(t *testing.T) {
	totals, err := NewInvoiceTotals(OrderCompleted, InvoiceFull, 2500000, 0, 275000)
	if err != nil {
		t.Fatalf("NewInvoiceTotals returned error: %v", err)
	}
	if totals.Subtotal != 2500000 {
		t.Errorf("subtotal = %v, want 2500000", totals.Subtotal)
	}
	if totals.Total != 2775000 {
		t.Errorf("total = %v, want subtotal + tax = 2775000", totals.Total)
	}
	if totals.Total != totals.Subtotal+totals.TaxAmount {
		t.Errorf("total invariant broken: %v != %v + %v", totals.Total, totals.Subtotal, totals.TaxAmount)
	}
}

func TestNewInvoiceTotalsGatesOnOrderStatus(t *testing.T) {
	for _, status := range []OrderStatus{OrderPending, OrderCancelled} {
		_, err := NewInvoiceTotals(status, InvoiceFull, 1000000, 0, 0)
		if !errors.Is(err, ErrOrderNotInvoiceable) {
			t.Errorf("status %s: got err %v, want ErrOrderNotInvoiceable", status, err)
		}
	}
	for _, status := range []OrderStatus{OrderInProgress, OrderCompleted} {
		if _, err := NewInvoiceTotals(status, InvoiceFull, 1000000, 0, 0); err != nil {
			t.Errorf("status %s: unexpected error %v", status, err)
		}
	}
}

func TestNewInvoiceTotalsRejectsBadDownpayment(t *testing.T) {
	if _, err := NewInvoiceTotals(OrderInProgress, InvoiceDownpayment, 1000000, 0, 0); err == nil {
		t.Error("expected error for zero downpayment percentage")
	}
	if _, err := NewInvoiceTotals(OrderInProgress, InvoiceDownpayment, 1000000, 120, 0); err == nil {
		t.Error("expected error for percentage > 100")
	}
	if _, err := NewInvoiceTotals(OrderInProgress, "partial", 1000000, 0, 0); err == nil {
		t.Error("expected error for unknown invoice type")
	}
}

func TestBaseAmountFallsBackToServicePrice(t *testing.T) {
	if got := BaseAmount(0, 4500000); got != 4500000 {
		t.Errorf("BaseAmount(0, 4500000) = %v, want service price", got)
	}
	if got := BaseAmount(6000000, 4500000); got != 6000000 {
		t.Errorf("BaseAmount(6000000, 4500000) = %v, want order total", got)
	}
}

func TestOrderAfterDownpaymentInvoiceClampsRemaining(t *testing.T) {
	// An invoiced downpayment larger than the order base never leaves a
	// negative remainder.
	dp, remaining := OrderAfterDownpaymentInvoice(1000000, 1200000)
	if dp != 1200000 {
		t.Errorf("downpayment = %v, want invoice subtotal", dp)
	}
	if remaining != 0 {
		t.Errorf("remaining = %v, want 0", remaining)
	}
}
