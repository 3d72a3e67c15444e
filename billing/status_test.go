package billing

import (
	"testing"
	"time"
)

func TestNextOrderStatuses(t *testing.T) {
	cases := []struct {
		from OrderStatus
		want []OrderStatus
	}{
		{OrderPending, []OrderStatus{OrderInProgress, OrderCancelled}},
		{OrderInProgress, []OrderStatus{OrderCompleted, OrderCancelled}},
		{OrderCompleted, nil},
		{OrderCancelled, nil},
	}
	for _, tc := range cases {
		got := NextOrderStatuses(tc.from)
		if len(got) != len(tc.want) {
			t.Errorf("NextOrderStatuses(%s) = %v, want %v", tc.from, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("NextOrderStatuses(%s) = %v, want %v", tc.from, got, tc.want)
			}
		}
	}
}

func TestValidOrderStatus(t *testing.T) {
	for _, s := range []OrderStatus{OrderPending, OrderInProgress, OrderCompleted, OrderCancelled} {
		if !ValidOrderStatus(s) {
			t.Errorf("ValidOrderStatus(%s) = false", s)
		}
	}
	if ValidOrderStatus("archived") {
		t.Error("ValidOrderStatus(archived) = true, want false")
	}
}

func TestInvoiceable(t *testing.T) {
	if Invoiceable(OrderPending) || Invoiceable(OrderCancelled) {
		t.Error("pending/cancelled orders must not be invoiceable")
	}
	if !Invoiceable(OrderInProgress) || !Invoiceable(OrderCompleted) {
		t.Error("in_progress/completed orders must be invoiceable")
	}
}

func TestIsOverdue(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -10)
	future := now.AddDate(0, 0, 10)

	if !IsOverdue(past, InvoiceSent, now) {
		t.Error("unpaid invoice past due date must be overdue")
	}
	if IsOverdue(past, InvoicePaid, now) {
		t.Error("paid invoice is never overdue")
	}
	if IsOverdue(future, InvoiceSent, now) {
		t.Error("invoice before due date is not overdue")
	}
}

func TestEffectiveInvoiceStatus(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -1)
	future := now.AddDate(0, 0, 1)

	if got := EffectiveInvoiceStatus(InvoiceSent, past, now); got != InvoiceOverdue {
		t.Errorf("EffectiveInvoiceStatus(sent, past) = %s, want overdue", got)
	}
	if got := EffectiveInvoiceStatus(InvoiceDraft, past, now); got != InvoiceOverdue {
		t.Errorf("EffectiveInvoiceStatus(draft, past) = %s, want overdue", got)
	}
	if got := EffectiveInvoiceStatus(InvoicePaid, past, now); got != InvoicePaid {
		t.Errorf("EffectiveInvoiceStatus(paid, past) = %s, want paid", got)
	}
	if got := EffectiveInvoiceStatus(InvoiceSent, future, now); got != InvoiceSent {
		t.Errorf("EffectiveInvoiceStatus(sent, future) = %s, want sent", got)
	}
}
