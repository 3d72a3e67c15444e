package billing

import "time"

// OrderStatus is the lifecycle state of a customer order.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderInProgress OrderStatus = "in_progress"
	OrderCompleted  OrderStatus = "completed"
	OrderCancelled  OrderStatus = "cancelled"
)

// ValidOrderStatus reports whether s is a known order status.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderPending, OrderInProgress, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}

// NextOrderStatuses returns the forward transitions out of s:
// pending -> in_progress -> completed, with cancelled reachable from
// pending and in_progress. completed and cancelled are terminal.
// Administrators may still force any valid status via a direct update;
// this list is the customer-visible flow only.
func NextOrderStatuses(s OrderStatus) []OrderStatus {
	switch s {
	case OrderPending:
		return []OrderStatus{OrderInProgress, OrderCancelled}
	case OrderInProgress:
		return []OrderStatus{OrderCompleted, OrderCancelled}
	default:
		return nil
	}
}

// Invoiceable reports whether an order in status s may have an invoice
// created against it. Only in_progress and completed orders qualify.
func Invoiceable(s OrderStatus) bool {
	return s == OrderInProgress || s == OrderCompleted
}

// InvoiceStatus is the stored payment state of an invoice.
type InvoiceStatus string

const (
	InvoiceDraft   InvoiceStatus = "draft"
	InvoiceSent    InvoiceStatus = "sent"
	InvoicePaid    InvoiceStatus = "paid"
	InvoiceOverdue InvoiceStatus = "overdue"
)

// ValidInvoiceStatus reports whether s is a known invoice status.
func ValidInvoiceStatus(s InvoiceStatus) bool {
	switch s {
	case InvoiceDraft, InvoiceSent, InvoicePaid, InvoiceOverdue:
		return true
	}
	return false
}

// IsOverdue reports whether an unpaid invoice is past its due date.
func IsOverdue(dueDate time.Time, status InvoiceStatus, now time.Time) bool {
	return status != InvoicePaid && dueDate.Before(now)
}

// EffectiveInvoiceStatus derives the display status at read time. Overdue is
// never persisted; it is recomputed on every read so it cannot go stale.
func EffectiveInvoiceStatus(stored InvoiceStatus, dueDate time.Time, now time.Time) InvoiceStatus {
	if IsOverdue(dueDate, stored, now) {
		return InvoiceOverdue
	}
	return stored
}
