package billing

import (
	"errors"
	"fmt"
)

// InvoiceType distinguishes a full invoice from a downpayment invoice.
type InvoiceType string

const (
	InvoiceFull        InvoiceType = "full"
	InvoiceDownpayment InvoiceType = "downpayment"
)

var ErrOrderNotInvoiceable = errors.New("order must be in_progress or completed to be invoiced")

// InvoiceTotals is the monetary outcome of creating an invoice.
type InvoiceTotals struct {
	Subtotal  float64
	TaxAmount float64
	Total     float64
}

// BaseAmount picks the amount an invoice is computed from: the order's
// total_amount when set, otherwise the service price.
func BaseAmount(orderTotal, servicePrice float64) float64 {
	if orderTotal > 0 {
		return orderTotal
	}
	return servicePrice
}

// NewInvoiceTotals computes subtotal/tax/total for a new invoice.
// A full invoice bills the whole base amount; a downpayment invoice bills
// pct percent of it. taxAmount is supplied by the caller (default 0) and
// is never derived here.
func NewInvoiceTotals(orderStatus OrderStatus, typ InvoiceType, base, pct, taxAmount float64) (InvoiceTotals, error) {
	if !Invoiceable(orderStatus) {
		return InvoiceTotals{}, ErrOrderNotInvoiceable
	}
	if base < 0 {
		return InvoiceTotals{}, fmt.Errorf("invoice base amount must not be negative, got %v", base)
	}

	var subtotal float64
	switch typ {
	case InvoiceDownpayment:
		if pct <= 0 || pct > 100 {
			return InvoiceTotals{}, fmt.Errorf("downpayment percentage must be between 1 and 100, got %v", pct)
		}
		subtotal = PercentageOf(base, pct)
	case InvoiceFull:
		subtotal = base
	default:
		return InvoiceTotals{}, fmt.Errorf("unknown invoice type %q", typ)
	}

	taxAmount = ClampNonNegative(taxAmount)
	return InvoiceTotals{
		Subtotal:  subtotal,
		TaxAmount: taxAmount,
		Total:     subtotal + taxAmount,
	}, nil
}

// OrderAfterDownpaymentInvoice returns the order fields that must follow a
// downpayment invoice: downpayment_amount mirrors the invoice subtotal and
// remaining_amount is the rest of the order total, clamped at zero.
func OrderAfterDownpaymentInvoice(orderBase, invoiceSubtotal float64) (downpayment, remaining float64) {
	return invoiceSubtotal, ClampNonNegative(orderBase - invoiceSubtotal)
}
