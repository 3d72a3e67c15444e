package controllers

import (
	"testing"
	"time"

	"digitalservice-backend/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildInvoiceProjection(t *testing.T) {
	service := models.Service{Name: "Company Profile Website", Price: 10000000}
	order := models.Order{
		CustomerName:  "Budi Santoso",
		CustomerEmail: "budi@example.com",
		Service:       &service,
	}
	invoice := models.Invoice{
		InvoiceNumber: "INV-202608-0042",
		Order:         &order,
		IssueDate:     time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		DueDate:       time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		IsDownpayment: true,
		Subtotal:      3000000,
		TaxAmount:     330000,
		TotalAmount:   3330000,
		Notes:         "First milestone",
	}

	data := buildInvoiceProjection(&invoice, models.DefaultCompanyInfo(), models.DefaultInvoiceConfig())

	assert.Equal(t, "INV-202608-0042", data.InvoiceNumber)
	assert.Equal(t, "Budi Santoso", data.Customer.Name)
	assert.Equal(t, "budi@example.com", data.Customer.Email)
	assert.Equal(t, "Digital Service Company", data.Company.Name)

	// Downpayment invoices get the (DP) marker on the single line item.
	assert.Len(t, data.Items, 1)
	assert.Equal(t, "Company Profile Website (DP)", data.Items[0].Description)
	assert.Equal(t, 1, data.Items[0].Quantity)
	assert.Equal(t, invoice.Subtotal, data.Items[0].Price)
	assert.Equal(t, invoice.Subtotal, data.Items[0].Total)

	assert.Equal(t, invoice.TotalAmount, data.TotalAmount)
	assert.Equal(t, "11%", data.TaxLabel)
	// Empty payment terms fall back to the configured default.
	assert.Equal(t, "30 days", data.PaymentTerms)
}

func TestBuildInvoiceProjectionWithoutOrder(t *testing.T) {
	invoice := models.Invoice{
		InvoiceNumber: "INV-202608-0001",
		Subtotal:      500000,
		TotalAmount:   500000,
		PaymentTerms:  "14 days",
	}

	data := buildInvoiceProjection(&invoice, models.DefaultCompanyInfo(), models.DefaultInvoiceConfig())

	assert.Equal(t, "Digital Service", data.Items[0].Description)
	assert.Empty(t, data.Customer.Name)
	assert.Equal(t, "14 days", data.PaymentTerms)
}
