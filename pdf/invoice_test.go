package pdf

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleInvoice() InvoiceData {
	return InvoiceData{
		InvoiceNumber: "INV-202608-0042",
		IssueDate:     time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		DueDate:       time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		Customer: Customer{
			Name:  "Budi Santoso",
			Email: "budi@example.com",
		},
		Company: Company{
			Name:      "Digital Service Company",
			Address:   "Jl. Digital No. 123, Jakarta",
			Phone:     "+62 21 1234567",
			Email:     "info@digitalservice.com",
			Website:   "www.digitalservice.com",
			TaxNumber: "12.345.678.9-012.345",
		},
		Items: []LineItem{{
			Description: "Company Profile Website (DP)",
			Quantity:    1,
			Price:       3000000,
			Total:       3000000,
		}},
		Subtotal:     3000000,
		TaxAmount:    330000,
		TotalAmount:  3330000,
		PaymentTerms: "30 days",
	}
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "invoice-INV-202608-0042.pdf", Filename("INV-202608-0042"))
}

func TestRenderProducesPDF(t *testing.T) {
	out, err := Render(sampleInvoice())
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, "%PDF", string(out[:4]))
}

// The renderer depends only on its input: the same projection must assemble
// the same document structure every time. The comparison is on the assembled
// structure, not the encoded bytes; the underlying PDF encoder stamps a
// creation date and does not order font objects stably, so raw output bytes
// differ between runs even for identical input.
func TestBuildIsDeterministic(t *testing.T) {
	first := Build(sampleInvoice()).GetStructure()
	second := Build(sampleInvoice()).GetStructure()
	assert.True(t, reflect.DeepEqual(first, second), "identical input produced different layouts")
}

func TestBuildReflectsInput(t *testing.T) {
	base := sampleInvoice()

	changed := sampleInvoice()
	changed.TotalAmount = 9999999

	assert.False(t,
		reflect.DeepEqual(Build(base).GetStructure(), Build(changed).GetStructure()),
		"different totals must change the layout")
}

func TestRenderWithEmptyNotesAndItems(t *testing.T) {
	data := sampleInvoice()
	data.Notes = ""
	data.Items = nil
	data.PaymentTerms = ""
	data.Company.TaxNumber = ""

	out, err := Render(data)
	require.NoError(t, err)
	require.NotEmpty(t, out)
}
