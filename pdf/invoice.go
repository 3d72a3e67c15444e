// Package pdf renders a finalized invoice projection into a printable
// document. It performs no network or storage I/O and depends only on its
// input, so identical input yields an identical document layout. The encoded
// bytes carry a creation date stamp and are not byte-for-byte reproducible.
package pdf

import (
	"fmt"
	"time"

	"digitalservice-backend/utils"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// Customer is the billed party block.
type Customer struct {
	Name    string
	Email   string
	Address string
}

// Company is the issuer block.
type Company struct {
	Name      string
	Address   string
	Phone     string
	Email     string
	Website   string
	TaxNumber string
}

// LineItem is one billed row.
type LineItem struct {
	Description string
	Quantity    int
	Price       float64
	Total       float64
}

// InvoiceData is the fully resolved projection the renderer consumes.
// TaxLabel is a display label ("11%"); it is never derived from the amounts.
type InvoiceData struct {
	InvoiceNumber string
	IssueDate     time.Time
	DueDate       time.Time
	Customer      Customer
	Company       Company
	Items         []LineItem
	Subtotal      float64
	TaxAmount     float64
	TotalAmount   float64
	Notes         string
	PaymentTerms  string
	TaxLabel      string
}

const defaultNote = "Terima kasih atas kepercayaan Anda."

// Filename is the download name for a rendered invoice.
func Filename(invoiceNumber string) string {
	return fmt.Sprintf("invoice-%s.pdf", invoiceNumber)
}

// Render produces the finished PDF bytes for data.
func Render(data InvoiceData) ([]byte, error) {
	doc, err := Build(data).Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

// Build assembles the document layout without generating bytes, so the
// structure can be inspected independently of the PDF encoder.
func Build(data InvoiceData) core.Maroto {
	cfg := config.NewBuilder().
		WithLeftMargin(10).
		WithTopMargin(15).
		WithRightMargin(10).
		Build()

	m := maroto.New(cfg)

	addHeader(m, data)
	addParties(m, data)
	addDates(m, data)
	addItemsTable(m, data)
	addNotesAndSummary(m, data)
	addFooter(m, data)

	return m
}

func addHeader(m core.Maroto, data InvoiceData) {
	m.AddRow(30,
		col.New(6).Add(
			text.New("INVOICE", props.Text{
				Size:  20,
				Style: fontstyle.Bold,
				Align: align.Left,
			}),
			text.New(data.InvoiceNumber, props.Text{
				Size:  10,
				Top:   10,
				Align: align.Left,
			}),
		),
		col.New(6).Add(
			text.New(data.Company.Name, props.Text{
				Size:  14,
				Style: fontstyle.Bold,
				Align: align.Right,
			}),
		),
	)

	m.AddRow(5, line.NewCol(12))
}

// addParties renders the two-column issuer/customer block ("DARI" / "UNTUK").
func addParties(m core.Maroto, data InvoiceData) {
	from := []string{
		data.Company.Address,
		data.Company.Phone,
		data.Company.Email,
	}
	if data.Company.Website != "" {
		from = append(from, data.Company.Website)
	}

	to := []string{
		data.Customer.Name,
		data.Customer.Email,
	}
	if data.Customer.Address != "" {
		to = append(to, data.Customer.Address)
	}

	left := []core.Component{
		text.New("DARI:", props.Text{Size: 11, Style: fontstyle.Bold, Align: align.Left}),
	}
	for i, l := range from {
		left = append(left, text.New(l, props.Text{Size: 9, Top: float64(7 + i*5), Align: align.Left}))
	}

	right := []core.Component{
		text.New("UNTUK:", props.Text{Size: 11, Style: fontstyle.Bold, Align: align.Left}),
	}
	for i, l := range to {
		right = append(right, text.New(l, props.Text{Size: 9, Top: float64(7 + i*5), Align: align.Left}))
	}

	m.AddRow(34, col.New(6).Add(left...), col.New(6).Add(right...))
}

func addDates(m core.Maroto, data InvoiceData) {
	m.AddRow(12,
		col.New(6).Add(
			text.New("Tanggal Terbit:", props.Text{Size: 9, Align: align.Left}),
			text.New(formatDate(data.IssueDate), props.Text{Size: 10, Top: 5, Align: align.Left}),
		),
		col.New(6).Add(
			text.New("Jatuh Tempo:", props.Text{Size: 9, Align: align.Left}),
			text.New(formatDate(data.DueDate), props.Text{Size: 10, Top: 5, Align: align.Left}),
		),
	)

	m.AddRow(5, line.NewCol(12))
}

func addItemsTable(m core.Maroto, data InvoiceData) {
	m.AddRow(8,
		col.New(6).Add(text.New("Deskripsi", props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Left})),
		col.New(1).Add(text.New("Qty", props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right})),
		col.New(2).Add(text.New("Harga", props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right})),
		col.New(3).Add(text.New("Total", props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right})),
	)
	m.AddRow(2, line.NewCol(12))

	for _, item := range data.Items {
		m.AddRow(8,
			col.New(6).Add(text.New(item.Description, props.Text{Size: 9, Align: align.Left})),
			col.New(1).Add(text.New(fmt.Sprintf("%d", item.Quantity), props.Text{Size: 9, Align: align.Right})),
			col.New(2).Add(text.New(utils.FormatRupiah(item.Price), props.Text{Size: 9, Align: align.Right})),
			col.New(3).Add(text.New(utils.FormatRupiah(item.Total), props.Text{Size: 9, Align: align.Right})),
		)
	}

	m.AddRow(3, line.NewCol(12))
}

func addNotesAndSummary(m core.Maroto, data InvoiceData) {
	notes := data.Notes
	if notes == "" {
		notes = defaultNote
	}

	taxLabel := data.TaxLabel
	if taxLabel == "" {
		taxLabel = "11%"
	}

	m.AddRow(24,
		col.New(6).Add(
			text.New("Catatan:", props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Left}),
			text.New(notes, props.Text{Size: 9, Top: 6, Align: align.Left}),
		),
		col.New(6).Add(
			text.New("Subtotal:", props.Text{Size: 10, Align: align.Left}),
			text.New(utils.FormatRupiah(data.Subtotal), props.Text{Size: 10, Align: align.Right}),
			text.New(fmt.Sprintf("Pajak (%s):", taxLabel), props.Text{Size: 10, Top: 7, Align: align.Left}),
			text.New(utils.FormatRupiah(data.TaxAmount), props.Text{Size: 10, Top: 7, Align: align.Right}),
		),
	)

	m.AddRow(2, col.New(6), line.NewCol(6))
	m.AddRow(10,
		col.New(6),
		col.New(6).Add(
			text.New("TOTAL", props.Text{Size: 12, Style: fontstyle.Bold, Align: align.Left}),
			text.New(utils.FormatRupiah(data.TotalAmount), props.Text{Size: 12, Style: fontstyle.Bold, Align: align.Right}),
		),
	)
}

func addFooter(m core.Maroto, data InvoiceData) {
	if data.PaymentTerms != "" {
		m.AddRow(8, col.New(12).Add(
			text.New(fmt.Sprintf("Syarat Pembayaran: %s", data.PaymentTerms), props.Text{Size: 9, Align: align.Left}),
		))
	}
	if data.Company.TaxNumber != "" {
		m.AddRow(8, col.New(12).Add(
			text.New(fmt.Sprintf("NPWP: %s", data.Company.TaxNumber), props.Text{Size: 9, Align: align.Left}),
		))
	}
}

func formatDate(t time.Time) string {
	return t.Format("02/01/2006")
}
