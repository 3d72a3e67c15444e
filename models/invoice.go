package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Invoice is a commercial document issued against an order.
// total_amount always equals subtotal + tax_amount, also after adjustments.
// Invoices are never deleted; only status updates and adjustments mutate them.
type Invoice struct {
	Id            string  `json:"id" gorm:"primaryKey"`
	InvoiceNumber string  `json:"invoice_number" gorm:"unique;not null"`
	OrderId       *string `json:"order_id" gorm:"index"`
	Order         *Order  `json:"order,omitempty" gorm:"foreignKey:OrderId;references:Id"`

	IssueDate time.Time `json:"issue_date"`
	DueDate   time.Time `json:"due_date"`

	// Stored status: draft | sent | paid. Overdue is derived at read time
	// from the due date and never written back.
	Status string `json:"status" gorm:"default:draft"`

	InvoiceType           string  `json:"invoice_type"` // "full" | "downpayment"
	IsDownpayment         bool    `json:"is_downpayment"`
	DownpaymentPercentage float64 `json:"downpayment_percentage"` // copied at creation time

	Subtotal    float64 `json:"subtotal" gorm:"type:numeric(12,2)"`
	TaxAmount   float64 `json:"tax_amount" gorm:"type:numeric(12,2)"`
	TotalAmount float64 `json:"total_amount" gorm:"type:numeric(12,2)"`

	PaymentTerms     string  `json:"payment_terms"`
	Notes            string  `json:"notes"`
	RelatedInvoiceId *string `json:"related_invoice_id"` // companion invoice, e.g. the final one after a downpayment

	CreatedAt time.Time `json:"created_at"`
}

func (invoice *Invoice) BeforeCreate(tx *gorm.DB) (err error) {
	// UUID version 4
	if invoice.Id == "" {
		invoice.Id = uuid.NewString()
	}
	return
}
