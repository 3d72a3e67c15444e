package controllers

import (
	"errors"
	"time"

	"digitalservice-backend/billing"
	"digitalservice-backend/database"
	"digitalservice-backend/middlewares"
	"digitalservice-backend/models"
	"digitalservice-backend/pdf"
	"digitalservice-backend/utils"

	"github.com/gofiber/fiber/v2"
)

type InvoiceInput struct {
	OrderId               string  `json:"order_id" validate:"required"`
	DueDate               string  `json:"due_date" validate:"required"` // YYYY-MM-DD
	IsDownpayment         bool    `json:"is_downpayment"`
	DownpaymentPercentage float64 `json:"downpayment_percentage" validate:"gte=0,lte=100"`
	TaxAmount             float64 `json:"tax_amount" validate:"gte=0"`
	PaymentTerms          string  `json:"payment_terms"`
	Notes                 string  `json:"notes"`
	RelatedInvoiceId      *string `json:"related_invoice_id"`
}

// CreateInvoice issues an invoice against an eligible order. For downpayment
// invoices the parent order's downpayment/remaining fields are brought in
// line with the invoice subtotal inside the same request transaction.
func CreateInvoice(c *fiber.Ctx) error {
	var input InvoiceInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}

	dueDate, err := time.Parse("2006-01-02", input.DueDate)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Invalid due date format, want YYYY-MM-DD"})
	}

	db := middlewares.RequestDB(c)

	var order models.Order
	if err := db.Preload("Service").First(&order, "id = ?", input.OrderId).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"message": "Order not found"})
	}

	invoiceType := billing.InvoiceFull
	if input.IsDownpayment {
		invoiceType = billing.InvoiceDownpayment
	}

	var servicePrice float64
	if order.Service != nil {
		servicePrice = order.Service.Price
	}
	base := billing.BaseAmount(order.TotalAmount, servicePrice)

	totals, err := billing.NewInvoiceTotals(
		billing.OrderStatus(order.Status), invoiceType,
		base, input.DownpaymentPercentage, input.TaxAmount,
	)
	if err != nil {
		if errors.Is(err, billing.ErrOrderNotInvoiceable) {
			return c.Status(409).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"message": err.Error()})
	}

	cfg := models.DefaultInvoiceConfig()
	if err := models.LoadSetting(db, models.SettingInvoiceConfig, &cfg); err != nil {
		return c.Status(500).JSON(fiber.Map{"message": "Could not load invoice configuration"})
	}
	paymentTerms := input.PaymentTerms
	if paymentTerms == "" {
		paymentTerms = cfg.PaymentTerms
	}

	number, err := database.NextInvoiceNumber(db, cfg.InvoicePrefix)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"message": "Could not generate invoice number",
			"error":   err.Error(),
		})
	}

	pct := input.DownpaymentPercentage
	if !input.IsDownpayment {
		pct = 0
	}

	invoice := models.Invoice{
		InvoiceNumber:         number,
		OrderId:               &order.Id,
		IssueDate:             time.Now(),
		DueDate:               dueDate,
		Status:                string(billing.InvoiceDraft),
		InvoiceType:           string(invoiceType),
		IsDownpayment:         input.IsDownpayment,
		DownpaymentPercentage: pct,
		Subtotal:              totals.Subtotal,
		TaxAmount:             totals.TaxAmount,
		TotalAmount:           totals.Total,
		PaymentTerms:          paymentTerms,
		Notes:                 input.Notes,
		RelatedInvoiceId:      input.RelatedInvoiceId,
	}

	if err := db.Create(&invoice).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{
			"message": "Could not create invoice",
			"error":   err.Error(),
		})
	}

	if input.IsDownpayment {
		dpAmount, remaining := billing.OrderAfterDownpaymentInvoice(base, totals.Subtotal)
		err := db.Model(&order).Updates(map[string]any{
			"downpayment_percentage": pct,
			"downpayment_amount":     dpAmount,
			"remaining_amount":       remaining,
		}).Error
		if err != nil {
			return c.Status(500).JSON(fiber.Map{
				"message": "Could not update order downpayment fields",
				"error":   err.Error(),
			})
		}
	}

	return c.Status(201).JSON(invoice)
}

func GetInvoices(c *fiber.Ctx) error {
	var invoices []models.Invoice
	q := database.DB.Preload("Order").Preload("Order.Service").
		Order("created_at DESC")
	if limit := utils.ParseIntDefault(c.Query("limit"), 0); limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&invoices).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{
			"message": "Could not load invoices",
			"error":   err.Error(),
		})
	}

	// Overdue is a read-time derivation, never persisted.
	now := time.Now()
	for i := range invoices {
		invoices[i].Status = string(billing.EffectiveInvoiceStatus(
			billing.InvoiceStatus(invoices[i].Status), invoices[i].DueDate, now))
	}

	return c.JSON(fiber.Map{
		"invoices": invoices,
		"message":  "success",
	})
}

func GetInvoice(c *fiber.Ctx) error {
	var invoice models.Invoice
	err := database.DB.Preload("Order").Preload("Order.Service").
		First(&invoice, "id = ?", c.Params("id")).Error
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"message": "Invoice not found"})
	}

	invoice.Status = string(billing.EffectiveInvoiceStatus(
		billing.InvoiceStatus(invoice.Status), invoice.DueDate, time.Now()))

	return c.JSON(invoice)
}

type InvoiceStatusInput struct {
	Status string `json:"status" validate:"required"`
}

func UpdateInvoiceStatus(c *fiber.Ctx) error {
	var input InvoiceStatusInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}

	if !billing.ValidInvoiceStatus(billing.InvoiceStatus(input.Status)) {
		return c.Status(400).JSON(fiber.Map{"message": "Unknown invoice status"})
	}

	db := middlewares.RequestDB(c)

	var invoice models.Invoice
	if err := db.First(&invoice, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"message": "Invoice not found"})
	}

	if err := db.Model(&invoice).Update("status", input.Status).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{
			"message": "Could not update invoice status",
			"error":   err.Error(),
		})
	}

	return c.JSON(invoice)
}

// AdjustInvoice applies a discount, additional charge or tax adjustment and
// persists the recomputed subtotal/total. The note overwrites prior notes.
func AdjustInvoice(c *fiber.Ctx) error {
	var adj billing.Adjustment
	if err := c.BodyParser(&adj); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	db := middlewares.RequestDB(c)

	var invoice models.Invoice
	if err := db.First(&invoice, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"message": "Invoice not found"})
	}

	result, err := billing.ApplyAdjustment(invoice.Subtotal, invoice.TaxAmount, adj)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": err.Error()})
	}

	err = db.Model(&invoice).Updates(map[string]any{
		"subtotal":     result.NewSubtotal,
		"total_amount": result.NewTotal,
		"notes":        result.Note,
	}).Error
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"message": "Could not apply adjustment",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"invoice":           invoice,
		"adjustment_amount": result.AdjustmentAmount,
		"message":           "success",
	})
}

// DownloadInvoicePDF resolves the invoice projection and streams the
// rendered document as invoice-{number}.pdf.
func DownloadInvoicePDF(c *fiber.Ctx) error {
	var invoice models.Invoice
	err := database.DB.Preload("Order").Preload("Order.Service").
		First(&invoice, "id = ?", c.Params("id")).Error
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"message": "Invoice not found"})
	}

	company := models.DefaultCompanyInfo()
	if err := models.LoadSetting(database.DB, models.SettingCompanyInfo, &company); err != nil {
		return c.Status(500).JSON(fiber.Map{"message": "Could not load company settings"})
	}
	cfg := models.DefaultInvoiceConfig()
	if err := models.LoadSetting(database.DB, models.SettingInvoiceConfig, &cfg); err != nil {
		return c.Status(500).JSON(fiber.Map{"message": "Could not load invoice configuration"})
	}

	data := buildInvoiceProjection(&invoice, company, cfg)

	out, err := pdf.Render(data)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"message": "Could not render invoice PDF",
			"error":   err.Error(),
		})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+pdf.Filename(invoice.InvoiceNumber)+`"`)
	return c.Send(out)
}

func buildInvoiceProjection(invoice *models.Invoice, company models.CompanyInfo, cfg models.InvoiceConfig) pdf.InvoiceData {
	description := "Digital Service"
	customer := pdf.Customer{}
	if invoice.Order != nil {
		customer.Name = invoice.Order.CustomerName
		customer.Email = invoice.Order.CustomerEmail
		if invoice.Order.Service != nil {
			description = invoice.Order.Service.Name
		}
	}
	if invoice.IsDownpayment {
		description += " (DP)"
	}

	paymentTerms := invoice.PaymentTerms
	if paymentTerms == "" {
		paymentTerms = cfg.PaymentTerms
	}

	return pdf.InvoiceData{
		InvoiceNumber: invoice.InvoiceNumber,
		IssueDate:     invoice.IssueDate,
		DueDate:       invoice.DueDate,
		Customer:      customer,
		Company: pdf.Company{
			Name:      company.Name,
			Address:   company.Address,
			Phone:     company.Phone,
			Email:     company.Email,
			Website:   company.Website,
			TaxNumber: company.TaxNumber,
		},
		Items: []pdf.LineItem{{
			Description: description,
			Quantity:    1,
			Price:       invoice.Subtotal,
			Total:       invoice.Subtotal,
		}},
		Subtotal:     invoice.Subtotal,
		TaxAmount:    invoice.TaxAmount,
		TotalAmount:  invoice.TotalAmount,
		Notes:        invoice.Notes,
		PaymentTerms: paymentTerms,
		TaxLabel:     cfg.TaxLabel,
	}
}
