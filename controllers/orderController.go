package controllers

import (
	"time"

	"digitalservice-backend/billing"
	"digitalservice-backend/database"
	"digitalservice-backend/middlewares"
	"digitalservice-backend/models"
	"digitalservice-backend/utils"

	"github.com/gofiber/fiber/v2"
)

type OrderInput struct {
	CustomerName          string  `json:"customer_name" validate:"required"`
	CustomerEmail         string  `json:"customer_email" validate:"required,email"`
	CustomerPhone         string  `json:"customer_phone"`
	ServiceId             string  `json:"service_id" validate:"required"`
	CustomRequirements    string  `json:"custom_requirements"`
	BudgetRange           string  `json:"budget_range"`
	DeadlineDate          string  `json:"deadline_date"` // YYYY-MM-DD, optional
	TotalAmount           float64 `json:"total_amount" validate:"gte=0"`
	UseDownpayment        bool    `json:"use_downpayment"`
	DownpaymentPercentage float64 `json:"downpayment_percentage" validate:"gte=0,lte=100"`
}

// CreateOrder is the customer-facing order intake. The downpayment split is
// computed here so the stored fields always satisfy the order invariant.
func CreateOrder(c *fiber.Ctx) error {
	var input OrderInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}
	utils.NormalizeDTO(&input)

	db := middlewares.RequestDB(c)

	var service models.Service
	if err := db.First(&service, "id = ? AND is_active = ?", input.ServiceId, true).Error; err != nil {
		return c.Status(400).JSON(fiber.Map{"message": "Unknown or inactive service"})
	}

	totalAmount := input.TotalAmount
	if totalAmount == 0 {
		totalAmount = service.Price
	}

	dp, err := billing.CalculateDownpayment(totalAmount, input.DownpaymentPercentage, input.UseDownpayment)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": err.Error()})
	}

	pct := input.DownpaymentPercentage
	if !input.UseDownpayment {
		pct = 0
	}

	var deadline *time.Time
	if input.DeadlineDate != "" {
		d, err := time.Parse("2006-01-02", input.DeadlineDate)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"message": "Invalid deadline date format, want YYYY-MM-DD"})
		}
		deadline = &d
	}

	order := models.Order{
		CustomerName:          input.CustomerName,
		CustomerEmail:         input.CustomerEmail,
		CustomerPhone:         input.CustomerPhone,
		ServiceId:             &service.Id,
		CustomRequirements:    input.CustomRequirements,
		BudgetRange:           input.BudgetRange,
		DeadlineDate:          deadline,
		Status:                string(billing.OrderPending),
		TotalAmount:           totalAmount,
		DownpaymentPercentage: pct,
		DownpaymentAmount:     dp.DownpaymentAmount,
		RemainingAmount:       dp.RemainingAmount,
	}

	if err := db.Create(&order).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{
			"message": "Could not create order",
			"error":   err.Error(),
		})
	}

	return c.Status(201).JSON(order)
}

type DownpaymentPreviewInput struct {
	BasePrice      float64 `json:"base_price" validate:"gte=0"`
	Percentage     float64 `json:"percentage" validate:"gte=0,lte=100"`
	UseDownpayment bool    `json:"use_downpayment"`
}

// PreviewDownpayment powers the live split preview on the order form.
func PreviewDownpayment(c *fiber.Ctx) error {
	var input DownpaymentPreviewInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}

	dp, err := billing.CalculateDownpayment(input.BasePrice, input.Percentage, input.UseDownpayment)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(fiber.Map{
		"downpayment":        dp,
		"preset_percentages": billing.PresetDownpaymentPercentages,
	})
}

func GetOrders(c *fiber.Ctx) error {
	var orders []models.Order
	if err := database.DB.Preload("Service").Order("order_date DESC").Find(&orders).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{
			"message": "Could not load orders",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"orders":  orders,
		"message": "success",
	})
}

// GetInvoiceableOrders lists orders eligible as invoice targets
// (status in_progress or completed).
func GetInvoiceableOrders(c *fiber.Ctx) error {
	var orders []models.Order
	err := database.DB.Preload("Service").
		Where("status IN ?", []string{string(billing.OrderInProgress), string(billing.OrderCompleted)}).
		Order("order_date DESC").
		Find(&orders).Error
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"message": "Could not load orders",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"orders":  orders,
		"message": "success",
	})
}

type OrderStatusInput struct {
	Status string `json:"status" validate:"required"`
}

// UpdateOrderStatus sets any valid status. The forward flow is advisory;
// administrators may move an order between arbitrary states to correct it.
func UpdateOrderStatus(c *fiber.Ctx) error {
	var input OrderStatusInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}

	if !billing.ValidOrderStatus(billing.OrderStatus(input.Status)) {
		return c.Status(400).JSON(fiber.Map{"message": "Unknown order status"})
	}

	db := middlewares.RequestDB(c)

	var order models.Order
	if err := db.First(&order, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"message": "Order not found"})
	}

	if err := db.Model(&order).Update("status", input.Status).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{
			"message": "Could not update order status",
			"error":   err.Error(),
		})
	}

	return c.JSON(order)
}
