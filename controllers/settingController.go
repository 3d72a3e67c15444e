package controllers

import (
	"digitalservice-backend/database"
	"digitalservice-backend/middlewares"
	"digitalservice-backend/models"

	"github.com/gofiber/fiber/v2"
)

// GetSettings returns all typed configuration blocks, defaults filled in.
func GetSettings(c *fiber.Ctx) error {
	company := models.DefaultCompanyInfo()
	if err := models.LoadSetting(database.DB, models.SettingCompanyInfo, &company); err != nil {
		return c.Status(500).JSON(fiber.Map{"message": "Could not load settings"})
	}
	invoiceCfg := models.DefaultInvoiceConfig()
	if err := models.LoadSetting(database.DB, models.SettingInvoiceConfig, &invoiceCfg); err != nil {
		return c.Status(500).JSON(fiber.Map{"message": "Could not load settings"})
	}
	var emailCfg models.EmailConfig
	if err := models.LoadSetting(database.DB, models.SettingEmailConfig, &emailCfg); err != nil {
		return c.Status(500).JSON(fiber.Map{"message": "Could not load settings"})
	}

	return c.JSON(fiber.Map{
		"company_info":   company,
		"invoice_config": invoiceCfg,
		"email_config":   emailCfg,
	})
}

func UpdateCompanyInfo(c *fiber.Ctx) error {
	var info models.CompanyInfo
	if err := c.BodyParser(&info); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := models.SaveSetting(middlewares.RequestDB(c), models.SettingCompanyInfo, info); err != nil {
		return c.Status(500).JSON(fiber.Map{
			"message": "Could not save company info",
			"error":   err.Error(),
		})
	}
	return c.JSON(info)
}

func UpdateInvoiceConfig(c *fiber.Ctx) error {
	var cfg models.InvoiceConfig
	if err := c.BodyParser(&cfg); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if cfg.TaxRate < 0 || cfg.TaxRate > 100 {
		return c.Status(400).JSON(fiber.Map{"message": "tax_rate must be between 0 and 100"})
	}
	if err := models.SaveSetting(middlewares.RequestDB(c), models.SettingInvoiceConfig, cfg); err != nil {
		return c.Status(500).JSON(fiber.Map{
			"message": "Could not save invoice config",
			"error":   err.Error(),
		})
	}
	return c.JSON(cfg)
}

func UpdateEmailConfig(c *fiber.Ctx) error {
	var cfg models.EmailConfig
	if err := c.BodyParser(&cfg); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := models.SaveSetting(middlewares.RequestDB(c), models.SettingEmailConfig, cfg); err != nil {
		return c.Status(500).JSON(fiber.Map{
			"message": "Could not save email config",
			"error":   err.Error(),
		})
	}
	return c.JSON(cfg)
}
