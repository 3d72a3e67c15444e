package controllers

import (
	"log"

	"digitalservice-backend/database"
	"digitalservice-backend/models"

	"github.com/gofiber/fiber/v2"
)

type ConsentInput struct {
	UserSession  string `json:"user_session" validate:"required"`
	ConsentGiven bool   `json:"consent_given"`
}

// RecordConsent logs a visitor's cookie-consent choice. The write is
// best-effort: a storage failure is logged and swallowed so the consent
// banner flow on the client never blocks on it.
func RecordConsent(c *fiber.Ctx) error {
	var input ConsentInput
	if err := c.BodyParser(&input); err != nil || input.UserSession == "" {
		return fiber.NewError(fiber.StatusBadRequest, "invalid consent payload")
	}

	record := models.ConsentRecord{
		UserSession:  input.UserSession,
		ConsentGiven: input.ConsentGiven,
		UserAgent:    c.Get(fiber.HeaderUserAgent),
	}

	if err := database.DB.Create(&record).Error; err != nil {
		log.Printf("consent log write failed: %v", err)
	}

	return c.JSON(fiber.Map{"message": "success"})
}
