package controllers

import (
	"digitalservice-backend/database"
	"digitalservice-backend/middlewares"
	"digitalservice-backend/models"
	"digitalservice-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

type ServiceInput struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Price       float64  `json:"price" validate:"gte=0"`
	Features    []string `json:"features"`
	IsActive    *bool    `json:"is_active"`
}

type ServiceUpdateInput struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	Price       *float64  `json:"price" validate:"omitempty,gte=0"`
	Features    *[]string `json:"features"`
	IsActive    *bool     `json:"is_active"`
}

func CreateService(c *fiber.Ctx) error {
	var input ServiceInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}
	utils.NormalizeDTO(&input)

	active := true
	if input.IsActive != nil {
		active = *input.IsActive
	}

	service := models.Service{
		Name:        input.Name,
		Description: input.Description,
		Category:    input.Category,
		Price:       input.Price,
		Features:    datatypes.NewJSONSlice(input.Features),
		IsActive:    active,
	}

	db := middlewares.RequestDB(c)
	if err := db.Create(&service).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{
			"message": "Could not create service",
			"error":   err.Error(),
		})
	}

	return c.Status(201).JSON(service)
}

// GetServices lists active services for the landing page. Administrators can
// pass ?all=true to include inactive ones.
func GetServices(c *fiber.Ctx) error {
	var services []models.Service

	q := database.DB.Order("created_at")
	if c.Query("all") != "true" {
		q = q.Where("is_active = ?", true)
	}
	if err := q.Find(&services).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{
			"message": "Could not load services",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"services": services,
		"message":  "success",
	})
}

func GetService(c *fiber.Ctx) error {
	var service models.Service
	if err := database.DB.First(&service, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"message": "Service not found"})
	}
	return c.JSON(service)
}

func UpdateService(c *fiber.Ctx) error {
	var input ServiceUpdateInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}
	utils.NormalizePtrDTO(&input)

	db := middlewares.RequestDB(c)

	var service models.Service
	if err := db.First(&service, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"message": "Service not found"})
	}

	updates := utils.UpdatesFromPtrDTO(&input, nil)
	if input.Features != nil {
		updates["features"] = datatypes.NewJSONSlice(*input.Features)
	}
	if len(updates) == 0 {
		return c.JSON(service)
	}
	if err := db.Model(&service).Updates(updates).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{
			"message": "Could not update service",
			"error":   err.Error(),
		})
	}

	return c.JSON(service)
}

func DeleteService(c *fiber.Ctx) error {
	db := middlewares.RequestDB(c)

	var service models.Service
	if err := db.First(&service, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"message": "Service not found"})
	}

	if err := db.Delete(&service).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{
			"message": "Could not delete service",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "success"})
}
