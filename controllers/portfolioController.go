package controllers

import (
	"digitalservice-backend/database"
	"digitalservice-backend/middlewares"
	"digitalservice-backend/models"
	"digitalservice-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

type PortfolioInput struct {
	Title        string   `json:"title" validate:"required"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	ImageURL     string   `json:"image_url"`
	ProjectURL   string   `json:"project_url"`
	Technologies []string `json:"technologies"`
	IsFeatured   bool     `json:"is_featured"`
}

type PortfolioUpdateInput struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Category     *string   `json:"category"`
	ImageURL     *string   `json:"image_url"`
	ProjectURL   *string   `json:"project_url"`
	Technologies *[]string `json:"technologies"`
	IsFeatured   *bool     `json:"is_featured"`
}

func CreatePortfolioItem(c *fiber.Ctx) error {
	var input PortfolioInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}
	utils.NormalizeDTO(&input)

	item := models.PortfolioItem{
		Title:        input.Title,
		Description:  input.Description,
		Category:     input.Category,
		ImageURL:     input.ImageURL,
		ProjectURL:   input.ProjectURL,
		Technologies: datatypes.NewJSONSlice(input.Technologies),
		IsFeatured:   input.IsFeatured,
	}

	db := middlewares.RequestDB(c)
	if err := db.Create(&item).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{
			"message": "Could not create portfolio item",
			"error":   err.Error(),
		})
	}
	return c.Status(201).JSON(item)
}

func GetPortfolio(c *fiber.Ctx) error {
	var items []models.PortfolioItem

	q := database.DB.Order("created_at DESC")
	if c.Query("featured") == "true" {
		q = q.Where("is_featured = ?", true)
	}
	if err := q.Find(&items).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{
			"message": "Could not load portfolio",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"portfolio": items,
		"message":   "success",
	})
}

func UpdatePortfolioItem(c *fiber.Ctx) error {
	var input PortfolioUpdateInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}
	utils.NormalizePtrDTO(&input)

	db := middlewares.RequestDB(c)

	var item models.PortfolioItem
	if err := db.First(&item, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"message": "Portfolio item not found"})
	}

	updates := utils.UpdatesFromPtrDTO(&input, nil)
	if input.Technologies != nil {
		updates["technologies"] = datatypes.NewJSONSlice(*input.Technologies)
	}
	if len(updates) == 0 {
		return c.JSON(item)
	}
	if err := db.Model(&item).Updates(updates).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{
			"message": "Could not update portfolio item",
			"error":   err.Error(),
		})
	}
	return c.JSON(item)
}

func DeletePortfolioItem(c *fiber.Ctx) error {
	db := middlewares.RequestDB(c)

	var item models.PortfolioItem
	if err := db.First(&item, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"message": "Portfolio item not found"})
	}
	if err := db.Delete(&item).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{
			"message": "Could not delete portfolio item",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "success"})
}
