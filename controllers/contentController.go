package controllers

import (
	"digitalservice-backend/database"
	"digitalservice-backend/middlewares"
	"digitalservice-backend/models"
	"digitalservice-backend/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type LandingSectionInput struct {
	SectionName  string `json:"section_name" validate:"required"`
	Title        string `json:"title"`
	Subtitle     string `json:"subtitle"`
	Content      string `json:"content"`
	SectionOrder int    `json:"section_order"`
	IsEnabled    *bool  `json:"is_enabled"`
}

// GetLandingContent returns the enabled landing sections in display order.
func GetLandingContent(c *fiber.Ctx) error {
	var sections []models.LandingSection
	err := database.DB.Where("is_enabled = ?", true).
		Order("section_order").Find(&sections).Error
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"message": "Could not load landing content",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"sections": sections,
		"message":  "success",
	})
}

// UpsertLandingSection creates or replaces the section with the given name.
func UpsertLandingSection(c *fiber.Ctx) error {
	var input LandingSectionInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}
	utils.NormalizeDTO(&input)

	enabled := true
	if input.IsEnabled != nil {
		enabled = *input.IsEnabled
	}

	db := middlewares.RequestDB(c)

	var section models.LandingSection
	err := db.Where("section_name = ?", input.SectionName).First(&section).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		return c.Status(500).JSON(fiber.Map{
			"message": "Could not load landing section",
			"error":   err.Error(),
		})
	}

	section.SectionName = input.SectionName
	section.Title = input.Title
	section.Subtitle = input.Subtitle
	section.Content = input.Content
	section.SectionOrder = input.SectionOrder
	section.IsEnabled = enabled

	if err := db.Save(&section).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{
			"message": "Could not save landing section",
			"error":   err.Error(),
		})
	}
	return c.JSON(section)
}

type FooterLinkInput struct {
	ParentColumn string `json:"parent_column" validate:"required"`
	ColumnTitle  string `json:"column_title"`
	LinkText     string `json:"link_text" validate:"required"`
	LinkURL      string `json:"link_url" validate:"required"`
	ColumnOrder  int    `json:"column_order" validate:"gte=0"`
	IsEnabled    *bool  `json:"is_enabled"`
}

type FooterLinkUpdateInput struct {
	ParentColumn *string `json:"parent_column"`
	ColumnTitle  *string `json:"column_title"`
	LinkText     *string `json:"link_text"`
	LinkURL      *string `json:"link_url"`
	ColumnOrder  *int    `json:"column_order"`
	IsEnabled    *bool   `json:"is_enabled"`
}

// FooterColumn is one rendered footer column with its links in order.
type FooterColumn struct {
	ParentColumn string              `json:"parent_column"`
	Title        string              `json:"title"`
	Links        []models.FooterLink `json:"links"`
}

// buildFooterColumns groups an already-sorted flat link list into columns.
// Column order follows first appearance; the column title comes from the
// first link that carries one.
func buildFooterColumns(links []models.FooterLink) []FooterColumn {
	columns := []FooterColumn{}
	index := map[string]int{}
	for _, link := range links {
		i, ok := index[link.ParentColumn]
		if !ok {
			i = len(columns)
			index[link.ParentColumn] = i
			columns = append(columns, FooterColumn{
				ParentColumn: link.ParentColumn,
				Title:        link.ColumnTitle,
			})
		}
		if columns[i].Title == "" && link.ColumnTitle != "" {
			columns[i].Title = link.ColumnTitle
		}
		columns[i].Links = append(columns[i].Links, link)
	}
	return columns
}

// GetFooterContent returns the enabled footer links grouped into columns
// for the public site.
func GetFooterContent(c *fiber.Ctx) error {
	var links []models.FooterLink
	err := database.DB.Where("is_enabled = ?", true).
		Order("parent_column").Order("column_order").Find(&links).Error
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"message": "Could not load footer content",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"columns": buildFooterColumns(links),
		"message": "success",
	})
}

// GetFooterLinks lists every footer link (including disabled) for the
// dashboard manager.
func GetFooterLinks(c *fiber.Ctx) error {
	var links []models.FooterLink
	err := database.DB.Order("parent_column").Order("column_order").
		Find(&links).Error
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"message": "Could not load footer links",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"links":   links,
		"message": "success",
	})
}

func CreateFooterLink(c *fiber.Ctx) error {
	var input FooterLinkInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}
	utils.NormalizeDTO(&input)

	enabled := true
	if input.IsEnabled != nil {
		enabled = *input.IsEnabled
	}

	link := models.FooterLink{
		ParentColumn: input.ParentColumn,
		ColumnTitle:  input.ColumnTitle,
		LinkText:     input.LinkText,
		LinkURL:      input.LinkURL,
		ColumnOrder:  input.ColumnOrder,
		IsEnabled:    enabled,
	}

	db := middlewares.RequestDB(c)
	if err := db.Create(&link).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{
			"message": "Could not create footer link",
			"error":   err.Error(),
		})
	}
	return c.Status(201).JSON(link)
}

func UpdateFooterLink(c *fiber.Ctx) error {
	var input FooterLinkUpdateInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}
	utils.NormalizePtrDTO(&input)

	db := middlewares.RequestDB(c)

	var link models.FooterLink
	if err := db.First(&link, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"message": "Footer link not found"})
	}

	updates := utils.UpdatesFromPtrDTO(&input, nil)
	if len(updates) == 0 {
		return c.JSON(link)
	}
	if err := db.Model(&link).Updates(updates).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{
			"message": "Could not update footer link",
			"error":   err.Error(),
		})
	}
	return c.JSON(link)
}

func DeleteFooterLink(c *fiber.Ctx) error {
	db := middlewares.RequestDB(c)

	var link models.FooterLink
	if err := db.First(&link, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"message": "Footer link not found"})
	}
	if err := db.Delete(&link).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{
			"message": "Could not delete footer link",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "success"})
}

type TestimonialInput struct {
	CustomerName     string `json:"customer_name" validate:"required"`
	CustomerPosition string `json:"customer_position"`
	Company          string `json:"company"`
	Testimonial      string `json:"testimonial" validate:"required"`
	Rating           int    `json:"rating" validate:"gte=0,lte=5"`
	IsFeatured       bool   `json:"is_featured"`
}

func GetTestimonials(c *fiber.Ctx) error {
	var testimonials []models.Testimonial

	q := database.DB.Order("created_at DESC")
	if c.Query("featured") == "true" {
		q = q.Where("is_featured = ?", true)
	}
	if err := q.Find(&testimonials).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{
			"message": "Could not load testimonials",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"testimonials": testimonials,
		"message":      "success",
	})
}

func CreateTestimonial(c *fiber.Ctx) error {
	var input TestimonialInput
	if err := middlewares.BindAndValidate(c, &input); err != nil {
		return err
	}
	utils.NormalizeDTO(&input)

	testimonial := models.Testimonial{
		CustomerName:     input.CustomerName,
		CustomerPosition: input.CustomerPosition,
		Company:          input.Company,
		Testimonial:      input.Testimonial,
		Rating:           input.Rating,
		IsFeatured:       input.IsFeatured,
	}

	db := middlewares.RequestDB(c)
	if err := db.Create(&testimonial).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{
			"message": "Could not create testimonial",
			"error":   err.Error(),
		})
	}
	return c.Status(201).JSON(testimonial)
}

func DeleteTestimonial(c *fiber.Ctx) error {
	db := middlewares.RequestDB(c)

	var testimonial models.Testimonial
	if err := db.First(&testimonial, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"message": "Testimonial not found"})
	}
	if err := db.Delete(&testimonial).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{
			"message": "Could not delete testimonial",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"message": "success"})
}
