package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PortfolioItem is a showcased past project on the landing page.
type PortfolioItem struct {
	Id           string                      `json:"id" gorm:"primaryKey"`
	Title        string                      `json:"title" gorm:"not null"`
	Description  string                      `json:"description"`
	Category     string                      `json:"category"`
	ImageURL     string                      `json:"image_url"`
	ProjectURL   string                      `json:"project_url"`
	Technologies datatypes.JSONSlice[string] `json:"technologies"`
	IsFeatured   bool                        `json:"is_featured"`
	CreatedAt    time.Time                   `json:"created_at"`
}

func (item *PortfolioItem) BeforeCreate(tx *gorm.DB) (err error) {
	// UUID version 4
	if item.Id == "" {
		item.Id = uuid.NewString()
	}
	return
}
