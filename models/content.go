package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LandingSection is an editable block of the marketing page (hero, about...).
type LandingSection struct {
	Id           string    `json:"id" gorm:"primaryKey"`
	SectionName  string    `json:"section_name" gorm:"unique;not null"`
	Title        string    `json:"title"`
	Subtitle     string    `json:"subtitle"`
	Content      string    `json:"content"`
	SectionOrder int       `json:"section_order"`
	IsEnabled    bool      `json:"is_enabled" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (section *LandingSection) BeforeCreate(tx *gorm.DB) (err error) {
	// UUID version 4
	if section.Id == "" {
		section.Id = uuid.NewString()
	}
	return
}

// FooterLink is one managed link in the site footer, grouped into columns
// by ParentColumn and ordered within its column by ColumnOrder.
type FooterLink struct {
	Id           string    `json:"id" gorm:"primaryKey"`
	ParentColumn string    `json:"parent_column" gorm:"not null"`
	ColumnTitle  string    `json:"column_title"`
	LinkText     string    `json:"link_text" gorm:"not null"`
	LinkURL      string    `json:"link_url" gorm:"not null"`
	ColumnOrder  int       `json:"column_order"`
	IsEnabled    bool      `json:"is_enabled" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (link *FooterLink) BeforeCreate(tx *gorm.DB) (err error) {
	// UUID version 4
	if link.Id == "" {
		link.Id = uuid.NewString()
	}
	return
}

// Testimonial is a featured customer quote.
type Testimonial struct {
	Id               string    `json:"id" gorm:"primaryKey"`
	CustomerName     string    `json:"customer_name" gorm:"not null"`
	CustomerPosition string    `json:"customer_position"`
	Company          string    `json:"company"`
	Testimonial      string    `json:"testimonial" gorm:"not null"`
	Rating           int       `json:"rating"`
	IsFeatured       bool      `json:"is_featured"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (testimonial *Testimonial) BeforeCreate(tx *gorm.DB) (err error) {
	// UUID version 4
	if testimonial.Id == "" {
		testimonial.Id = uuid.NewString()
	}
	return
}
