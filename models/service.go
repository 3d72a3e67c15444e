package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Service is an offering on the landing page, referenced by orders.
type Service struct {
	Id          string                      `json:"id" gorm:"primaryKey"`
	Name        string                      `json:"name" gorm:"not null"`
	Description string                      `json:"description"`
	Category    string                      `json:"category"`
	Price       float64                     `json:"price" gorm:"type:numeric(12,2)"`
	Features    datatypes.JSONSlice[string] `json:"features"`
	IsActive    bool                        `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time                   `json:"created_at"`
	UpdatedAt   time.Time                   `json:"updated_at"`
}

func (service *Service) BeforeCreate(tx *gorm.DB) (err error) {
	// UUID version 4
	if service.Id == "" {
		service.Id = uuid.NewString()
	}
	return
}
