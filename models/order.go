package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order is a customer-facing service request. Status is mutated only by
// administrators; the downpayment fields always satisfy
// downpayment_amount + remaining_amount == total_amount when a downpayment
// is in effect, and are both zero otherwise.
type Order struct {
	Id                 string     `json:"id" gorm:"primaryKey"`
	CustomerName       string     `json:"customer_name" gorm:"not null"`
	CustomerEmail      string     `json:"customer_email" gorm:"not null"`
	CustomerPhone      string     `json:"customer_phone"`
	ServiceId          *string    `json:"service_id" gorm:"index"`
	Service            *Service   `json:"service,omitempty" gorm:"foreignKey:ServiceId;references:Id"`
	CustomRequirements string     `json:"custom_requirements"`
	BudgetRange        string     `json:"budget_range"`
	DeadlineDate       *time.Time `json:"deadline_date"`
	Status             string     `json:"status" gorm:"default:pending;index"`

	TotalAmount           float64 `json:"total_amount" gorm:"type:numeric(12,2)"`
	DownpaymentPercentage float64 `json:"downpayment_percentage"`
	DownpaymentAmount     float64 `json:"downpayment_amount" gorm:"type:numeric(12,2)"`
	RemainingAmount       float64 `json:"remaining_amount" gorm:"type:numeric(12,2)"`

	Notes     string    `json:"notes"`
	OrderDate time.Time `json:"order_date" gorm:"autoCreateTime"`
}

func (order *Order) BeforeCreate(tx *gorm.DB) (err error) {
	// UUID version 4
	if order.Id == "" {
		order.Id = uuid.NewString()
	}
	return
}
