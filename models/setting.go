package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Setting is one keyed configuration record. The value is stored as JSON but
// every key has a typed shape below; controllers never touch the raw blob.
type Setting struct {
	Id         string         `json:"id" gorm:"primaryKey"`
	SettingKey string         `json:"setting_key" gorm:"unique;not null"`
	Value      datatypes.JSON `json:"setting_value" gorm:"type:jsonb"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

func (setting *Setting) BeforeCreate(tx *gorm.DB) (err error) {
	// UUID version 4
	if setting.Id == "" {
		setting.Id = uuid.NewString()
	}
	return
}

const (
	SettingCompanyInfo   = "company_info"
	SettingInvoiceConfig = "invoice_config"
	SettingEmailConfig   = "email_config"
)

// CompanyInfo is the issuer block printed on invoices.
type CompanyInfo struct {
	Name      string `json:"name"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Website   string `json:"website,omitempty"`
	TaxNumber string `json:"tax_number,omitempty"`
}

// InvoiceConfig carries the effective defaults for new invoices.
// TaxLabel is a display label only; it is never derived from amounts.
// TaxRate is stored for the dashboard settings form but not consumed by
// invoice creation, which takes an explicit tax amount (default 0).
type InvoiceConfig struct {
	TaxRate       float64 `json:"tax_rate"`
	TaxLabel      string  `json:"tax_label,omitempty"`
	PaymentTerms  string  `json:"payment_terms"`
	InvoicePrefix string  `json:"invoice_prefix,omitempty"`
}

// EmailConfig is the outbound mail setup managed from the dashboard.
type EmailConfig struct {
	SMTPHost  string `json:"smtp_host"`
	SMTPPort  int    `json:"smtp_port"`
	SMTPUser  string `json:"smtp_user"`
	SMTPPass  string `json:"smtp_password"`
	FromEmail string `json:"from_email"`
	FromName  string `json:"from_name"`
}

// DefaultInvoiceConfig matches the values the dashboard ships with.
func DefaultInvoiceConfig() InvoiceConfig {
	return InvoiceConfig{
		TaxRate:      0,
		TaxLabel:     "11%",
		PaymentTerms: "30 days",
	}
}

// DefaultCompanyInfo is used until an administrator saves real details.
func DefaultCompanyInfo() CompanyInfo {
	return CompanyInfo{
		Name:      "Digital Service Company",
		Address:   "Jl. Digital No. 123, Jakarta",
		Phone:     "+62 21 1234567",
		Email:     "info@digitalservice.com",
		Website:   "www.digitalservice.com",
		TaxNumber: "12.345.678.9-012.345",
	}
}

// LoadSetting reads the typed value for key into out; missing rows leave out
// unchanged so callers can pre-fill defaults.
func LoadSetting(db *gorm.DB, key string, out any) error {
	var setting Setting
	if err := db.Where("setting_key = ?", key).First(&setting).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil
		}
		return err
	}
	return json.Unmarshal(setting.Value, out)
}

// SaveSetting upserts the typed value for key.
func SaveSetting(db *gorm.DB, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	var setting Setting
	err = db.Where("setting_key = ?", key).First(&setting).Error
	if err == gorm.ErrRecordNotFound {
		setting = Setting{SettingKey: key, Value: raw}
		return db.Create(&setting).Error
	}
	if err != nil {
		return err
	}
	return db.Model(&setting).Update("value", datatypes.JSON(raw)).Error
}
