package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConsentRecord is a write-once compliance log entry per visitor session.
// Nothing else in the system reads it.
type ConsentRecord struct {
	Id           string    `json:"id" gorm:"primaryKey"`
	UserSession  string    `json:"user_session" gorm:"index;not null"`
	ConsentGiven bool      `json:"consent_given"`
	UserAgent    string    `json:"user_agent"`
	ConsentDate  time.Time `json:"consent_date" gorm:"autoCreateTime"`
}

func (record *ConsentRecord) BeforeCreate(tx *gorm.DB) (err error) {
	// UUID version 4
	if record.Id == "" {
		record.Id = uuid.NewString()
	}
	return
}
