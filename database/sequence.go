package database

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// NextInvoiceNumber draws the next globally unique invoice number from the
// database sequence. Uniqueness lives here, not in the billing engine.
// Format: {prefix}-{YYYYMM}-{counter}, e.g. INV-202608-0042.
func NextInvoiceNumber(tx *gorm.DB, prefix string) (string, error) {
	if prefix == "" {
		prefix = "INV"
	}
	var n int64
	if err := tx.Raw(`SELECT nextval('invoice_number_seq')`).Scan(&n).Error; err != nil {
		return "", fmt.Errorf("invoice number sequence failed: %w", err)
	}
	return fmt.Sprintf("%s-%s-%04d", prefix, time.Now().Format("200601"), n), nil
}
