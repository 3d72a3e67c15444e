package database

import (
	"fmt"

	"digitalservice-backend/models"

	"gorm.io/gorm"
)

// Migrate applies (idempotent) schema migrations:
// - AutoMigrate (tables/columns)
// - Money column types (NUMERIC(12,2))
// - Invoice number sequence
// - Basic CHECK constraints
func Migrate(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		// --- AutoMigrate tables/columns/index tags (non-destructive) ---
		if err := tx.AutoMigrate(
			&models.User{},
			&models.Service{},
			&models.Order{},
			&models.Invoice{},
			&models.PortfolioItem{},
			&models.LandingSection{},
			&models.FooterLink{},
			&models.Testimonial{},
			&models.Setting{},
			&models.ConsentRecord{},
			&models.IdempotencyKey{},
		); err != nil {
			return fmt.Errorf("automigrate failed: %w", err)
		}

		// --- Enforce money columns as NUMERIC(12,2) (idempotent ALTERs) ---
		alters := []string{
			`ALTER TABLE services ALTER COLUMN price              TYPE numeric(12,2)`,
			`ALTER TABLE orders   ALTER COLUMN total_amount       TYPE numeric(12,2)`,
			`ALTER TABLE orders   ALTER COLUMN downpayment_amount TYPE numeric(12,2)`,
			`ALTER TABLE orders   ALTER COLUMN remaining_amount   TYPE numeric(12,2)`,
			`ALTER TABLE invoices ALTER COLUMN subtotal           TYPE numeric(12,2)`,
			`ALTER TABLE invoices ALTER COLUMN tax_amount         TYPE numeric(12,2)`,
			`ALTER TABLE invoices ALTER COLUMN total_amount       TYPE numeric(12,2)`,
		}
		for _, stmt := range alters {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("money type migration failed on: %s - %w", stmt, err)
			}
		}

		// --- Invoice number sequence (spec: generated outside the engine) ---
		if err := tx.Exec(`CREATE SEQUENCE IF NOT EXISTS invoice_number_seq START 1`).Error; err != nil {
			return fmt.Errorf("invoice sequence migration failed: %w", err)
		}

		// --- Basic CHECK constraints (idempotent) ---
		checks := []string{
			// Non-negative service price
			`DO $$
			BEGIN
				IF NOT EXISTS (
					SELECT 1 FROM pg_constraint
					WHERE conrelid = 'services'::regclass
					  AND conname  = 'chk_services_price_nonneg'
				) THEN
					ALTER TABLE services
					ADD CONSTRAINT chk_services_price_nonneg
					CHECK (price >= 0);
				END IF;
			END $$;`,
			// Order money fields >= 0
			`DO $$
			BEGIN
				IF NOT EXISTS (
					SELECT 1 FROM pg_constraint
					WHERE conrelid = 'orders'::regclass
					  AND conname  = 'chk_orders_amounts_nonneg'
				) THEN
					ALTER TABLE orders
					ADD CONSTRAINT chk_orders_amounts_nonneg
					CHECK (total_amount >= 0 AND downpayment_amount >= 0 AND remaining_amount >= 0);
				END IF;
			END $$;`,
			// Invoice totals consistent and non-negative
			`DO $$
			BEGIN
				IF NOT EXISTS (
					SELECT 1 FROM pg_constraint
					WHERE conrelid = 'invoices'::regclass
					  AND conname  = 'chk_invoices_amounts_nonneg'
				) THEN
					ALTER TABLE invoices
					ADD CONSTRAINT chk_invoices_amounts_nonneg
					CHECK (subtotal >= 0 AND tax_amount >= 0 AND total_amount >= 0);
				END IF;
			END $$;`,
		}
		for _, stmt := range checks {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("check constraint migration failed: %w", err)
			}
		}

		return nil
	})
}
