package database

import (
	"fmt"

	"gorm.io/gorm"

	"fatura-backend/models"
)

// Migrate applies (idempotent) schema migrations:
// - AutoMigrate (tables/columns/index tags)
// - Money column type (NUMERIC(12,2))
// - Helpful indexes
// - Basic CHECK constraints
func Migrate() error {
	return DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.AutoMigrate(
			&models.User{},
			&models.Business{},
			&models.Client{},
			&models.SavedInvoice{},
			&models.IdempotencyKey{},
		); err != nil {
			return fmt.Errorf("automigrate failed: %w", err)
		}

		// --- Enforce the denormalized amount as NUMERIC(12,2) ---
		if err := tx.Exec(`ALTER TABLE saved_invoices ALTER COLUMN amount TYPE numeric(12,2)`).Error; err != nil {
			return fmt.Errorf("money type migration failed: %w", err)
		}

		// --- Composite / helpful indexes (idempotent) ---
		indexes := []string{
			`CREATE INDEX IF NOT EXISTS idx_saved_invoices_owner_created ON saved_invoices (owner_id, created_at)`,
			`CREATE INDEX IF NOT EXISTS idx_businesses_owner ON businesses (owner_id)`,
			`CREATE INDEX IF NOT EXISTS idx_clients_owner ON clients (owner_id)`,
			`CREATE UNIQUE INDEX IF NOT EXISTS idx_idempotency_keys_key ON idempotency_keys (key)`,
		}
		for _, stmt := range indexes {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("index migration failed on: %s - %w", stmt, err)
			}
		}

		// --- Basic CHECK constraints (idempotent) ---
		// Amount is total-after-discount and may legitimately be negative,
		// so only the currency gets a constraint.
		check := `
DO $$
BEGIN
	IF NOT EXISTS (
		SELECT 1 FROM pg_constraint
		WHERE conrelid = 'saved_invoices'::regclass
		  AND conname  = 'chk_saved_invoices_currency'
	) THEN
		ALTER TABLE saved_invoices
		ADD CONSTRAINT chk_saved_invoices_currency
		CHECK (currency IN ('EUR', 'ALL', 'USD'));
	END IF;
END $$;`
		if err := tx.Exec(check).Error; err != nil {
			return fmt.Errorf("check constraint migration failed: %w", err)
		}

		return nil
	})
}
