package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SavedInvoice is a persisted invoice: denormalized summary fields for
// list display plus the full document snapshot for later edit/reprint.
// It is immutable once written except through an explicit update.
type SavedInvoice struct {
	Id      string `json:"id" gorm:"primaryKey"`
	OwnerID string `json:"-" gorm:"not null;index"`

	// Denormalized summary, independent of the snapshot.
	Number     string  `json:"number" gorm:"not null"`
	ClientName string  `json:"client" gorm:"not null"`
	Date       string  `json:"date"` // ISO YYYY-MM-DD, as entered
	Amount     float64 `json:"amount" gorm:"type:numeric(12,2)"`
	Currency   string  `json:"currency" gorm:"size:3"`

	// Snapshot is the full InvoiceData captured at save time. It may be
	// null for records written by older clients; such invoices cannot be
	// edited or printed and must be recreated.
	Snapshot datatypes.JSON `json:"snapshot" gorm:"type:jsonb"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (inv *SavedInvoice) BeforeCreate(tx *gorm.DB) (err error) {
	// UUID version 4
	inv.Id = uuid.NewString()
	return
}
