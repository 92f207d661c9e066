package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Business is a reusable sender template. It only prefills invoice
// documents; saved invoices never reference it by foreign key.
type Business struct {
	Id      string `json:"id" gorm:"primaryKey"`
	OwnerID string `json:"-" gorm:"not null;index"`
	Name    string `json:"name" gorm:"not null"`
	TaxID   string `json:"tax_id"`
	Address string `json:"address"`
	Bank    string `json:"bank"`
	Email   string `json:"email"`
	// Logo is an embeddable data-URL image; bounded by the image codec.
	Logo string `json:"logo" gorm:"type:text"`
}

func (business *Business) BeforeCreate(tx *gorm.DB) (err error) {
	// UUID version 4
	business.Id = uuid.NewString()
	return
}
