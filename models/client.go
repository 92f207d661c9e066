package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client is a reusable receiver template, mirroring Business without the
// bank and logo fields.
type Client struct {
	Id      string `json:"id" gorm:"primaryKey"`
	OwnerID string `json:"-" gorm:"not null;index"`
	Name    string `json:"name" gorm:"not null"`
	TaxID   string `json:"tax_id"`
	Address string `json:"address"`
	Email   string `json:"email"`
}

func (client *Client) BeforeCreate(tx *gorm.DB) (err error) {
	// UUID version 4
	client.Id = uuid.NewString()
	return
}
