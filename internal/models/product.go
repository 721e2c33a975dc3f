package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentMethods is stored as a JSON array column.
type PaymentMethods []string

func (p PaymentMethods) Value() (driver.Value, error) {
	return json.Marshal(p)
}

func (p *PaymentMethods) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return fmt.Errorf("unsupported payment_methods column type %T", src)
	}
}

type Product struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Price       float64 `gorm:"not null" json:"price"`
	Category    string  `gorm:"size:50;not null" json:"category"`
	Description string  `gorm:"size:1000" json:"description"`
	ImageURL    string  `gorm:"size:500" json:"image_url"`
	Contact     string  `gorm:"size:100" json:"contact"`

	PaymentMethods PaymentMethods `gorm:"type:text;not null" json:"payment_methods"`

	// Weak reference: deleting a user does not cascade to their listings.
	OwnerID string `gorm:"type:uuid;index;not null" json:"owner_id"`
	Owner   User   `gorm:"foreignKey:OwnerID;constraint:OnDelete:NO ACTION" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

func (p *Product) BeforeCreate(_ *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
