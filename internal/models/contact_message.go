package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContactMessage struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Email   string `gorm:"size:100;not null" json:"email"`
	Subject string `gorm:"size:200;default:'General Inquiry'" json:"subject"`
	Message string `gorm:"type:text;not null" json:"message"`

	ReceivedAt time.Time `gorm:"autoCreateTime" json:"received_at"`

	// Reserved for a moderation flow that does not exist yet; nothing reads it.
	IsArchived bool `gorm:"default:false" json:"is_archived"`
}

func (m *ContactMessage) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.Subject == "" {
		m.Subject = "General Inquiry"
	}
	return nil
}
