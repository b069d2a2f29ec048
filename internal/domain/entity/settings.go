package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Settings holds the resort identity and tax registration details used when
// rendering invoices and reports. The table holds a single row.
type Settings struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	ResortName   string         `gorm:"size:255;not null" json:"resort_name"`
	Address      string         `gorm:"type:text" json:"address"`
	Phone        string         `gorm:"size:50" json:"phone"`
	Email        string         `gorm:"size:255" json:"email"`
	GSTNumber    string         `gorm:"size:50" json:"gst_number"`
	KitchenGSTNo string         `gorm:"size:50" json:"kitchen_gst_number"`
	LogoPath     *string        `gorm:"size:255" json:"logo_path,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating the settings row
func (s *Settings) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Settings model
func (Settings) TableName() string {
	return "settings"
}
