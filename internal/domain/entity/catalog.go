package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MenuItem represents a kitchen menu entry that order and invoice lines may
// reference. Lines snapshot the name and rate at creation time, so editing a
// menu item never rewrites history.
type MenuItem struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name        string          `gorm:"size:255;not null" json:"name"`
	Category    string          `gorm:"size:100;index" json:"category"`
	Rate        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"rate"`
	GSTPercent  decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0" json:"gst_percent"`
	IsAvailable bool            `gorm:"default:true" json:"is_available"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new menu item
func (m *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the MenuItem model
func (MenuItem) TableName() string {
	return "menu_items"
}

// Service represents a resort service (room charge, spa, laundry, ...) that
// resort invoice lines may reference.
type Service struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name       string          `gorm:"size:255;not null" json:"name"`
	Rate       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"rate"`
	GSTPercent decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0" json:"gst_percent"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	DeletedAt  gorm.DeletedAt  `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new service
func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Service model
func (Service) TableName() string {
	return "services"
}
