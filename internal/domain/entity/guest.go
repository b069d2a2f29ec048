package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Guest represents a resort guest record
type Guest struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name       string         `gorm:"size:255;not null" json:"name"`
	Mobile     string         `gorm:"size:20;index" json:"mobile"`
	RoomNumber string         `gorm:"size:20" json:"room_number"`
	IDProof    *string        `gorm:"size:255" json:"id_proof,omitempty"`
	Notes      *string        `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new guest
func (g *Guest) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Guest model
func (Guest) TableName() string {
	return "guests"
}
