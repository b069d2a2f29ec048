package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stayops/resortbill-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Invoice is the header row of a resort or kitchen invoice. Totals are
// computed once at creation (or copied verbatim from a kitchen order) and
// must always equal the aggregate over the invoice's own line rows.
type Invoice struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceNumber string             `gorm:"size:50;uniqueIndex;not null" json:"invoice_number"`
	InvoiceDate   time.Time          `gorm:"not null;index" json:"invoice_date"`
	Type          enum.InvoiceType   `gorm:"size:20;not null;index" json:"type"`
	GuestID       *uuid.UUID         `gorm:"type:uuid;index" json:"guest_id,omitempty"`
	GuestName     string             `gorm:"size:255;not null" json:"guest_name"`
	Mobile        string             `gorm:"size:20" json:"mobile"`
	RoomNumber    string             `gorm:"size:20" json:"room_number"`
	Subtotal      decimal.Decimal    `gorm:"type:decimal(12,2);not null" json:"subtotal"`
	TaxAmount     decimal.Decimal    `gorm:"type:decimal(12,2);not null" json:"tax_amount"`
	TotalAmount   decimal.Decimal    `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	PaymentStatus enum.PaymentStatus `gorm:"size:20;not null;default:'pending';index" json:"payment_status"`
	PaymentMethod enum.PaymentMethod `gorm:"size:20;not null;default:'cash'" json:"payment_method"`
	Notes         *string            `gorm:"type:text" json:"notes,omitempty"`
	BookingDate   *time.Time         `json:"booking_date,omitempty"`
	CreatedByID   *uuid.UUID         `gorm:"type:uuid" json:"created_by_id,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	DeletedAt     gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	Guest     *Guest        `gorm:"foreignKey:GuestID;constraint:OnDelete:SET NULL" json:"guest,omitempty"`
	CreatedBy *User         `gorm:"foreignKey:CreatedByID;constraint:OnDelete:SET NULL" json:"-"`
	Items     []InvoiceItem `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new invoice
func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// InvoiceItem is one priced line of an invoice. ItemName and Rate are
// denormalized snapshots: they survive catalog edits and catalog deletion
// (the catalog references go null, the line stays intact).
type InvoiceItem struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID     uuid.UUID       `gorm:"type:uuid;not null;index" json:"invoice_id"`
	MenuItemID    *uuid.UUID      `gorm:"type:uuid;index" json:"menu_item_id,omitempty"`
	ServiceID     *uuid.UUID      `gorm:"type:uuid;index" json:"service_id,omitempty"`
	ItemName      string          `gorm:"size:255;not null" json:"item_name"`
	Quantity      int             `gorm:"not null" json:"quantity"`
	Rate          decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"rate"`
	TaxPercentage decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0" json:"tax_percentage"`
	TaxAmount     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"tax_amount"`
	LineTotal     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"line_total"`
	BookingDate   *time.Time      `json:"booking_date,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	// Relationships
	MenuItem   *MenuItem `gorm:"foreignKey:MenuItemID;constraint:OnDelete:SET NULL" json:"-"`
	ServiceRef *Service  `gorm:"foreignKey:ServiceID;constraint:OnDelete:SET NULL" json:"-"`
}

// BeforeCreate generates a UUID before creating a new invoice item
func (it *InvoiceItem) BeforeCreate(tx *gorm.DB) error {
	if it.ID == uuid.Nil {
		it.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InvoiceItem model
func (InvoiceItem) TableName() string {
	return "invoice_items"
}
