package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stayops/resortbill-api/internal/domain/enum"
	"gorm.io/gorm"
)

// KitchenOrder is the header row of a kitchen order. InvoiceID is null until
// the order is converted; the unique index on it guarantees an invoice can be
// the target of at most one order even under concurrent conversions.
type KitchenOrder struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	OrderNumber string           `gorm:"size:50;uniqueIndex;not null" json:"order_number"`
	GuestID     *uuid.UUID       `gorm:"type:uuid;index" json:"guest_id,omitempty"`
	GuestName   string           `gorm:"size:255;not null" json:"guest_name"`
	RoomNumber  string           `gorm:"size:20" json:"room_number"`
	OrderType   enum.OrderType   `gorm:"size:20;not null;default:'walk_in'" json:"order_type"`
	Status      enum.OrderStatus `gorm:"size:20;not null;default:'pending';index" json:"status"`
	Subtotal    decimal.Decimal  `gorm:"type:decimal(12,2);not null" json:"subtotal"`
	TaxAmount   decimal.Decimal  `gorm:"type:decimal(12,2);not null" json:"tax_amount"`
	TotalAmount decimal.Decimal  `gorm:"type:decimal(12,2);not null" json:"total_amount"`
	InvoiceID   *uuid.UUID       `gorm:"type:uuid;uniqueIndex" json:"invoice_id,omitempty"`
	CreatedByID *uuid.UUID       `gorm:"type:uuid" json:"created_by_id,omitempty"`
	CreatedAt   time.Time        `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	DeletedAt   gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	Guest     *Guest             `gorm:"foreignKey:GuestID;constraint:OnDelete:SET NULL" json:"guest,omitempty"`
	Invoice   *Invoice           `gorm:"foreignKey:InvoiceID;constraint:OnDelete:SET NULL" json:"-"`
	CreatedBy *User              `gorm:"foreignKey:CreatedByID;constraint:OnDelete:SET NULL" json:"-"`
	Items     []KitchenOrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new kitchen order
func (o *KitchenOrder) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the KitchenOrder model
func (KitchenOrder) TableName() string {
	return "kitchen_orders"
}

// KitchenOrderItem is one priced line of a kitchen order. Unlike invoice
// items, deleting the referenced menu item cascades to these rows.
type KitchenOrderItem struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OrderID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_id"`
	MenuItemID    *uuid.UUID      `gorm:"type:uuid;index" json:"menu_item_id,omitempty"`
	ItemName      string          `gorm:"size:255;not null" json:"item_name"`
	Quantity      int             `gorm:"not null" json:"quantity"`
	Rate          decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"rate"`
	TaxPercentage decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0" json:"tax_percentage"`
	TaxAmount     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"tax_amount"`
	LineTotal     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"line_total"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	// Relationships
	MenuItem *MenuItem `gorm:"foreignKey:MenuItemID;constraint:OnDelete:CASCADE" json:"-"`
}

// BeforeCreate generates a UUID before creating a new kitchen order item
func (it *KitchenOrderItem) BeforeCreate(tx *gorm.DB) error {
	if it.ID == uuid.Nil {
		it.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the KitchenOrderItem model
func (KitchenOrderItem) TableName() string {
	return "kitchen_order_items"
}
