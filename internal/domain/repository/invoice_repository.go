package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stayops/resortbill-api/internal/domain/entity"
	"github.com/stayops/resortbill-api/internal/domain/enum"
	"github.com/stayops/resortbill-api/pkg/pagination"
)

// BuildInvoiceFromOrder constructs the invoice (header plus items) for a
// locked kitchen order during conversion. It runs inside the conversion
// transaction and must not perform I/O of its own.
type BuildInvoiceFromOrder func(order *entity.KitchenOrder, items []entity.KitchenOrderItem) *entity.Invoice

// InvoiceRepository defines the interface for invoice data operations.
//
// CreateWithItems and DeleteWithItems wrap all row writes in one
// transaction. ConvertFromOrder additionally locks the order row, verifies
// the order is not yet linked to an invoice, inserts the built invoice and
// sets the order's invoice reference, all atomically.
type InvoiceRepository interface {
	CreateWithItems(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	List(ctx context.Context, params *InvoiceFilterParams) ([]entity.Invoice, int64, error)
	ListByRange(ctx context.Context, start, end time.Time, invoiceType *enum.InvoiceType, guestName string) ([]entity.Invoice, error)
	ItemsByInvoiceIDs(ctx context.Context, invoiceIDs []uuid.UUID) ([]entity.InvoiceItem, error)
	UpdatePayment(ctx context.Context, id uuid.UUID, status enum.PaymentStatus, method enum.PaymentMethod) error
	DeleteWithItems(ctx context.Context, id uuid.UUID) error
	ConvertFromOrder(ctx context.Context, orderID uuid.UUID, build BuildInvoiceFromOrder) (*entity.Invoice, error)
	RecentInvoices(ctx context.Context, limit int) ([]entity.Invoice, error)
}

// InvoiceFilterParams contains filtering parameters for invoice listings
type InvoiceFilterParams struct {
	Pagination    *pagination.PaginationParams
	Type          *enum.InvoiceType
	PaymentStatus *enum.PaymentStatus
	GuestName     string
	StartDate     *time.Time
	EndDate       *time.Time
}
