package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/stayops/resortbill-api/internal/domain/entity"
	"github.com/stayops/resortbill-api/internal/domain/enum"
	domainRepo "github.com/stayops/resortbill-api/internal/domain/repository"
	"github.com/stayops/resortbill-api/pkg/apperror"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *gorm.DB) domainRepo.InvoiceRepository {
	return &invoiceRepository{db: db}
}

// CreateWithItems inserts the invoice header and all of its line rows inside
// one transaction.
func (r *invoiceRepository) CreateWithItems(ctx context.Context, invoice *entity.Invoice) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(invoice).Error
	})
}

func (r *invoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := r.db.WithContext(ctx).First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *invoiceRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Guest").
		First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *invoiceRepository) List(ctx context.Context, params *domainRepo.InvoiceFilterParams) ([]entity.Invoice, int64, error) {
	var invoices []entity.Invoice
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Invoice{})

	if params.Type != nil {
		query = query.Where("type = ?", *params.Type)
	}
	if params.PaymentStatus != nil {
		query = query.Where("payment_status = ?", *params.PaymentStatus)
	}
	if params.GuestName != "" {
		query = query.Where("guest_name ILIKE ?", "%"+params.GuestName+"%")
	}
	if params.StartDate != nil {
		query = query.Where("invoice_date >= ?", *params.StartDate)
	}
	if params.EndDate != nil {
		query = query.Where("invoice_date <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("invoice_date DESC, created_at DESC").
		Find(&invoices).Error

	return invoices, total, err
}

// ListByRange returns headers only; callers batch-fetch lines via
// ItemsByInvoiceIDs and reattach them in memory.
func (r *invoiceRepository) ListByRange(ctx context.Context, start, end time.Time, invoiceType *enum.InvoiceType, guestName string) ([]entity.Invoice, error) {
	var invoices []entity.Invoice
	query := r.db.WithContext(ctx).
		Where("invoice_date BETWEEN ? AND ?", start, end)
	if invoiceType != nil {
		query = query.Where("type = ?", *invoiceType)
	}
	if guestName != "" {
		query = query.Where("guest_name ILIKE ?", "%"+guestName+"%")
	}
	err := query.Order("invoice_date ASC, created_at ASC").Find(&invoices).Error
	return invoices, err
}

func (r *invoiceRepository) ItemsByInvoiceIDs(ctx context.Context, invoiceIDs []uuid.UUID) ([]entity.InvoiceItem, error) {
	if len(invoiceIDs) == 0 {
		return nil, nil
	}
	var items []entity.InvoiceItem
	err := r.db.WithContext(ctx).
		Where("invoice_id IN ?", invoiceIDs).
		Find(&items).Error
	return items, err
}

func (r *invoiceRepository) UpdatePayment(ctx context.Context, id uuid.UUID, status enum.PaymentStatus, method enum.PaymentMethod) error {
	res := r.db.WithContext(ctx).Model(&entity.Invoice{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"payment_status": status,
			"payment_method": method,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteWithItems removes the invoice's line rows and header inside one
// transaction. Not-found is reported before any delete runs.
func (r *invoiceRepository) DeleteWithItems(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var invoice entity.Invoice
		if err := tx.First(&invoice, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Where("invoice_id = ?", id).Delete(&entity.InvoiceItem{}).Error; err != nil {
			return err
		}
		// Clear a converted order's back-reference so the order survives
		// invoice deletion, per the set-null contract.
		if err := tx.Model(&entity.KitchenOrder{}).
			Where("invoice_id = ?", id).
			Update("invoice_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&invoice).Error
	})
}

// ConvertFromOrder atomically turns a kitchen order into an invoice: it
// locks the order row, rejects orders that already carry an invoice
// reference, inserts the built invoice with its lines, and sets the order's
// reference. The unique index on kitchen_orders.invoice_id backs the check
// against races the lock cannot see.
func (r *invoiceRepository) ConvertFromOrder(ctx context.Context, orderID uuid.UUID, build domainRepo.BuildInvoiceFromOrder) (*entity.Invoice, error) {
	var invoice *entity.Invoice

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order entity.KitchenOrder
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&order, "id = ?", orderID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.NewNotFoundError("Kitchen order")
		}
		if err != nil {
			return err
		}

		if order.InvoiceID != nil {
			return apperror.NewConflictError("Order has already been converted to an invoice")
		}

		var items []entity.KitchenOrderItem
		if err := tx.Where("order_id = ?", order.ID).Find(&items).Error; err != nil {
			return err
		}

		invoice = build(&order, items)
		if err := tx.Create(invoice).Error; err != nil {
			return err
		}

		return tx.Model(&order).Update("invoice_id", invoice.ID).Error
	})
	if err != nil {
		return nil, err
	}
	return invoice, nil
}

func (r *invoiceRepository) RecentInvoices(ctx context.Context, limit int) ([]entity.Invoice, error) {
	var invoices []entity.Invoice
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&invoices).Error
	return invoices, err
}
