package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stayops/resortbill-api/internal/domain/entity"
	"github.com/stayops/resortbill-api/internal/domain/enum"
	"github.com/stayops/resortbill-api/internal/domain/repository"
	"github.com/stayops/resortbill-api/pkg/apperror"
	"github.com/stayops/resortbill-api/pkg/pagination"
	"github.com/stayops/resortbill-api/pkg/pricing"
	"github.com/stayops/resortbill-api/pkg/utils"
	"gorm.io/gorm"
)

// InvoiceService handles invoice operations, including conversion of kitchen
// orders into kitchen invoices.
type InvoiceService struct {
	invoiceRepo  repository.InvoiceRepository
	orderRepo    repository.KitchenOrderRepository
	menuItemRepo repository.MenuItemRepository
	serviceRepo  repository.ServiceRepository
	guestRepo    repository.GuestRepository
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	orderRepo repository.KitchenOrderRepository,
	menuItemRepo repository.MenuItemRepository,
	serviceRepo repository.ServiceRepository,
	guestRepo repository.GuestRepository,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:  invoiceRepo,
		orderRepo:    orderRepo,
		menuItemRepo: menuItemRepo,
		serviceRepo:  serviceRepo,
		guestRepo:    guestRepo,
	}
}

// InvoiceLineInput represents one requested invoice line. A line may
// reference a menu item or a service, never both; free-form lines carry an
// explicit name and rate.
type InvoiceLineInput struct {
	MenuItemID    *uuid.UUID
	ServiceID     *uuid.UUID
	ItemName      string
	Quantity      int
	Rate          *decimal.Decimal
	TaxPercentage *decimal.Decimal
	BookingDate   *time.Time
}

// CreateInvoiceInput represents the create invoice input
type CreateInvoiceInput struct {
	Type          enum.InvoiceType
	InvoiceDate   time.Time
	GuestID       *uuid.UUID
	GuestName     string
	Mobile        string
	RoomNumber    string
	PaymentStatus enum.PaymentStatus
	PaymentMethod enum.PaymentMethod
	Notes         *string
	BookingDate   *time.Time
	CreatedByID   *uuid.UUID
	Items         []InvoiceLineInput
}

// CreateInvoice validates the request, prices the lines, and persists the
// invoice header and lines in one transaction. A duplicate invoice number is
// regenerated and retried.
func (s *InvoiceService) CreateInvoice(ctx context.Context, input *CreateInvoiceInput) (*entity.Invoice, error) {
	if !input.Type.Valid() {
		return nil, apperror.NewValidationError(fmt.Sprintf("Invalid invoice type: %s", input.Type))
	}
	if len(input.Items) == 0 {
		return nil, apperror.NewValidationError("At least one line item is required")
	}
	if input.PaymentStatus == "" {
		input.PaymentStatus = enum.PaymentStatusPending
	}
	if !input.PaymentStatus.Valid() {
		return nil, apperror.NewValidationError(fmt.Sprintf("Invalid payment status: %s", input.PaymentStatus))
	}
	if input.PaymentMethod == "" {
		input.PaymentMethod = enum.PaymentMethodCash
	}
	if !input.PaymentMethod.Valid() {
		return nil, apperror.NewValidationError(fmt.Sprintf("Invalid payment method: %s", input.PaymentMethod))
	}
	if input.InvoiceDate.IsZero() {
		input.InvoiceDate = time.Now()
	}

	if input.GuestID != nil {
		guest, err := s.guestRepo.GetByID(ctx, *input.GuestID)
		if err != nil {
			return nil, err
		}
		if guest == nil {
			return nil, apperror.NewNotFoundError("Guest")
		}
		if input.GuestName == "" {
			input.GuestName = guest.Name
		}
		if input.Mobile == "" {
			input.Mobile = guest.Mobile
		}
		if input.RoomNumber == "" {
			input.RoomNumber = guest.RoomNumber
		}
	}
	if input.GuestName == "" {
		return nil, apperror.NewValidationError("Guest name is required")
	}

	lines, items, err := s.resolveLines(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	totals, amounts, err := pricing.Compute(lines)
	if err != nil {
		return nil, apperror.NewValidationError(err.Error())
	}
	for i := range items {
		rounded := amounts[i].Rounded()
		items[i].TaxAmount = rounded.TaxAmount
		items[i].LineTotal = rounded.Total
	}

	invoice := &entity.Invoice{
		InvoiceDate:   input.InvoiceDate,
		Type:          input.Type,
		GuestID:       input.GuestID,
		GuestName:     input.GuestName,
		Mobile:        input.Mobile,
		RoomNumber:    input.RoomNumber,
		Subtotal:      totals.Subtotal,
		TaxAmount:     totals.TaxAmount,
		TotalAmount:   totals.TotalAmount,
		PaymentStatus: input.PaymentStatus,
		PaymentMethod: input.PaymentMethod,
		Notes:         input.Notes,
		BookingDate:   input.BookingDate,
		CreatedByID:   input.CreatedByID,
		Items:         items,
	}

	for attempt := 0; attempt < maxNumberRetries; attempt++ {
		invoice.InvoiceNumber = utils.GenerateDocumentNumber(input.Type.NumberPrefix(), time.Now())
		err = s.invoiceRepo.CreateWithItems(ctx, invoice)
		if err == nil {
			return invoice, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
	}
	return nil, apperror.NewConflictError("Could not allocate a unique invoice number, please retry")
}

func (s *InvoiceService) resolveLines(ctx context.Context, inputs []InvoiceLineInput) ([]pricing.LineInput, []entity.InvoiceItem, error) {
	menuIDs := make([]uuid.UUID, 0, len(inputs))
	serviceIDs := make([]uuid.UUID, 0, len(inputs))
	for i, in := range inputs {
		if in.MenuItemID != nil && in.ServiceID != nil {
			return nil, nil, apperror.NewValidationError(
				fmt.Sprintf("Line %d: a line may reference a menu item or a service, not both", i+1))
		}
		if in.MenuItemID != nil {
			menuIDs = append(menuIDs, *in.MenuItemID)
		}
		if in.ServiceID != nil {
			serviceIDs = append(serviceIDs, *in.ServiceID)
		}
	}

	menuItems, err := s.menuItemRepo.GetByIDs(ctx, menuIDs)
	if err != nil {
		return nil, nil, err
	}
	menuMap := make(map[uuid.UUID]*entity.MenuItem, len(menuItems))
	for i := range menuItems {
		menuMap[menuItems[i].ID] = &menuItems[i]
	}

	services, err := s.serviceRepo.GetByIDs(ctx, serviceIDs)
	if err != nil {
		return nil, nil, err
	}
	serviceMap := make(map[uuid.UUID]*entity.Service, len(services))
	for i := range services {
		serviceMap[services[i].ID] = &services[i]
	}

	lines := make([]pricing.LineInput, 0, len(inputs))
	items := make([]entity.InvoiceItem, 0, len(inputs))
	for i, in := range inputs {
		name := in.ItemName
		rate := in.Rate
		tax := in.TaxPercentage

		switch {
		case in.MenuItemID != nil:
			menuItem, exists := menuMap[*in.MenuItemID]
			if !exists {
				return nil, nil, apperror.NewNotFoundError(fmt.Sprintf("Menu item %s", *in.MenuItemID))
			}
			if name == "" {
				name = menuItem.Name
			}
			if rate == nil {
				r := menuItem.Rate
				rate = &r
			}
			if tax == nil {
				t := menuItem.GSTPercent
				tax = &t
			}
		case in.ServiceID != nil:
			svc, exists := serviceMap[*in.ServiceID]
			if !exists {
				return nil, nil, apperror.NewNotFoundError(fmt.Sprintf("Service %s", *in.ServiceID))
			}
			if name == "" {
				name = svc.Name
			}
			if rate == nil {
				r := svc.Rate
				rate = &r
			}
			if tax == nil {
				t := svc.GSTPercent
				tax = &t
			}
		}

		if name == "" {
			return nil, nil, apperror.NewValidationError(fmt.Sprintf("Line %d: item name is required", i+1))
		}
		if rate == nil {
			return nil, nil, apperror.NewValidationError(fmt.Sprintf("Line %d: rate is required", i+1))
		}
		if tax == nil {
			z := decimal.Zero
			tax = &z
		}

		lines = append(lines, pricing.LineInput{
			Name:          name,
			Quantity:      in.Quantity,
			Rate:          *rate,
			TaxPercentage: *tax,
		})
		items = append(items, entity.InvoiceItem{
			MenuItemID:    in.MenuItemID,
			ServiceID:     in.ServiceID,
			ItemName:      name,
			Quantity:      in.Quantity,
			Rate:          rate.Round(2),
			TaxPercentage: *tax,
			BookingDate:   in.BookingDate,
		})
	}
	return lines, items, nil
}

// ConvertOrderInput represents the convert order input
type ConvertOrderInput struct {
	OrderID       uuid.UUID
	PaymentStatus enum.PaymentStatus
	PaymentMethod enum.PaymentMethod
	CreatedByID   *uuid.UUID
}

// ConvertOrder turns a kitchen order into a kitchen invoice. The order's
// totals are copied verbatim, never recomputed, so the invoice shows exactly
// what the order showed. An order can be converted at most once; a second
// attempt fails with a conflict.
func (s *InvoiceService) ConvertOrder(ctx context.Context, input *ConvertOrderInput) (*entity.Invoice, error) {
	if input.PaymentStatus == "" {
		input.PaymentStatus = enum.PaymentStatusPending
	}
	if !input.PaymentStatus.Valid() {
		return nil, apperror.NewValidationError(fmt.Sprintf("Invalid payment status: %s", input.PaymentStatus))
	}
	if input.PaymentMethod == "" {
		input.PaymentMethod = enum.PaymentMethodCash
	}
	if !input.PaymentMethod.Valid() {
		return nil, apperror.NewValidationError(fmt.Sprintf("Invalid payment method: %s", input.PaymentMethod))
	}

	build := func(order *entity.KitchenOrder, orderItems []entity.KitchenOrderItem) *entity.Invoice {
		items := make([]entity.InvoiceItem, 0, len(orderItems))
		for _, it := range orderItems {
			items = append(items, entity.InvoiceItem{
				MenuItemID:    it.MenuItemID,
				ItemName:      it.ItemName,
				Quantity:      it.Quantity,
				Rate:          it.Rate,
				TaxPercentage: it.TaxPercentage,
				TaxAmount:     it.TaxAmount,
				LineTotal:     it.LineTotal,
			})
		}
		return &entity.Invoice{
			InvoiceNumber: utils.GenerateDocumentNumber(utils.PrefixKitchenInvoice, time.Now()),
			InvoiceDate:   time.Now(),
			Type:          enum.InvoiceTypeKitchen,
			GuestID:       order.GuestID,
			GuestName:     order.GuestName,
			RoomNumber:    order.RoomNumber,
			Subtotal:      order.Subtotal,
			TaxAmount:     order.TaxAmount,
			TotalAmount:   order.TotalAmount,
			PaymentStatus: input.PaymentStatus,
			PaymentMethod: input.PaymentMethod,
			CreatedByID:   input.CreatedByID,
			Items:         items,
		}
	}

	var invoice *entity.Invoice
	var err error
	for attempt := 0; attempt < maxNumberRetries; attempt++ {
		invoice, err = s.invoiceRepo.ConvertFromOrder(ctx, input.OrderID, build)
		if err == nil {
			return invoice, nil
		}
		// The whole conversion rolled back, so retrying with a fresh number
		// is safe: the order is still unconverted.
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
	}
	return nil, apperror.NewConflictError("Could not allocate a unique invoice number, please retry")
}

// GetInvoice retrieves an invoice with its line items
func (s *InvoiceService) GetInvoice(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// ListInvoicesInput represents the list invoices input
type ListInvoicesInput struct {
	Pagination    *pagination.PaginationParams
	Type          *enum.InvoiceType
	PaymentStatus *enum.PaymentStatus
	GuestName     string
	StartDate     *time.Time
	EndDate       *time.Time
}

// ListInvoices returns a filtered, paginated invoice listing
func (s *InvoiceService) ListInvoices(ctx context.Context, input *ListInvoicesInput) (*pagination.PaginatedResult[entity.Invoice], error) {
	if input.Pagination == nil {
		input.Pagination = pagination.DefaultPagination()
	}
	if input.Type != nil && !input.Type.Valid() {
		return nil, apperror.NewValidationError(fmt.Sprintf("Invalid invoice type: %s", *input.Type))
	}
	if input.PaymentStatus != nil && !input.PaymentStatus.Valid() {
		return nil, apperror.NewValidationError(fmt.Sprintf("Invalid payment status: %s", *input.PaymentStatus))
	}

	params := &repository.InvoiceFilterParams{
		Pagination:    input.Pagination,
		Type:          input.Type,
		PaymentStatus: input.PaymentStatus,
		GuestName:     input.GuestName,
		StartDate:     input.StartDate,
		EndDate:       widenToEndOfDay(input.EndDate),
	}

	invoices, total, err := s.invoiceRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	meta := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(invoices, meta), nil
}

// UpdatePayment sets the invoice's payment status and method
func (s *InvoiceService) UpdatePayment(ctx context.Context, id uuid.UUID, status enum.PaymentStatus, method enum.PaymentMethod) (*entity.Invoice, error) {
	if !status.Valid() {
		return nil, apperror.NewValidationError(fmt.Sprintf("Invalid payment status: %s", status))
	}
	if !method.Valid() {
		return nil, apperror.NewValidationError(fmt.Sprintf("Invalid payment method: %s", method))
	}

	err := s.invoiceRepo.UpdatePayment(ctx, id, status, method)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	if err != nil {
		return nil, err
	}
	return s.GetInvoice(ctx, id)
}

// DeleteInvoice removes the invoice and all of its line rows. A converted
// order's invoice reference is cleared, and the order itself survives.
func (s *InvoiceService) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	err := s.invoiceRepo.DeleteWithItems(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.NewNotFoundError("Invoice")
	}
	return err
}
