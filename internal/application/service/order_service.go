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

// Document numbers carry a random suffix, so a same-day collision is
// possible. Writers retry with a fresh number this many times before giving
// up.
const maxNumberRetries = 3

// OrderService handles kitchen order operations
type OrderService struct {
	orderRepo    repository.KitchenOrderRepository
	menuItemRepo repository.MenuItemRepository
	guestRepo    repository.GuestRepository
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.KitchenOrderRepository,
	menuItemRepo repository.MenuItemRepository,
	guestRepo repository.GuestRepository,
) *OrderService {
	return &OrderService{
		orderRepo:    orderRepo,
		menuItemRepo: menuItemRepo,
		guestRepo:    guestRepo,
	}
}

// OrderLineInput represents one requested order line. When MenuItemID is set
// the catalog supplies the name, rate and tax percentage; explicit values
// override the catalog ones.
type OrderLineInput struct {
	MenuItemID    *uuid.UUID
	ItemName      string
	Quantity      int
	Rate          *decimal.Decimal
	TaxPercentage *decimal.Decimal
}

// CreateOrderInput represents the create kitchen order input
type CreateOrderInput struct {
	GuestID     *uuid.UUID
	GuestName   string
	RoomNumber  string
	OrderType   enum.OrderType
	CreatedByID *uuid.UUID
	Items       []OrderLineInput
}

// CreateOrder validates the request, prices the lines, and persists the
// order header and lines in one transaction. A duplicate order number is
// regenerated and retried.
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.KitchenOrder, error) {
	if input.OrderType == "" {
		input.OrderType = enum.OrderTypeWalkIn
	}
	if !input.OrderType.Valid() {
		return nil, apperror.NewValidationError(fmt.Sprintf("Invalid order type: %s", input.OrderType))
	}
	if len(input.Items) == 0 {
		return nil, apperror.NewValidationError("At least one line item is required")
	}

	// Resolve the guest record first so its name and room can back-fill the
	// order header.
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

	order := &entity.KitchenOrder{
		GuestID:     input.GuestID,
		GuestName:   input.GuestName,
		RoomNumber:  input.RoomNumber,
		OrderType:   input.OrderType,
		Status:      enum.OrderStatusPending,
		Subtotal:    totals.Subtotal,
		TaxAmount:   totals.TaxAmount,
		TotalAmount: totals.TotalAmount,
		CreatedByID: input.CreatedByID,
		Items:       items,
	}

	for attempt := 0; attempt < maxNumberRetries; attempt++ {
		order.OrderNumber = utils.GenerateDocumentNumber(utils.PrefixKitchenOrder, time.Now())
		err = s.orderRepo.CreateWithItems(ctx, order)
		if err == nil {
			return order, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
	}
	return nil, apperror.NewConflictError("Could not allocate a unique order number, please retry")
}

// resolveLines turns requested lines into pricing inputs and entity rows.
// Catalog lookups are batched to avoid one query per line.
func (s *OrderService) resolveLines(ctx context.Context, inputs []OrderLineInput) ([]pricing.LineInput, []entity.KitchenOrderItem, error) {
	menuIDs := make([]uuid.UUID, 0, len(inputs))
	for _, in := range inputs {
		if in.MenuItemID != nil {
			menuIDs = append(menuIDs, *in.MenuItemID)
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

	lines := make([]pricing.LineInput, 0, len(inputs))
	items := make([]entity.KitchenOrderItem, 0, len(inputs))
	for i, in := range inputs {
		name := in.ItemName
		rate := in.Rate
		tax := in.TaxPercentage

		if in.MenuItemID != nil {
			menuItem, exists := menuMap[*in.MenuItemID]
			if !exists {
				return nil, nil, apperror.NewNotFoundError(fmt.Sprintf("Menu item %s", *in.MenuItemID))
			}
			if !menuItem.IsAvailable {
				return nil, nil, apperror.NewValidationError(fmt.Sprintf("Menu item %q is not available", menuItem.Name))
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
		items = append(items, entity.KitchenOrderItem{
			MenuItemID:    in.MenuItemID,
			ItemName:      name,
			Quantity:      in.Quantity,
			Rate:          rate.Round(2),
			TaxPercentage: *tax,
		})
	}
	return lines, items, nil
}

// GetOrder retrieves a kitchen order with its line items
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.KitchenOrder, error) {
	order, err := s.orderRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Kitchen order")
	}
	return order, nil
}

// ListOrdersInput represents the list orders input
type ListOrdersInput struct {
	Pagination *pagination.PaginationParams
	Status     *enum.OrderStatus
	OrderType  *enum.OrderType
	GuestName  string
	StartDate  *time.Time
	EndDate    *time.Time
}

// ListOrders returns a filtered, paginated order listing
func (s *OrderService) ListOrders(ctx context.Context, input *ListOrdersInput) (*pagination.PaginatedResult[entity.KitchenOrder], error) {
	if input.Pagination == nil {
		input.Pagination = pagination.DefaultPagination()
	}
	if input.Status != nil && !input.Status.Valid() {
		return nil, apperror.NewValidationError(fmt.Sprintf("Invalid order status: %s", *input.Status))
	}
	if input.OrderType != nil && !input.OrderType.Valid() {
		return nil, apperror.NewValidationError(fmt.Sprintf("Invalid order type: %s", *input.OrderType))
	}

	params := &repository.KitchenOrderFilterParams{
		Pagination: input.Pagination,
		Status:     input.Status,
		OrderType:  input.OrderType,
		GuestName:  input.GuestName,
		StartDate:  input.StartDate,
		EndDate:    widenToEndOfDay(input.EndDate),
	}

	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	meta := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, meta), nil
}

// UpdateStatus sets the order's lifecycle status. Any declared status may
// replace any other; there is no transition table.
func (s *OrderService) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) (*entity.KitchenOrder, error) {
	if !status.Valid() {
		return nil, apperror.NewValidationError(fmt.Sprintf("Invalid order status: %s", status))
	}

	err := s.orderRepo.UpdateStatus(ctx, id, status)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NewNotFoundError("Kitchen order")
	}
	if err != nil {
		return nil, err
	}
	return s.GetOrder(ctx, id)
}

// widenToEndOfDay pushes a calendar-date filter bound to the last second of
// that day, so "to 2024-03-05" includes invoices written at 18:00 that day.
func widenToEndOfDay(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	widened := time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
	return &widened
}
