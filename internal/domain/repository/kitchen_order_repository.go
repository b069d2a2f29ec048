package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stayops/resortbill-api/internal/domain/entity"
	"github.com/stayops/resortbill-api/internal/domain/enum"
	"github.com/stayops/resortbill-api/pkg/pagination"
)

// KitchenOrderRepository defines the interface for kitchen order data
// operations. CreateWithItems must persist the header and all line rows in
// one transaction: a header without lines (or the reverse) is never
// observable.
type KitchenOrderRepository interface {
	CreateWithItems(ctx context.Context, order *entity.KitchenOrder) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.KitchenOrder, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.KitchenOrder, error)
	List(ctx context.Context, params *KitchenOrderFilterParams) ([]entity.KitchenOrder, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error
	CountByStatus(ctx context.Context, status enum.OrderStatus) (int64, error)
	PendingOrders(ctx context.Context, limit int) ([]entity.KitchenOrder, error)
}

// KitchenOrderFilterParams contains filtering parameters for order listings
type KitchenOrderFilterParams struct {
	Pagination *pagination.PaginationParams
	Status     *enum.OrderStatus
	OrderType  *enum.OrderType
	GuestName  string
	StartDate  *time.Time
	EndDate    *time.Time
}
