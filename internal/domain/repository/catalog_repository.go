package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/stayops/resortbill-api/internal/domain/entity"
	"github.com/stayops/resortbill-api/pkg/pagination"
)

// MenuItemRepository defines the interface for menu item data operations
type MenuItemRepository interface {
	Create(ctx context.Context, item *entity.MenuItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.MenuItem, error)
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.MenuItem, int64, error)
	Update(ctx context.Context, item *entity.MenuItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountInvoiceLineRefs(ctx context.Context, id uuid.UUID) (int64, error)
}

// ServiceRepository defines the interface for service data operations
type ServiceRepository interface {
	Create(ctx context.Context, svc *entity.Service) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Service, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Service, error)
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Service, int64, error)
	Update(ctx context.Context, svc *entity.Service) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountInvoiceLineRefs(ctx context.Context, id uuid.UUID) (int64, error)
}
