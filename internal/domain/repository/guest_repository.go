package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/stayops/resortbill-api/internal/domain/entity"
	"github.com/stayops/resortbill-api/pkg/pagination"
)

// GuestRepository defines the interface for guest data operations
type GuestRepository interface {
	Create(ctx context.Context, guest *entity.Guest) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Guest, error)
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Guest, int64, error)
	Update(ctx context.Context, guest *entity.Guest) error
	Delete(ctx context.Context, id uuid.UUID) error
}
