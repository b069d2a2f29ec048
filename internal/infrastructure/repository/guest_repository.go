package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/stayops/resortbill-api/internal/domain/entity"
	domainRepo "github.com/stayops/resortbill-api/internal/domain/repository"
	"github.com/stayops/resortbill-api/pkg/pagination"
	"gorm.io/gorm"
)

type guestRepository struct {
	db *gorm.DB
}

// NewGuestRepository creates a new guest repository
func NewGuestRepository(db *gorm.DB) domainRepo.GuestRepository {
	return &guestRepository{db: db}
}

func (r *guestRepository) Create(ctx context.Context, guest *entity.Guest) error {
	return r.db.WithContext(ctx).Create(guest).Error
}

func (r *guestRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Guest, error) {
	var guest entity.Guest
	err := r.db.WithContext(ctx).First(&guest, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &guest, nil
}

func (r *guestRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Guest, int64, error) {
	var guests []entity.Guest
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Guest{})
	if search != "" {
		query = query.Where("name ILIKE ? OR mobile ILIKE ? OR room_number ILIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("created_at DESC").
		Find(&guests).Error
	return guests, total, err
}

func (r *guestRepository) Update(ctx context.Context, guest *entity.Guest) error {
	return r.db.WithContext(ctx).Save(guest).Error
}

func (r *guestRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Delete(&entity.Guest{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
