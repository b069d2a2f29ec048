package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/stayops/resortbill-api/internal/domain/entity"
	"github.com/stayops/resortbill-api/internal/domain/enum"
	domainRepo "github.com/stayops/resortbill-api/internal/domain/repository"
	"gorm.io/gorm"
)

type kitchenOrderRepository struct {
	db *gorm.DB
}

// NewKitchenOrderRepository creates a new kitchen order repository
func NewKitchenOrderRepository(db *gorm.DB) domainRepo.KitchenOrderRepository {
	return &kitchenOrderRepository{db: db}
}

// CreateWithItems inserts the order header and all of its line rows inside
// one transaction. A failure at any point rolls the whole write back.
func (r *kitchenOrderRepository) CreateWithItems(ctx context.Context, order *entity.KitchenOrder) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
}

func (r *kitchenOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.KitchenOrder, error) {
	var order entity.KitchenOrder
	err := r.db.WithContext(ctx).First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *kitchenOrderRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.KitchenOrder, error) {
	var order entity.KitchenOrder
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Guest").
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *kitchenOrderRepository) List(ctx context.Context, params *domainRepo.KitchenOrderFilterParams) ([]entity.KitchenOrder, int64, error) {
	var orders []entity.KitchenOrder
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.KitchenOrder{})

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.OrderType != nil {
		query = query.Where("order_type = ?", *params.OrderType)
	}
	if params.GuestName != "" {
		query = query.Where("guest_name ILIKE ?", "%"+params.GuestName+"%")
	}
	if params.StartDate != nil {
		query = query.Where("created_at >= ?", *params.StartDate)
	}
	if params.EndDate != nil {
		query = query.Where("created_at <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error

	return orders, total, err
}

func (r *kitchenOrderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error {
	res := r.db.WithContext(ctx).Model(&entity.KitchenOrder{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *kitchenOrderRepository) CountByStatus(ctx context.Context, status enum.OrderStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.KitchenOrder{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *kitchenOrderRepository) PendingOrders(ctx context.Context, limit int) ([]entity.KitchenOrder, error) {
	var orders []entity.KitchenOrder
	err := r.db.WithContext(ctx).
		Where("status = ?", enum.OrderStatusPending).
		Order("created_at ASC").
		Limit(limit).
		Preload("Items").
		Find(&orders).Error
	return orders, err
}
