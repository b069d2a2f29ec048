package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stayops/resortbill-api/internal/domain/entity"
	"github.com/stayops/resortbill-api/internal/domain/repository"
	"github.com/stayops/resortbill-api/pkg/apperror"
	"github.com/stayops/resortbill-api/pkg/pagination"
)

// CatalogService handles menu item and service catalog management.
//
// Deleting a catalog entry behaves differently per document kind: kitchen
// order lines referencing a deleted menu item are removed with it, while
// invoice lines survive with their snapshot intact. To avoid silently
// orphaning invoice history, deletion is refused while invoice lines still
// reference the entry.
type CatalogService struct {
	menuItemRepo repository.MenuItemRepository
	serviceRepo  repository.ServiceRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(menuItemRepo repository.MenuItemRepository, serviceRepo repository.ServiceRepository) *CatalogService {
	return &CatalogService{
		menuItemRepo: menuItemRepo,
		serviceRepo:  serviceRepo,
	}
}

// MenuItemInput represents the create/update menu item input
type MenuItemInput struct {
	Name        string
	Category    string
	Rate        decimal.Decimal
	GSTPercent  decimal.Decimal
	IsAvailable *bool
}

func (in *MenuItemInput) validate() error {
	if in.Name == "" {
		return apperror.NewValidationError("Item name is required")
	}
	if in.Rate.IsNegative() {
		return apperror.NewValidationError("Rate must not be negative")
	}
	if in.GSTPercent.IsNegative() {
		return apperror.NewValidationError("GST percentage must not be negative")
	}
	return nil
}

// CreateMenuItem creates a new menu item
func (s *CatalogService) CreateMenuItem(ctx context.Context, input *MenuItemInput) (*entity.MenuItem, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	item := &entity.MenuItem{
		Name:        input.Name,
		Category:    input.Category,
		Rate:        input.Rate.Round(2),
		GSTPercent:  input.GSTPercent,
		IsAvailable: true,
	}
	if input.IsAvailable != nil {
		item.IsAvailable = *input.IsAvailable
	}
	if err := s.menuItemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// GetMenuItem retrieves a menu item by ID
func (s *CatalogService) GetMenuItem(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	item, err := s.menuItemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}
	return item, nil
}

// ListMenuItems returns a paginated menu item listing
func (s *CatalogService) ListMenuItems(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.MenuItem], error) {
	if params == nil {
		params = pagination.DefaultPagination()
	}
	items, total, err := s.menuItemRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}
	meta := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(items, meta), nil
}

// UpdateMenuItem updates a menu item. Existing order and invoice lines keep
// their snapshotted name and rate.
func (s *CatalogService) UpdateMenuItem(ctx context.Context, id uuid.UUID, input *MenuItemInput) (*entity.MenuItem, error) {
	item, err := s.GetMenuItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := input.validate(); err != nil {
		return nil, err
	}

	item.Name = input.Name
	item.Category = input.Category
	item.Rate = input.Rate.Round(2)
	item.GSTPercent = input.GSTPercent
	if input.IsAvailable != nil {
		item.IsAvailable = *input.IsAvailable
	}

	if err := s.menuItemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// DeleteMenuItem deletes a menu item. Refused while invoice lines still
// reference it; kitchen order lines referencing it are removed by the
// cascading constraint.
func (s *CatalogService) DeleteMenuItem(ctx context.Context, id uuid.UUID) error {
	item, err := s.GetMenuItem(ctx, id)
	if err != nil {
		return err
	}

	refs, err := s.menuItemRepo.CountInvoiceLineRefs(ctx, item.ID)
	if err != nil {
		return err
	}
	if refs > 0 {
		return apperror.NewConflictError("Menu item is referenced by invoice lines and cannot be deleted")
	}

	return s.menuItemRepo.Delete(ctx, item.ID)
}

// ServiceInput represents the create/update service input
type ServiceInput struct {
	Name       string
	Rate       decimal.Decimal
	GSTPercent decimal.Decimal
}

func (in *ServiceInput) validate() error {
	if in.Name == "" {
		return apperror.NewValidationError("Service name is required")
	}
	if in.Rate.IsNegative() {
		return apperror.NewValidationError("Rate must not be negative")
	}
	if in.GSTPercent.IsNegative() {
		return apperror.NewValidationError("GST percentage must not be negative")
	}
	return nil
}

// CreateService creates a new resort service
func (s *CatalogService) CreateService(ctx context.Context, input *ServiceInput) (*entity.Service, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	svc := &entity.Service{
		Name:       input.Name,
		Rate:       input.Rate.Round(2),
		GSTPercent: input.GSTPercent,
	}
	if err := s.serviceRepo.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// GetService retrieves a service by ID
func (s *CatalogService) GetService(ctx context.Context, id uuid.UUID) (*entity.Service, error) {
	svc, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if svc == nil {
		return nil, apperror.NewNotFoundError("Service")
	}
	return svc, nil
}

// ListServices returns a paginated service listing
func (s *CatalogService) ListServices(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Service], error) {
	if params == nil {
		params = pagination.DefaultPagination()
	}
	services, total, err := s.serviceRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}
	meta := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(services, meta), nil
}

// UpdateService updates a resort service
func (s *CatalogService) UpdateService(ctx context.Context, id uuid.UUID, input *ServiceInput) (*entity.Service, error) {
	svc, err := s.GetService(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := input.validate(); err != nil {
		return nil, err
	}

	svc.Name = input.Name
	svc.Rate = input.Rate.Round(2)
	svc.GSTPercent = input.GSTPercent

	if err := s.serviceRepo.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// DeleteService deletes a resort service. Refused while invoice lines still
// reference it.
func (s *CatalogService) DeleteService(ctx context.Context, id uuid.UUID) error {
	svc, err := s.GetService(ctx, id)
	if err != nil {
		return err
	}

	refs, err := s.serviceRepo.CountInvoiceLineRefs(ctx, svc.ID)
	if err != nil {
		return err
	}
	if refs > 0 {
		return apperror.NewConflictError("Service is referenced by invoice lines and cannot be deleted")
	}

	return s.serviceRepo.Delete(ctx, svc.ID)
}
