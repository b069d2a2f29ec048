package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/stayops/resortbill-api/internal/domain/entity"
	"github.com/stayops/resortbill-api/internal/domain/repository"
	"github.com/stayops/resortbill-api/pkg/apperror"
	"github.com/stayops/resortbill-api/pkg/pagination"
)

// GuestService handles guest record management
type GuestService struct {
	guestRepo repository.GuestRepository
}

// NewGuestService creates a new guest service
func NewGuestService(guestRepo repository.GuestRepository) *GuestService {
	return &GuestService{guestRepo: guestRepo}
}

// GuestInput represents the create/update guest input
type GuestInput struct {
	Name       string
	Mobile     string
	RoomNumber string
	IDProof    *string
	Notes      *string
}

// CreateGuest creates a new guest record
func (s *GuestService) CreateGuest(ctx context.Context, input *GuestInput) (*entity.Guest, error) {
	if input.Name == "" {
		return nil, apperror.NewValidationError("Guest name is required")
	}

	guest := &entity.Guest{
		Name:       input.Name,
		Mobile:     input.Mobile,
		RoomNumber: input.RoomNumber,
		IDProof:    input.IDProof,
		Notes:      input.Notes,
	}
	if err := s.guestRepo.Create(ctx, guest); err != nil {
		return nil, err
	}
	return guest, nil
}

// GetGuest retrieves a guest by ID
func (s *GuestService) GetGuest(ctx context.Context, id uuid.UUID) (*entity.Guest, error) {
	guest, err := s.guestRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if guest == nil {
		return nil, apperror.NewNotFoundError("Guest")
	}
	return guest, nil
}

// ListGuests returns a paginated guest listing, optionally filtered by a
// name, mobile or room-number search term.
func (s *GuestService) ListGuests(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Guest], error) {
	if params == nil {
		params = pagination.DefaultPagination()
	}
	guests, total, err := s.guestRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}
	meta := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(guests, meta), nil
}

// UpdateGuest updates a guest record
func (s *GuestService) UpdateGuest(ctx context.Context, id uuid.UUID, input *GuestInput) (*entity.Guest, error) {
	guest, err := s.GetGuest(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Name == "" {
		return nil, apperror.NewValidationError("Guest name is required")
	}

	guest.Name = input.Name
	guest.Mobile = input.Mobile
	guest.RoomNumber = input.RoomNumber
	guest.IDProof = input.IDProof
	guest.Notes = input.Notes

	if err := s.guestRepo.Update(ctx, guest); err != nil {
		return nil, err
	}
	return guest, nil
}

// DeleteGuest soft-deletes a guest. Orders and invoices that reference the
// guest keep their snapshotted name; the foreign key goes null.
func (s *GuestService) DeleteGuest(ctx context.Context, id uuid.UUID) error {
	guest, err := s.GetGuest(ctx, id)
	if err != nil {
		return err
	}
	return s.guestRepo.Delete(ctx, guest.ID)
}
