package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/stayops/resortbill-api/internal/domain/entity"
	"github.com/stayops/resortbill-api/internal/domain/enum"
	"github.com/stayops/resortbill-api/internal/domain/repository"
	"github.com/stayops/resortbill-api/pkg/apperror"
	"github.com/stayops/resortbill-api/pkg/pagination"
	"github.com/stayops/resortbill-api/pkg/utils"
)

// UserService handles back-office user management
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateUserInput represents the create user input
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     enum.Role
}

// CreateUser creates a new user with a hashed password
func (s *UserService) CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error) {
	if input.Role == "" {
		input.Role = enum.RoleStaff
	}
	if !input.Role.Valid() {
		return nil, apperror.NewValidationError(fmt.Sprintf("Invalid role: %s", input.Role))
	}
	if len(input.Password) < 8 {
		return nil, apperror.NewValidationError("Password must be at least 8 characters")
	}

	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A user with this email already exists")
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: hashed,
		Role:     input.Role,
		IsActive: true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetUser retrieves a user by ID
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}

// ListUsers returns a paginated user listing
func (s *UserService) ListUsers(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.User], error) {
	if params == nil {
		params = pagination.DefaultPagination()
	}
	users, total, err := s.userRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	meta := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(users, meta), nil
}

// UpdateUserInput represents the update user input. Nil fields are left
// unchanged.
type UpdateUserInput struct {
	Name     *string
	Role     *enum.Role
	IsActive *bool
}

// UpdateUser applies a partial update to a user
func (s *UserService) UpdateUser(ctx context.Context, id uuid.UUID, input *UpdateUserInput) (*entity.User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Role != nil {
		if !input.Role.Valid() {
			return nil, apperror.NewValidationError(fmt.Sprintf("Invalid role: %s", *input.Role))
		}
		user.Role = *input.Role
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser soft-deletes a user
func (s *UserService) DeleteUser(ctx context.Context, id uuid.UUID, callerID uuid.UUID) error {
	if id == callerID {
		return apperror.NewBadRequestError("You cannot delete your own account")
	}
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return err
	}
	return s.userRepo.Delete(ctx, user.ID)
}
