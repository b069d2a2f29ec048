package service

import (
	"context"

	"github.com/stayops/resortbill-api/internal/domain/entity"
	"github.com/stayops/resortbill-api/internal/domain/repository"
	"github.com/stayops/resortbill-api/pkg/apperror"
)

// SettingsService manages the single resort settings record
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetSettings retrieves the resort settings
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.Settings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, apperror.NewNotFoundError("Settings")
	}
	return settings, nil
}

// UpdateSettingsInput represents the update settings input
type UpdateSettingsInput struct {
	ResortName   string
	Address      string
	Phone        string
	Email        string
	GSTNumber    string
	KitchenGSTNo string
	LogoPath     *string
}

// UpdateSettings updates the resort settings, creating the row if seeding
// never ran.
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.Settings, error) {
	if input.ResortName == "" {
		return nil, apperror.NewValidationError("Resort name is required")
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if settings == nil {
		settings = &entity.Settings{}
		applySettings(settings, input)
		if err := s.settingsRepo.Create(ctx, settings); err != nil {
			return nil, err
		}
		return settings, nil
	}

	applySettings(settings, input)
	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func applySettings(settings *entity.Settings, input *UpdateSettingsInput) {
	settings.ResortName = input.ResortName
	settings.Address = input.Address
	settings.Phone = input.Phone
	settings.Email = input.Email
	settings.GSTNumber = input.GSTNumber
	settings.KitchenGSTNo = input.KitchenGSTNo
	settings.LogoPath = input.LogoPath
}
