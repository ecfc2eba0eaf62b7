package registry

import (
	"context"

	"github.com/resitrack/backend/internal/domain/registry"
)

// SettingService manages system settings
type SettingService struct {
	settings registry.SettingRepository
}

// NewSettingService creates a setting service
func NewSettingService(settings registry.SettingRepository) *SettingService {
	return &SettingService{settings: settings}
}

// Get fetches one setting by key
func (s *SettingService) Get(ctx context.Context, key string) (*SettingResponse, error) {
	setting, err := s.settings.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	resp := ToSettingResponse(setting)
	return &resp, nil
}

// GetAll returns every configured setting
func (s *SettingService) GetAll(ctx context.Context) ([]SettingResponse, error) {
	settings, err := s.settings.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]SettingResponse, len(settings))
	for i, setting := range settings {
		out[i] = ToSettingResponse(setting)
	}
	return out, nil
}

// Set creates or replaces a setting value
func (s *SettingService) Set(ctx context.Context, key, value string) (*SettingResponse, error) {
	setting, err := registry.NewSystemSetting(key, value)
	if err != nil {
		return nil, err
	}
	if err := s.settings.Set(ctx, setting); err != nil {
		return nil, err
	}
	resp := ToSettingResponse(setting)
	return &resp, nil
}
