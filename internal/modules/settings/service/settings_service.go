package service

import (
	"context"

	"focusflow/internal/modules/settings/domain"
	settingsout "focusflow/internal/modules/settings/port/out"
	apperrors "focusflow/internal/platform/errors"
)

type SettingsService struct {
	store settingsout.SettingStore
}

func NewSettingsService(store settingsout.SettingStore) *SettingsService {
	return &SettingsService{store: store}
}

// Get returns the effective value and whether it is the default.
func (s *SettingsService) Get(ctx context.Context, userID, name string) (string, bool, error) {
	if _, err := domain.Canonical(name, domain.Defaults()[name]); err != nil {
		return "", false, apperrors.New(apperrors.ErrInvalidInput, err.Error())
	}
	stored, err := s.store.Load(ctx, userID)
	if err != nil {
		return "", false, err
	}
	if raw, ok := stored[name]; ok {
		if v, err := domain.Canonical(name, raw); err == nil {
			return v, false, nil
		}
	}
	return domain.Defaults()[name], true, nil
}

func (s *SettingsService) Set(ctx context.Context, userID, name, value string) (string, error) {
	if userID == "" {
		return "", apperrors.New(apperrors.ErrInvalidInput, "user id is required")
	}
	v, err := domain.Canonical(name, value)
	if err != nil {
		return "", apperrors.New(apperrors.ErrInvalidInput, err.Error())
	}
	if err := s.store.Save(ctx, userID, name, v); err != nil {
		return "", err
	}
	return v, nil
}

func (s *SettingsService) Stored(ctx context.Context, userID string) (map[string]string, error) {
	return s.store.Load(ctx, userID)
}
