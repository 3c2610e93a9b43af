package usecase

import (
	"context"

	"focusflow/internal/modules/settings/domain"
	"focusflow/internal/modules/settings/dto"
	settingsin "focusflow/internal/modules/settings/port/in"
	"focusflow/internal/modules/settings/service"
)

type Interactor struct {
	svc *service.SettingsService
}

func NewInteractor(svc *service.SettingsService) settingsin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Get(ctx context.Context, userID, name string) (dto.Setting, error) {
	value, isDefault, err := i.svc.Get(ctx, userID, name)
	if err != nil {
		return dto.Setting{}, err
	}
	return dto.Setting{Name: name, Value: value, Default: isDefault}, nil
}

func (i *Interactor) Set(ctx context.Context, userID, name, value string) (dto.Setting, error) {
	v, err := i.svc.Set(ctx, userID, name, value)
	if err != nil {
		return dto.Setting{}, err
	}
	return dto.Setting{Name: name, Value: v}, nil
}

func (i *Interactor) List(ctx context.Context, userID string) ([]dto.Setting, error) {
	out := make([]dto.Setting, 0, len(domain.Names()))
	for _, name := range domain.Names() {
		s, err := i.Get(ctx, userID, name)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (i *Interactor) Preferences(ctx context.Context, userID string) (dto.Preferences, error) {
	stored, err := i.svc.Stored(ctx, userID)
	if err != nil {
		return dto.Preferences{}, err
	}
	prefs := domain.Resolve(stored)
	return dto.Preferences{
		NotificationsEnabled:      prefs.NotificationsEnabled,
		NotificationSetupComplete: prefs.NotificationSetupComplete,
		ExtensionPromptShown:      prefs.ExtensionPromptShown,
		Volume:                    prefs.Audio.Volume,
		Muted:                     prefs.Audio.Muted,
	}, nil
}
