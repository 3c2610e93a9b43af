package out

import (
	"context"

	"focusflow/internal/modules/notify/dto"
	notifyout "focusflow/internal/modules/notify/port/out"
	settingsin "focusflow/internal/modules/settings/port/in"
)

type SettingsPreferences struct {
	settings settingsin.Usecase
}

func NewSettingsPreferences(settings settingsin.Usecase) notifyout.PreferenceSource {
	return &SettingsPreferences{settings: settings}
}

func (s *SettingsPreferences) Preferences(ctx context.Context, userID string) (dto.Preferences, error) {
	prefs, err := s.settings.Preferences(ctx, userID)
	if err != nil {
		return dto.Preferences{}, err
	}
	return dto.Preferences{
		NotificationsEnabled: prefs.NotificationsEnabled,
		Volume:               prefs.Volume,
		Muted:                prefs.Muted,
	}, nil
}
