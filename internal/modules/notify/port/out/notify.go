package out

import (
	"context"
	"time"

	"focusflow/internal/modules/notify/dto"
)

type Speaker interface {
	Beep(frequency float64, duration time.Duration) error
}

type Desktop interface {
	Init(appName string) error
	Show(title, body string) error
}

type PreferenceSource interface {
	Preferences(ctx context.Context, userID string) (dto.Preferences, error)
}
