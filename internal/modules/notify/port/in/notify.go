package in

import (
	"context"

	"focusflow/internal/modules/notify/dto"
)

type Usecase interface {
	Init(ctx context.Context) error
	// Configure loads the user's audio and notification preferences.
	Configure(ctx context.Context, userID string) error
	Notify(ctx context.Context, event dto.Event) (dto.Delivery, error)
}
