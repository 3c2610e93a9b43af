package in

import (
	"context"

	"focusflow/internal/modules/settings/dto"
)

type Usecase interface {
	Get(ctx context.Context, userID, name string) (dto.Setting, error)
	Set(ctx context.Context, userID, name, value string) (dto.Setting, error)
	List(ctx context.Context, userID string) ([]dto.Setting, error)
	Preferences(ctx context.Context, userID string) (dto.Preferences, error)
}
