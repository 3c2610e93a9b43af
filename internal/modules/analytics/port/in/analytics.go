package in

import (
	"context"

	"focusflow/internal/modules/analytics/dto"
)

type Usecase interface {
	GetAnalytics(ctx context.Context, userID string) (dto.Bundle, error)
}
