package out

import (
	"context"

	"focusflow/internal/modules/analytics/domain"
)

// SessionSource returns every session record of a user, unfiltered.
type SessionSource interface {
	Records(ctx context.Context, userID string) ([]domain.Record, error)
}
