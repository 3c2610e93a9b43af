package in

import (
	"context"

	"focusflow/internal/modules/session/dto"
)

type Usecase interface {
	Start(ctx context.Context, input dto.StartInput) (dto.SessionOutput, error)
	End(ctx context.Context, input dto.EndInput) (dto.SessionOutput, error)
	Abort(ctx context.Context, input dto.AbortInput) (dto.SessionOutput, error)
	RecordInterruption(ctx context.Context, input dto.InterruptInput) (dto.SessionOutput, error)
	// GetActive returns apperrors.ErrNoActiveSession when nothing is running.
	GetActive(ctx context.Context, userID string) (dto.SessionOutput, error)
	List(ctx context.Context, userID string) ([]dto.SessionOutput, error)
}
