package in

import (
	"context"

	analyticsdto "focusflow/internal/modules/analytics/dto"
	"focusflow/internal/modules/client/dto"
)

// Sessions drives the focus timer against the REST backend.
type Sessions interface {
	// CheckActive returns apperrors.ErrNoActiveSession when nothing is running.
	CheckActive(ctx context.Context) (dto.Active, error)
	Start(ctx context.Context, input dto.StartInput) (dto.Active, error)
	Tick(ctx context.Context) (dto.Tick, error)
	Stop(ctx context.Context) error
	Abort(ctx context.Context, reason string) error
	Interrupt(ctx context.Context) (int, error)
	BreakOver(ctx context.Context) error
}

type Blocklist interface {
	ListBlocklist(ctx context.Context) ([]dto.Entry, error)
	AddToBlocklist(ctx context.Context, input dto.AddInput) (dto.AddOutput, error)
	RemoveFromBlocklist(ctx context.Context, entryID string) error
}

type Analytics interface {
	Analytics(ctx context.Context) (analyticsdto.Bundle, error)
}

type Usecase interface {
	Sessions
	Blocklist
	Analytics
}
