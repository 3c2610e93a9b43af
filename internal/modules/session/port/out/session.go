package out

import (
	"context"
	"time"

	"focusflow/internal/modules/session/domain"
)

// SessionStore persists session records. Every lookup is scoped to the
// owning user; a record owned by someone else is reported as not found.
type SessionStore interface {
	Create(ctx context.Context, session domain.Session) error
	Complete(ctx context.Context, userID, sessionID string, endTime time.Time) (domain.Session, error)
	Abort(ctx context.Context, userID, sessionID string, endTime time.Time, reason string) (domain.Session, error)
	IncrementInterruptions(ctx context.Context, userID, sessionID string) (domain.Session, error)
	// FindRunning returns the most recently started running session.
	FindRunning(ctx context.Context, userID string) (domain.Session, bool, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Session, error)
}
