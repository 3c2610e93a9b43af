package out

import (
	"context"

	analyticsdto "focusflow/internal/modules/analytics/dto"
	blocklistdto "focusflow/internal/modules/blocklist/dto"
	"focusflow/internal/modules/client/domain"
	extensiondto "focusflow/internal/modules/extension/dto"
	notifydto "focusflow/internal/modules/notify/dto"
	sessiondto "focusflow/internal/modules/session/dto"
)

// API is the authenticated REST backend.
type API interface {
	StartSession(ctx context.Context, workDuration, breakDuration int, title string) (sessiondto.SessionOutput, error)
	EndSession(ctx context.Context, sessionID string) (sessiondto.SessionOutput, error)
	AbortSession(ctx context.Context, sessionID, reason string) (sessiondto.SessionOutput, error)
	RecordInterruption(ctx context.Context, sessionID string) (sessiondto.SessionOutput, error)
	// ActiveSession reports false when the server has no running session.
	ActiveSession(ctx context.Context) (sessiondto.SessionOutput, bool, error)
	Blocklist(ctx context.Context) ([]blocklistdto.EntryOutput, error)
	AddToBlocklist(ctx context.Context, websites, apps []string) (blocklistdto.AddOutput, error)
	RemoveFromBlocklist(ctx context.Context, entryID string) error
	Analytics(ctx context.Context) (analyticsdto.Bundle, error)
}

type ActiveCache interface {
	// Load returns apperrors.ErrNoActiveSession when nothing is cached.
	Load(ctx context.Context) (domain.ActiveSession, error)
	Save(ctx context.Context, session domain.ActiveSession) error
	Clear(ctx context.Context) error
}

type Extension interface {
	Send(ctx context.Context, message extensiondto.Message) error
}

type Notifier interface {
	Notify(ctx context.Context, event notifydto.Event) error
}
