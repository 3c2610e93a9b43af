package out

import (
	"context"

	"focusflow/internal/modules/analytics/domain"
	analyticsout "focusflow/internal/modules/analytics/port/out"
	sessionin "focusflow/internal/modules/session/port/in"
)

type SessionSourceAdapter struct {
	sessions sessionin.Usecase
}

func NewSessionSourceAdapter(sessions sessionin.Usecase) analyticsout.SessionSource {
	return &SessionSourceAdapter{sessions: sessions}
}

func (a *SessionSourceAdapter) Records(ctx context.Context, userID string) ([]domain.Record, error) {
	sessions, err := a.sessions.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Record, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, domain.Record{
			StartTime:     s.StartTime,
			EndTime:       s.EndTime,
			Status:        s.Status,
			Interruptions: s.Interruptions,
		})
	}
	return out, nil
}
