package service

import (
	"context"
	"strings"

	"focusflow/internal/modules/session/domain"
	sessionout "focusflow/internal/modules/session/port/out"
	"focusflow/internal/platform/clock"
	apperrors "focusflow/internal/platform/errors"
	"focusflow/internal/platform/id"
)

type SessionService struct {
	clock clock.Clock
	idGen id.Generator
	store sessionout.SessionStore
}

func NewSessionService(clock clock.Clock, idGen id.Generator, store sessionout.SessionStore) *SessionService {
	return &SessionService{clock: clock, idGen: idGen, store: store}
}

// Start records a new running session. Other running sessions of the same
// user are left alone.
func (s *SessionService) Start(ctx context.Context, userID string, workDuration, breakDuration int, title string) (domain.Session, error) {
	session := domain.Session{
		ID:            s.idGen.New(),
		UserID:        userID,
		StartTime:     s.clock.Now(),
		WorkDuration:  workDuration,
		BreakDuration: breakDuration,
		Title:         strings.TrimSpace(title),
		Status:        domain.StatusRunning,
	}
	if err := session.Validate(); err != nil {
		return domain.Session{}, apperrors.New(apperrors.ErrInvalidInput, err.Error())
	}
	if err := s.store.Create(ctx, session); err != nil {
		return domain.Session{}, err
	}
	return session, nil
}

// End marks the session completed whatever its current status.
func (s *SessionService) End(ctx context.Context, userID, sessionID string) (domain.Session, error) {
	if err := requireIDs(userID, sessionID); err != nil {
		return domain.Session{}, err
	}
	return s.store.Complete(ctx, userID, sessionID, s.clock.Now())
}

func (s *SessionService) Abort(ctx context.Context, userID, sessionID, reason string) (domain.Session, error) {
	if err := requireIDs(userID, sessionID); err != nil {
		return domain.Session{}, err
	}
	return s.store.Abort(ctx, userID, sessionID, s.clock.Now(), strings.TrimSpace(reason))
}

func (s *SessionService) RecordInterruption(ctx context.Context, userID, sessionID string) (domain.Session, error) {
	if err := requireIDs(userID, sessionID); err != nil {
		return domain.Session{}, err
	}
	return s.store.IncrementInterruptions(ctx, userID, sessionID)
}

func (s *SessionService) Active(ctx context.Context, userID string) (domain.Session, error) {
	session, ok, err := s.store.FindRunning(ctx, userID)
	if err != nil {
		return domain.Session{}, err
	}
	if !ok {
		return domain.Session{}, apperrors.ErrNoActiveSession
	}
	return session, nil
}

func (s *SessionService) List(ctx context.Context, userID string) ([]domain.Session, error) {
	if userID == "" {
		return nil, apperrors.New(apperrors.ErrInvalidInput, "user id is required")
	}
	return s.store.ListByUser(ctx, userID)
}

func requireIDs(userID, sessionID string) error {
	if userID == "" {
		return apperrors.New(apperrors.ErrInvalidInput, "user id is required")
	}
	if sessionID == "" {
		return apperrors.New(apperrors.ErrInvalidInput, "session id is required")
	}
	return nil
}
