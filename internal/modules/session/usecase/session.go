package usecase

import (
	"context"

	"focusflow/internal/modules/session/domain"
	sessiondto "focusflow/internal/modules/session/dto"
	sessionin "focusflow/internal/modules/session/port/in"
	"focusflow/internal/modules/session/service"
)

type Interactor struct {
	svc *service.SessionService
}

func NewInteractor(svc *service.SessionService) sessionin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Start(ctx context.Context, input sessiondto.StartInput) (sessiondto.SessionOutput, error) {
	session, err := i.svc.Start(ctx, input.UserID, input.WorkDuration, input.BreakDuration, input.Title)
	if err != nil {
		return sessiondto.SessionOutput{}, err
	}
	return toOutput(session), nil
}

func (i *Interactor) End(ctx context.Context, input sessiondto.EndInput) (sessiondto.SessionOutput, error) {
	session, err := i.svc.End(ctx, input.UserID, input.SessionID)
	if err != nil {
		return sessiondto.SessionOutput{}, err
	}
	return toOutput(session), nil
}

func (i *Interactor) Abort(ctx context.Context, input sessiondto.AbortInput) (sessiondto.SessionOutput, error) {
	session, err := i.svc.Abort(ctx, input.UserID, input.SessionID, input.Reason)
	if err != nil {
		return sessiondto.SessionOutput{}, err
	}
	return toOutput(session), nil
}

func (i *Interactor) RecordInterruption(ctx context.Context, input sessiondto.InterruptInput) (sessiondto.SessionOutput, error) {
	session, err := i.svc.RecordInterruption(ctx, input.UserID, input.SessionID)
	if err != nil {
		return sessiondto.SessionOutput{}, err
	}
	return toOutput(session), nil
}

func (i *Interactor) GetActive(ctx context.Context, userID string) (sessiondto.SessionOutput, error) {
	session, err := i.svc.Active(ctx, userID)
	if err != nil {
		return sessiondto.SessionOutput{}, err
	}
	return toOutput(session), nil
}

func (i *Interactor) List(ctx context.Context, userID string) ([]sessiondto.SessionOutput, error) {
	sessions, err := i.svc.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]sessiondto.SessionOutput, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, toOutput(s))
	}
	return out, nil
}

func toOutput(s domain.Session) sessiondto.SessionOutput {
	return sessiondto.SessionOutput{
		ID:            s.ID,
		UserID:        s.UserID,
		StartTime:     s.StartTime,
		EndTime:       s.EndTime,
		WorkDuration:  s.WorkDuration,
		BreakDuration: s.BreakDuration,
		Title:         s.Title,
		Status:        string(s.Status),
		Interruptions: s.Interruptions,
		AbortReason:   s.AbortReason,
	}
}
