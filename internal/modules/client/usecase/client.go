package usecase

import (
	"context"

	analyticsdto "focusflow/internal/modules/analytics/dto"
	blocklistdto "focusflow/internal/modules/blocklist/dto"
	"focusflow/internal/modules/client/domain"
	clientdto "focusflow/internal/modules/client/dto"
	clientin "focusflow/internal/modules/client/port/in"
	"focusflow/internal/modules/client/service"
	"focusflow/internal/platform/clock"
)

type Interactor struct {
	svc   *service.Controller
	clock clock.Clock
}

func NewInteractor(svc *service.Controller, clock clock.Clock) clientin.Usecase {
	return &Interactor{svc: svc, clock: clock}
}

func (i *Interactor) CheckActive(ctx context.Context) (clientdto.Active, error) {
	active, err := i.svc.CheckActive(ctx)
	if err != nil {
		return clientdto.Active{}, err
	}
	return i.toActive(active), nil
}

func (i *Interactor) Start(ctx context.Context, input clientdto.StartInput) (clientdto.Active, error) {
	active, err := i.svc.Start(ctx, input.WorkDuration, input.BreakDuration, input.Title)
	if err != nil {
		return clientdto.Active{}, err
	}
	return i.toActive(active), nil
}

func (i *Interactor) Tick(ctx context.Context) (clientdto.Tick, error) {
	tick, err := i.svc.Tick(ctx)
	out := clientdto.Tick{
		Remaining: tick.Remaining,
		Clock:     domain.FormatClock(tick.Remaining),
		Progress:  tick.Progress,
		TimeOver:  tick.TimeOver,
		AutoEnded: tick.AutoEnded,
	}
	return out, err
}

func (i *Interactor) Stop(ctx context.Context) error {
	return i.svc.Stop(ctx)
}

func (i *Interactor) Abort(ctx context.Context, reason string) error {
	return i.svc.Abort(ctx, reason)
}

func (i *Interactor) Interrupt(ctx context.Context) (int, error) {
	return i.svc.Interrupt(ctx)
}

func (i *Interactor) BreakOver(ctx context.Context) error {
	i.svc.BreakOver(ctx)
	return nil
}

func (i *Interactor) ListBlocklist(ctx context.Context) ([]clientdto.Entry, error) {
	entries, err := i.svc.Blocklist(ctx)
	if err != nil {
		return nil, err
	}
	return toEntries(entries), nil
}

func (i *Interactor) AddToBlocklist(ctx context.Context, input clientdto.AddInput) (clientdto.AddOutput, error) {
	out, err := i.svc.AddToBlocklist(ctx, input.Websites, input.Apps)
	if err != nil {
		return clientdto.AddOutput{}, err
	}
	return clientdto.AddOutput{Inserted: toEntries(out.Inserted), Duplicates: toEntries(out.Duplicates)}, nil
}

func (i *Interactor) RemoveFromBlocklist(ctx context.Context, entryID string) error {
	return i.svc.RemoveFromBlocklist(ctx, entryID)
}

func (i *Interactor) Analytics(ctx context.Context) (analyticsdto.Bundle, error) {
	return i.svc.Analytics(ctx)
}

func (i *Interactor) toActive(a domain.ActiveSession) clientdto.Active {
	now := i.clock.Now()
	remaining := a.Remaining(now)
	return clientdto.Active{
		SessionID:     a.SessionID,
		Title:         a.Title,
		StartTime:     a.StartTime,
		WorkDuration:  a.WorkDuration,
		BreakDuration: a.BreakDuration,
		Remaining:     remaining,
		Clock:         domain.FormatClock(remaining),
		Progress:      a.Progress(now),
	}
}

func toEntries(entries []blocklistdto.EntryOutput) []clientdto.Entry {
	out := make([]clientdto.Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, clientdto.Entry{ID: e.ID, Type: e.Type, Value: e.Value})
	}
	return out
}
