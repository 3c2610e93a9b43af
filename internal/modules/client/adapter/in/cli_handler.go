package in

import (
	"context"

	analyticsdto "focusflow/internal/modules/analytics/dto"
	clientdto "focusflow/internal/modules/client/dto"
	clientin "focusflow/internal/modules/client/port/in"
)

type CLIHandler struct {
	usecase clientin.Usecase
}

func NewCLIHandler(usecase clientin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context, workDuration, breakDuration int, title string) (clientdto.Active, error) {
	return h.usecase.Start(ctx, clientdto.StartInput{WorkDuration: workDuration, BreakDuration: breakDuration, Title: title})
}

func (h CLIHandler) Active(ctx context.Context) (clientdto.Active, error) {
	return h.usecase.CheckActive(ctx)
}

func (h CLIHandler) Tick(ctx context.Context) (clientdto.Tick, error) {
	return h.usecase.Tick(ctx)
}

func (h CLIHandler) Stop(ctx context.Context) error {
	return h.usecase.Stop(ctx)
}

func (h CLIHandler) Abort(ctx context.Context, reason string) error {
	return h.usecase.Abort(ctx, reason)
}

func (h CLIHandler) Interrupt(ctx context.Context) (int, error) {
	return h.usecase.Interrupt(ctx)
}

func (h CLIHandler) BreakOver(ctx context.Context) error {
	return h.usecase.BreakOver(ctx)
}

func (h CLIHandler) Blocklist(ctx context.Context) ([]clientdto.Entry, error) {
	return h.usecase.ListBlocklist(ctx)
}

func (h CLIHandler) AddToBlocklist(ctx context.Context, websites, apps []string) (clientdto.AddOutput, error) {
	return h.usecase.AddToBlocklist(ctx, clientdto.AddInput{Websites: websites, Apps: apps})
}

func (h CLIHandler) RemoveFromBlocklist(ctx context.Context, entryID string) error {
	return h.usecase.RemoveFromBlocklist(ctx, entryID)
}

func (h CLIHandler) Analytics(ctx context.Context) (analyticsdto.Bundle, error) {
	return h.usecase.Analytics(ctx)
}
