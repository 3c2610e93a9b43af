package in

import (
	"context"

	"focusflow/internal/modules/extension/dto"
	extensionin "focusflow/internal/modules/extension/port/in"
)

type CLIHandler struct {
	relay extensionin.Relay
}

func NewCLIHandler(relay extensionin.Relay) CLIHandler {
	return CLIHandler{relay: relay}
}

func (h CLIHandler) Check(ctx context.Context, url string) (dto.Decision, error) {
	return h.relay.Check(ctx, url)
}

func (h CLIHandler) Status(ctx context.Context) (dto.Status, error) {
	return h.relay.Status(ctx)
}

func (h CLIHandler) Doctor(ctx context.Context) (dto.DoctorResult, error) {
	return h.relay.Doctor(ctx)
}
