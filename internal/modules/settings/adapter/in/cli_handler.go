package in

import (
	"context"

	"focusflow/internal/modules/settings/dto"
	settingsin "focusflow/internal/modules/settings/port/in"
)

// CLIHandler binds settings commands to the configured user.
type CLIHandler struct {
	usecase settingsin.Usecase
	userID  string
}

func NewCLIHandler(usecase settingsin.Usecase, userID string) CLIHandler {
	return CLIHandler{usecase: usecase, userID: userID}
}

func (h CLIHandler) Get(ctx context.Context, name string) (dto.Setting, error) {
	return h.usecase.Get(ctx, h.userID, name)
}

func (h CLIHandler) Set(ctx context.Context, name, value string) (dto.Setting, error) {
	return h.usecase.Set(ctx, h.userID, name, value)
}

func (h CLIHandler) List(ctx context.Context) ([]dto.Setting, error) {
	return h.usecase.List(ctx, h.userID)
}
