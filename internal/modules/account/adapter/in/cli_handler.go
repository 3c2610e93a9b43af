package in

import (
	"context"

	"focusflow/internal/modules/account/dto"
	accountin "focusflow/internal/modules/account/port/in"
)

type CLIHandler struct {
	usecase accountin.Usecase
}

func NewCLIHandler(usecase accountin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Register(ctx context.Context, name string) (dto.RegisterOutput, error) {
	return h.usecase.Register(ctx, name)
}

func (h CLIHandler) List(ctx context.Context) ([]dto.AccountOutput, error) {
	return h.usecase.List(ctx)
}
