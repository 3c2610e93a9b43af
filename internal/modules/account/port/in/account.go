package in

import (
	"context"

	"focusflow/internal/modules/account/dto"
)

type Usecase interface {
	Register(ctx context.Context, name string) (dto.RegisterOutput, error)
	Authenticate(ctx context.Context, token string) (string, error)
	List(ctx context.Context) ([]dto.AccountOutput, error)
}
