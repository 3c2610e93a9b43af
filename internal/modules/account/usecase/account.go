package usecase

import (
	"context"

	"focusflow/internal/modules/account/dto"
	accountin "focusflow/internal/modules/account/port/in"
	"focusflow/internal/modules/account/service"
)

type Interactor struct {
	svc *service.AccountService
}

func NewInteractor(svc *service.AccountService) accountin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Register(ctx context.Context, name string) (dto.RegisterOutput, error) {
	account, token, err := i.svc.Register(ctx, name)
	if err != nil {
		return dto.RegisterOutput{}, err
	}
	return dto.RegisterOutput{UserID: account.ID, Name: account.Name, Token: token}, nil
}

func (i *Interactor) Authenticate(ctx context.Context, token string) (string, error) {
	account, err := i.svc.Authenticate(ctx, token)
	if err != nil {
		return "", err
	}
	return account.ID, nil
}

func (i *Interactor) List(ctx context.Context) ([]dto.AccountOutput, error) {
	accounts, err := i.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AccountOutput, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, dto.AccountOutput{UserID: a.ID, Name: a.Name, CreatedAt: a.CreatedAt})
	}
	return out, nil
}
