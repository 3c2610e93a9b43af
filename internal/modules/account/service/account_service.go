package service

import (
	"context"
	"strings"

	"focusflow/internal/modules/account/domain"
	accountout "focusflow/internal/modules/account/port/out"
	"focusflow/internal/platform/clock"
	apperrors "focusflow/internal/platform/errors"
	"focusflow/internal/platform/id"
)

type AccountService struct {
	clock  clock.Clock
	idGen  id.Generator
	tokens id.Generator
	store  accountout.AccountStore
}

func NewAccountService(clock clock.Clock, idGen, tokens id.Generator, store accountout.AccountStore) *AccountService {
	return &AccountService{clock: clock, idGen: idGen, tokens: tokens, store: store}
}

// Register creates an account and returns it with its plaintext token.
func (s *AccountService) Register(ctx context.Context, name string) (domain.Account, string, error) {
	token := s.tokens.New()
	account := domain.Account{
		ID:        s.idGen.New(),
		Name:      strings.TrimSpace(name),
		TokenHash: domain.HashToken(token),
		CreatedAt: s.clock.Now(),
	}
	if err := account.Validate(); err != nil {
		return domain.Account{}, "", apperrors.New(apperrors.ErrInvalidInput, err.Error())
	}
	if err := s.store.Create(ctx, account); err != nil {
		return domain.Account{}, "", err
	}
	return account, token, nil
}

func (s *AccountService) Authenticate(ctx context.Context, token string) (domain.Account, error) {
	if token == "" {
		return domain.Account{}, apperrors.New(apperrors.ErrUnauthorized, "Unauthorized")
	}
	account, ok, err := s.store.FindByTokenHash(ctx, domain.HashToken(token))
	if err != nil {
		return domain.Account{}, err
	}
	if !ok {
		return domain.Account{}, apperrors.New(apperrors.ErrUnauthorized, "Invalid token")
	}
	return account, nil
}

func (s *AccountService) List(ctx context.Context) ([]domain.Account, error) {
	return s.store.List(ctx)
}
