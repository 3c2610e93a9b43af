package out

import (
	"context"

	"focusflow/internal/modules/account/domain"
)

type AccountStore interface {
	Create(ctx context.Context, account domain.Account) error
	// FindByTokenHash returns false when no account carries the hash.
	FindByTokenHash(ctx context.Context, hash string) (domain.Account, bool, error)
	List(ctx context.Context) ([]domain.Account, error)
}
