package out

import (
	"context"

	"focusflow/internal/modules/blocklist/domain"
)

type EntryStore interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Entry, error)
	// FindByValues returns the user's entries whose value is in values,
	// regardless of type.
	FindByValues(ctx context.Context, userID string, values []string) ([]domain.Entry, error)
	InsertMany(ctx context.Context, entries []domain.Entry) error
	// Delete reports false when no entry with that id is owned by the user.
	Delete(ctx context.Context, userID, entryID string) (bool, error)
}
