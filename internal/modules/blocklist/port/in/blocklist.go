package in

import (
	"context"

	"focusflow/internal/modules/blocklist/dto"
)

type Usecase interface {
	Add(ctx context.Context, input dto.AddInput) (dto.AddOutput, error)
	List(ctx context.Context, userID string) ([]dto.EntryOutput, error)
	Remove(ctx context.Context, userID, entryID string) error
}
