package usecase

import (
	"context"

	"focusflow/internal/modules/blocklist/domain"
	"focusflow/internal/modules/blocklist/dto"
	blocklistin "focusflow/internal/modules/blocklist/port/in"
	"focusflow/internal/modules/blocklist/service"
)

type Interactor struct {
	svc *service.BlocklistService
}

func NewInteractor(svc *service.BlocklistService) blocklistin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Add(ctx context.Context, input dto.AddInput) (dto.AddOutput, error) {
	inserted, duplicates, err := i.svc.Add(ctx, input.UserID, input.Websites, input.Apps)
	if err != nil {
		return dto.AddOutput{}, err
	}
	return dto.AddOutput{Inserted: toOutputs(inserted), Duplicates: toOutputs(duplicates)}, nil
}

func (i *Interactor) List(ctx context.Context, userID string) ([]dto.EntryOutput, error) {
	entries, err := i.svc.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toOutputs(entries), nil
}

func (i *Interactor) Remove(ctx context.Context, userID, entryID string) error {
	return i.svc.Remove(ctx, userID, entryID)
}

func toOutputs(entries []domain.Entry) []dto.EntryOutput {
	out := make([]dto.EntryOutput, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.EntryOutput{
			ID:        e.ID,
			UserID:    e.UserID,
			Type:      string(e.Type),
			Value:     e.Value,
			CreatedAt: e.CreatedAt,
		})
	}
	return out
}
