package service

import (
	"context"

	"focusflow/internal/modules/blocklist/domain"
	blocklistout "focusflow/internal/modules/blocklist/port/out"
	"focusflow/internal/platform/clock"
	apperrors "focusflow/internal/platform/errors"
	"focusflow/internal/platform/id"
)

type BlocklistService struct {
	clock clock.Clock
	idGen id.Generator
	store blocklistout.EntryStore
}

func NewBlocklistService(clock clock.Clock, idGen id.Generator, store blocklistout.EntryStore) *BlocklistService {
	return &BlocklistService{clock: clock, idGen: idGen, store: store}
}

// Add inserts the values the user does not have yet. Values already on the
// user's list are returned as duplicates and left untouched.
func (s *BlocklistService) Add(ctx context.Context, userID string, websites, apps []string) ([]domain.Entry, []domain.Entry, error) {
	if userID == "" {
		return nil, nil, apperrors.New(apperrors.ErrInvalidInput, "user id is required")
	}
	candidates := domain.Candidates(websites, apps)
	if len(candidates) == 0 {
		return nil, nil, apperrors.New(apperrors.ErrInvalidInput, "No valid items provided")
	}

	values := make([]string, 0, len(candidates))
	for _, c := range candidates {
		values = append(values, c.Value)
	}
	duplicates, err := s.store.FindByValues(ctx, userID, values)
	if err != nil {
		return nil, nil, err
	}
	existing := make(map[string]struct{}, len(duplicates))
	for _, d := range duplicates {
		existing[d.Value] = struct{}{}
	}

	now := s.clock.Now()
	inserted := make([]domain.Entry, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := existing[c.Value]; ok {
			continue
		}
		inserted = append(inserted, domain.Entry{
			ID:        s.idGen.New(),
			UserID:    userID,
			Type:      c.Type,
			Value:     c.Value,
			CreatedAt: now,
		})
	}
	if len(inserted) > 0 {
		if err := s.store.InsertMany(ctx, inserted); err != nil {
			return nil, nil, err
		}
	}
	return inserted, duplicates, nil
}

func (s *BlocklistService) List(ctx context.Context, userID string) ([]domain.Entry, error) {
	if userID == "" {
		return nil, apperrors.New(apperrors.ErrInvalidInput, "user id is required")
	}
	return s.store.ListByUser(ctx, userID)
}

func (s *BlocklistService) Remove(ctx context.Context, userID, entryID string) error {
	if entryID == "" {
		return apperrors.New(apperrors.ErrInvalidInput, "entry id is required")
	}
	removed, err := s.store.Delete(ctx, userID, entryID)
	if err != nil {
		return err
	}
	if !removed {
		return apperrors.New(apperrors.ErrNotFound, "Item not found")
	}
	return nil
}
