package service

import (
	"context"
	"time"

	"focusflow/internal/modules/analytics/domain"
	analyticsout "focusflow/internal/modules/analytics/port/out"
	"focusflow/internal/platform/clock"
	apperrors "focusflow/internal/platform/errors"
)

type AnalyticsService struct {
	clock  clock.Clock
	source analyticsout.SessionSource
	loc    *time.Location
}

func NewAnalyticsService(clock clock.Clock, source analyticsout.SessionSource, loc *time.Location) *AnalyticsService {
	if loc == nil {
		loc = time.Local
	}
	return &AnalyticsService{clock: clock, source: source, loc: loc}
}

// Compute recomputes the bundle from scratch on every call.
func (s *AnalyticsService) Compute(ctx context.Context, userID string) (domain.Bundle, error) {
	if userID == "" {
		return domain.Bundle{}, apperrors.New(apperrors.ErrInvalidInput, "user id is required")
	}
	records, err := s.source.Records(ctx, userID)
	if err != nil {
		return domain.Bundle{}, err
	}
	return domain.Compute(records, s.clock.Now(), s.loc), nil
}
