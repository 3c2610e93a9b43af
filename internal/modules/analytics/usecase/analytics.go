package usecase

import (
	"context"

	"focusflow/internal/modules/analytics/dto"
	analyticsin "focusflow/internal/modules/analytics/port/in"
	"focusflow/internal/modules/analytics/service"
)

type Interactor struct {
	svc *service.AnalyticsService
}

func NewInteractor(svc *service.AnalyticsService) analyticsin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) GetAnalytics(ctx context.Context, userID string) (dto.Bundle, error) {
	return i.svc.Compute(ctx, userID)
}
