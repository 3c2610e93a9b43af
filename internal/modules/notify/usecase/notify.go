package usecase

import (
	"context"

	"focusflow/internal/modules/notify/domain"
	"focusflow/internal/modules/notify/dto"
	notifyin "focusflow/internal/modules/notify/port/in"
	"focusflow/internal/modules/notify/service"
	apperrors "focusflow/internal/platform/errors"
)

type Interactor struct {
	svc *service.Notifier
}

func NewInteractor(svc *service.Notifier) notifyin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Init(ctx context.Context) error {
	return i.svc.Init(ctx)
}

func (i *Interactor) Configure(ctx context.Context, userID string) error {
	return i.svc.Configure(ctx, userID)
}

func (i *Interactor) Notify(ctx context.Context, event dto.Event) (dto.Delivery, error) {
	kind, err := domain.ParseKind(event.Kind)
	if err != nil {
		return dto.Delivery{}, apperrors.New(apperrors.ErrInvalidInput, err.Error())
	}
	return i.svc.Notify(ctx, domain.Event{Kind: kind, Minutes: event.Minutes, Title: event.Title})
}
