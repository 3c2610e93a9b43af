package usecase

import (
	"context"

	"focusflow/internal/modules/extension/domain"
	"focusflow/internal/modules/extension/dto"
	extensionin "focusflow/internal/modules/extension/port/in"
	"focusflow/internal/modules/extension/service"
	apperrors "focusflow/internal/platform/errors"
)

type RelayInteractor struct {
	svc *service.Relay
}

func NewRelayInteractor(svc *service.Relay) extensionin.Relay {
	return &RelayInteractor{svc: svc}
}

func (i *RelayInteractor) Send(ctx context.Context, message dto.Message) error {
	msg, err := toDomainMessage(message)
	if err != nil {
		return err
	}
	return i.svc.Send(ctx, msg)
}

func (i *RelayInteractor) Check(ctx context.Context, url string) (dto.Decision, error) {
	d, err := i.svc.Check(ctx, url)
	if err != nil {
		return dto.Decision{}, err
	}
	return toDecision(d), nil
}

func (i *RelayInteractor) Status(ctx context.Context) (dto.Status, error) {
	st, err := i.svc.Status(ctx)
	if err != nil {
		return dto.Status{}, err
	}
	return toStatus(st), nil
}

func (i *RelayInteractor) Doctor(ctx context.Context) (dto.DoctorResult, error) {
	return i.svc.Doctor(ctx)
}

type BlockerInteractor struct {
	svc *service.Blocker
}

func NewBlockerInteractor(svc *service.Blocker) extensionin.Blocker {
	return &BlockerInteractor{svc: svc}
}

func (i *BlockerInteractor) Restore(ctx context.Context) error {
	return i.svc.Restore(ctx)
}

func (i *BlockerInteractor) Deliver(ctx context.Context, raw []byte) error {
	msg, err := domain.Decode(raw)
	if err != nil {
		return apperrors.New(apperrors.ErrInvalidInput, err.Error())
	}
	return i.svc.Handle(ctx, msg)
}

func (i *BlockerInteractor) Navigate(ctx context.Context, url string) (dto.Decision, error) {
	d, err := i.svc.Navigate(ctx, url)
	if err != nil {
		return dto.Decision{}, err
	}
	return toDecision(d), nil
}

func (i *BlockerInteractor) Status(ctx context.Context) (dto.Status, error) {
	st, err := i.svc.Status(ctx)
	if err != nil {
		return dto.Status{}, err
	}
	return toStatus(st), nil
}

func toDomainMessage(m dto.Message) (domain.Message, error) {
	entries := make([]domain.Entry, 0, len(m.Blocklist))
	for _, e := range m.Blocklist {
		entries = append(entries, domain.Entry{Type: e.Type, Value: e.Value})
	}
	switch t := domain.MessageType(m.Type); t {
	case domain.MessageStart:
		if m.SessionID == "" {
			return domain.Message{}, apperrors.New(apperrors.ErrInvalidInput, "session id is required")
		}
		return domain.Message{Type: t, Start: domain.StartPayload{
			SessionID: m.SessionID,
			Token:     m.Token,
			Duration:  m.Duration,
			Blocklist: entries,
		}}, nil
	case domain.MessageUpdate:
		return domain.Message{Type: t, Entries: entries}, nil
	case domain.MessageEnd:
		return domain.Message{Type: t}, nil
	}
	return domain.Message{}, apperrors.New(apperrors.ErrInvalidInput, "unknown extension message: "+m.Type)
}

func toDecision(d domain.Decision) dto.Decision {
	return dto.Decision{URL: d.URL, Host: d.Host, Blocked: d.Blocked, RuleID: d.RuleID, Reported: d.Reported}
}

func toStatus(st domain.Status) dto.Status {
	out := dto.Status{
		Active:    st.Active,
		SessionID: st.SessionID,
		Rules:     make([]dto.Rule, 0, len(st.Rules)),
		Tabs:      make([]dto.Tab, 0, len(st.Tabs)),
	}
	for _, r := range st.Rules {
		out.Rules = append(out.Rules, dto.Rule{ID: r.ID, Domain: r.Domain()})
	}
	for _, t := range st.Tabs {
		out.Tabs = append(out.Tabs, dto.Tab{ID: t.ID, URL: t.URL, Reloads: t.Reloads})
	}
	return out
}
