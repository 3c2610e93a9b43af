package out

import (
	"context"

	"focusflow/internal/modules/extension/domain"
)

// RuleEngine holds dynamic block rules. Removals apply before additions.
type RuleEngine interface {
	UpdateDynamicRules(ctx context.Context, removeIDs []int, add []domain.Rule) error
	Rules(ctx context.Context) ([]domain.Rule, error)
}

type StateStore interface {
	Load(ctx context.Context) (domain.State, error)
	Save(ctx context.Context, state domain.State) error
	Clear(ctx context.Context) error
}

type TabStore interface {
	Tabs(ctx context.Context) ([]domain.Tab, error)
	Open(ctx context.Context, url string) (domain.Tab, error)
	Reload(ctx context.Context, tabID int) error
}

type InterruptReporter interface {
	ReportInterruption(ctx context.Context, sessionID, token string) error
}

type ManifestStore interface {
	Load(ctx context.Context) (domain.Manifest, error)
}

type Host interface {
	Handshake(ctx context.Context, manifest domain.Manifest) (domain.Status, error)
	Deliver(ctx context.Context, manifest domain.Manifest, message domain.Message) error
	Navigate(ctx context.Context, manifest domain.Manifest, url string) (domain.Decision, error)
}
