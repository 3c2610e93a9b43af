package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/hashicorp/go-hclog"

	"focusflow/internal/modules/extension/domain"
	extensionout "focusflow/internal/modules/extension/port/out"
	apperrors "focusflow/internal/platform/errors"
	"focusflow/internal/platform/hostname"
)

// Blocker keeps dynamic rules in step with the active session's website
// blocklist and reports blocked navigations as interruptions.
type Blocker struct {
	rules    extensionout.RuleEngine
	state    extensionout.StateStore
	tabs     extensionout.TabStore
	reporter extensionout.InterruptReporter
	log      hclog.Logger

	mu      sync.Mutex
	current domain.State
}

func NewBlocker(
	rules extensionout.RuleEngine,
	state extensionout.StateStore,
	tabs extensionout.TabStore,
	reporter extensionout.InterruptReporter,
	log hclog.Logger,
) *Blocker {
	return &Blocker{rules: rules, state: state, tabs: tabs, reporter: reporter, log: log}
}

// Restore reapplies a persisted session, if any.
func (b *Blocker) Restore(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	st, err := b.state.Load(ctx)
	if err != nil {
		return err
	}
	if !st.Active() {
		return nil
	}
	b.current = st
	b.log.Debug("restored session", "session", st.SessionID, "entries", len(st.Blocklist))
	if len(st.Blocklist) == 0 {
		return nil
	}
	return b.apply(ctx, st.Blocklist)
}

func (b *Blocker) Handle(ctx context.Context, msg domain.Message) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch msg.Type {
	case domain.MessageStart:
		websites := domain.Websites(msg.Start.Blocklist)
		b.current = domain.State{SessionID: msg.Start.SessionID, Token: msg.Start.Token, Blocklist: websites}
		if err := b.apply(ctx, websites); err != nil {
			return err
		}
		b.reload(ctx, domain.Domains(websites))
		b.log.Info("focus session started, blocklist applied", "session", msg.Start.SessionID, "rules", len(websites))
		return b.state.Save(ctx, b.current)
	case domain.MessageUpdate:
		websites := domain.Websites(msg.Entries)
		affected := domain.Union(b.current.Domains(), domain.Domains(websites))
		b.current.Blocklist = websites
		if err := b.apply(ctx, websites); err != nil {
			return err
		}
		b.reload(ctx, affected)
		b.log.Info("blocklist updated mid-session", "rules", len(websites))
		return b.state.Save(ctx, b.current)
	case domain.MessageEnd:
		domains := b.current.Domains()
		if err := b.rules.UpdateDynamicRules(ctx, domain.SessionRuleIDs(), nil); err != nil {
			return fmt.Errorf("clear rules: %w", err)
		}
		b.current = domain.State{}
		b.reload(ctx, domains)
		b.log.Info("focus session ended, rules cleared")
		return b.state.Clear(ctx)
	}
	return fmt.Errorf("%w: %q", domain.ErrUnknownMessage, msg.Type)
}

// Navigate simulates a main-frame navigation to url. A blocked navigation
// fires the rule-matched path; an allowed one opens a tab.
func (b *Blocker) Navigate(ctx context.Context, url string) (domain.Decision, error) {
	host := hostname.Normalize(url)
	if host == "" {
		return domain.Decision{}, apperrors.New(apperrors.ErrInvalidInput, "url has no host")
	}
	decision := domain.Decision{URL: url, Host: host}
	rules, err := b.rules.Rules(ctx)
	if err != nil {
		return domain.Decision{}, err
	}
	for _, rule := range rules {
		if rule.Action == domain.ActionBlock && rule.Matches(host) {
			decision.Blocked = true
			decision.RuleID = rule.ID
			decision.Reported = b.OnRuleMatched(ctx, rule.ID)
			return decision, nil
		}
	}
	if _, err := b.tabs.Open(ctx, url); err != nil {
		return domain.Decision{}, err
	}
	return decision, nil
}

// OnRuleMatched records an interruption for the current session. It reports
// whether the server accepted it; failures are logged only.
func (b *Blocker) OnRuleMatched(ctx context.Context, ruleID int) bool {
	b.mu.Lock()
	st := b.current
	b.mu.Unlock()
	if !st.Active() || !domain.IsSessionRule(ruleID) {
		return false
	}
	if err := b.reporter.ReportInterruption(ctx, st.SessionID, st.Token); err != nil {
		b.log.Error("failed to log interruption", "session", st.SessionID, "rule", ruleID, "error", err)
		return false
	}
	b.log.Info("interruption logged", "session", st.SessionID, "rule", ruleID)
	return true
}

func (b *Blocker) Status(ctx context.Context) (domain.Status, error) {
	b.mu.Lock()
	st := b.current
	b.mu.Unlock()
	rules, err := b.rules.Rules(ctx)
	if err != nil {
		return domain.Status{}, err
	}
	tabs, err := b.tabs.Tabs(ctx)
	if err != nil {
		return domain.Status{}, err
	}
	return domain.Status{Active: st.Active(), SessionID: st.SessionID, Rules: rules, Tabs: tabs}, nil
}

func (b *Blocker) apply(ctx context.Context, websites []domain.Entry) error {
	if err := b.rules.UpdateDynamicRules(ctx, domain.SessionRuleIDs(), domain.BuildRules(websites)); err != nil {
		return fmt.Errorf("update dynamic rules: %w", err)
	}
	return nil
}

func (b *Blocker) reload(ctx context.Context, domains []string) {
	tabs, err := b.tabs.Tabs(ctx)
	if err != nil {
		b.log.Warn("list tabs", "error", err)
		return
	}
	for _, tab := range domain.AffectedTabs(tabs, domains) {
		if err := b.tabs.Reload(ctx, tab.ID); err != nil {
			b.log.Warn("reload tab", "tab", tab.ID, "error", err)
		}
	}
}
