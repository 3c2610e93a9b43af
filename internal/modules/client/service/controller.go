package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/hashicorp/go-hclog"

	analyticsdto "focusflow/internal/modules/analytics/dto"
	blocklistdto "focusflow/internal/modules/blocklist/dto"
	"focusflow/internal/modules/client/domain"
	clientout "focusflow/internal/modules/client/port/out"
	extensiondto "focusflow/internal/modules/extension/dto"
	notifydto "focusflow/internal/modules/notify/dto"
	sessiondto "focusflow/internal/modules/session/dto"
	"focusflow/internal/platform/clock"
	apperrors "focusflow/internal/platform/errors"
)

// Controller owns the client-side view of the running session. Extension and
// notification failures are logged and never surface to the caller.
type Controller struct {
	clock     clock.Clock
	api       clientout.API
	cache     clientout.ActiveCache
	extension clientout.Extension
	notifier  clientout.Notifier
	token     string
	log       hclog.Logger

	mu        sync.Mutex
	active    *domain.ActiveSession
	autoEnded bool
}

func NewController(
	clock clock.Clock,
	api clientout.API,
	cache clientout.ActiveCache,
	extension clientout.Extension,
	notifier clientout.Notifier,
	token string,
	log hclog.Logger,
) *Controller {
	return &Controller{
		clock:     clock,
		api:       api,
		cache:     cache,
		extension: extension,
		notifier:  notifier,
		token:     token,
		log:       log,
	}
}

// CheckActive prefers the local cache and only asks the server when the
// cache is empty. A server hit is cached for later invocations.
func (c *Controller) CheckActive(ctx context.Context) (domain.ActiveSession, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.checkActive(ctx)
}

func (c *Controller) checkActive(ctx context.Context) (domain.ActiveSession, error) {
	if c.active != nil {
		return *c.active, nil
	}
	cached, err := c.cache.Load(ctx)
	if err == nil {
		c.adopt(cached)
		return cached, nil
	}
	if !errors.Is(err, apperrors.ErrNoActiveSession) {
		c.log.Warn("active session cache unreadable", "error", err)
	}

	record, ok, err := c.api.ActiveSession(ctx)
	if err != nil {
		return domain.ActiveSession{}, err
	}
	if !ok {
		return domain.ActiveSession{}, apperrors.ErrNoActiveSession
	}
	active := fromRecord(record)
	if err := c.cache.Save(ctx, active); err != nil {
		c.log.Warn("cache active session", "error", err)
	}
	c.adopt(active)
	return active, nil
}

func (c *Controller) Start(ctx context.Context, workDuration, breakDuration int, title string) (domain.ActiveSession, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	record, err := c.api.StartSession(ctx, workDuration, breakDuration, title)
	if err != nil {
		return domain.ActiveSession{}, err
	}
	active := fromRecord(record)
	if err := c.cache.Save(ctx, active); err != nil {
		c.log.Warn("cache active session", "error", err)
	}
	c.adopt(active)

	c.sendStart(ctx, active)
	c.notify(ctx, notifydto.Event{Kind: domain.NotifyStart, Minutes: active.WorkDuration, Title: active.Title})
	c.log.Info("session started", "session", active.SessionID, "work", active.WorkDuration)
	return active, nil
}

// Tick reports the remaining time. The first tick that finds the work phase
// over ends the session once; later ticks only report TIME OVER.
func (c *Controller) Tick(ctx context.Context) (domain.Tick, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	over := domain.Tick{Progress: 1, TimeOver: true}
	if c.autoEnded && c.active == nil {
		return over, nil
	}
	active, err := c.checkActive(ctx)
	if err != nil {
		return domain.Tick{}, err
	}
	now := c.clock.Now()
	tick := domain.Tick{Remaining: active.Remaining(now), Progress: active.Progress(now)}
	if tick.Remaining > 0 {
		return tick, nil
	}
	if c.autoEnded {
		return over, nil
	}
	c.autoEnded = true
	if _, err := c.api.EndSession(ctx, active.SessionID); err != nil {
		return over, fmt.Errorf("end session automatically: %w", err)
	}
	c.finish(ctx, active)
	c.notify(ctx, notifydto.Event{Kind: domain.NotifyEnd})
	c.log.Info("session completed", "session", active.SessionID)
	over.AutoEnded = true
	return over, nil
}

// Stop ends the running session before its timer runs out.
func (c *Controller) Stop(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	active, err := c.checkActive(ctx)
	if err != nil {
		return err
	}
	if _, err := c.api.EndSession(ctx, active.SessionID); err != nil {
		return err
	}
	c.finish(ctx, active)
	c.autoEnded = false
	c.log.Info("session stopped", "session", active.SessionID)
	return nil
}

func (c *Controller) Abort(ctx context.Context, reason string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	active, err := c.checkActive(ctx)
	if err != nil {
		return err
	}
	if _, err := c.api.AbortSession(ctx, active.SessionID, reason); err != nil {
		return err
	}
	c.finish(ctx, active)
	c.autoEnded = false
	c.notify(ctx, notifydto.Event{Kind: domain.NotifyAbort})
	c.log.Info("session aborted", "session", active.SessionID)
	return nil
}

// Interrupt records one interruption on the running session and returns the
// new count.
func (c *Controller) Interrupt(ctx context.Context) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	active, err := c.checkActive(ctx)
	if err != nil {
		return 0, err
	}
	record, err := c.api.RecordInterruption(ctx, active.SessionID)
	if err != nil {
		return 0, err
	}
	return record.Interruptions, nil
}

func (c *Controller) BreakOver(ctx context.Context) {
	c.notify(ctx, notifydto.Event{Kind: domain.NotifyBreakOver})
}

func (c *Controller) Blocklist(ctx context.Context) ([]blocklistdto.EntryOutput, error) {
	return c.api.Blocklist(ctx)
}

func (c *Controller) AddToBlocklist(ctx context.Context, websites, apps []string) (blocklistdto.AddOutput, error) {
	out, err := c.api.AddToBlocklist(ctx, websites, apps)
	if err != nil {
		return blocklistdto.AddOutput{}, err
	}
	c.syncBlocklist(ctx)
	return out, nil
}

func (c *Controller) RemoveFromBlocklist(ctx context.Context, entryID string) error {
	if err := c.api.RemoveFromBlocklist(ctx, entryID); err != nil {
		return err
	}
	c.syncBlocklist(ctx)
	return nil
}

func (c *Controller) Analytics(ctx context.Context) (analyticsdto.Bundle, error) {
	return c.api.Analytics(ctx)
}

// syncBlocklist pushes the full list to the blocker while a session runs.
func (c *Controller) syncBlocklist(ctx context.Context) {
	c.mu.Lock()
	_, err := c.checkActive(ctx)
	c.mu.Unlock()
	if err != nil {
		if !errors.Is(err, apperrors.ErrNoActiveSession) {
			c.log.Warn("check active session before blocklist sync", "error", err)
		}
		return
	}
	entries, err := c.api.Blocklist(ctx)
	if err != nil {
		c.log.Warn("fetch blocklist for extension", "error", err)
		return
	}
	c.send(ctx, extensiondto.Message{Type: domain.MessageUpdate, Blocklist: toExtensionEntries(entries)})
}

func (c *Controller) sendStart(ctx context.Context, active domain.ActiveSession) {
	entries, err := c.api.Blocklist(ctx)
	if err != nil {
		c.log.Warn("fetch blocklist for extension", "error", err)
		return
	}
	c.send(ctx, extensiondto.Message{
		Type:      domain.MessageStart,
		SessionID: active.SessionID,
		Token:     c.token,
		Duration:  active.WorkDuration,
		Blocklist: toExtensionEntries(entries),
	})
}

func (c *Controller) finish(ctx context.Context, active domain.ActiveSession) {
	c.send(ctx, extensiondto.Message{Type: domain.MessageEnd})
	if err := c.cache.Clear(ctx); err != nil {
		c.log.Warn("clear active session cache", "session", active.SessionID, "error", err)
	}
	c.active = nil
}

func (c *Controller) send(ctx context.Context, msg extensiondto.Message) {
	if err := c.extension.Send(ctx, msg); err != nil {
		c.log.Warn("extension message not delivered", "type", msg.Type, "error", err)
	}
}

func (c *Controller) notify(ctx context.Context, event notifydto.Event) {
	if err := c.notifier.Notify(ctx, event); err != nil {
		c.log.Warn("notification failed", "kind", event.Kind, "error", err)
	}
}

// adopt makes session the current one and rearms the auto-end guard when it
// is a different session.
func (c *Controller) adopt(session domain.ActiveSession) {
	if c.active == nil || c.active.SessionID != session.SessionID {
		c.autoEnded = false
	}
	c.active = &session
}

func fromRecord(record sessiondto.SessionOutput) domain.ActiveSession {
	return domain.ActiveSession{
		SessionID:     record.ID,
		UserID:        record.UserID,
		StartTime:     record.StartTime,
		WorkDuration:  record.WorkDuration,
		BreakDuration: record.BreakDuration,
		Title:         record.Title,
	}
}

func toExtensionEntries(entries []blocklistdto.EntryOutput) []extensiondto.Entry {
	out := make([]extensiondto.Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, extensiondto.Entry{Type: e.Type, Value: e.Value})
	}
	return out
}
