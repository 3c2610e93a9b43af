package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/hashicorp/go-hclog"

	"focusflow/internal/modules/notify/domain"
	"focusflow/internal/modules/notify/dto"
	notifyout "focusflow/internal/modules/notify/port/out"
)

const AppName = "FocusFlow"

// Notifier plays sounds and shows desktop notifications for session events.
// It is inert until Configure loads a user's preferences.
type Notifier struct {
	speaker notifyout.Speaker
	desktop notifyout.Desktop
	prefs   notifyout.PreferenceSource
	log     hclog.Logger
	sleep   func(time.Duration)

	mu      sync.Mutex
	ready   bool
	current dto.Preferences
}

func NewNotifier(speaker notifyout.Speaker, desktop notifyout.Desktop, prefs notifyout.PreferenceSource, log hclog.Logger) *Notifier {
	return &Notifier{speaker: speaker, desktop: desktop, prefs: prefs, log: log, sleep: time.Sleep}
}

// WithSleep replaces the pause between beeps.
func (n *Notifier) WithSleep(sleep func(time.Duration)) *Notifier {
	n.sleep = sleep
	return n
}

func (n *Notifier) Init(context.Context) error {
	if err := n.desktop.Init(AppName); err != nil {
		return fmt.Errorf("init desktop notifications: %w", err)
	}
	return nil
}

func (n *Notifier) Configure(ctx context.Context, userID string) error {
	prefs, err := n.prefs.Preferences(ctx, userID)
	if err != nil {
		return fmt.Errorf("load notification preferences: %w", err)
	}
	n.mu.Lock()
	n.current = prefs
	n.ready = true
	n.mu.Unlock()
	n.log.Debug("notifier configured", "user", userID, "enabled", prefs.NotificationsEnabled, "volume", prefs.Volume, "muted", prefs.Muted)
	return nil
}

func (n *Notifier) Notify(_ context.Context, event domain.Event) (dto.Delivery, error) {
	n.mu.Lock()
	prefs, ready := n.current, n.ready
	n.mu.Unlock()
	if !ready {
		return dto.Delivery{}, nil
	}

	delivery := dto.Delivery{}
	var errs []error
	if prefs.NotificationsEnabled || event.Kind == domain.KindTest {
		msg := event.Message()
		if err := n.desktop.Show(msg.Title, msg.Body); err != nil {
			errs = append(errs, fmt.Errorf("show notification: %w", err))
		} else {
			delivery.Shown = true
		}
	}
	if !prefs.Muted && prefs.Volume > 0 {
		if err := n.play(domain.PatternFor(event.Kind)); err != nil {
			errs = append(errs, fmt.Errorf("play %s sound: %w", event.Kind, err))
		} else {
			delivery.Sounded = true
		}
	}
	return delivery, errors.Join(errs...)
}

func (n *Notifier) play(p domain.Pattern) error {
	for i, step := range p.Steps {
		d := time.Duration(math.Round(float64(p.Duration) * step))
		if err := n.speaker.Beep(p.Frequency, d); err != nil {
			return err
		}
		if i < len(p.Steps)-1 {
			n.sleep(p.Gap)
		}
	}
	return nil
}
