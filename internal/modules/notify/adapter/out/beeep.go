package out

import (
	"time"

	"github.com/gen2brain/beeep"

	notifyout "focusflow/internal/modules/notify/port/out"
)

// Beeep drives the system bell and desktop notifications.
type Beeep struct {
	icon string
}

func NewBeeep(icon string) *Beeep {
	return &Beeep{icon: icon}
}

var (
	_ notifyout.Speaker = (*Beeep)(nil)
	_ notifyout.Desktop = (*Beeep)(nil)
)

func (b *Beeep) Init(appName string) error {
	beeep.AppName = appName
	return nil
}

func (b *Beeep) Show(title, body string) error {
	return beeep.Notify(title, body, b.icon)
}

func (b *Beeep) Beep(frequency float64, duration time.Duration) error {
	return beeep.Beep(frequency, int(duration.Milliseconds()))
}
