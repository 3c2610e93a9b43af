package out

import (
	"context"

	clientout "focusflow/internal/modules/client/port/out"
	extensiondto "focusflow/internal/modules/extension/dto"
	extensionin "focusflow/internal/modules/extension/port/in"
	notifydto "focusflow/internal/modules/notify/dto"
	notifyin "focusflow/internal/modules/notify/port/in"
)

// ExtensionBridge hands controller messages to the blocker relay.
type ExtensionBridge struct {
	relay extensionin.Relay
}

func NewExtensionBridge(relay extensionin.Relay) clientout.Extension {
	return &ExtensionBridge{relay: relay}
}

func (b *ExtensionBridge) Send(ctx context.Context, message extensiondto.Message) error {
	return b.relay.Send(ctx, message)
}

type NotifierBridge struct {
	notifier notifyin.Usecase
}

func NewNotifierBridge(notifier notifyin.Usecase) clientout.Notifier {
	return &NotifierBridge{notifier: notifier}
}

func (b *NotifierBridge) Notify(ctx context.Context, event notifydto.Event) error {
	_, err := b.notifier.Notify(ctx, event)
	return err
}
