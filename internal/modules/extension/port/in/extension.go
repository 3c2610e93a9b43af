package in

import (
	"context"

	"focusflow/internal/modules/extension/dto"
)

// Relay is the client side: it launches the blocker and hands it messages.
type Relay interface {
	Send(ctx context.Context, message dto.Message) error
	Check(ctx context.Context, url string) (dto.Decision, error)
	Status(ctx context.Context) (dto.Status, error)
	Doctor(ctx context.Context) (dto.DoctorResult, error)
}

// Blocker runs inside the blocker process.
type Blocker interface {
	Restore(ctx context.Context) error
	// Deliver applies one encoded extension message.
	Deliver(ctx context.Context, raw []byte) error
	Navigate(ctx context.Context, url string) (dto.Decision, error)
	Status(ctx context.Context) (dto.Status, error)
}
