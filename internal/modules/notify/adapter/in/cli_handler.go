package in

import (
	"context"

	"focusflow/internal/modules/notify/dto"
	notifyin "focusflow/internal/modules/notify/port/in"
)

type CLIHandler struct {
	usecase notifyin.Usecase
}

func NewCLIHandler(usecase notifyin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

// Test plays the test pattern and shows the test notification.
func (h CLIHandler) Test(ctx context.Context) (dto.Delivery, error) {
	return h.usecase.Notify(ctx, dto.Event{Kind: "test"})
}
