package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	apperrors "focusflow/internal/platform/errors"
)

func TestErrorKeepsKindThroughWrapping(t *testing.T) {
	t.Parallel()
	err := fmt.Errorf("blocklist add: %w", apperrors.New(apperrors.ErrInvalidInput, "No valid items provided"))
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input kind")
	}
	if got := apperrors.Message(err, "fallback"); got != "No valid items provided" {
		t.Fatalf("unexpected message %q", got)
	}
	if got := apperrors.Message(errors.New("boom"), "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}
}
