package components_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"focusflow/internal/ui/components"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestReasonPromptRequiresAReason(t *testing.T) {
	t.Parallel()
	p := components.NewReasonPrompt()
	p.Open()

	p, cmd := p.Update(key("enter"))
	if cmd != nil || !p.Visible() {
		t.Fatalf("expected enter without a reason to be ignored")
	}

	p, _ = p.Update(key("4"))
	if p.Reason() != "Feeling unwell" {
		t.Fatalf("expected preset 4, got %q", p.Reason())
	}
	p, cmd = p.Update(key("enter"))
	if p.Visible() || cmd == nil {
		t.Fatalf("expected the prompt to close with a submit command")
	}
	msg, ok := cmd().(components.ReasonSubmitMsg)
	if !ok || msg.Reason != "Feeling unwell" {
		t.Fatalf("unexpected submit message: %#v", msg)
	}
}

func TestReasonPromptCustomText(t *testing.T) {
	t.Parallel()
	p := components.NewReasonPrompt()
	p.Open()

	p, _ = p.Update(key("9"))
	if p.Reason() != "" {
		t.Fatalf("expected empty custom reason, got %q", p.Reason())
	}
	p, _ = p.Update(key("fire drill"))
	if p.Reason() != "fire drill" {
		t.Fatalf("expected typed reason, got %q", p.Reason())
	}
}

func TestReasonPromptCancel(t *testing.T) {
	t.Parallel()
	p := components.NewReasonPrompt()
	p.Open()
	p, cmd := p.Update(key("esc"))
	if p.Visible() || cmd == nil {
		t.Fatalf("expected esc to close the prompt")
	}
	if _, ok := cmd().(components.ReasonCancelMsg); !ok {
		t.Fatalf("expected ReasonCancelMsg")
	}
}
