package app_test

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	clientdto "focusflow/internal/modules/client/dto"
	"focusflow/internal/ui/app"
)

type fakeSession struct {
	stopped    int
	abortedFor string
	interrupts int
	breakOver  int
}

func (f *fakeSession) Tick(context.Context) (clientdto.Tick, error) {
	return clientdto.Tick{Remaining: 600, Clock: "10:00", Progress: 0.6}, nil
}

func (f *fakeSession) Stop(context.Context) error {
	f.stopped++
	return nil
}

func (f *fakeSession) Abort(_ context.Context, reason string) error {
	f.abortedFor = reason
	return nil
}

func (f *fakeSession) Interrupt(context.Context) (int, error) {
	f.interrupts++
	return f.interrupts, nil
}

func (f *fakeSession) BreakOver(context.Context) error {
	f.breakOver++
	return nil
}

type fakeStats struct{ widths []int }

func (f *fakeStats) Stats(_ context.Context, width int) (string, error) {
	f.widths = append(f.widths, width)
	return "# FocusFlow Report", nil
}

func press(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// drive feeds msg to the model and follows the resulting commands until
// they stop producing plain messages.
func drive(t *testing.T, m tea.Model, msg tea.Msg) tea.Model {
	t.Helper()
	for i := 0; i < 5 && msg != nil; i++ {
		var cmd tea.Cmd
		m, cmd = m.Update(msg)
		if cmd == nil {
			return m
		}
		msg = cmd()
		if batch, ok := msg.(tea.BatchMsg); ok {
			if len(batch) == 0 || batch[0] == nil {
				return m
			}
			msg = batch[0]()
		}
	}
	return m
}

func newModel() (*fakeSession, *fakeStats, tea.Model) {
	session := &fakeSession{}
	stats := &fakeStats{}
	m := app.NewModel(session, stats, clientdto.Active{SessionID: "s1", Title: "Deep work", WorkDuration: 25, BreakDuration: 5})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return session, stats, next
}

func TestAbortAsksForAReason(t *testing.T) {
	t.Parallel()
	session, _, m := newModel()

	m, _ = m.Update(press("a"))
	if !strings.Contains(m.View(), "Reason for aborting") {
		t.Fatalf("expected the abort prompt, got %q", m.View())
	}
	m, _ = m.Update(press("2"))
	m = drive(t, m, press("enter"))

	if session.abortedFor != "Emergency situation" {
		t.Fatalf("expected abort with the picked reason, got %q", session.abortedFor)
	}
	if !strings.Contains(m.View(), "Session Aborted: Emergency situation") {
		t.Fatalf("expected aborted status, got %q", m.View())
	}

	m = drive(t, m, press("e"))
	if session.stopped != 0 {
		t.Fatalf("expected end to be ignored after abort")
	}
}

func TestEndAndInterruptKeys(t *testing.T) {
	t.Parallel()
	session, _, m := newModel()

	m = drive(t, m, press("i"))
	if session.interrupts != 1 || !strings.Contains(m.View(), "interruptions: 1") {
		t.Fatalf("expected one interruption, got %d / %q", session.interrupts, m.View())
	}
	m = drive(t, m, press("e"))
	if session.stopped != 1 || !strings.Contains(m.View(), "Session Stopped") {
		t.Fatalf("expected the session to stop, got %d / %q", session.stopped, m.View())
	}
}

func TestStatsTabLoadsReport(t *testing.T) {
	t.Parallel()
	_, stats, m := newModel()
	m = drive(t, m, press("tab"))
	if len(stats.widths) != 1 || stats.widths[0] != 100 {
		t.Fatalf("expected one stats render at width 100, got %v", stats.widths)
	}
	if !strings.Contains(m.View(), "FocusFlow Report") {
		t.Fatalf("expected report content, got %q", m.View())
	}
}

func TestQuit(t *testing.T) {
	t.Parallel()
	_, _, m := newModel()
	_, cmd := m.Update(press("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}
