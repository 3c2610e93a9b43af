package timer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	clientdto "focusflow/internal/modules/client/dto"
	"focusflow/internal/ui/theme"
)

const pollInterval = time.Second

// Port is the slice of the client usecase the timer polls.
type Port interface {
	Tick(ctx context.Context) (clientdto.Tick, error)
}

// TickMsg fires once per poll interval.
type TickMsg time.Time

type polledMsg struct {
	at   time.Time
	tick clientdto.Tick
	err  error
}

// EndedMsg is emitted on the poll that auto-ended the session.
type EndedMsg struct{}

// BreakOverMsg is emitted once when the break countdown reaches zero.
type BreakOverMsg struct{}

type phase int

const (
	phaseInit phase = iota
	phaseWork
	phaseTimeOver
	phaseBreak
	phaseBreakOver
	phaseStopped
)

type Model struct {
	port     Port
	active   clientdto.Active
	progress progress.Model
	phase    phase
	tick     clientdto.Tick
	breakEnd time.Time
	breakAt  int
	err      error
	width    int
}

func New(port Port, active clientdto.Active) Model {
	bar := progress.New(progress.WithGradient(string(theme.Lavender), string(theme.Peach)), progress.WithoutPercentage())
	return Model{port: port, active: active, progress: bar}
}

func (m Model) Init() tea.Cmd {
	return m.poll(time.Now())
}

// Stop halts polling, used once the session was ended or aborted by hand.
func (m *Model) Stop() { m.phase = phaseStopped }

func (m Model) Stopped() bool { return m.phase == phaseStopped }

func (m Model) TimeOver() bool { return m.phase >= phaseTimeOver && m.phase != phaseStopped }

func (m *Model) SetWidth(w int) {
	m.width = w
	m.progress.Width = min(max(w-8, 10), 60)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if m.phase == phaseStopped || m.phase == phaseBreakOver {
			return m, nil
		}
		if m.phase == phaseBreak {
			return m.breakTick(time.Time(msg))
		}
		return m, m.poll(time.Time(msg))

	case polledMsg:
		if m.phase == phaseStopped {
			return m, nil
		}
		m.err = msg.err
		m.tick = msg.tick
		if !msg.tick.TimeOver {
			m.phase = phaseWork
			return m, schedule()
		}
		if m.phase < phaseTimeOver {
			m.phase = phaseTimeOver
		}
		if !msg.tick.AutoEnded {
			return m, schedule()
		}
		cmds := []tea.Cmd{func() tea.Msg { return EndedMsg{} }}
		if m.active.BreakDuration > 0 {
			m.phase = phaseBreak
			m.breakEnd = msg.at.Add(time.Duration(m.active.BreakDuration) * time.Minute)
			m.breakAt = m.active.BreakDuration * 60
			cmds = append(cmds, schedule())
		}
		return m, tea.Batch(cmds...)
	}
	return m, nil
}

func (m Model) breakTick(now time.Time) (Model, tea.Cmd) {
	left := m.breakEnd.Sub(now)
	if left > 0 {
		m.breakAt = int((left + time.Second - 1) / time.Second)
		return m, schedule()
	}
	m.breakAt = 0
	m.phase = phaseBreakOver
	return m, func() tea.Msg { return BreakOverMsg{} }
}

func (m Model) poll(at time.Time) tea.Cmd {
	port := m.port
	return func() tea.Msg {
		tick, err := port.Tick(context.Background())
		return polledMsg{at: at, tick: tick, err: err}
	}
}

func schedule() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) View() string {
	var sb strings.Builder
	title := m.active.Title
	if title == "" {
		title = "Focus session"
	}
	sb.WriteString(theme.Title.Render(title) + "\n")
	sb.WriteString(theme.Muted.Render(fmt.Sprintf("%d min focus, %d min break", m.active.WorkDuration, m.active.BreakDuration)) + "\n\n")

	switch m.phase {
	case phaseInit:
		sb.WriteString(theme.Muted.Render("Initializing timer..."))
	case phaseWork:
		sb.WriteString(theme.Clock.Render(m.tick.Clock) + "\n")
		sb.WriteString(theme.Muted.Render("Focus time remaining") + "\n\n")
		sb.WriteString(m.progress.ViewAs(m.tick.Progress))
	case phaseTimeOver:
		sb.WriteString(theme.TimeOver.Render("TIME OVER") + "\n")
		sb.WriteString(theme.Muted.Render("Your focus session has ended!"))
	case phaseBreak:
		sb.WriteString(theme.TimeOver.Render("TIME OVER") + "\n\n")
		sb.WriteString(theme.Break.Render(fmt.Sprintf("%02d:%02d", m.breakAt/60, m.breakAt%60)) + "\n")
		sb.WriteString(theme.Muted.Render("Break time remaining"))
	case phaseBreakOver:
		sb.WriteString(theme.Break.Render("Break Time Over") + "\n")
		sb.WriteString(theme.Muted.Render("Ready to start another focus session?"))
	case phaseStopped:
		sb.WriteString(theme.Muted.Render("Session closed."))
	}
	if m.err != nil {
		sb.WriteString("\n\n" + theme.Hot.Render("Error: "+m.err.Error()))
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(sb.String())
}
