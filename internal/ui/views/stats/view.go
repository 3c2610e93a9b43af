package stats

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"focusflow/internal/ui/theme"
)

// Port renders the analytics report for a given terminal width.
type Port interface {
	Stats(ctx context.Context, width int) (string, error)
}

// LoadedMsg carries a rendered report or the error that prevented it.
type LoadedMsg struct {
	Content string
	Err     error
}

type Model struct {
	port     Port
	viewport viewport.Model
	spinner  spinner.Model
	loading  bool
	loaded   bool
	width    int
	height   int
}

func New(port Port) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)
	return Model{port: port, viewport: viewport.New(0, 0), spinner: sp}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Loading() bool { return m.loading }

// Load fetches and renders the report. The returned Cmd produces a LoadedMsg.
func (m *Model) Load() tea.Cmd {
	if m.port == nil {
		return nil
	}
	m.loading = true
	port, width := m.port, m.width
	load := func() tea.Msg {
		content, err := port.Stats(context.Background(), width)
		return LoadedMsg{Content: content, Err: err}
	}
	return tea.Batch(load, m.spinner.Tick)
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = max(height-1, 1)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case LoadedMsg:
		m.loading = false
		m.loaded = true
		if msg.Err != nil {
			m.viewport.SetContent(theme.Hot.Render("Error: " + msg.Err.Error()))
			return m, nil
		}
		m.viewport.SetContent(msg.Content)
		m.viewport.GotoTop()
	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}
	var vCmd tea.Cmd
	m.viewport, vCmd = m.viewport.Update(msg)
	cmds = append(cmds, vCmd)
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	switch {
	case m.loading:
		return lipgloss.Place(m.width, max(m.height, 1), lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading analytics...")
	case !m.loaded:
		return theme.Muted.Render("Press r to load your analytics.")
	}
	footer := theme.Muted.Render(fmt.Sprintf("%.0f%%  r: refresh", m.viewport.ScrollPercent()*100))
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), footer)
}
