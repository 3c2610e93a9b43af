package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	clientdto "focusflow/internal/modules/client/dto"
	"focusflow/internal/ui/components"
	"focusflow/internal/ui/theme"
	statsview "focusflow/internal/ui/views/stats"
	timerview "focusflow/internal/ui/views/timer"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type sessionPort interface {
	Tick(ctx context.Context) (clientdto.Tick, error)
	Stop(ctx context.Context) error
	Abort(ctx context.Context, reason string) error
	Interrupt(ctx context.Context) (int, error)
	BreakOver(ctx context.Context) error
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabTimer tabID = iota
	tabStats
	tabCount
)

var tabLabels = [tabCount]string{"Timer", "Stats"}

// ─── async messages ──────────────────────────────────────────────────────────

type stoppedMsg struct{ err error }

type abortedMsg struct {
	reason string
	err    error
}

type interruptedMsg struct {
	count int
	err   error
}

type breakNotifiedMsg struct{ err error }

// ─── key bindings ────────────────────────────────────────────────────────────

type keyMap struct {
	Tab       key.Binding
	Help      key.Binding
	Quit      key.Binding
	End       key.Binding
	Abort     key.Binding
	Interrupt key.Binding
	Refresh   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:       key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "switch tab")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		End:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "end session")),
		Abort:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "abort session")),
		Interrupt: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "log interruption")),
		Refresh:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh stats")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.End, k.Abort, k.Interrupt},
		{k.Tab, k.Refresh},
		{k.Help, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model of `focusflow timer`. The timer tab
// polls the session once a second; quitting the program stops the poll.
type Model struct {
	session sessionPort

	timerView timerview.Model
	statsView statsview.Model
	prompt    components.ReasonPrompt

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	ended     bool
	status    string
	width     int
	height    int
}

func NewModel(session sessionPort, stats statsview.Port, active clientdto.Active) Model {
	return Model{
		session:   session,
		timerView: timerview.New(session, active),
		statsView: statsview.New(stats),
		prompt:    components.NewReasonPrompt(),
		keys:      defaultKeys(),
		help:      help.New(),
		status:    "focus",
	}
}

func (m Model) Init() tea.Cmd {
	return m.timerView.Init()
}

// ─── update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The abort prompt takes every key while it is open.
	if _, isKey := msg.(tea.KeyMsg); isKey && m.prompt.Visible() {
		var cmd tea.Cmd
		m.prompt, cmd = m.prompt.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.prompt.SetWidth(min(msg.Width-4, 72))
		m.timerView.SetWidth(msg.Width)
		m.statsView.SetSize(msg.Width, msg.Height-4)
		return m, nil

	case timerview.EndedMsg:
		m.ended = true
		m.status = "Session completed!"
		return m, nil

	case timerview.BreakOverMsg:
		return m, m.breakOverCmd()

	case breakNotifiedMsg:
		if msg.err != nil {
			m.status = "break notification: " + msg.err.Error()
		} else {
			m.status = "Break Time Over"
		}
		return m, nil

	case stoppedMsg:
		if msg.err != nil {
			m.status = "Failed to end session properly: " + msg.err.Error()
			return m, nil
		}
		m.ended = true
		m.timerView.Stop()
		m.status = "Session Stopped"
		return m, nil

	case abortedMsg:
		if msg.err != nil {
			m.status = "Failed to abort session properly: " + msg.err.Error()
			return m, nil
		}
		m.ended = true
		m.timerView.Stop()
		m.status = "Session Aborted: " + msg.reason
		return m, nil

	case interruptedMsg:
		if msg.err != nil {
			m.status = "interruption not recorded: " + msg.err.Error()
		} else {
			m.status = fmt.Sprintf("interruptions: %d", msg.count)
		}
		return m, nil

	case components.ReasonSubmitMsg:
		m.status = "aborting..."
		return m, m.abortCmd(msg.Reason)

	case components.ReasonCancelMsg:
		m.status = "focus"
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.timerView.Stop()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
			return m, nil
		case key.Matches(msg, m.keys.Tab):
			if msg.String() == "shift+tab" {
				m.activeTab = (m.activeTab + tabCount - 1) % tabCount
			} else {
				m.activeTab = (m.activeTab + 1) % tabCount
			}
			if m.activeTab == tabStats && !m.statsView.Loading() {
				return m, m.statsView.Load()
			}
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			if m.activeTab == tabStats {
				return m, m.statsView.Load()
			}
			return m, nil
		case key.Matches(msg, m.keys.End):
			if m.ended {
				return m, nil
			}
			return m, m.stopCmd()
		case key.Matches(msg, m.keys.Abort):
			if m.ended {
				return m, nil
			}
			m.prompt.Open()
			return m, nil
		case key.Matches(msg, m.keys.Interrupt):
			if m.ended {
				return m, nil
			}
			return m, m.interruptCmd()
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.timerView, cmd = m.timerView.Update(msg)
	cmds = append(cmds, cmd)
	m.statsView, cmd = m.statsView.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	contentH := max(m.height-lipgloss.Height(tabBar)-lipgloss.Height(statusBar), 1)

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).Render(m.help.View(m.keys))
	case m.prompt.Visible():
		content = lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center, m.prompt.View())
	case m.activeTab == tabStats:
		content = m.statsView.View()
	default:
		content = m.timerView.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + tabLabels[i] + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + tabLabels[i] + " ")
		}
	}
	bar := "focusflow  " + strings.Join(parts, theme.Muted.Render(" │ "))
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	right := theme.Muted.Render("e:end  a:abort  i:interrupt  ?:help  q:quit")
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── commands ────────────────────────────────────────────────────────────────

func (m Model) stopCmd() tea.Cmd {
	session := m.session
	return func() tea.Msg {
		return stoppedMsg{err: session.Stop(context.Background())}
	}
}

func (m Model) abortCmd(reason string) tea.Cmd {
	session := m.session
	return func() tea.Msg {
		return abortedMsg{reason: reason, err: session.Abort(context.Background(), reason)}
	}
}

func (m Model) interruptCmd() tea.Cmd {
	session := m.session
	return func() tea.Msg {
		count, err := session.Interrupt(context.Background())
		return interruptedMsg{count: count, err: err}
	}
}

func (m Model) breakOverCmd() tea.Cmd {
	session := m.session
	return func() tea.Msg {
		return breakNotifiedMsg{err: session.BreakOver(context.Background())}
	}
}
