package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"focusflow/internal/ui/theme"
)

// ReasonSubmitMsg is emitted when the user confirms an abort reason.
type ReasonSubmitMsg struct{ Reason string }

// ReasonCancelMsg is emitted when the user presses esc.
type ReasonCancelMsg struct{}

// AbortReasons are offered as numbered presets. The last one asks for
// free text.
var AbortReasons = []string{
	"Urgent interruption",
	"Emergency situation",
	"Technical issues",
	"Feeling unwell",
	"Lost motivation",
	"Distraction too strong",
	"Wrong session settings",
	"Need to take a call",
	"Other",
}

const maxReasonLength = 200

var promptStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.RoundedBorder()).
	BorderForeground(theme.Red).
	Background(theme.Mantle).
	Foreground(theme.Text).
	Padding(0, 1)

// ReasonPrompt asks why a session is being aborted. A reason is required:
// enter does nothing until a preset is picked or custom text is typed.
type ReasonPrompt struct {
	input    textinput.Model
	visible  bool
	selected int
	custom   bool
	width    int
}

func NewReasonPrompt() ReasonPrompt {
	ti := textinput.New()
	ti.Placeholder = "Tell us more about why you're aborting this session..."
	ti.CharLimit = maxReasonLength
	return ReasonPrompt{input: ti, selected: -1}
}

func (p ReasonPrompt) Visible() bool { return p.visible }

func (p *ReasonPrompt) Open() {
	p.visible = true
	p.selected = -1
	p.custom = false
	p.input.SetValue("")
	p.input.Blur()
}

func (p *ReasonPrompt) SetWidth(w int) { p.width = w }

// Reason is the reason that enter would submit, empty while invalid.
func (p ReasonPrompt) Reason() string {
	if p.custom {
		return strings.TrimSpace(p.input.Value())
	}
	if p.selected < 0 {
		return ""
	}
	return AbortReasons[p.selected]
}

func (p ReasonPrompt) Update(msg tea.Msg) (ReasonPrompt, tea.Cmd) {
	if !p.visible {
		return p, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			p.visible = false
			p.input.Blur()
			return p, func() tea.Msg { return ReasonCancelMsg{} }
		case "enter":
			reason := p.Reason()
			if reason == "" {
				return p, nil
			}
			p.visible = false
			p.input.Blur()
			return p, func() tea.Msg { return ReasonSubmitMsg{Reason: reason} }
		}
		if !p.custom {
			if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 && n <= len(AbortReasons) {
				p.selected = n - 1
				if n == len(AbortReasons) {
					p.custom = true
					cmd := p.input.Focus()
					return p, cmd
				}
			}
			return p, nil
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p ReasonPrompt) View() string {
	if !p.visible {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Abort session") + "\n")
	sb.WriteString(theme.Muted.Render("Reason for aborting *") + "\n\n")
	for i, reason := range AbortReasons {
		line := strconv.Itoa(i+1) + ". " + reason
		if i == p.selected {
			sb.WriteString(theme.Hot.Render("> "+line) + "\n")
			continue
		}
		sb.WriteString("  " + line + "\n")
	}
	if p.custom {
		sb.WriteString("\n" + p.input.View() + "\n")
		sb.WriteString(theme.Muted.Render(strconv.Itoa(len(p.input.Value()))+"/"+strconv.Itoa(maxReasonLength)+" characters") + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("1-9 pick  enter abort  esc keep going"))

	w := p.width
	if w < 20 {
		w = 64
	}
	return promptStyle.Width(w - 2).Render(sb.String())
}
