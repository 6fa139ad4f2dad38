package toast

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"rtesession/internal/tui/actions"
	"rtesession/internal/tui/util"
)

// ClearMsg hides the toast shown with sequence Seq.
type ClearMsg struct{ Seq uint64 }

// Toast is a one-line transient notification. It satisfies
// actions.Notifier; the host collects the clear timer with Cmd.
type Toast struct {
	styles    util.Styles
	duration  time.Duration
	message   string
	style     actions.Style
	seq       uint64
	scheduled uint64
}

func New(styles util.Styles, duration time.Duration) *Toast {
	return &Toast{styles: styles, duration: duration}
}

// Show replaces the current toast.
func (t *Toast) Show(message string, style actions.Style) {
	t.seq++
	t.message = message
	t.style = style
}

// Cmd returns the clear timer for a toast shown since the last call, or nil.
func (t *Toast) Cmd() tea.Cmd {
	if t.seq == t.scheduled || t.message == "" {
		return nil
	}
	t.scheduled = t.seq
	seq := t.seq
	return tea.Tick(t.duration, func(time.Time) tea.Msg { return ClearMsg{Seq: seq} })
}

// Clear hides the toast if msg belongs to it; a newer toast stays up.
func (t *Toast) Clear(msg ClearMsg) {
	if msg.Seq == t.seq {
		t.message = ""
	}
}

// Message returns the visible text, empty when hidden.
func (t *Toast) Message() string { return t.message }

func (t *Toast) View() string {
	if t.message == "" {
		return ""
	}
	switch t.style {
	case actions.Success:
		return t.styles.Success.Render(t.message)
	case actions.Error:
		return t.styles.Error.Render(t.message)
	default:
		return t.styles.Info.Render(t.message)
	}
}
