package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"rtesession/internal/config"
	"rtesession/internal/tui/actions"
	"rtesession/internal/tui/state"
	configview "rtesession/internal/tui/views/config"
	"rtesession/internal/tui/widgets/editor"
)

// ===== View models =====

// editorProps derives what the editing surface renders from the session.
func editorProps(s state.SessionState) editor.Props {
	return editor.Props{
		Document: s.Document,
		ReadOnly: !s.EditMode,
		Debug:    s.HighlightFocus,
	}
}

func configVM(s state.SessionState, cfg config.Config) configview.VM {
	return configview.VM{
		EditMode:       s.EditMode,
		HighlightFocus: s.HighlightFocus,
		DebugLabel:     cfg.DebugLabel,
		EraseInline:    cfg.EraseControl == config.EraseOnConfigPage,
	}
}

// ===== Per-screen keys =====

func (m *Model) editorKey(msg tea.KeyMsg) tea.Cmd {
	if id, ok := m.toolbar.Match(msg); ok {
		m.router.Dispatch(id)
		return nil
	}
	return m.editor.Update(msg)
}

func (m *Model) sourceKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Copy):
		m.router.Dispatch(actions.CopyDocumentSource)
		return nil
	case key.Matches(msg, m.keys.ToggleDiff):
		m.source.ToggleDiff()
		return nil
	}
	return m.source.Update(msg)
}

func (m *Model) configKey(msg tea.KeyMsg) tea.Cmd {
	s := m.store.State()
	switch {
	case key.Matches(msg, m.keys.ToggleEdit):
		m.store.SetEditMode(!s.EditMode)
	case key.Matches(msg, m.keys.ToggleOverlay):
		m.store.SetHighlightFocus(!s.HighlightFocus)
	case key.Matches(msg, m.keys.Erase):
		if m.cfg.EraseControl == config.EraseOnConfigPage {
			m.router.Dispatch(actions.EraseDocument)
		}
	}
	return nil
}
