package toolbar

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"rtesession/internal/tui/actions"
	"rtesession/internal/tui/util"
)

func sample() Toolbar {
	return New(util.NewStyles(util.DefaultPalette(), true),
		NewItem(actions.OpenConfig, "Config", "ctrl+o"),
		NewItem(actions.CopyDocumentSource, "Copy", "ctrl+y"),
		NewItem("INSERT_DATE", "", "ctrl+t"),
	)
}

func TestMatch(t *testing.T) {
	tb := sample()

	id, ok := tb.Match(tea.KeyMsg{Type: tea.KeyCtrlY})
	assert.True(t, ok)
	assert.Equal(t, actions.CopyDocumentSource, id)

	id, ok = tb.Match(tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.True(t, ok)
	assert.Equal(t, actions.ID("INSERT_DATE"), id)

	_, ok = tb.Match(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.False(t, ok)
}

func TestViewFitsWidth(t *testing.T) {
	tb := sample()
	full := tb.View(0)
	assert.Contains(t, full, "[ctrl+o Config]")
	assert.Contains(t, full, "[ctrl+t INSERT_DATE]")

	narrow := tb.View(20)
	assert.Contains(t, narrow, "[ctrl+o Config]")
	assert.NotContains(t, narrow, "INSERT_DATE")
	assert.Contains(t, narrow, "…")
}
