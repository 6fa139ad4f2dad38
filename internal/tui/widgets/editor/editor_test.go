package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rtesession/internal/document"
	"rtesession/internal/tui/util"
)

func init() { lipgloss.SetColorProfile(termenv.Ascii) }

func newEditor(t *testing.T) (*Editor, *[]document.Document) {
	t.Helper()
	var updates []document.Document
	e := New(util.NewStyles(util.DefaultPalette(), true), "Debug", func(d document.Document) {
		updates = append(updates, d)
	})
	e.SetSize(60, 10)
	return e, &updates
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTypingEmitsSnapshot(t *testing.T) {
	e, updates := newEditor(t)
	e.SetProps(Props{Document: document.Empty()})
	e.Focus()

	e.Update(runes("# Hi"))

	require.NotEmpty(t, *updates)
	last := (*updates)[len(*updates)-1]
	require.Equal(t, 1, last.Len())
	assert.Equal(t, document.Heading, last.Blocks[0].Type)
	assert.Equal(t, "Hi", last.Blocks[0].Text)
	assert.True(t, document.Equal(last, e.Document()))
}

func TestReadOnlyDropsEdits(t *testing.T) {
	e, updates := newEditor(t)
	e.SetProps(Props{Document: document.FromText("fixed"), ReadOnly: true})
	e.Focus()

	e.Update(runes("x"))
	e.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	e.Update(tea.KeyMsg{Type: tea.KeyLeft})
	e.InsertString("nope")

	assert.Empty(t, *updates)
	assert.Equal(t, "fixed", e.Document().Text())
}

func TestSetPropsKeepsBufferForSameDocument(t *testing.T) {
	e, updates := newEditor(t)
	e.Focus()
	e.Update(runes("abc"))
	doc := e.Document()

	e.SetProps(Props{Document: doc})
	e.Update(runes("d"))

	last := (*updates)[len(*updates)-1]
	assert.Equal(t, "abcd", last.Text(), "cursor must stay at the end of the buffer")
}

func TestSetPropsReplacesOnErase(t *testing.T) {
	e, _ := newEditor(t)
	e.SetProps(Props{Document: document.FromText("old text")})
	e.SetProps(Props{Document: document.Empty()})
	assert.True(t, e.Document().IsEmpty())
	assert.NotContains(t, e.View(), "old text")
}

func TestInsertString(t *testing.T) {
	e, updates := newEditor(t)
	e.SetProps(Props{Document: document.Empty()})
	e.Focus()
	e.InsertString("- item")

	require.Len(t, *updates, 1)
	assert.Equal(t, document.Bullet, (*updates)[0].Blocks[0].Type)
}

func TestDebugOverlay(t *testing.T) {
	e, _ := newEditor(t)
	e.SetProps(Props{Document: document.FromText("## T"), Debug: true})
	out := e.View()
	assert.Contains(t, out, "[Debug] blurred")
	assert.Contains(t, out, "heading/2")

	e.Focus()
	assert.Contains(t, e.View(), "[Debug] focused")

	e.SetProps(Props{Document: e.Document(), Debug: false})
	assert.NotContains(t, e.View(), "[Debug]")
}

func TestFocusBlur(t *testing.T) {
	e, _ := newEditor(t)
	e.Focus()
	assert.True(t, e.Focused())
	e.Blur()
	assert.False(t, e.Focused())
}

func TestEditKeepsOtherLinesIntact(t *testing.T) {
	e, updates := newEditor(t)
	doc := document.New(
		document.Block{Type: document.Paragraph, Text: "- not a bullet"},
		document.Block{Type: document.Paragraph, Text: "a\tb"},
		document.Block{Type: document.Paragraph, Text: "x"},
	)
	e.SetProps(Props{Document: doc})
	e.Focus()

	e.Update(runes("y"))

	require.NotEmpty(t, *updates)
	assert.Equal(t, []document.Block{
		{Type: document.Paragraph, Text: "- not a bullet"},
		{Type: document.Paragraph, Text: "a\tb"},
		{Type: document.Paragraph, Text: "xy"},
	}, (*updates)[len(*updates)-1].Blocks)
}

func TestEditingEscapedLineKeepsParagraph(t *testing.T) {
	e, updates := newEditor(t)
	e.SetProps(Props{Document: document.New(document.Block{Type: document.Paragraph, Text: "> aside"})})
	e.Focus()

	e.Update(runes("!"))

	require.NotEmpty(t, *updates)
	assert.Equal(t, []document.Block{{Type: document.Paragraph, Text: "> aside!"}},
		(*updates)[len(*updates)-1].Blocks)
}
