package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"rtesession/internal/document"
	"rtesession/internal/tui/util"
)

// Props are the values the host hands to the editing surface on every render.
type Props struct {
	Document document.Document
	ReadOnly bool
	Debug    bool
}

// Editor adapts a bubbles textarea into the editing surface: it renders a
// document snapshot, accepts input unless read-only, and reports each
// changed buffer as a new snapshot.
type Editor struct {
	ta         textarea.Model
	doc        document.Document // snapshot the buffer currently represents
	props      Props
	styles     util.Styles
	debugLabel string
	onUpdate   func(document.Document)
}

// New creates an editing surface. onUpdate receives every snapshot the
// surface produces.
func New(styles util.Styles, debugLabel string, onUpdate func(document.Document)) *Editor {
	ta := textarea.New()
	ta.Placeholder = "Start typing…  (# heading, - bullet, > quote)"
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.ShowLineNumbers = false
	ta.Blur()
	return &Editor{
		ta:         ta,
		doc:        document.Empty(),
		styles:     styles,
		debugLabel: debugLabel,
		onUpdate:   onUpdate,
	}
}

// SetProps applies host props. The buffer is only rewritten when the
// incoming document differs from what the buffer already holds, so the
// cursor survives ordinary re-renders.
func (e *Editor) SetProps(p Props) {
	if !document.Equal(p.Document, e.doc) {
		e.ta.SetValue(p.Document.Text())
		e.doc = p.Document
	}
	e.props = p
}

// SetSize sizes the text area, reserving a line for the debug overlay.
func (e *Editor) SetSize(width, height int) {
	if width < 10 {
		width = 10
	}
	if height < 3 {
		height = 3
	}
	e.ta.SetWidth(width)
	e.ta.SetHeight(height - 1)
}

// Focus requests input focus.
func (e *Editor) Focus() tea.Cmd { return e.ta.Focus() }

// Blur dismisses input.
func (e *Editor) Blur() { e.ta.Blur() }

func (e *Editor) Focused() bool { return e.ta.Focused() }

// Document returns the snapshot the buffer represents.
func (e *Editor) Document() document.Document { return e.doc }

var navigationKeys = map[string]bool{
	"up": true, "down": true, "left": true, "right": true,
	"home": true, "end": true, "pgup": true, "pgdown": true,
	"ctrl+a": true, "ctrl+e": true, "ctrl+left": true, "ctrl+right": true,
	"alt+left": true, "alt+right": true,
}

// Update forwards a key to the text area. In read-only mode only cursor
// movement reaches it.
func (e *Editor) Update(msg tea.KeyMsg) tea.Cmd {
	if e.props.ReadOnly && !navigationKeys[msg.String()] {
		return nil
	}
	before := e.ta.Value()
	var cmd tea.Cmd
	e.ta, cmd = e.ta.Update(msg)
	e.emitIfChanged(before)
	return cmd
}

// InsertString inserts text at the cursor. Ignored while read-only.
func (e *Editor) InsertString(s string) {
	if e.props.ReadOnly || s == "" {
		return
	}
	before := e.ta.Value()
	e.ta.InsertString(s)
	e.emitIfChanged(before)
}

func (e *Editor) emitIfChanged(before string) {
	after := e.ta.Value()
	if after == before {
		return
	}
	e.doc = carryUnchanged(e.doc, before, after)
	if e.onUpdate != nil {
		e.onUpdate(e.doc)
	}
}

// carryUnchanged re-reads after but keeps prev's blocks for the leading and
// trailing lines the edit left alone, so a line's type only changes when
// that line is edited.
func carryUnchanged(prev document.Document, before, after string) document.Document {
	next := document.FromText(after)
	old := strings.Split(before, "\n")
	cur := strings.Split(after, "\n")
	if len(old) != prev.Len() || len(cur) != next.Len() {
		return next
	}
	blocks := make([]document.Block, len(cur))
	copy(blocks, next.Blocks)
	n := 0
	for n < len(old) && n < len(cur) && old[n] == cur[n] {
		blocks[n] = prev.Blocks[n]
		n++
	}
	for i, j := len(old)-1, len(cur)-1; i >= n && j >= n && old[i] == cur[j]; i, j = i-1, j-1 {
		blocks[j] = prev.Blocks[i]
	}
	return document.New(blocks...)
}

// View renders the text area and, when enabled, the debug overlay line.
func (e *Editor) View() string {
	var b strings.Builder
	b.WriteString(e.ta.View())
	b.WriteString("\n")
	if e.props.Debug {
		b.WriteString(e.styles.Overlay.Render(e.overlay()))
	}
	return b.String()
}

func (e *Editor) overlay() string {
	focus := "blurred"
	if e.ta.Focused() {
		focus = "focused"
	}
	row := e.ta.Line()
	li := e.ta.LineInfo()
	blk := e.doc.Block(row)
	kind := string(blk.Type)
	if blk.Type == document.Heading {
		kind = fmt.Sprintf("%s/%d", kind, blk.Level)
	}
	ro := ""
	if e.props.ReadOnly {
		ro = " · read-only"
	}
	return fmt.Sprintf("[%s] %s · ln %d col %d · %s · %d blocks%s",
		e.debugLabel, focus, row+1, li.StartColumn+li.ColumnOffset+1, kind, e.doc.Len(), ro)
}
