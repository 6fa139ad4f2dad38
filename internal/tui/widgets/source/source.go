package source

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"rtesession/internal/document"
	"rtesession/internal/tui/util"
	"rtesession/internal/tui/widgets/diff"
	"rtesession/pkg/logging"
)

var (
	rendererMu sync.Mutex
	// Renderers are cached by style and wrap width. A fixed style avoids
	// glamour's terminal background query, which can block.
	renderers = map[string]*glamour.TermRenderer{}
)

func renderer(style string, width int) (*glamour.TermRenderer, error) {
	key := fmt.Sprintf("%s:%d", style, width)
	rendererMu.Lock()
	defer rendererMu.Unlock()
	if r := renderers[key]; r != nil {
		return r, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	renderers[key] = r
	return r, nil
}

// View shows the pretty-printed structural form of a document, or the
// changes relative to a baseline document.
type View struct {
	vp       viewport.Model
	style    string
	diffView diff.DiffView
	baseline string
	source   string
	showDiff bool
	width    int
}

// New creates a source view. baseline is the document changes are measured
// against (the session's initial document).
func New(styles util.Styles, glamourStyle string, baseline document.Document) *View {
	base, err := baseline.Source()
	if err != nil {
		logging.Error("Source", err, "encode baseline document")
	}
	return &View{
		vp:       viewport.New(80, 20),
		style:    glamourStyle,
		diffView: diff.NewDiffView(styles),
		baseline: base,
		width:    80,
	}
}

func (v *View) SetSize(width, height int) {
	if width < 20 {
		width = 20
	}
	if height < 3 {
		height = 3
	}
	v.vp.Width = width
	v.vp.Height = height
	if width != v.width {
		v.width = width
		v.refresh()
	}
}

// SetDocument re-renders for a new snapshot.
func (v *View) SetDocument(doc document.Document) {
	src, err := doc.Source()
	if err != nil {
		logging.Error("Source", err, "encode document")
		src = err.Error()
	}
	if src == v.source && v.vp.TotalLineCount() > 0 {
		return
	}
	v.source = src
	v.refresh()
}

// ToggleDiff switches between the source and the changes view.
func (v *View) ToggleDiff() {
	v.showDiff = !v.showDiff
	v.refresh()
	v.vp.GotoTop()
}

func (v *View) ShowingDiff() bool { return v.showDiff }

// Source returns the raw serialized form currently displayed.
func (v *View) Source() string { return v.source }

func (v *View) refresh() {
	if v.showDiff {
		v.vp.SetContent(v.diffView.View(v.baseline, v.source))
		return
	}
	v.vp.SetContent(v.highlight(v.source))
}

func (v *View) highlight(src string) string {
	r, err := renderer(v.style, v.width)
	if err != nil {
		logging.Warn("Source", "glamour renderer unavailable: %v", err)
		return src
	}
	out, err := r.Render("```json\n" + src + "\n```\n")
	if err != nil {
		logging.Warn("Source", "render source: %v", err)
		return src
	}
	return strings.TrimRight(out, "\n")
}

// Update scrolls the viewport.
func (v *View) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	return cmd
}

func (v *View) View() string {
	title := "Source"
	if v.showDiff {
		title = "Changes since start"
	}
	return fmt.Sprintf("%s  %3.f%%\n%s", title, v.vp.ScrollPercent()*100, v.vp.View())
}
