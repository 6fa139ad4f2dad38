package statusbar

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"rtesession/internal/document"
	"rtesession/internal/tui/state"
	"rtesession/internal/tui/util"
)

func TestStatusLine(t *testing.T) {
	sb := NewStatusBar(util.NewStyles(util.DefaultPalette(), true), "Debug")
	s := state.Default(document.FromText("abc"))
	s.ActiveView = state.Source
	s.ViewportWidth = 200

	out := sb.View(s, "Copied")
	for _, w := range []string{"[Source]", "[Editing]", "W:200", "Copied"} {
		if !strings.Contains(out, w) {
			t.Fatalf("expected %q in %q", w, out)
		}
	}
}

func TestStatusLineTruncatesToWidth(t *testing.T) {
	sb := NewStatusBar(util.NewStyles(util.DefaultPalette(), true), "Debug")
	s := state.Default(document.FromText("abc"))
	s.ViewportWidth = 20

	out := sb.View(s, "a long notice that will not fit")
	if len([]rune(out)) > 20 || !strings.HasSuffix(out, "…") {
		t.Fatalf("expected truncated line, got %q", out)
	}
}

func TestColoredStatusLineTruncatesByCells(t *testing.T) {
	sb := NewStatusBar(util.NewStyles(util.DefaultPalette(), false), "Debug")
	s := state.Default(document.FromText("abc"))
	s.HighlightFocus = true
	s.ViewportWidth = 24

	out := sb.View(s, "a long notice that will not fit")
	if w := ansi.StringWidth(out); w > 24 {
		t.Fatalf("line is %d cells wide: %q", w, out)
	}
}
