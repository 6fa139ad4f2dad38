package tagchips

import (
	"strings"
	"testing"

	"rtesession/internal/document"
	"rtesession/internal/tui/state"
	"rtesession/internal/tui/util"
)

func TestRenderTagsNoColor(t *testing.T) {
	s := state.Default(document.FromText("hello world"))
	s.EditMode = false
	s.HighlightFocus = true
	tags := util.ComputeTags(s, "Debug")
	out := View(tags, util.NewStyles(util.DefaultPalette(), true))

	wants := []string{"[Read-only]", "[Debug]", "[Blocks 1]", "[Words 2]", "[Chars 11]"}
	for _, w := range wants {
		if !strings.Contains(out, w) {
			t.Fatalf("expected %q in output: %s", w, out)
		}
	}
}

func TestRenderEmpty(t *testing.T) {
	if out := View(nil, util.NewStyles(util.DefaultPalette(), true)); out != "" {
		t.Fatalf("expected empty output, got %q", out)
	}
}
