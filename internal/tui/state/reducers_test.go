package state

import (
	"testing"

	"rtesession/internal/document"
)

func TestDefault(t *testing.T) {
	s := Default(document.Empty())
	if !s.EditMode || s.HighlightFocus || s.ActiveView != Editor {
		t.Fatalf("unexpected defaults: %+v", s)
	}
}

func TestEraseLeavesFlags(t *testing.T) {
	s := Default(document.FromText("hello"))
	s.HighlightFocus = true
	s.ActiveView = Source
	s = Erase(s)
	if !s.Document.IsEmpty() || s.Document.Len() != 0 {
		t.Fatalf("expected empty document after erase")
	}
	if !s.HighlightFocus || s.ActiveView != Source || !s.EditMode {
		t.Fatalf("erase changed other fields: %+v", s)
	}
}

func TestWithViewIgnoresUnknown(t *testing.T) {
	s := Default(document.Empty())
	s = WithView(s, Config)
	s = WithView(s, View(9))
	if s.ActiveView != Config {
		t.Fatalf("expected Config, got %v", s.ActiveView)
	}
}

func TestResizeIgnoresNonPositive(t *testing.T) {
	s := Resize(SessionState{}, 80, 24)
	s = Resize(s, 0, -1)
	if s.ViewportWidth != 80 || s.ViewportHeight != 24 {
		t.Fatalf("expected 80x24, got %dx%d", s.ViewportWidth, s.ViewportHeight)
	}
}

func TestCycleViews(t *testing.T) {
	if NextView(Editor) != Source || NextView(Config) != Editor {
		t.Fatalf("unexpected forward cycle")
	}
	if PrevView(Editor) != Config || PrevView(Source) != Editor {
		t.Fatalf("unexpected backward cycle")
	}
}

func TestViewString(t *testing.T) {
	if Source.String() != "Source" || View(7).String() != "Unknown" {
		t.Fatalf("unexpected view names")
	}
}
