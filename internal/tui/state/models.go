package state

import "rtesession/internal/document"

// View selects the screen currently presented.
type View int

const (
	Editor View = iota
	Source
	Config
)

// Views lists every screen in presentation order.
var Views = []View{Editor, Source, Config}

func (v View) String() string {
	switch v {
	case Editor:
		return "Editor"
	case Source:
		return "Source"
	case Config:
		return "Config"
	default:
		return "Unknown"
	}
}

// SessionState is the aggregate owned by a Store for one mounted session.
type SessionState struct {
	Document       document.Document
	EditMode       bool // editing surface accepts input
	HighlightFocus bool // editing surface renders debug overlays
	ActiveView     View

	// Last known host size; layout only.
	ViewportWidth  int
	ViewportHeight int
}

// Default returns the state a session starts in.
func Default(doc document.Document) SessionState {
	return SessionState{
		Document:   doc,
		EditMode:   true,
		ActiveView: Editor,
	}
}
