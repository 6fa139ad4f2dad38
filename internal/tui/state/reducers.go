package state

import "rtesession/internal/document"

// WithDocument replaces the document snapshot.
func WithDocument(s SessionState, doc document.Document) SessionState {
	s.Document = doc
	return s
}

// Erase replaces the document with a freshly constructed empty one.
func Erase(s SessionState) SessionState {
	s.Document = document.Empty()
	return s
}

// WithEditMode sets the edit-mode flag.
func WithEditMode(s SessionState, on bool) SessionState {
	s.EditMode = on
	return s
}

// WithHighlightFocus sets the debug overlay flag.
func WithHighlightFocus(s SessionState, on bool) SessionState {
	s.HighlightFocus = on
	return s
}

// WithView switches the active screen. Unknown views are ignored so the
// state never leaves the Editor/Source/Config set.
func WithView(s SessionState, v View) SessionState {
	switch v {
	case Editor, Source, Config:
		s.ActiveView = v
	}
	return s
}

// Resize records the host viewport size. Non-positive dimensions are
// ignored individually.
func Resize(s SessionState, width, height int) SessionState {
	if width > 0 {
		s.ViewportWidth = width
	}
	if height > 0 {
		s.ViewportHeight = height
	}
	return s
}

// NextView cycles forward through Views.
func NextView(v View) View {
	for i, x := range Views {
		if x == v {
			return Views[(i+1)%len(Views)]
		}
	}
	return Editor
}

// PrevView cycles backward through Views.
func PrevView(v View) View {
	for i, x := range Views {
		if x == v {
			return Views[(i+len(Views)-1)%len(Views)]
		}
	}
	return Editor
}
