package util

import "rtesession/internal/tui/state"

// ComputeTags derives the status chips for a session snapshot.
//
// The returned slice preserves a stable order:
//
//	Editing|Read-only, Overlay, Blocks, Words, Chars
//
// The overlay chip appears only while the debug overlay is on and carries
// the configured label ("Debug", "Highlight focus", ...).
func ComputeTags(s state.SessionState, overlayLabel string) []state.Tag {
	stats := s.Document.Stats()
	tags := make([]state.Tag, 0, 5)

	if s.EditMode {
		tags = append(tags, state.Tag{Kind: state.EDITING})
	} else {
		tags = append(tags, state.Tag{Kind: state.READ_ONLY})
	}
	if s.HighlightFocus {
		tags = append(tags, state.Tag{Kind: state.OVERLAY, Label: overlayLabel})
	}
	tags = append(tags,
		state.Tag{Kind: state.BLOCKS, Value: stats.Blocks},
		state.Tag{Kind: state.WORDS, Value: stats.Words},
		state.Tag{Kind: state.CHARS, Value: stats.Chars},
	)
	return tags
}
