package state

// TagKind enumerates the status chips shown for a session.
type TagKind int

const (
	// Stable ordering for display: Mode, Overlay, Blocks, Words, Chars
	EDITING TagKind = iota
	READ_ONLY
	OVERLAY
	BLOCKS
	WORDS
	CHARS
)

// Tag represents a single status chip. Value is used for numeric counters.
// Non-numeric tags use Value = 0; OVERLAY carries its display label.
type Tag struct {
	Kind  TagKind
	Value int
	Label string
}
