package document

import "strings"

const (
	codeIndent = "    "
	escape     = `\`
)

// FromText parses an editor buffer into a snapshot, one block per line.
//
//	# heading      (up to six #)
//	- bullet       (or "* ")
//	> quote
//	    code       (tab or four spaces)
//	anything else is a paragraph
//
// A paragraph whose text would otherwise read as one of the markers above
// is written with a leading backslash, which FromText strips again.
func FromText(text string) Document {
	if text == "" {
		return Empty()
	}
	lines := strings.Split(text, "\n")
	blocks := make([]Block, 0, len(lines))
	for _, ln := range lines {
		blocks = append(blocks, parseLine(ln))
	}
	return Document{Blocks: blocks}
}

func parseLine(ln string) Block {
	if strings.HasPrefix(ln, escape) && needsEscape(ln[len(escape):]) {
		return Block{Type: Paragraph, Text: ln[len(escape):]}
	}
	if b, ok := parseMarker(ln); ok {
		return b
	}
	return Block{Type: Paragraph, Text: ln}
}

func parseMarker(ln string) (Block, bool) {
	switch {
	case strings.HasPrefix(ln, "\t"):
		return Block{Type: Code, Text: ln[1:]}, true
	case strings.HasPrefix(ln, codeIndent):
		return Block{Type: Code, Text: ln[len(codeIndent):]}, true
	case strings.HasPrefix(ln, "- "), strings.HasPrefix(ln, "* "):
		return Block{Type: Bullet, Text: ln[2:]}, true
	case strings.HasPrefix(ln, "> "):
		return Block{Type: Quote, Text: ln[2:]}, true
	case strings.HasPrefix(ln, "#"):
		level := 0
		for level < len(ln) && ln[level] == '#' {
			level++
		}
		if level <= 6 && level < len(ln) && ln[level] == ' ' {
			return Block{Type: Heading, Level: level, Text: ln[level+1:]}, true
		}
	}
	return Block{}, false
}

// needsEscape reports whether paragraph text s has to be escaped to survive
// FromText: it starts with a marker, or with backslashes in front of one.
func needsEscape(s string) bool {
	if _, ok := parseMarker(s); ok {
		return true
	}
	return strings.HasPrefix(s, escape) && needsEscape(s[len(escape):])
}

// Text renders the snapshot back into editor buffer form.
// FromText(d.Text()) == d for any snapshot FromText or Parse produced.
func (d Document) Text() string {
	lines := make([]string, len(d.Blocks))
	for i, b := range d.Blocks {
		lines[i] = b.Prefix() + b.Text
	}
	return strings.Join(lines, "\n")
}

// Prefix is the buffer marker written in front of the block's text.
func (b Block) Prefix() string {
	switch b.Type {
	case Heading:
		level := b.Level
		if level < 1 {
			level = 1
		}
		if level > 6 {
			level = 6
		}
		return strings.Repeat("#", level) + " "
	case Bullet:
		return "- "
	case Quote:
		return "> "
	case Code:
		return codeIndent
	default:
		if needsEscape(b.Text) {
			return escape
		}
		return ""
	}
}
