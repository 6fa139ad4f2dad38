package document

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// BlockType names the structural role of a block.
type BlockType string

const (
	Paragraph BlockType = "paragraph"
	Heading   BlockType = "heading"
	Bullet    BlockType = "bullet"
	Quote     BlockType = "quote"
	Code      BlockType = "code"
)

// Block is a single line-level element of a document.
type Block struct {
	Type  BlockType `json:"type"`
	Text  string    `json:"text"`
	Level int       `json:"level,omitempty"` // headings only: 1..6
}

// Document is an immutable snapshot of rich-text content.
// Values are replaced wholesale; nothing in this package mutates a Document
// after it has been constructed.
type Document struct {
	Blocks []Block `json:"blocks"`
}

// Stats are simple size counters for a snapshot.
type Stats struct {
	Blocks int
	Words  int
	Chars  int
}

// Empty returns a document with no blocks.
func Empty() Document {
	return Document{Blocks: []Block{}}
}

// New builds a snapshot from blocks. The slice is copied.
func New(blocks ...Block) Document {
	out := make([]Block, len(blocks))
	copy(out, blocks)
	return Document{Blocks: out}
}

// IsEmpty reports whether the document carries no text at all.
func (d Document) IsEmpty() bool {
	for _, b := range d.Blocks {
		if b.Text != "" {
			return false
		}
	}
	return true
}

// Len returns the number of blocks.
func (d Document) Len() int { return len(d.Blocks) }

// Block returns the block at i, or a zero paragraph when out of range.
func (d Document) Block(i int) Block {
	if i < 0 || i >= len(d.Blocks) {
		return Block{Type: Paragraph}
	}
	return d.Blocks[i]
}

// Stats counts blocks, words and characters (runes).
func (d Document) Stats() Stats {
	s := Stats{Blocks: len(d.Blocks)}
	for _, b := range d.Blocks {
		s.Chars += len([]rune(b.Text))
		s.Words += len(strings.FieldsFunc(b.Text, unicode.IsSpace))
	}
	return s
}

// Equal reports structural equality of two snapshots.
func Equal(a, b Document) bool {
	if len(a.Blocks) != len(b.Blocks) {
		return false
	}
	for i := range a.Blocks {
		if a.Blocks[i] != b.Blocks[i] {
			return false
		}
	}
	return true
}

// Source pretty-prints the snapshot as indented JSON.
func (d Document) Source() (string, error) {
	if d.Blocks == nil {
		d = Empty()
	}
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode document: %w", err)
	}
	return string(data), nil
}

// Parse decodes JSON source produced by Source. Every document it accepts
// survives a trip through the editor buffer unchanged.
func Parse(data []byte) (Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return Document{}, fmt.Errorf("parse document JSON: %w", err)
	}
	for i, b := range d.Blocks {
		switch b.Type {
		case Heading:
			if b.Level < 1 || b.Level > 6 {
				return Document{}, fmt.Errorf("parse document JSON: block %d has heading level %d (want 1-6)", i, b.Level)
			}
		case Paragraph, Bullet, Quote, Code:
			d.Blocks[i].Level = 0
		case "":
			d.Blocks[i].Type = Paragraph
			d.Blocks[i].Level = 0
		default:
			return Document{}, fmt.Errorf("parse document JSON: block %d has unknown type %q", i, b.Type)
		}
		if strings.ContainsAny(b.Text, "\r\n") {
			return Document{}, fmt.Errorf("parse document JSON: block %d text spans lines", i)
		}
	}
	// A lone empty paragraph is how an empty buffer reads back.
	if len(d.Blocks) == 1 && d.Blocks[0] == (Block{Type: Paragraph}) {
		return Empty(), nil
	}
	return New(d.Blocks...), nil
}

// Load reads an initial document. Files ending in .json are decoded as
// document source; anything else is treated as editor text.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read document: %w", err)
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return Parse(data)
	}
	return FromText(strings.TrimRight(string(data), "\n")), nil
}
