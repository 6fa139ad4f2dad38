package toolbar

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"rtesession/internal/tui/actions"
	"rtesession/internal/tui/util"
)

// Item is one toolbar button.
type Item struct {
	ID      actions.ID
	Label   string
	Binding key.Binding
}

// NewItem builds an item bound to a single key.
func NewItem(id actions.ID, label, k string) Item {
	if label == "" {
		label = string(id)
	}
	return Item{ID: id, Label: label, Binding: key.NewBinding(key.WithKeys(k), key.WithHelp(k, label))}
}

// Toolbar emits action identifiers for key presses and renders the buttons.
type Toolbar struct {
	items  []Item
	styles util.Styles
}

func New(styles util.Styles, items ...Item) Toolbar {
	return Toolbar{items: items, styles: styles}
}

// Items returns the buttons in display order.
func (t Toolbar) Items() []Item { return t.items }

// Match returns the action bound to msg, if any.
func (t Toolbar) Match(msg tea.KeyMsg) (actions.ID, bool) {
	for _, it := range t.items {
		if key.Matches(msg, it.Binding) {
			return it.ID, true
		}
	}
	return "", false
}

// View lays the buttons out on one line, dropping whole buttons that do not
// fit in width. A width of zero disables fitting.
func (t Toolbar) View(width int) string {
	parts := make([]string, 0, len(t.items))
	used := 0
	for i, it := range t.items {
		label := it.Binding.Help().Key + " " + it.Label
		w := runewidth.StringWidth(label) + 2 // brackets
		if i > 0 {
			w++ // separator
		}
		if width > 0 && used+w > width {
			if used+2 <= width {
				parts = append(parts, "…")
			}
			break
		}
		used += w
		parts = append(parts, t.styles.Faint.Render("[")+label+t.styles.Faint.Render("]"))
	}
	return strings.Join(parts, " ")
}
