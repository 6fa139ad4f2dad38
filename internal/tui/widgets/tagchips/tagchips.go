package tagchips

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"rtesession/internal/tui/state"
	"rtesession/internal/tui/util"
)

// View renders session tags in a stable order using colored chips when
// possible and ASCII fallbacks when color is disabled.
func View(tags []state.Tag, st util.Styles) string {
	if len(tags) == 0 {
		return ""
	}
	noColor := util.NoColor(st.NoColor)

	parts := make([]string, 0, len(tags))
	for _, t := range tags {
		parts = append(parts, renderChip(t, st.Palette, noColor))
	}
	return strings.Join(parts, " ")
}

func renderChip(t state.Tag, p util.Palette, noColor bool) string {
	label := chipLabel(t)
	if noColor {
		return fmt.Sprintf("[%s]", label)
	}
	return chipStyle(t, p).Render(label)
}

func chipLabel(t state.Tag) string {
	switch t.Kind {
	case state.EDITING:
		return "Editing"
	case state.READ_ONLY:
		return "Read-only"
	case state.OVERLAY:
		if t.Label == "" {
			return "Overlay"
		}
		return t.Label
	case state.BLOCKS:
		return fmt.Sprintf("Blocks %d", t.Value)
	case state.WORDS:
		return fmt.Sprintf("Words %d", t.Value)
	case state.CHARS:
		return fmt.Sprintf("Chars %d", t.Value)
	default:
		return "Tag"
	}
}

func chipStyle(t state.Tag, p util.Palette) lipgloss.Style {
	base := lipgloss.NewStyle().Padding(0, 1).Bold(true)
	white := lipgloss.Color("#FFFFFF")
	switch t.Kind {
	case state.EDITING:
		return base.Background(p.Success).Foreground(white)
	case state.READ_ONLY:
		return base.Background(p.Danger).Foreground(white)
	case state.OVERLAY:
		return base.Background(p.Warning).Foreground(lipgloss.Color("#111111"))
	case state.BLOCKS, state.WORDS, state.CHARS:
		return base.Background(p.Muted).Foreground(white)
	default:
		return base
	}
}
