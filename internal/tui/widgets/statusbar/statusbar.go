package statusbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"rtesession/internal/tui/state"
	"rtesession/internal/tui/util"
	"rtesession/internal/tui/widgets/tagchips"
)

type StatusBar struct {
	styles       util.Styles
	overlayLabel string
}

func NewStatusBar(styles util.Styles, overlayLabel string) StatusBar {
	return StatusBar{styles: styles, overlayLabel: overlayLabel}
}

// View composes a concise status line reflecting session state. notice is
// the current toast text, rendered last.
func (b StatusBar) View(s state.SessionState, notice string) string {
	view := fmt.Sprintf("[%s]", s.ActiveView)
	size := fmt.Sprintf("W:%d", s.ViewportWidth)
	chips := tagchips.View(util.ComputeTags(s, b.overlayLabel), b.styles)

	parts := []string{view, chips, size}
	if notice != "" {
		parts = append(parts, notice)
	}
	line := strings.Join(parts, "  ")
	if s.ViewportWidth > 0 {
		line = ansi.Truncate(line, s.ViewportWidth, "…")
	}
	return line
}
