package util

import (
	"os"

	"github.com/charmbracelet/lipgloss"

	"rtesession/internal/config"
)

// NoColor returns true if color output should be disabled.
func NoColor(explicit bool) bool {
	if explicit {
		return true
	}
	return os.Getenv("NO_COLOR") != ""
}

// Palette defines the colors used across widgets.
type Palette struct {
	Primary lipgloss.Color
	Success lipgloss.Color
	Danger  lipgloss.Color
	Warning lipgloss.Color
	Muted   lipgloss.Color
}

// PaletteFrom converts a configured theme.
func PaletteFrom(t config.Theme) Palette {
	return Palette{
		Primary: lipgloss.Color(t.Primary),
		Success: lipgloss.Color(t.Success),
		Danger:  lipgloss.Color(t.Danger),
		Warning: lipgloss.Color(t.Warning),
		Muted:   lipgloss.Color(t.Muted),
	}
}

// DefaultPalette returns the palette of the default theme.
func DefaultPalette() Palette {
	return PaletteFrom(config.Default().Theme)
}

// Styles is the full set of lipgloss styles derived from a palette. Widgets
// receive it instead of reaching for package-level style variables.
type Styles struct {
	NoColor  bool
	Palette  Palette
	Title    lipgloss.Style
	Selected lipgloss.Style
	Faint    lipgloss.Style
	TabOn    lipgloss.Style
	TabOff   lipgloss.Style
	Border   lipgloss.Style
	Info     lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Overlay  lipgloss.Style
}

// NewStyles builds Styles for p. With noColor every style keeps its layout
// (bold, borders) but drops foreground and background colors.
func NewStyles(p Palette, noColor bool) Styles {
	s := Styles{
		NoColor:  noColor,
		Palette:  p,
		Title:    lipgloss.NewStyle().Bold(true),
		Selected: lipgloss.NewStyle().Bold(true),
		Faint:    lipgloss.NewStyle().Faint(true),
		TabOn:    lipgloss.NewStyle().Bold(true).Padding(0, 1),
		TabOff:   lipgloss.NewStyle().Faint(true).Padding(0, 1),
		Border:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		Info:     lipgloss.NewStyle().Bold(true).Padding(0, 1),
		Success:  lipgloss.NewStyle().Bold(true).Padding(0, 1),
		Error:    lipgloss.NewStyle().Bold(true).Padding(0, 1),
		Overlay:  lipgloss.NewStyle().Faint(true),
	}
	if noColor {
		return s
	}
	white := lipgloss.Color("#FFFFFF")
	s.Selected = s.Selected.Foreground(p.Primary)
	s.TabOn = s.TabOn.Background(p.Primary).Foreground(white)
	s.Border = s.Border.BorderForeground(p.Muted)
	s.Info = s.Info.Background(p.Muted).Foreground(white)
	s.Success = s.Success.Background(p.Success).Foreground(white)
	s.Error = s.Error.Background(p.Danger).Foreground(white)
	s.Overlay = lipgloss.NewStyle().Foreground(p.Warning)
	return s
}
