package helpoverlay

import (
	"fmt"
	"strings"

	"rtesession/internal/tui/state"
)

// Section is a titled group of key hints.
type Section struct {
	Title string
	Keys  []string
}

type HelpOverlay struct {
	sections []Section
}

func NewHelpOverlay(sections ...Section) HelpOverlay { return HelpOverlay{sections: sections} }

// View returns grouped keys help with the current screen indicated.
func (h HelpOverlay) View(s state.SessionState) string {
	mode := "edit"
	if !s.EditMode {
		mode = "read-only"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Help (Screen: %s, %s)\n", s.ActiveView, mode)
	for _, sec := range h.sections {
		fmt.Fprintf(&b, "\n%s:\n", sec.Title)
		for _, k := range sec.Keys {
			fmt.Fprintf(&b, "  %s\n", k)
		}
	}
	return b.String()
}
