package config

import (
	"fmt"
	"strings"

	"rtesession/internal/tui/util"
)

// VM is the config screen's view of the session: the two flags it may
// change and how the erase control is presented.
type VM struct {
	EditMode       bool
	HighlightFocus bool
	DebugLabel     string
	EraseInline    bool // erase is a dedicated control on this screen
}

// Option is a single row on the config screen.
type Option struct {
	Key   string
	Label string
	On    bool
	Flag  bool // rendered as a checkbox
}

// RenderOptions returns the rows shown for vm, in display order.
func RenderOptions(vm VM) []Option {
	opts := []Option{
		{Key: "e", Label: "Edit mode", On: vm.EditMode, Flag: true},
		{Key: "h", Label: vm.DebugLabel, On: vm.HighlightFocus, Flag: true},
	}
	if vm.EraseInline {
		opts = append(opts, Option{Key: "x", Label: "Erase document"})
	}
	return opts
}

// View renders the config screen body.
func View(vm VM, st util.Styles) string {
	var b strings.Builder
	b.WriteString(st.Title.Render("Configuration") + "\n\n")
	for _, o := range RenderOptions(vm) {
		if o.Flag {
			check := "[ ]"
			if o.On {
				check = st.Selected.Render("[x]")
			}
			fmt.Fprintf(&b, "  %s %s  %s\n", check, o.Label, st.Faint.Render("("+o.Key+")"))
			continue
		}
		fmt.Fprintf(&b, "  %s  %s\n", o.Label, st.Faint.Render("("+o.Key+")"))
	}
	b.WriteString("\n" + st.Faint.Render("esc: back to editor") + "\n")
	return b.String()
}
