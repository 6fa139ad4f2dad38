package diff

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	dmp "github.com/sergi/go-diff/diffmatchpatch"

	"rtesession/internal/tui/util"
)

// DiffView renders line diffs between two serialized documents.
type DiffView struct {
	del, add, delChar, addChar, same lipgloss.Style
}

func NewDiffView(st util.Styles) DiffView {
	v := DiffView{
		del:     lipgloss.NewStyle(),
		add:     lipgloss.NewStyle(),
		delChar: lipgloss.NewStyle().Underline(true),
		addChar: lipgloss.NewStyle().Underline(true),
		same:    st.Faint,
	}
	if !st.NoColor {
		v.del = v.del.Foreground(st.Palette.Danger)
		v.add = v.add.Foreground(st.Palette.Success)
		v.delChar = v.delChar.Foreground(st.Palette.Danger)
		v.addChar = v.addChar.Foreground(st.Palette.Success)
	}
	return v
}

// View renders a unified diff of before → after. Lines are aligned with a
// line-mode diff; a deleted line immediately followed by an inserted one
// is shown as a changed pair with character-level highlights.
func (v DiffView) View(before, after string) string {
	if before == after {
		return "No changes\n"
	}
	d := dmp.New()
	a, b, lines := d.DiffLinesToChars(before, after)
	diffs := d.DiffCharsToLines(d.DiffMain(a, b, false), lines)

	var sb strings.Builder
	for i := 0; i < len(diffs); i++ {
		df := diffs[i]
		switch df.Type {
		case dmp.DiffEqual:
			for _, l := range splitLines(df.Text) {
				sb.WriteString("  " + v.same.Render(l) + "\n")
			}
		case dmp.DiffDelete:
			if i+1 < len(diffs) && diffs[i+1].Type == dmp.DiffInsert {
				v.writePairs(&sb, splitLines(df.Text), splitLines(diffs[i+1].Text))
				i++
				continue
			}
			for _, l := range splitLines(df.Text) {
				sb.WriteString(v.del.Render("- "+l) + "\n")
			}
		case dmp.DiffInsert:
			for _, l := range splitLines(df.Text) {
				sb.WriteString(v.add.Render("+ "+l) + "\n")
			}
		}
	}
	return sb.String()
}

// writePairs emits changed lines; equal-length runs get per-line char spans.
func (v DiffView) writePairs(sb *strings.Builder, del, ins []string) {
	if len(del) != len(ins) {
		for _, l := range del {
			sb.WriteString(v.del.Render("- "+l) + "\n")
		}
		for _, l := range ins {
			sb.WriteString(v.add.Render("+ "+l) + "\n")
		}
		return
	}
	d := dmp.New()
	for i := range del {
		diffs := d.DiffMain(del[i], ins[i], false)
		diffs = d.DiffCleanupSemantic(diffs)

		sb.WriteString(v.del.Render("- "))
		for _, df := range diffs {
			switch df.Type {
			case dmp.DiffDelete:
				sb.WriteString(v.delChar.Render(df.Text))
			case dmp.DiffEqual:
				sb.WriteString(v.del.Render(df.Text))
			}
		}
		sb.WriteString("\n")

		sb.WriteString(v.add.Render("+ "))
		for _, df := range diffs {
			switch df.Type {
			case dmp.DiffInsert:
				sb.WriteString(v.addChar.Render(df.Text))
			case dmp.DiffEqual:
				sb.WriteString(v.add.Render(df.Text))
			}
		}
		sb.WriteString("\n")
	}
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}
