package timetable

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

const timeColumn = 7

// WriteText draws g as a fixed-width table no wider than width. Cells
// covered by a class that started earlier show a continuation mark.
func WriteText(w io.Writer, g Grid, width int) error {
	col := max((width-timeColumn)/len(g.Days)-1, 8)

	var b strings.Builder
	b.WriteString(pad("", timeColumn))
	for _, d := range g.Days {
		b.WriteString("|" + pad(d.Name, col))
	}
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", timeColumn+(col+1)*len(g.Days)) + "\n")

	for _, row := range g.Rows {
		// A cell with stacked classes needs one text line per class.
		lines := 1
		for _, cell := range row.Cells {
			lines = max(lines, len(cell.Classes))
		}
		for l := 0; l < lines; l++ {
			if l == 0 {
				b.WriteString(pad(row.Slot, timeColumn))
			} else {
				b.WriteString(pad("", timeColumn))
			}
			for _, cell := range row.Cells {
				text := ""
				switch {
				case l < len(cell.Classes):
					p := cell.Classes[l]
					text = p.Class.UnitCode + " " + p.Class.ClassType
				case l == 0 && cell.Occupied:
					text = "  :"
				}
				b.WriteString("|" + pad(text, col))
			}
			b.WriteString("\n")
		}
	}

	if len(g.Unplaced) > 0 {
		b.WriteString("\nOutside the weekly grid:\n")
		for _, p := range g.Unplaced {
			fmt.Fprintf(&b, "  %s %s, %s %s\n", p.Class.UnitCode, p.Class.ClassType, DayName(p.Class.ClassDay), p.Label)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// pad truncates or right-pads s to exactly n runes.
func pad(s string, n int) string {
	if utf8.RuneCountInString(s) > n {
		r := []rune(s)
		return string(r[:n])
	}
	return s + strings.Repeat(" ", n-utf8.RuneCountInString(s))
}
