// Package table lines up rows of text into columns for plain terminal output.
package table

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Separator is written between columns.
const Separator = "  "

// Format returns the rows padded according to the widest entry in each column.
// Rows may be ragged; missing cells are treated as empty. Trailing blanks are
// trimmed from every line.
func Format(rows [][]string, alignments []Alignment) []string {
	if len(rows) == 0 {
		return nil
	}
	var widths []int
	for _, row := range rows {
		for c, cell := range row {
			if c >= len(widths) {
				widths = append(widths, 0)
			}
			if w := runewidth.StringWidth(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c := range widths {
			cell := ""
			if c < len(row) {
				cell = row[c]
			}
			if c > 0 {
				b.WriteString(Separator)
			}
			pad := strings.Repeat(" ", widths[c]-runewidth.StringWidth(cell))
			if c < len(alignments) && alignments[c] == AlignRight {
				b.WriteString(pad)
				b.WriteString(cell)
			} else {
				b.WriteString(cell)
				b.WriteString(pad)
			}
		}
		out[i] = strings.TrimRight(b.String(), " ")
	}
	return out
}
