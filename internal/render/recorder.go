package render

import (
	"fmt"
	"image/color"
	"strings"
)

// Cell is one recorded terminal cell.
type Cell struct {
	Rune rune
	Fg   color.Color
	Bg   color.Color
}

// Recorder is an in-memory Surface. It keeps the painted row and a log of
// every call, and treats each rune as one column.
type Recorder struct {
	Ops      []string
	Cells    []Cell
	Col      int
	FlushErr error
	Flushes  int
}

var _ Surface = (*Recorder)(nil)

func (r *Recorder) MoveToColumn(col int) {
	r.Ops = append(r.Ops, fmt.Sprintf("move %d", col))
	r.Col = col
}

func (r *Recorder) ClearLine() {
	r.Ops = append(r.Ops, "clear")
	r.Cells = nil
}

func (r *Recorder) WriteStyled(text string, fg, bg color.Color) {
	r.Ops = append(r.Ops, "styled "+text)
	r.put(text, fg, bg)
}

func (r *Recorder) ResetStyle() {
	r.Ops = append(r.Ops, "reset")
}

func (r *Recorder) Flush() error {
	r.Ops = append(r.Ops, "flush")
	r.Flushes++
	return r.FlushErr
}

func (r *Recorder) put(text string, fg, bg color.Color) {
	for _, ch := range text {
		for len(r.Cells) <= r.Col {
			r.Cells = append(r.Cells, Cell{Rune: ' '})
		}
		r.Cells[r.Col] = Cell{Rune: ch, Fg: fg, Bg: bg}
		r.Col++
	}
}

// Line returns the painted row with trailing blanks removed.
func (r *Recorder) Line() string {
	var b strings.Builder
	for _, c := range r.Cells {
		b.WriteRune(c.Rune)
	}
	return strings.TrimRight(b.String(), " ")
}

// Styled returns the texts passed to WriteStyled, in order.
func (r *Recorder) Styled() []string {
	var out []string
	for _, op := range r.Ops {
		if text, ok := strings.CutPrefix(op, "styled "); ok {
			out = append(out, text)
		}
	}
	return out
}

// Reset forgets everything recorded so far.
func (r *Recorder) Reset() {
	*r = Recorder{FlushErr: r.FlushErr}
}
