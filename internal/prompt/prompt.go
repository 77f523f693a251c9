// Package prompt is the line editor behind the prompt element. It owns the
// text, the cursor and the selection anchor and knows nothing about physics:
// operations report whether they hit an edge so callers can decide how hard
// to nudge the prompt.
//
// Offsets are byte offsets into Text and always sit on rune boundaries.
package prompt

import (
	"strings"
	"unicode/utf8"
)

// Direction is a horizontal direction.
type Direction int

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// Sign is -1 for Left and 1 for Right.
func (d Direction) Sign() float64 {
	if d == Left {
		return -1
	}
	return 1
}

// Prompt is the editable line. The zero value is an empty prompt.
type Prompt struct {
	Text   string
	Cursor int

	selStart  int
	selecting bool
}

// Selection returns the selection anchor and whether a selection is active.
func (p *Prompt) Selection() (int, bool) {
	return p.selStart, p.selecting
}

// StartSelection anchors a selection at the cursor.
func (p *Prompt) StartSelection() {
	p.selStart = p.Cursor
	p.selecting = true
}

// ClearSelection drops the selection anchor.
func (p *Prompt) ClearSelection() {
	p.selStart = 0
	p.selecting = false
}

// selectionSpan is the byte range removed by DeleteSelection: from one
// character before the lower anchor through the character at the upper
// anchor, saturated to the text.
func (p *Prompt) selectionSpan() (int, int) {
	lo, hi := p.Cursor, p.runeStart(p.selStart)
	if lo > hi {
		lo, hi = hi, lo
	}
	lo = p.runeBefore(lo)
	hi = p.runeAfter(hi)
	return lo, hi
}

// InSelection reports whether the byte at pos is covered by the selection.
func (p *Prompt) InSelection(pos int) bool {
	if !p.selecting {
		return false
	}
	lo, hi := p.selectionSpan()
	return pos >= lo && pos < hi
}

// InsertCharacter inserts r at the cursor and advances past it.
func (p *Prompt) InsertCharacter(r rune) {
	p.clamp()
	s := string(r)
	p.Text = p.Text[:p.Cursor] + s + p.Text[p.Cursor:]
	p.Cursor += len(s)
	p.clampSelection()
}

// InsertString inserts every rune of s in order.
func (p *Prompt) InsertString(s string) {
	for _, r := range s {
		p.InsertCharacter(r)
	}
}

// DeleteCharacter removes the character left of the cursor. It reports true,
// without changing anything, when the prompt is empty or the cursor is at 0.
func (p *Prompt) DeleteCharacter() bool {
	p.clamp()
	if p.Text == "" || p.Cursor == 0 {
		return true
	}
	lo := p.runeBefore(p.Cursor)
	p.Text = p.Text[:lo] + p.Text[p.Cursor:]
	p.Cursor = lo
	p.clampSelection()
	return false
}

// DeleteForward removes the character under the cursor. It reports true when
// there is nothing to the right.
func (p *Prompt) DeleteForward() bool {
	p.clamp()
	if p.Cursor >= len(p.Text) {
		return true
	}
	hi := p.runeAfter(p.Cursor)
	p.Text = p.Text[:p.Cursor] + p.Text[hi:]
	p.clampSelection()
	return false
}

// DeleteSelection removes the selected span, moves the cursor to where it
// began and clears the selection. It reports true when the span began at the
// start of the text. Calling it without an active selection panics.
func (p *Prompt) DeleteSelection() bool {
	if !p.selecting {
		panic("prompt: DeleteSelection called without an active selection")
	}
	p.clamp()
	lo, hi := p.selectionSpan()
	p.Text = p.Text[:lo] + p.Text[hi:]
	p.Cursor = lo
	p.ClearSelection()
	return lo == 0
}

// Backspace deletes the selection when there is one and the character left of
// the cursor otherwise.
func (p *Prompt) Backspace() bool {
	if p.selecting {
		return p.DeleteSelection()
	}
	return p.DeleteCharacter()
}

// CtrlBackspace deletes back to the previous skippable boundary, falling back
// to DeleteCharacter when the cursor already sits on one.
func (p *Prompt) CtrlBackspace() bool {
	p.clamp()
	cut := p.FindSkippable(Left)
	if cut == p.Cursor {
		return p.DeleteCharacter()
	}
	p.Text = p.Text[:cut] + p.Text[p.Cursor:]
	p.Cursor = cut
	p.clampSelection()
	return false
}

// FindSkippable scans from the cursor toward dir and returns the offset just
// past the first separator found, or the text boundary.
func (p *Prompt) FindSkippable(dir Direction) int {
	step := 1
	if dir == Left {
		step = -1
	}
	for i := p.Cursor + step; ; i += step {
		switch {
		case i <= 0 || len(p.Text) == 0:
			return 0
		case i >= len(p.Text):
			return len(p.Text)
		case isSeparator(p.Text[i-1]):
			return i
		}
	}
}

// JumpInDirection moves the cursor to the next skippable boundary.
func (p *Prompt) JumpInDirection(dir Direction) {
	p.Cursor = p.FindSkippable(dir)
}

// MoveCursor moves the cursor n characters toward dir, stopping at either end.
func (p *Prompt) MoveCursor(n int, dir Direction) {
	p.clamp()
	for ; n > 0; n-- {
		if dir == Left {
			if p.Cursor == 0 {
				return
			}
			p.Cursor = p.runeBefore(p.Cursor)
			continue
		}
		if p.Cursor >= len(p.Text) {
			return
		}
		p.Cursor = p.runeAfter(p.Cursor)
	}
}

// HorizontalArrow handles left and right. Shift starts a selection when none
// is active; ctrl moves by skippable boundary instead of by character. It
// reports true when the cursor could not move.
func (p *Prompt) HorizontalArrow(dir Direction, shift, ctrl bool) bool {
	if shift && !p.selecting {
		p.StartSelection()
	}
	prev := p.Cursor
	if ctrl {
		p.JumpInDirection(dir)
	} else {
		p.MoveCursor(1, dir)
	}
	return prev == p.Cursor
}

// MoveToStart moves the cursor to 0 and reports true when it was already
// there.
func (p *Prompt) MoveToStart() bool {
	prev := p.Cursor
	p.Cursor = 0
	return prev == 0
}

// MoveToEnd moves the cursor past the last character and reports true when it
// was already there.
func (p *Prompt) MoveToEnd() bool {
	prev := p.Cursor
	p.Cursor = len(p.Text)
	return prev == p.Cursor
}

// Clear empties the prompt and returns the text it held.
func (p *Prompt) Clear() string {
	text := p.Text
	p.Text = ""
	p.Cursor = 0
	p.ClearSelection()
	return text
}

func (p *Prompt) runeBefore(pos int) int {
	if pos <= 0 {
		return 0
	}
	if pos > len(p.Text) {
		pos = len(p.Text)
	}
	_, size := utf8.DecodeLastRuneInString(p.Text[:pos])
	return pos - size
}

func (p *Prompt) runeAfter(pos int) int {
	if pos >= len(p.Text) {
		return len(p.Text)
	}
	if pos < 0 {
		pos = 0
	}
	_, size := utf8.DecodeRuneInString(p.Text[pos:])
	return pos + size
}

func (p *Prompt) clamp() {
	if p.Cursor < 0 {
		p.Cursor = 0
	}
	if p.Cursor > len(p.Text) {
		p.Cursor = len(p.Text)
	}
	p.clampSelection()
}

// clampSelection keeps a stale anchor inside the text and on the start of a
// rune.
func (p *Prompt) clampSelection() {
	if p.selecting {
		p.selStart = p.runeStart(p.selStart)
	}
}

// runeStart moves pos back to the first byte of the rune it falls in.
func (p *Prompt) runeStart(pos int) int {
	if pos >= len(p.Text) {
		return len(p.Text)
	}
	if pos < 0 {
		return 0
	}
	for pos > 0 && !utf8.RuneStart(p.Text[pos]) {
		pos--
	}
	return pos
}

const separators = " /.,=\"'`"

func isSeparator(b byte) bool {
	return strings.IndexByte(separators, b) >= 0
}
