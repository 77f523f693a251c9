// Package render lays out a chain and paints it on a single terminal row.
//
// A frame clears the row, paints every link at its rounded position in chain
// order and leaves the terminal cursor inside the prompt. Painting writes each
// basic element's width back into its link so the next physics step sees the
// current spring lengths.
package render

import (
	"image/color"
	"math"

	"github.com/mattn/go-runewidth"

	"github.com/atomicstack/eash/internal/chain"
	colorspec "github.com/atomicstack/eash/internal/color"
	"github.com/atomicstack/eash/internal/glyph"
	"github.com/atomicstack/eash/internal/prompt"
	"github.com/atomicstack/eash/internal/segment"
	"github.com/atomicstack/eash/internal/theme"
	"github.com/atomicstack/eash/internal/token"
)

// Env is everything a frame needs besides the chain.
type Env struct {
	Glyphs   glyph.Table
	Clock    glyph.Clock
	Theme    *theme.Styles
	Segments segment.Values
	// Columns is the terminal width; 0 paints without a right edge.
	Columns int
	// Cursor is where the cursor is left when the prompt cannot be painted
	// this frame, usually the previous frame's cursor.
	Cursor int
}

// Result describes a painted frame.
type Result struct {
	// Cursor is the column the terminal cursor was left at.
	Cursor int
	// PromptSkipped is set when the prompt was busy and not painted.
	PromptSkipped bool
}

// Frame paints one frame of c on s.
func Frame(s Surface, c *chain.Chain, env Env) (Result, error) {
	if env.Theme == nil {
		env.Theme = theme.Default()
	}
	elapsed := env.Clock.Elapsed()

	s.MoveToColumn(0)
	s.ClearLine()

	res := Result{Cursor: env.Cursor}
	for i := range c.Links {
		link := &c.Links[i]
		col := int(math.Round(link.Mass.Position))
		switch e := link.Element.(type) {
		case *chain.Basic:
			content := glyph.Expand(env.Segments.Expand(e.Content), env.Glyphs, elapsed)
			laid := Layout(content, e.Visual)
			link.Mass.Width = laid.Width
			paintBasic(newPainter(s, col, env.Columns), laid, e.Visual)
		case *chain.PromptElement:
			painted := e.Prompt.TryView(func(p *prompt.Prompt) {
				link.Mass.Width = runewidth.StringWidth(p.Text)
				res.Cursor = col + runewidth.StringWidth(p.Text[:min(p.Cursor, len(p.Text))])
				paintPrompt(newPainter(s, col, env.Columns), p, env.Theme)
			})
			if !painted {
				res.PromptSkipped = true
			}
		}
	}

	res.Cursor = max(res.Cursor, 0)
	if env.Columns > 0 && res.Cursor >= env.Columns {
		res.Cursor = env.Columns - 1
	}
	s.ResetStyle()
	s.MoveToColumn(res.Cursor)
	return res, s.Flush()
}

func paintBasic(p *painter, laid Laid, v chain.VisualState) {
	fg, bg := v.Colors()
	if !colorspec.IsGradient(fg) && !colorspec.IsGradient(bg) {
		flatFg, _ := fg.Flat()
		flatBg, _ := bg.Flat()
		p.put(laid.Text, flatFg, flatBg)
		p.flush()
		return
	}

	cell := 0
	for _, r := range laid.Text {
		p.put(string(r), fg.At(contentDistance(cell, laid)), bg.At(ratio(cell, laid.Width)))
		cell += runewidth.RuneWidth(r)
	}
	p.flush()
}

// contentDistance maps a cell to its position across the content, clamping
// padding to the nearest end.
func contentDistance(cell int, laid Laid) float64 {
	return ratio(cell-laid.ContentStart, laid.ContentWidth)
}

// ratio is i's position across a span of n cells, from 0 at the first cell to
// 1 at the last. A span of one cell or fewer is at 0.
func ratio(i, n int) float64 {
	if n <= 1 || i <= 0 {
		return 0
	}
	if i >= n-1 {
		return 1
	}
	return float64(i) / float64(n-1)
}

func paintPrompt(p *painter, pr *prompt.Prompt, styles *theme.Styles) {
	text := pr.Text
	tokens := token.Tokenize(text)
	selFg, selBg := styles.SelectionColors()

	var fg color.Color
	next := 0
	for i, r := range text {
		for next < len(tokens) && tokens[next].Start <= i {
			fg = styles.Foreground(tokens[next].Kind)
			next++
		}
		if pr.InSelection(i) {
			p.put(string(r), selFg, selBg)
			continue
		}
		p.put(string(r), fg, nil)
	}
	p.flush()
}

// painter writes runs of equally colored text starting at a column, clipping
// anything left of column 0 or past the right edge.
type painter struct {
	s      Surface
	col    int
	limit  int
	moved  bool
	run    []byte
	fg, bg color.Color
}

func newPainter(s Surface, col, limit int) *painter {
	return &painter{s: s, col: col, limit: limit}
}

func (p *painter) put(text string, fg, bg color.Color) {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if p.col < 0 {
			p.col += w
			continue
		}
		if p.limit > 0 && p.col+w > p.limit {
			p.col += w
			continue
		}
		if len(p.run) > 0 && (!sameColor(fg, p.fg) || !sameColor(bg, p.bg)) {
			p.flush()
		}
		if !p.moved {
			p.s.MoveToColumn(p.col)
			p.moved = true
		}
		if len(p.run) == 0 {
			p.fg, p.bg = fg, bg
		}
		p.run = append(p.run, string(r)...)
		p.col += w
	}
}

func (p *painter) flush() {
	if len(p.run) == 0 {
		return
	}
	p.s.WriteStyled(string(p.run), p.fg, p.bg)
	p.run = p.run[:0]
}

func sameColor(a, b color.Color) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}
