package render

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/atomicstack/eash/internal/chain"
)

// Ellipsis marks content cut short by a Units width.
const Ellipsis = "…"

// Laid is a basic element's text after padding and width policy.
type Laid struct {
	Text string
	// Width is the printed width of Text in columns.
	Width int
	// ContentStart and ContentWidth locate the element content inside Text,
	// in columns, for gradient interpolation.
	ContentStart int
	ContentWidth int
}

// Layout pads content on both sides and applies the width policy.
func Layout(content string, v chain.VisualState) Laid {
	pad := strings.Repeat(" ", max(v.Padding, 0))
	text := pad + content + pad
	width := runewidth.StringWidth(text)
	contentWidth := runewidth.StringWidth(content)
	out := Laid{Text: text, Width: width, ContentStart: len(pad), ContentWidth: contentWidth}

	target := v.Width.Columns
	if target < 0 {
		target = 0
	}
	switch {
	case width < target:
		left, right := split(target-width, v.Align)
		out.Text = strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
		out.Width = target
		out.ContentStart += left
	case width > target && v.Width.Policy == chain.Units:
		out.Text = truncate(text, target)
		out.Width = runewidth.StringWidth(out.Text)
		if out.ContentStart > out.Width {
			out.ContentStart = out.Width
		}
		if out.ContentStart+out.ContentWidth > out.Width {
			out.ContentWidth = out.Width - out.ContentStart
		}
	}
	return out
}

// split divides extra columns between the left and right side.
func split(extra int, align chain.Alignment) (left, right int) {
	switch align {
	case chain.AlignRight:
		return extra, 0
	case chain.AlignCenter:
		left = extra / 2
		return left, extra - left
	default:
		return 0, extra
	}
}

func truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(text, width, Ellipsis)
}
