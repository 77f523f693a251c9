package render

import (
	"bufio"
	"image/color"
	"io"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// Surface is the terminal row a frame is painted on. A nil color means the
// terminal default. Write errors are held until Flush.
type Surface interface {
	MoveToColumn(col int)
	ClearLine()
	// WriteStyled prints text as one run in the given colors and leaves the
	// pen reset afterwards.
	WriteStyled(text string, fg, bg color.Color)
	ResetStyle()
	Flush() error
}

// ANSISurface paints on a terminal with ANSI escape sequences. Output is
// buffered until Flush.
type ANSISurface struct {
	w *bufio.Writer
}

// NewANSISurface returns a surface writing to w.
func NewANSISurface(w io.Writer) *ANSISurface {
	return &ANSISurface{w: bufio.NewWriterSize(w, 4096)}
}

func (s *ANSISurface) MoveToColumn(col int) {
	if col < 0 {
		col = 0
	}
	s.w.WriteByte('\r')
	if col > 0 {
		s.w.WriteString(ansi.CursorHorizontalAbsolute(col + 1))
	}
}

func (s *ANSISurface) ClearLine() {
	s.w.WriteString(ansi.EraseEntireLine)
}

func (s *ANSISurface) WriteStyled(text string, fg, bg color.Color) {
	if fg == nil && bg == nil {
		s.w.WriteString(text)
		return
	}
	style := lipgloss.NewStyle()
	if fg != nil {
		style = style.Foreground(fg)
	}
	if bg != nil {
		style = style.Background(bg)
	}
	s.w.WriteString(style.Render(text))
}

func (s *ANSISurface) ResetStyle() {
	s.w.WriteString(ansi.ResetStyle)
}

// Flush writes buffered output and returns the first write error seen since
// the surface was created.
func (s *ANSISurface) Flush() error {
	return s.w.Flush()
}
