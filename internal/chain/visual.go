package chain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atomicstack/eash/internal/color"
)

// Alignment places content inside the extra columns of a width policy.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// ParseAlignment accepts left, center or right in any case.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "left":
		return AlignLeft, nil
	case "center", "centre":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	}
	return AlignLeft, fmt.Errorf("unknown alignment %q", s)
}

// WidthPolicy selects how Width.Columns is applied.
type WidthPolicy int

const (
	// Minimum pads to at least Columns.
	Minimum WidthPolicy = iota
	// Units pads or truncates to exactly Columns.
	Units
)

// Width is a width policy with its column count.
type Width struct {
	Policy  WidthPolicy
	Columns int
}

func MinimumWidth(n int) Width { return Width{Policy: Minimum, Columns: n} }
func UnitsWidth(n int) Width   { return Width{Policy: Units, Columns: n} }

func (w Width) String() string {
	name := "Minimum"
	if w.Policy == Units {
		name = "Units"
	}
	return fmt.Sprintf("%s(%d)", name, w.Columns)
}

// ParseWidth parses "Minimum(n)" or "Units(n)".
func ParseWidth(s string) (Width, error) {
	s = strings.TrimSpace(s)
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return Width{}, fmt.Errorf("width %q: expected Minimum(n) or Units(n)", s)
	}
	n, err := strconv.Atoi(strings.TrimSpace(s[open+1 : len(s)-1]))
	if err != nil || n < 0 {
		return Width{}, fmt.Errorf("width %q: column count must be a non-negative integer", s)
	}
	switch strings.ToLower(strings.TrimSpace(s[:open])) {
	case "minimum":
		return MinimumWidth(n), nil
	case "units":
		return UnitsWidth(n), nil
	}
	return Width{}, fmt.Errorf("width %q: expected Minimum(n) or Units(n)", s)
}

// VisualState describes how a basic element is laid out and colored.
type VisualState struct {
	Align      Alignment
	Width      Width
	Padding    int
	Background color.Spec
	Foreground color.Spec
}

// Colors returns the visual state's colors with unset values treated as
// transparent.
func (v VisualState) Colors() (fg, bg color.Spec) {
	fg, bg = v.Foreground, v.Background
	if fg == nil {
		fg = color.Transparent{}
	}
	if bg == nil {
		bg = color.Transparent{}
	}
	return fg, bg
}
