// Package color describes how a chain element is colored: not at all, with a
// single flat color, or with a gradient interpolated per character.
package color

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrColorNotFlat is returned when a gradient is asked for a single color.
var ErrColorNotFlat = errors.New("color is not flat")

// RGB is an opaque 24-bit color.
type RGB struct {
	R, G, B uint8
}

// RGBA implements image/color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Spec is one of Transparent, Solid or Gradient.
//
// A nil image/color.Color returned by Flat or At means "terminal default".
type Spec interface {
	Flat() (color.Color, error)
	At(distance float64) color.Color
	isSpec()
}

type Transparent struct{}

type Solid struct {
	Color RGB
}

type Gradient struct {
	From RGB
	To   RGB
}

func (Transparent) Flat() (color.Color, error) { return nil, nil }
func (Transparent) At(float64) color.Color     { return nil }
func (Transparent) isSpec()                    {}

func (s Solid) Flat() (color.Color, error) { return s.Color, nil }
func (s Solid) At(float64) color.Color     { return s.Color }
func (Solid) isSpec()                      {}

func (g Gradient) Flat() (color.Color, error) {
	return nil, fmt.Errorf("gradient %s..%s: %w", g.From, g.To, ErrColorNotFlat)
}

// At interpolates each channel linearly: from + (to-from)*distance.
// Distances outside [0, 1] are clamped.
func (g Gradient) At(distance float64) color.Color {
	switch {
	case distance <= 0:
		return g.From
	case distance >= 1:
		return g.To
	}
	from, _ := colorful.MakeColor(g.From)
	to, _ := colorful.MakeColor(g.To)
	r, gg, b := from.BlendRgb(to, distance).RGB255()
	return RGB{R: r, G: gg, B: b}
}

func (Gradient) isSpec() {}

// IsGradient reports whether s varies per character.
func IsGradient(s Spec) bool {
	_, ok := s.(Gradient)
	return ok
}

// ParseHex parses "#rgb" or "#rrggbb".
func ParseHex(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") || (len(s) != 4 && len(s) != 7) {
		return RGB{}, fmt.Errorf("invalid hex color %q", s)
	}
	if strings.Trim(strings.ToLower(s[1:]), "0123456789abcdef") != "" {
		return RGB{}, fmt.Errorf("invalid hex color %q", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}
