// Package theme holds the colors used to paint the prompt: one style per
// token kind plus the selection highlight.
package theme

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/atomicstack/eash/internal/token"
)

// Styles describes the Lip Gloss styles used for prompt text.
type Styles struct {
	Value     *lipgloss.Style
	String    *lipgloss.Style
	Directory *lipgloss.Style
	Flag      *lipgloss.Style
	AndThen   *lipgloss.Style
	Pipe      *lipgloss.Style
	Nonsense  *lipgloss.Style
	Selection *lipgloss.Style
}

func defaultStyles() Styles {
	return Styles{
		Value: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		),
		String: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		),
		Directory: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		),
		Flag: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		),
		AndThen: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		),
		Pipe: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		),
		Nonsense: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		),
		Selection: ptr(
			lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("15")),
		),
	}
}

// Default returns a fresh copy of the standard styles.
func Default() *Styles {
	s := defaultStyles()
	return &s
}

// ForKind returns the style for a token kind.
func (s *Styles) ForKind(k token.Kind) *lipgloss.Style {
	switch k {
	case token.String:
		return s.String
	case token.Directory:
		return s.Directory
	case token.Flag:
		return s.Flag
	case token.AndThen:
		return s.AndThen
	case token.Pipe:
		return s.Pipe
	case token.Nonsense:
		return s.Nonsense
	default:
		return s.Value
	}
}

// Foreground returns the foreground for a token kind, nil meaning the
// terminal default.
func (s *Styles) Foreground(k token.Kind) color.Color {
	return flat(s.ForKind(k).GetForeground())
}

// SelectionColors returns the selection highlight colors.
func (s *Styles) SelectionColors() (fg, bg color.Color) {
	return flat(s.Selection.GetForeground()), flat(s.Selection.GetBackground())
}

// Override replaces the foreground of the named token kind, or of the
// selection when name is "selection" or "selection_bg".
func (s *Styles) Override(name string, c color.Color) error {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "selection":
		s.Selection = ptr(s.Selection.Foreground(c))
		return nil
	case "selection_bg":
		s.Selection = ptr(s.Selection.Background(c))
		return nil
	}
	for _, k := range token.Kinds() {
		if strings.ReplaceAll(k.String(), "-", "_") != name && k.String() != name {
			continue
		}
		style := ptr(s.ForKind(k).Foreground(c))
		switch k {
		case token.String:
			s.String = style
		case token.Directory:
			s.Directory = style
		case token.Flag:
			s.Flag = style
		case token.AndThen:
			s.AndThen = style
		case token.Pipe:
			s.Pipe = style
		case token.Nonsense:
			s.Nonsense = style
		default:
			s.Value = style
		}
		return nil
	}
	return fmt.Errorf("unknown theme entry %q", name)
}

func flat(c color.Color) color.Color {
	if _, ok := c.(lipgloss.NoColor); ok {
		return nil
	}
	return c
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
