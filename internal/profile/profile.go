// Package profile loads the eash.toml profile: spring tuning, impulses,
// glyphs, theme overrides and the chain elements to draw.
package profile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"

	"github.com/atomicstack/eash/internal/chain"
	"github.com/atomicstack/eash/internal/color"
	"github.com/atomicstack/eash/internal/glyph"
	"github.com/atomicstack/eash/internal/physics"
	"github.com/atomicstack/eash/internal/prompt"
	"github.com/atomicstack/eash/internal/theme"
)

// FileName is the profile file looked up during discovery.
const FileName = "eash.toml"

var (
	ErrUndefinedGlyph   = errors.New("undefined glyph")
	ErrInvalidWidth     = errors.New("invalid width")
	ErrInvalidAlignment = errors.New("invalid alignment")
	ErrInvalidColor     = errors.New("invalid color")
	ErrInvalidGlyph     = errors.New("invalid glyph")
	ErrInvalidSpring    = errors.New("invalid spring")
	ErrUnknownKey       = errors.New("unknown key")
)

// ElementKind distinguishes decorative elements from the prompt.
type ElementKind int

const (
	BasicElement ElementKind = iota
	PromptElement
)

func (k ElementKind) String() string {
	if k == PromptElement {
		return "Prompt"
	}
	return "BasicElement"
}

// Element is one configured chain element.
type Element struct {
	Kind     ElementKind
	Content  string
	Mass     float64
	Position float64
	Visual   chain.VisualState
}

// Profile is a validated profile.
type Profile struct {
	// Path is the file the profile came from, empty for the built-in one.
	Path     string
	Spring   chain.Spring
	Impulses physics.Impulses
	Glyphs   glyph.Table
	Theme    *theme.Styles
	Elements []Element
}

// Default returns the built-in profile used when no file is found.
func Default() *Profile {
	glyphs := glyph.Table{
		"arrow": glyph.Single('❯'),
		"spin": glyph.Animated{
			Chars:  []rune("⠋⠙⠹⠸⠼⠴⠦⠧⠇⠏"),
			Period: 100 * time.Millisecond,
		},
	}
	accent := color.Solid{Color: color.RGB{R: 0x7a, G: 0xa2, B: 0xf7}}
	return &Profile{
		Spring:   chain.DefaultSpring(),
		Impulses: physics.DefaultImpulses(),
		Glyphs:   glyphs,
		Theme:    theme.Default(),
		Elements: []Element{
			{
				Kind:    BasicElement,
				Content: "@spin {cwd}",
				Mass:    1,
				Visual: chain.VisualState{
					Width:      chain.MinimumWidth(0),
					Padding:    1,
					Foreground: accent,
				},
			},
			{
				Kind:    BasicElement,
				Content: "{time}",
				Mass:    1,
				Visual: chain.VisualState{
					Width:      chain.MinimumWidth(10),
					Align:      chain.AlignCenter,
					Foreground: color.Gradient{
						From: color.RGB{R: 0xbb, G: 0x9a, B: 0xf7},
						To:   color.RGB{R: 0x7d, G: 0xcf, B: 0xff},
					},
				},
			},
			{
				Kind:    BasicElement,
				Content: "@arrow",
				Mass:    1,
				Visual: chain.VisualState{
					Width:      chain.MinimumWidth(2),
					Foreground: color.Solid{Color: color.RGB{R: 0x9e, G: 0xce, B: 0x6a}},
				},
			},
			{Kind: PromptElement, Mass: 1},
		},
	}
}

// Build turns the profile's elements into a chain whose prompt link holds
// shared. A prompt link is appended when the profile has none.
func (p *Profile) Build(shared *prompt.Shared) (*chain.Chain, error) {
	links := make([]chain.Link, 0, len(p.Elements)+1)
	hasPrompt := false
	for _, el := range p.Elements {
		switch el.Kind {
		case PromptElement:
			hasPrompt = true
			links = append(links, chain.NewPrompt(el.Mass, el.Position, shared))
		default:
			links = append(links, chain.NewBasic(el.Mass, el.Position, el.Content, el.Visual))
		}
	}
	if !hasPrompt {
		pos := 0.0
		if n := len(links); n > 0 {
			pos = links[n-1].Mass.Position
		}
		links = append(links, chain.NewPrompt(1, pos, shared))
	}
	c, err := chain.New(p.Spring, links)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", p.name(), err)
	}
	return c, nil
}

func (p *Profile) name() string {
	if p.Path == "" {
		return "(built-in)"
	}
	return p.Path
}

// Candidates lists the discovery paths in lookup order.
func Candidates(cwd string) []string {
	return []string{
		filepath.Join(cwd, FileName),
		filepath.Join(cwd, "eash", FileName),
		filepath.Join(xdg.ConfigHome, "eash", FileName),
		filepath.Join(xdg.ConfigHome, FileName),
	}
}

// Find returns the first existing profile file, or "" when there is none.
func Find(cwd string) string {
	for _, path := range Candidates(cwd) {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// Resolve loads the profile at path, or discovers one from cwd when path is
// empty. It returns the built-in profile when nothing is found.
func Resolve(path, cwd string) (*Profile, error) {
	if path == "" {
		path = Find(cwd)
	}
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
