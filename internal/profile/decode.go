package profile

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/atomicstack/eash/internal/chain"
	"github.com/atomicstack/eash/internal/color"
	"github.com/atomicstack/eash/internal/glyph"
	"github.com/atomicstack/eash/internal/theme"
)

type fileSpring struct {
	Spacing   *int     `toml:"spacing"`
	Constant  *float64 `toml:"constant"`
	Dampening *float64 `toml:"dampening"`
}

type fileImpulse struct {
	Edit *float64 `toml:"edit"`
	Edge *float64 `toml:"edge"`
	Word *float64 `toml:"word"`
}

type fileColor struct {
	Type string     `toml:"type"`
	R    *int       `toml:"r"`
	G    *int       `toml:"g"`
	B    *int       `toml:"b"`
	Hex  string     `toml:"hex"`
	From *fileColor `toml:"from"`
	To   *fileColor `toml:"to"`
}

type fileVisual struct {
	Align   string     `toml:"align"`
	Width   string     `toml:"width"`
	Padding int        `toml:"padding"`
	Color   *fileColor `toml:"color"`
	BgColor *fileColor `toml:"bg_color"`
}

type fileElement struct {
	Type     string     `toml:"type"`
	Content  string     `toml:"content"`
	Mass     *float64   `toml:"mass"`
	Position float64    `toml:"position"`
	Visual   fileVisual `toml:"visual_state"`
}

type file struct {
	Spring   fileSpring             `toml:"spring"`
	Impulse  fileImpulse            `toml:"impulse"`
	Glyphs   map[string]interface{} `toml:"glyphs"`
	Theme    map[string]string      `toml:"theme"`
	Elements []fileElement          `toml:"chain_elements"`
}

// Load reads and validates the profile at path.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}
	p, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	p.Path = path
	return p, nil
}

// Parse decodes and validates a profile document.
func Parse(doc string) (*Profile, error) {
	var f file
	md, err := toml.Decode(doc, &f)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}

	p := Default()
	p.Elements = nil

	if err := f.Spring.apply(&p.Spring); err != nil {
		return nil, err
	}
	f.Impulse.apply(p)

	if f.Glyphs != nil {
		names := make([]string, 0, len(f.Glyphs))
		for name := range f.Glyphs {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			g, err := decodeGlyph(name, f.Glyphs[name])
			if err != nil {
				return nil, err
			}
			p.Glyphs[name] = g
		}
	}

	if err := applyTheme(p.Theme, f.Theme); err != nil {
		return nil, err
	}

	if len(f.Elements) == 0 {
		p.Elements = Default().Elements
	}
	prompts := 0
	for i, raw := range f.Elements {
		el, err := raw.element()
		if err != nil {
			return nil, fmt.Errorf("chain_elements[%d]: %w", i, err)
		}
		if el.Kind == PromptElement {
			prompts++
			if prompts > 1 {
				return nil, fmt.Errorf("chain_elements[%d]: %w", i, chain.ErrMultiplePrompts)
			}
		}
		p.Elements = append(p.Elements, el)
	}

	for i, el := range p.Elements {
		for _, ph := range glyph.Unresolved(el.Content, p.Glyphs) {
			err := fmt.Errorf("chain_elements[%d]: @%s at offset %d: %w", i, ph.Name, ph.Offset, ErrUndefinedGlyph)
			if hint := p.Glyphs.Suggest(ph.Name); hint != "" {
				err = fmt.Errorf("%w (did you mean @%s?)", err, hint)
			}
			return nil, err
		}
	}
	return p, nil
}

func (s fileSpring) apply(dst *chain.Spring) error {
	if s.Spacing != nil {
		if *s.Spacing < 0 {
			return fmt.Errorf("spring.spacing %d: %w", *s.Spacing, ErrInvalidSpring)
		}
		dst.Spacing = *s.Spacing
	}
	if s.Constant != nil {
		if *s.Constant <= 0 {
			return fmt.Errorf("spring.constant %v: %w", *s.Constant, ErrInvalidSpring)
		}
		dst.Constant = *s.Constant
	}
	if s.Dampening != nil {
		if *s.Dampening < 0 || *s.Dampening > 1 {
			return fmt.Errorf("spring.dampening %v must be within [0, 1]: %w", *s.Dampening, ErrInvalidSpring)
		}
		dst.Dampening = *s.Dampening
	}
	return nil
}

func (i fileImpulse) apply(p *Profile) {
	if i.Edit != nil {
		p.Impulses.Edit = *i.Edit
	}
	if i.Edge != nil {
		p.Impulses.Edge = *i.Edge
	}
	if i.Word != nil {
		p.Impulses.Word = *i.Word
	}
}

func (e fileElement) element() (Element, error) {
	el := Element{Content: e.Content, Mass: 1, Position: e.Position}
	if e.Mass != nil {
		el.Mass = *e.Mass
	}
	if el.Mass <= 0 {
		return Element{}, fmt.Errorf("mass %v: %w", el.Mass, chain.ErrInvalidMass)
	}
	switch strings.ToLower(e.Type) {
	case "", "basicelement", "basic":
		el.Kind = BasicElement
	case "prompt":
		el.Kind = PromptElement
		return el, nil
	default:
		return Element{}, fmt.Errorf("unknown element type %q", e.Type)
	}

	visual, err := e.Visual.state()
	if err != nil {
		return Element{}, err
	}
	el.Visual = visual
	return el, nil
}

func (v fileVisual) state() (chain.VisualState, error) {
	var state chain.VisualState
	align, err := chain.ParseAlignment(v.Align)
	if err != nil {
		return state, fmt.Errorf("%w: %v", ErrInvalidAlignment, err)
	}
	state.Align = align

	state.Width = chain.MinimumWidth(0)
	if v.Width != "" {
		width, err := chain.ParseWidth(v.Width)
		if err != nil {
			return state, fmt.Errorf("%w: %v", ErrInvalidWidth, err)
		}
		state.Width = width
	}
	if v.Padding < 0 {
		return state, fmt.Errorf("padding %d: %w", v.Padding, ErrInvalidWidth)
	}
	state.Padding = v.Padding

	if state.Foreground, err = decodeColor("color", v.Color); err != nil {
		return state, err
	}
	if state.Background, err = decodeColor("bg_color", v.BgColor); err != nil {
		return state, err
	}
	return state, nil
}

func decodeColor(field string, c *fileColor) (color.Spec, error) {
	if c == nil {
		return color.Transparent{}, nil
	}
	switch strings.ToLower(c.Type) {
	case "transparent":
		return color.Transparent{}, nil
	case "solid", "":
		rgb, err := c.rgb(field)
		if err != nil {
			return nil, err
		}
		return color.Solid{Color: rgb}, nil
	case "gradient":
		if c.From == nil || c.To == nil {
			return nil, fmt.Errorf("%s: gradient needs from and to: %w", field, ErrInvalidColor)
		}
		from, err := c.From.rgb(field + ".from")
		if err != nil {
			return nil, err
		}
		to, err := c.To.rgb(field + ".to")
		if err != nil {
			return nil, err
		}
		return color.Gradient{From: from, To: to}, nil
	}
	return nil, fmt.Errorf("%s: unknown color type %q: %w", field, c.Type, ErrInvalidColor)
}

func (c *fileColor) rgb(field string) (color.RGB, error) {
	if c.Hex != "" {
		rgb, err := color.ParseHex(c.Hex)
		if err != nil {
			return color.RGB{}, fmt.Errorf("%s: %v: %w", field, err, ErrInvalidColor)
		}
		return rgb, nil
	}
	if c.R == nil || c.G == nil || c.B == nil {
		return color.RGB{}, fmt.Errorf("%s: expected hex or r, g and b: %w", field, ErrInvalidColor)
	}
	var out [3]uint8
	for i, v := range []int{*c.R, *c.G, *c.B} {
		if v < 0 || v > 255 {
			return color.RGB{}, fmt.Errorf("%s: component %d out of range: %w", field, v, ErrInvalidColor)
		}
		out[i] = uint8(v)
	}
	return color.RGB{R: out[0], G: out[1], B: out[2]}, nil
}

// decodeGlyph accepts "c", "frames" or ["frames", seconds].
func decodeGlyph(name string, raw interface{}) (glyph.Glyph, error) {
	var (
		chars  string
		period time.Duration
	)
	switch v := raw.(type) {
	case string:
		chars = v
	case []interface{}:
		if len(v) != 2 {
			return nil, fmt.Errorf("glyphs.%s: expected [frames, seconds]: %w", name, ErrInvalidGlyph)
		}
		s, ok := v[0].(string)
		if !ok {
			return nil, fmt.Errorf("glyphs.%s: frames must be a string: %w", name, ErrInvalidGlyph)
		}
		var seconds float64
		switch n := v[1].(type) {
		case float64:
			seconds = n
		case int64:
			seconds = float64(n)
		default:
			return nil, fmt.Errorf("glyphs.%s: period must be a number: %w", name, ErrInvalidGlyph)
		}
		if seconds <= 0 {
			return nil, fmt.Errorf("glyphs.%s: period must be positive: %w", name, ErrInvalidGlyph)
		}
		chars = s
		period = time.Duration(seconds * float64(time.Second))
	default:
		return nil, fmt.Errorf("glyphs.%s: unsupported value %T: %w", name, raw, ErrInvalidGlyph)
	}
	if strings.ContainsAny(chars, " @") {
		return nil, fmt.Errorf("glyphs.%s: frames may not contain spaces or '@': %w", name, ErrInvalidGlyph)
	}
	g, ok := glyph.Parse(chars, period)
	if !ok {
		return nil, fmt.Errorf("glyphs.%s: empty: %w", name, ErrInvalidGlyph)
	}
	return g, nil
}

func applyTheme(styles *theme.Styles, entries map[string]string) error {
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		rgb, err := color.ParseHex(entries[name])
		if err != nil {
			return fmt.Errorf("theme.%s: %v: %w", name, err, ErrInvalidColor)
		}
		if err := styles.Override(name, rgb); err != nil {
			return fmt.Errorf("theme: %w", err)
		}
	}
	return nil
}
