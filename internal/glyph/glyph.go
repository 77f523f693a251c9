// Package glyph holds the named characters that element content can refer to
// with an @name placeholder. A glyph is either a single character or a
// sequence of frames that advances with time.
package glyph

import (
	"sort"
	"strings"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// DefaultPeriod is the frame period used when a glyph is declared as a plain
// multi-character string.
const DefaultPeriod = 250 * time.Millisecond

// Glyph is one of Single or Animated.
type Glyph interface {
	// Frame returns the character to show after elapsed time since the clock
	// epoch.
	Frame(elapsed time.Duration) rune
	isGlyph()
}

type Single rune

func (s Single) Frame(time.Duration) rune { return rune(s) }
func (Single) isGlyph()                   {}

// Animated cycles through Chars, showing each one for Period.
type Animated struct {
	Chars  []rune
	Period time.Duration
}

func (a Animated) Frame(elapsed time.Duration) rune {
	if len(a.Chars) == 0 {
		return ' '
	}
	if a.Period <= 0 || elapsed < 0 {
		return a.Chars[0]
	}
	return a.Chars[int(elapsed/a.Period)%len(a.Chars)]
}

func (Animated) isGlyph() {}

// Parse builds a glyph from its configured characters. One character yields a
// Single glyph; more yield an Animated glyph with the given period, or
// DefaultPeriod when period is zero.
func Parse(chars string, period time.Duration) (Glyph, bool) {
	runes := []rune(chars)
	switch {
	case len(runes) == 0:
		return nil, false
	case len(runes) == 1 && period == 0:
		return Single(runes[0]), true
	}
	if period <= 0 {
		period = DefaultPeriod
	}
	return Animated{Chars: runes, Period: period}, true
}

// Table maps glyph names to glyphs.
type Table map[string]Glyph

// Names returns the glyph names in sorted order.
func (t Table) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Longest returns the longest glyph name that prefixes s.
func (t Table) Longest(s string) (string, Glyph, bool) {
	var (
		bestName  string
		bestGlyph Glyph
	)
	for i := range s {
		if i == 0 {
			continue
		}
		if g, ok := t[s[:i]]; ok {
			bestName, bestGlyph = s[:i], g
		}
	}
	if g, ok := t[s]; ok && s != "" {
		bestName, bestGlyph = s, g
	}
	return bestName, bestGlyph, bestGlyph != nil
}

// Suggest returns the defined name closest to an undefined one, or "".
func (t Table) Suggest(name string) string {
	if name == "" || len(t) == 0 {
		return ""
	}
	names := t.Names()
	ranks := fuzzy.RankFindFold(name, names)
	if len(ranks) == 0 {
		ranks = fuzzy.RankFindFold(name[:1], names)
	}
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}

// Clock is the reference instant animated glyphs are timed against.
type Clock struct {
	Epoch time.Time
	Now   func() time.Time
}

// NewClock starts a clock at the current time.
func NewClock() Clock {
	return Clock{Epoch: time.Now(), Now: time.Now}
}

// Elapsed returns the time since the epoch.
func (c Clock) Elapsed() time.Duration {
	now := time.Now
	if c.Now != nil {
		now = c.Now
	}
	if c.Epoch.IsZero() {
		return 0
	}
	return now().Sub(c.Epoch)
}

// Placeholder is an @name reference found in content.
type Placeholder struct {
	Name   string
	Offset int
}

// Expand substitutes every @name placeholder in content. Names match by
// longest prefix against the table. "@@" renders "@" and "@ " renders " ".
// Unknown names are kept literally.
func Expand(content string, table Table, elapsed time.Duration) string {
	if !strings.Contains(content, "@") {
		return content
	}
	var b strings.Builder
	b.Grow(len(content))
	for i := 0; i < len(content); {
		at := strings.IndexByte(content[i:], '@')
		if at < 0 {
			b.WriteString(content[i:])
			break
		}
		b.WriteString(content[i : i+at])
		i += at + 1
		if i >= len(content) {
			b.WriteByte('@')
			break
		}
		switch content[i] {
		case '@':
			b.WriteByte('@')
			i++
			continue
		case ' ':
			b.WriteByte(' ')
			i++
			continue
		}
		name, g, ok := table.Longest(wordAt(content[i:]))
		if !ok {
			b.WriteByte('@')
			continue
		}
		b.WriteRune(g.Frame(elapsed))
		i += len(name)
	}
	return b.String()
}

// Unresolved lists placeholders in content that no glyph in table matches.
func Unresolved(content string, table Table) []Placeholder {
	var missing []Placeholder
	for i := 0; i < len(content); {
		at := strings.IndexByte(content[i:], '@')
		if at < 0 {
			break
		}
		i += at + 1
		if i >= len(content) {
			break
		}
		if content[i] == '@' || content[i] == ' ' {
			i++
			continue
		}
		word := wordAt(content[i:])
		name, _, ok := table.Longest(word)
		if !ok {
			missing = append(missing, Placeholder{Name: word, Offset: i - 1})
			i += len(word)
			continue
		}
		i += len(name)
	}
	return missing
}

// wordAt returns the run of s up to the next space or '@'.
func wordAt(s string) string {
	if end := strings.IndexAny(s, " @"); end >= 0 {
		return s[:end]
	}
	return s
}
