package theme

import (
	"testing"

	"charm.land/lipgloss/v2"

	"github.com/atomicstack/eash/internal/token"
)

func TestKindsHaveDistinctColors(t *testing.T) {
	s := Default()
	seen := map[[4]uint32]token.Kind{}
	for _, k := range token.Kinds() {
		c := s.Foreground(k)
		if c == nil {
			t.Fatalf("kind %s has no color", k)
		}
		r, g, b, a := c.RGBA()
		key := [4]uint32{r, g, b, a}
		if prev, dup := seen[key]; dup {
			t.Fatalf("kinds %s and %s share a color", prev, k)
		}
		seen[key] = k
	}
}

func TestOverride(t *testing.T) {
	s := Default()
	red := lipgloss.Color("#ff0000")
	if err := s.Override("and_then", red); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Foreground(token.AndThen) != red {
		t.Fatalf("expected override to apply")
	}
	if err := s.Override("selection_bg", red); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, bg := s.SelectionColors(); bg != red {
		t.Fatalf("expected selection background override")
	}
	if err := s.Override("bogus", red); err == nil {
		t.Fatalf("expected unknown entry to fail")
	}
	if Default().Foreground(token.AndThen) == red {
		t.Fatalf("override leaked into defaults")
	}
}
