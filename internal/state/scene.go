// Package state holds the scene shared by the input handler and the render
// loop behind one lock.
//
// The input side waits for the lock; the render loop only tries it and skips
// the tick when it is held. The prompt inside the chain has its own lock,
// which is always taken after the scene lock.
package state

import (
	"sync"

	"github.com/atomicstack/eash/internal/chain"
	"github.com/atomicstack/eash/internal/glyph"
	"github.com/atomicstack/eash/internal/logging/events"
	"github.com/atomicstack/eash/internal/physics"
	"github.com/atomicstack/eash/internal/prompt"
	"github.com/atomicstack/eash/internal/segment"
	"github.com/atomicstack/eash/internal/theme"
)

// Locked is the scene data reachable while the lock is held.
type Locked struct {
	Chain    *chain.Chain
	Glyphs   glyph.Table
	Theme    *theme.Styles
	Segments segment.Values
	Impulses physics.Impulses
	// Columns is the terminal width, 0 when unknown.
	Columns int
}

// Scene guards a Locked value.
type Scene struct {
	mu   sync.Mutex
	data Locked
}

// NewScene returns a scene holding data. Nil fields are filled with defaults.
func NewScene(data Locked) *Scene {
	if data.Theme == nil {
		data.Theme = theme.Default()
	}
	if data.Glyphs == nil {
		data.Glyphs = glyph.Table{}
	}
	if data.Segments == nil {
		data.Segments = segment.Values{}
	}
	return &Scene{data: data}
}

// Do runs fn with the scene locked, waiting for the lock if needed.
func (s *Scene) Do(fn func(l *Locked)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.data)
}

// TryDo runs fn only if the lock is free and reports whether it ran.
func (s *Scene) TryDo(fn func(l *Locked)) bool {
	if !s.mu.TryLock() {
		return false
	}
	defer s.mu.Unlock()
	fn(&s.data)
	return true
}

// Edit locks the scene and then the prompt, runs fn and applies the impulse
// it returns to the prompt link.
func (s *Scene) Edit(fn func(p *prompt.Prompt, impulses physics.Impulses) float64) {
	s.Do(func(l *Locked) {
		shared := l.Chain.Prompt()
		if shared == nil {
			return
		}
		var kick float64
		shared.Edit(func(p *prompt.Prompt) {
			kick = fn(p, l.Impulses)
		})
		if kick != 0 && l.Chain.Bump(kick) {
			events.Physics.Bump(kick, l.Chain.Links[l.Chain.PromptIndex()].Mass.Velocity)
		}
	})
}

// SetSegments merges values into the scene's segments and reports whether
// anything changed.
func (s *Scene) SetSegments(values segment.Values) bool {
	changed := false
	s.Do(func(l *Locked) {
		for k, v := range values {
			if old, ok := l.Segments[k]; !ok || old != v {
				l.Segments[k] = v
				changed = true
			}
		}
	})
	return changed
}
