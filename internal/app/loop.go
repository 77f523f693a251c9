package app

import (
	"context"
	"time"

	"github.com/atomicstack/eash/internal/glyph"
	"github.com/atomicstack/eash/internal/logging/events"
	"github.com/atomicstack/eash/internal/physics"
	"github.com/atomicstack/eash/internal/render"
	"github.com/atomicstack/eash/internal/state"
)

// StatsInterval is how often render statistics are traced.
const StatsInterval = time.Second

// Loop steps the physics and paints a frame on every tick it gets the scene
// lock for. A tick that finds the lock held is skipped, never queued.
type Loop struct {
	scene    *state.Scene
	surface  render.Surface
	clock    glyph.Clock
	interval time.Duration

	last   time.Time
	cursor int
	stats  stats
}

type stats struct {
	since         time.Time
	frames        int
	skipped       int
	promptSkipped int
	busy          time.Duration
}

// NewLoop returns a loop painting scene on surface fps times per second.
func NewLoop(scene *state.Scene, surface render.Surface, clock glyph.Clock, fps int) *Loop {
	if fps <= 0 {
		fps = 60
	}
	return &Loop{
		scene:    scene,
		surface:  surface,
		clock:    clock,
		interval: time.Second / time.Duration(fps),
	}
}

// Tick runs one tick at now. The first painted tick only paints; physics
// starts stepping from the second. It reports whether a frame was painted;
// the error is the surface's flush error.
func (l *Loop) Tick(now time.Time) (bool, error) {
	var (
		res render.Result
		err error
	)
	started := time.Now()
	ran := l.scene.TryDo(func(s *state.Locked) {
		if !l.last.IsZero() {
			physics.Step(s.Chain, now.Sub(l.last).Seconds())
		}
		res, err = render.Frame(l.surface, s.Chain, render.Env{
			Glyphs:   s.Glyphs,
			Clock:    l.clock,
			Theme:    s.Theme,
			Segments: s.Segments,
			Columns:  s.Columns,
			Cursor:   l.cursor,
		})
	})
	if !ran {
		l.stats.skipped++
		return false, nil
	}
	l.last = now
	l.cursor = res.Cursor
	l.stats.frames++
	l.stats.busy += time.Since(started)
	if res.PromptSkipped {
		l.stats.promptSkipped++
	}
	return true, err
}

// Run ticks until ctx is done or a frame fails.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()
	l.stats.since = time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			if _, err := l.Tick(now); err != nil {
				events.Render.Failed(err)
				return err
			}
			if now.Sub(l.stats.since) >= StatsInterval {
				l.report(now)
			}
		}
	}
}

func (l *Loop) report(now time.Time) {
	var mean int64
	if l.stats.frames > 0 {
		mean = l.stats.busy.Microseconds() / int64(l.stats.frames)
	}
	events.Render.Stats(l.stats.frames, l.stats.skipped, l.stats.promptSkipped, mean)
	l.stats = stats{since: now}
}
