// Package backend polls the sources behind live segments and publishes their
// values on a channel.
package backend

import (
	"context"
	"sync"
	"time"

	"github.com/atomicstack/eash/internal/segment"
	"github.com/atomicstack/eash/internal/tmux"
)

// Kind identifies the source of an event.
type Kind int

const (
	KindClock Kind = iota
	KindTmux
)

func (k Kind) String() string {
	switch k {
	case KindClock:
		return "clock"
	case KindTmux:
		return "tmux"
	default:
		return "unknown"
	}
}

// Event carries fresh segment values or the error from a poll.
type Event struct {
	Kind   Kind
	Values segment.Values
	Err    error
}

// Source is one polled producer of segment values.
type Source struct {
	Kind     Kind
	Interval time.Duration
	Fetch    func(context.Context) (segment.Values, error)
}

// Watcher runs one poller per source until its context is cancelled.
type Watcher struct {
	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher starts polling sources. Every source emits once immediately and
// then on each tick of its interval.
func NewWatcher(parent context.Context, sources ...Source) *Watcher {
	ctx, cancel := context.WithCancel(parent)
	w := &Watcher{
		ctx:    ctx,
		cancel: cancel,
		events: make(chan Event, 16),
	}

	for _, src := range sources {
		if src.Fetch == nil || src.Interval <= 0 {
			continue
		}
		w.wg.Add(1)
		go w.poll(src)
	}

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns the channel of poll results. It is closed once every poller
// has exited.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. Pollers exit after their current fetch completes.
func (w *Watcher) Stop() {
	w.cancel()
}

func (w *Watcher) poll(src Source) {
	defer w.wg.Done()

	emit := func() bool {
		values, err := src.Fetch(w.ctx)
		if w.ctx.Err() != nil {
			return false
		}
		evt := Event{Kind: src.Kind, Values: values, Err: err}
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	if !emit() {
		return
	}

	ticker := time.NewTicker(src.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		}
	}
}

// ClockSource emits the time segment every interval.
func ClockSource(interval time.Duration, now func() time.Time) Source {
	if now == nil {
		now = time.Now
	}
	return Source{
		Kind:     KindClock,
		Interval: interval,
		Fetch: func(context.Context) (segment.Values, error) {
			return segment.Clock(now()), nil
		},
	}
}

var currentContext = tmux.CurrentContext

// TmuxSource emits the session and window segments. Queries to the server are
// spaced at least minGap apart.
func TmuxSource(socketPath string, interval, minGap time.Duration) Source {
	throttle := newThrottle(minGap)
	return Source{
		Kind:     KindTmux,
		Interval: interval,
		Fetch: func(ctx context.Context) (segment.Values, error) {
			if err := throttle.wait(ctx); err != nil {
				return nil, err
			}
			tc, err := currentContext(socketPath)
			if err != nil {
				return nil, err
			}
			return segment.Values{
				segment.Session: tc.Session,
				segment.Window:  tc.Window,
			}, nil
		},
	}
}

// DefaultSources returns the clock source and, inside tmux, the tmux source.
func DefaultSources(socketPath string, interval time.Duration) []Source {
	sources := []Source{ClockSource(interval, nil)}
	if tmux.Inside() {
		sources = append(sources, TmuxSource(socketPath, interval, 250*time.Millisecond))
	}
	return sources
}
