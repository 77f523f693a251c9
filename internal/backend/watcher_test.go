package backend

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/atomicstack/eash/internal/segment"
	"github.com/atomicstack/eash/internal/tmux"
)

func TestWatcherEmitsImmediately(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 30, 15, 0, time.UTC)
	w := NewWatcher(context.Background(), ClockSource(time.Hour, func() time.Time { return now }))
	defer func() {
		w.Stop()
		w.wg.Wait()
	}()

	select {
	case evt := <-w.Events():
		if evt.Kind != KindClock {
			t.Fatalf("expected clock event, got %v", evt.Kind)
		}
		if evt.Values[segment.Time] != "09:30:15" {
			t.Fatalf("unexpected time %q", evt.Values[segment.Time])
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for first event")
	}
}

func TestWatcherPollsOnInterval(t *testing.T) {
	var calls atomic.Int32
	src := Source{
		Kind:     KindClock,
		Interval: 5 * time.Millisecond,
		Fetch: func(context.Context) (segment.Values, error) {
			calls.Add(1)
			return segment.Values{}, nil
		},
	}
	w := NewWatcher(context.Background(), src)
	for i := 0; i < 3; i++ {
		select {
		case <-w.Events():
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for event %d", i)
		}
	}
	w.Stop()
	w.wg.Wait()
	if calls.Load() < 3 {
		t.Fatalf("expected at least 3 fetches, got %d", calls.Load())
	}
}

func TestWatcherClosesOnParentCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	w := NewWatcher(ctx, ClockSource(time.Millisecond, nil))
	cancel()

	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-w.Events():
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("events channel not closed after cancel")
		}
	}
}

func TestWatcherSkipsInvalidSources(t *testing.T) {
	w := NewWatcher(context.Background(), Source{Kind: KindTmux}, Source{Interval: 0, Fetch: func(context.Context) (segment.Values, error) { return nil, nil }})
	select {
	case _, ok := <-w.Events():
		if ok {
			t.Fatal("expected no events from invalid sources")
		}
	case <-time.After(time.Second):
		t.Fatal("expected channel to close with no pollers")
	}
}

func TestTmuxSource(t *testing.T) {
	prev := currentContext
	t.Cleanup(func() { currentContext = prev })

	currentContext = func(socket string) (tmux.Context, error) {
		if socket != "/sock" {
			t.Fatalf("unexpected socket %q", socket)
		}
		return tmux.Context{Session: "main", Window: "vim"}, nil
	}
	values, err := TmuxSource("/sock", time.Second, 0).Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if values[segment.Session] != "main" || values[segment.Window] != "vim" {
		t.Fatalf("unexpected values %v", values)
	}

	boom := errors.New("no server")
	currentContext = func(string) (tmux.Context, error) { return tmux.Context{}, boom }
	w := NewWatcher(context.Background(), TmuxSource("/sock", time.Hour, 0))
	defer func() {
		w.Stop()
		w.wg.Wait()
	}()
	select {
	case evt := <-w.Events():
		if evt.Kind != KindTmux || !errors.Is(evt.Err, boom) {
			t.Fatalf("expected tmux error event, got %+v", evt)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for error event")
	}
}

func TestThrottleSpacesCalls(t *testing.T) {
	th := newThrottle(20 * time.Millisecond)
	ctx := context.Background()
	start := time.Now()
	if err := th.wait(ctx); err != nil {
		t.Fatal(err)
	}
	if err := th.wait(ctx); err != nil {
		t.Fatal(err)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Fatalf("expected second wait to block, elapsed %v", elapsed)
	}
}

func TestThrottleHonoursCancel(t *testing.T) {
	th := newThrottle(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	if err := th.wait(ctx); err != nil {
		t.Fatal(err)
	}
	cancel()
	if err := th.wait(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestDefaultSources(t *testing.T) {
	t.Setenv("TMUX", "")
	if got := DefaultSources("", time.Second); len(got) != 1 || got[0].Kind != KindClock {
		t.Fatalf("expected clock only outside tmux, got %d sources", len(got))
	}
	t.Setenv("TMUX", "/tmp/sock,1,0")
	got := DefaultSources("", time.Second)
	if len(got) != 2 || got[1].Kind != KindTmux {
		t.Fatalf("expected clock and tmux sources, got %d", len(got))
	}
}
