// Package app wires the scene, the render loop, the input program and the
// background watchers together and supervises them until exit.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/atomicstack/eash/internal/backend"
	"github.com/atomicstack/eash/internal/data/dispatcher"
	"github.com/atomicstack/eash/internal/glyph"
	"github.com/atomicstack/eash/internal/logging/events"
	"github.com/atomicstack/eash/internal/profile"
	"github.com/atomicstack/eash/internal/prompt"
	"github.com/atomicstack/eash/internal/render"
	"github.com/atomicstack/eash/internal/segment"
	"github.com/atomicstack/eash/internal/state"
	"github.com/atomicstack/eash/internal/tmux"
	"github.com/atomicstack/eash/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	ConfigPath      string
	FPS             int
	Watch           bool
	SegmentInterval time.Duration
	SocketPath      string
}

// Run loads the profile and drives the prompt until the user quits, ctx is
// cancelled or the terminal stops accepting output.
func Run(ctx context.Context, cfg Config) error {
	cwd, _ := os.Getwd()
	prof, err := profile.Resolve(cfg.ConfigPath, cwd)
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}
	scene, err := NewScene(prof, terminalWidth(os.Stdout))
	if err != nil {
		return err
	}

	socketPath := ""
	if tmux.Inside() {
		if socketPath, err = tmux.ResolveSocketPath(cfg.SocketPath); err != nil {
			return fmt.Errorf("resolve socket path: %w", err)
		}
	}

	surface := render.NewANSISurface(os.Stdout)
	defer restore(os.Stdout)

	return supervise(ctx, scene, surface, prof.Path, cfg, socketPath)
}

// NewScene builds the chain described by prof around a fresh prompt.
func NewScene(prof *profile.Profile, columns int) (*state.Scene, error) {
	c, err := prof.Build(prompt.NewShared())
	if err != nil {
		return nil, err
	}
	events.Profile.Loaded(prof.Path, len(c.Links), len(prof.Glyphs))
	return state.NewScene(state.Locked{
		Chain:    c,
		Glyphs:   prof.Glyphs,
		Theme:    prof.Theme,
		Segments: segment.Static(),
		Impulses: prof.Impulses,
		Columns:  columns,
	}), nil
}

func supervise(ctx context.Context, scene *state.Scene, surface render.Surface, profilePath string, cfg Config, socketPath string) error {
	g, ctx := errgroup.WithContext(ctx)

	loop := NewLoop(scene, surface, glyph.NewClock(), cfg.FPS)
	g.Go(func() error {
		return loop.Run(ctx)
	})

	program := tea.NewProgram(ui.NewModel(scene), tea.WithContext(ctx), tea.WithoutRenderer())
	g.Go(func() error {
		_, err := program.Run()
		if errors.Is(err, tea.ErrProgramKilled) {
			err = nil
		}
		return stopped(err)
	})

	interval := cfg.SegmentInterval
	if interval <= 0 {
		interval = time.Second
	}
	watcher := backend.NewWatcher(ctx, backend.DefaultSources(socketPath, interval)...)
	defer watcher.Stop()
	g.Go(func() error {
		dispatcher.New(scene).Drain(watcher.Events())
		return nil
	})

	if cfg.Watch && profilePath != "" {
		g.Go(func() error {
			err := profile.Watch(ctx, profilePath, func(p *profile.Profile, err error) {
				ApplyProfile(scene, profilePath, p, err)
			})
			if err != nil {
				events.Profile.ReloadFailed(profilePath, err)
			}
			return nil
		})
	}

	err := g.Wait()
	if errors.Is(err, errStopped) {
		return nil
	}
	return err
}

var errStopped = errors.New("input program stopped")

// stopped turns a clean exit of the input program into an error so the rest
// of the group is cancelled with it.
func stopped(err error) error {
	if err != nil {
		return err
	}
	return errStopped
}

// ApplyProfile swaps a reloaded profile into scene, keeping the prompt and
// the motion of links that survive. A failed reload leaves scene untouched.
func ApplyProfile(scene *state.Scene, path string, p *profile.Profile, err error) {
	if err != nil {
		events.Profile.ReloadFailed(path, err)
		return
	}
	scene.Do(func(l *state.Locked) {
		next, err := p.Build(l.Chain.Prompt())
		if err != nil {
			events.Profile.ReloadFailed(path, err)
			return
		}
		l.Chain.Reconcile(next)
		l.Glyphs = p.Glyphs
		l.Theme = p.Theme
		l.Impulses = p.Impulses
		events.Profile.Reloaded(path, len(l.Chain.Links))
	})
}

func terminalWidth(f *os.File) int {
	if !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// restore leaves the terminal on a fresh line with default colors.
func restore(w io.Writer) {
	_, _ = io.WriteString(w, ansi.ResetStyle+"\r\n")
}
