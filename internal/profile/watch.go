package profile

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DebounceDelay collapses the burst of events an editor produces on save.
const DebounceDelay = 100 * time.Millisecond

// Watch calls fn with the reloaded profile, or the load error, each time the
// file at path is written or recreated. It blocks until ctx is done.
//
// The parent directory is watched rather than the file so that editors which
// replace the file on save keep triggering reloads.
func Watch(ctx context.Context, path string, fn func(*Profile, error)) error {
	path = filepath.Clean(path)
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watching profile: %w", err)
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(path), err)
	}

	var (
		timer   *time.Timer
		pending <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(DebounceDelay)
			} else {
				timer.Reset(DebounceDelay)
			}
			pending = timer.C
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			fn(nil, fmt.Errorf("watching profile: %w", err))
		case <-pending:
			pending = nil
			fn(Load(path))
		}
	}
}
