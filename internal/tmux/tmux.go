package tmux

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	gotmux "github.com/atomicstack/gotmuxcc/gotmuxcc"
)

// ErrNotInTmux is returned when no tmux pane can be identified.
var ErrNotInTmux = errors.New("tmux: not running inside tmux")

// Context identifies the tmux session and window hosting the prompt.
type Context struct {
	Session string
	Window  string
}

type tmuxClient interface {
	DisplayMessage(target, format string) (string, error)
	Close() error
}

var newTmux = func(socketPath string) (tmuxClient, error) {
	if socketPath != "" {
		return gotmux.NewTmux(socketPath)
	}
	return gotmux.DefaultTmux()
}

// Inside reports whether the process runs inside a tmux pane.
func Inside() bool {
	return strings.TrimSpace(os.Getenv("TMUX")) != ""
}

func ResolveSocketPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if envSocket := os.Getenv("EASH_TMUX_SOCKET"); envSocket != "" {
		return envSocket, nil
	}
	if tmuxEnv := os.Getenv("TMUX"); tmuxEnv != "" {
		parts := strings.Split(tmuxEnv, ",")
		if len(parts) > 0 && parts[0] != "" {
			return parts[0], nil
		}
	}
	baseDir := os.Getenv("TMUX_TMPDIR")
	if baseDir == "" {
		baseDir = "/tmp"
	}
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return filepath.Join(baseDir, fmt.Sprintf("tmux-%s", u.Uid), "default"), nil
}

// CurrentContext asks the server which session and window own $TMUX_PANE.
func CurrentContext(socketPath string) (Context, error) {
	pane := strings.TrimSpace(os.Getenv("TMUX_PANE"))
	if pane == "" {
		return Context{}, ErrNotInTmux
	}
	client, err := newTmux(socketPath)
	if err != nil {
		return Context{}, fmt.Errorf("tmux: connect: %w", err)
	}
	defer client.Close()

	session, err := client.DisplayMessage(pane, "#{session_name}")
	if err != nil {
		return Context{}, fmt.Errorf("tmux: session name: %w", err)
	}
	window, err := client.DisplayMessage(pane, "#{window_name}")
	if err != nil {
		return Context{}, fmt.Errorf("tmux: window name: %w", err)
	}
	return Context{
		Session: strings.TrimSpace(session),
		Window:  strings.TrimSpace(window),
	}, nil
}
