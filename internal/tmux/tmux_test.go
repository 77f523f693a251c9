package tmux

import (
	"errors"
	"fmt"
	"os/user"
	"path/filepath"
	"testing"
)

func withStubTmux(t *testing.T, fn func(string) (tmuxClient, error)) {
	t.Helper()
	prev := newTmux
	newTmux = fn
	t.Cleanup(func() { newTmux = prev })
}

type fakeClient struct {
	replies map[string]string
	errs    map[string]error
	targets []string
	closed  bool
}

func (f *fakeClient) DisplayMessage(target, format string) (string, error) {
	f.targets = append(f.targets, target)
	if err := f.errs[format]; err != nil {
		return "", err
	}
	return f.replies[format], nil
}

func (f *fakeClient) Close() error {
	f.closed = true
	return nil
}

func TestCurrentContext(t *testing.T) {
	t.Setenv("TMUX_PANE", "%3")
	client := &fakeClient{replies: map[string]string{
		"#{session_name}": "work\n",
		"#{window_name}":  " editor ",
	}}
	var gotSocket string
	withStubTmux(t, func(socket string) (tmuxClient, error) {
		gotSocket = socket
		return client, nil
	})

	ctx, err := CurrentContext("/tmp/sock")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ctx.Session != "work" || ctx.Window != "editor" {
		t.Fatalf("unexpected context %+v", ctx)
	}
	if gotSocket != "/tmp/sock" {
		t.Fatalf("expected socket to be forwarded, got %q", gotSocket)
	}
	if !client.closed {
		t.Fatal("expected client to be closed")
	}
	for _, target := range client.targets {
		if target != "%3" {
			t.Fatalf("expected pane target %%3, got %q", target)
		}
	}
}

func TestCurrentContextOutsideTmux(t *testing.T) {
	t.Setenv("TMUX_PANE", "")
	withStubTmux(t, func(string) (tmuxClient, error) {
		t.Fatal("client should not be created")
		return nil, nil
	})
	if _, err := CurrentContext(""); !errors.Is(err, ErrNotInTmux) {
		t.Fatalf("expected ErrNotInTmux, got %v", err)
	}
}

func TestCurrentContextErrors(t *testing.T) {
	t.Setenv("TMUX_PANE", "%1")
	boom := errors.New("boom")

	withStubTmux(t, func(string) (tmuxClient, error) { return nil, boom })
	if _, err := CurrentContext(""); !errors.Is(err, boom) {
		t.Fatalf("expected connect error, got %v", err)
	}

	client := &fakeClient{errs: map[string]error{"#{window_name}": boom}}
	withStubTmux(t, func(string) (tmuxClient, error) { return client, nil })
	if _, err := CurrentContext(""); !errors.Is(err, boom) {
		t.Fatalf("expected window error, got %v", err)
	}
	if !client.closed {
		t.Fatal("expected client to be closed after failure")
	}
}

func TestResolveSocketPath(t *testing.T) {
	t.Setenv("EASH_TMUX_SOCKET", "")
	t.Setenv("TMUX", "")
	t.Setenv("TMUX_TMPDIR", "/var/tmp")

	if got, _ := ResolveSocketPath("/flag"); got != "/flag" {
		t.Fatalf("flag should win, got %q", got)
	}

	t.Setenv("TMUX", "/tmp/tmux-1/default,123,0")
	if got, _ := ResolveSocketPath(""); got != "/tmp/tmux-1/default" {
		t.Fatalf("expected TMUX socket, got %q", got)
	}

	t.Setenv("EASH_TMUX_SOCKET", "/env")
	if got, _ := ResolveSocketPath(""); got != "/env" {
		t.Fatalf("env should win over TMUX, got %q", got)
	}

	t.Setenv("EASH_TMUX_SOCKET", "")
	t.Setenv("TMUX", "")
	u, err := user.Current()
	if err != nil {
		t.Skipf("user lookup unavailable: %v", err)
	}
	want := filepath.Join("/var/tmp", fmt.Sprintf("tmux-%s", u.Uid), "default")
	if got, _ := ResolveSocketPath(""); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestInside(t *testing.T) {
	t.Setenv("TMUX", "")
	if Inside() {
		t.Fatal("expected Inside to be false")
	}
	t.Setenv("TMUX", "/tmp/sock,1,0")
	if !Inside() {
		t.Fatal("expected Inside to be true")
	}
}
