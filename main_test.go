package main

import (
	"strings"
	"testing"
	"time"

	"github.com/atomicstack/eash/internal/app"
	"github.com/atomicstack/eash/internal/config"
	"github.com/atomicstack/eash/internal/glyph"
	"github.com/atomicstack/eash/internal/profile"
	"github.com/atomicstack/eash/internal/testutil"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			ConfigPath:      "eash.toml",
			FPS:             30,
			Watch:           true,
			SegmentInterval: 2 * time.Second,
			SocketPath:      "socket-path",
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{
			"config": "eash.toml",
			"fps":    "30",
			"socket": "socket-path",
		},
		Args: []string{"-fps", "30"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["socket"] != "socket-path" {
		t.Fatalf("expected socket flag %q, got %v", "socket-path", flagsValue["socket"])
	}
	if flagsValue["fps"] != "30" {
		t.Fatalf("expected fps 30, got %v", flagsValue["fps"])
	}
	if flagsValue["config"] != "eash.toml" {
		t.Fatalf("expected config eash.toml, got %v", flagsValue["config"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if flagsValue["logFile"] != "trace.log" {
		t.Fatalf("expected log file trace.log, got %v", flagsValue["logFile"])
	}
	if payload["session"] == "" {
		t.Fatalf("expected session id in payload")
	}

	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	if cfgValue, ok := payload["config"].(config.Config); !ok {
		t.Fatalf("expected config in payload")
	} else if cfgValue.App != cfg.App {
		t.Fatalf("expected app config %#v, got %#v", cfg.App, cfgValue.App)
	}
}

func TestWriteGlyphTableDefaultProfile(t *testing.T) {
	var b strings.Builder
	if err := writeGlyphTable(&b, profile.Default().Glyphs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertGolden(t, "glyphs_default.txt", b.String())
}

func TestWriteGlyphTableSorted(t *testing.T) {
	var b strings.Builder
	glyphs := glyph.Table{
		"zed":   glyph.Single('z'),
		"alpha": glyph.Animated{Chars: []rune("ab"), Period: 250 * time.Millisecond},
	}
	if err := writeGlyphTable(&b, glyphs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and two rows, got %q", lines)
	}
	if !strings.HasPrefix(lines[1], "alpha") || !strings.HasSuffix(lines[1], "250ms") {
		t.Fatalf("unexpected first row %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "zed") {
		t.Fatalf("unexpected second row %q", lines[2])
	}
}
