package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/atomicstack/eash/internal/app"
	"github.com/atomicstack/eash/internal/config"
	"github.com/atomicstack/eash/internal/format/table"
	"github.com/atomicstack/eash/internal/glyph"
	"github.com/atomicstack/eash/internal/logging"
	"github.com/atomicstack/eash/internal/logging/events"
	"github.com/atomicstack/eash/internal/profile"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	if runtimeCfg.ListGlyphs {
		if err := listGlyphs(os.Stdout, runtimeCfg.App.ConfigPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	traceStartup(runtimeCfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()
	if err := app.Run(ctx, runtimeCfg.App); err != nil {
		events.App.Failed(err)
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func listGlyphs(w io.Writer, configPath string) error {
	cwd, _ := os.Getwd()
	prof, err := profile.Resolve(configPath, cwd)
	if err != nil {
		return err
	}
	return writeGlyphTable(w, prof.Glyphs)
}

// writeGlyphTable prints one row per glyph in name order.
func writeGlyphTable(w io.Writer, glyphs glyph.Table) error {
	rows := [][]string{{"NAME", "KIND", "FRAMES", "PERIOD"}}
	for _, name := range glyphs.Names() {
		switch g := glyphs[name].(type) {
		case glyph.Single:
			rows = append(rows, []string{name, "single", string(rune(g)), ""})
		case glyph.Animated:
			rows = append(rows, []string{name, "animated", string(g.Chars), g.Period.String()})
		}
	}
	lines := table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft, table.AlignLeft, table.AlignRight})
	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	payload := map[string]interface{}{
		"argv":    cfg.Args,
		"flags":   flags,
		"config":  cfg,
		"session": logging.Session(),
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails inspects standard descriptors for terminal support and dimensions.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
				if detected == nil {
					detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			} else {
				entry.Error = err.Error()
			}
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
