package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/eash/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App        app.Config
	Logging    Logging
	ListGlyphs bool
	Flags      map[string]string
	Args       []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envConfigPath      = "EASH_CONFIG"
	envFPS             = "EASH_FPS"
	envTrace           = "EASH_TRACE"
	envLogFile         = "EASH_LOG_FILE"
	envWatch           = "EASH_WATCH"
	envSegmentInterval = "EASH_SEGMENT_INTERVAL"
	envSocketPath      = "EASH_TMUX_SOCKET"
)

const (
	defaultFPS = 60
	maxFPS     = 240
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("eash", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	configPath := fs.String("config", envOrDefault(env, envConfigPath, ""), "path to eash.toml (default: discovered)")
	fps := fs.Int("fps", envOrInt(env, envFPS, defaultFPS), "render ticks per second")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	watch := fs.Bool("watch", envOrBool(env, envWatch, true), "reload the profile when it changes")
	segmentInterval := fs.Duration("segment-interval", envOrDuration(env, envSegmentInterval, time.Second), "refresh interval for live segments")
	socket := fs.String("socket", envOrDefault(env, envSocketPath, ""), "path to the tmux socket (overrides environment detection)")
	listGlyphs := fs.Bool("list-glyphs", false, "print the glyph table and exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *fps < 1 || *fps > maxFPS {
		return Config{}, fmt.Errorf("fps must be within 1..%d (got %d)", maxFPS, *fps)
	}
	if *segmentInterval <= 0 {
		return Config{}, fmt.Errorf("segment-interval must be > 0 (got %s)", *segmentInterval)
	}

	cfg := Config{
		App: app.Config{
			ConfigPath:      *configPath,
			FPS:             *fps,
			Watch:           *watch,
			SegmentInterval: *segmentInterval,
			SocketPath:      *socket,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		ListGlyphs: *listGlyphs,
		Flags: map[string]string{
			"config":          *configPath,
			"fps":             strconv.Itoa(*fps),
			"trace":           strconv.FormatBool(*trace),
			"logFile":         *logFile,
			"watch":           strconv.FormatBool(*watch),
			"segmentInterval": segmentInterval.String(),
			"socket":          *socket,
			"listGlyphs":      strconv.FormatBool(*listGlyphs),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate checks that an explicitly named profile exists.
func Validate(cfg Config) error {
	if cfg.App.ConfigPath == "" {
		return nil
	}
	info, err := os.Stat(cfg.App.ConfigPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("config: %s is a directory", cfg.App.ConfigPath)
	}
	return nil
}
