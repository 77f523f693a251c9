// Package logging writes errors and structured trace entries to a log file.
// Nothing is written to the terminal, which belongs to the prompt.
package logging

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/google/uuid"
)

const logFileName = "eash.log"

var (
	traceMu      sync.Mutex
	traceEnabled bool
	logPath      = DefaultPath()
	sessionID    = uuid.NewString()
)

// DefaultPath is the log file used when none is configured:
// $XDG_STATE_HOME/eash/eash.log.
func DefaultPath() string {
	return filepath.Join(xdg.StateHome, "eash", logFileName)
}

// Session returns the identifier stamped on every trace entry of this run.
func Session() string {
	return sessionID
}

// Path returns the current log destination.
func Path() string {
	traceMu.Lock()
	defer traceMu.Unlock()
	return logPath
}

// Error writes errors to the shared log file.
func Error(err error) {
	if err == nil {
		return
	}

	f, ferr := openLog()
	if ferr != nil {
		fmt.Fprintf(os.Stderr, "logging failed: %v\n", ferr)
		return
	}
	defer f.Close()

	log.SetOutput(f)
	log.Println(err)
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	traceMu.Lock()
	traceEnabled = enabled
	traceMu.Unlock()
}

// TraceEnabled reports whether trace entries are written.
func TraceEnabled() bool {
	traceMu.Lock()
	defer traceMu.Unlock()
	return traceEnabled
}

// Trace appends a structured JSON entry to the shared log when tracing is enabled.
func Trace(event string, payload interface{}) {
	if !TraceEnabled() {
		return
	}

	entry := struct {
		Time    time.Time   `json:"time"`
		Session string      `json:"session"`
		Event   string      `json:"event"`
		Payload interface{} `json:"payload,omitempty"`
	}{
		Time:    time.Now().UTC(),
		Session: sessionID,
		Event:   event,
		Payload: payload,
	}

	f, err := openLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "trace logging failed: %v\n", err)
		return
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	if err := enc.Encode(entry); err != nil {
		fmt.Fprintf(os.Stderr, "trace encoding failed: %v\n", err)
	}
}

// Configure sets the log destination. Empty values fall back to the default
// path. Directories are created automatically when missing.
func Configure(path string) {
	traceMu.Lock()
	defer traceMu.Unlock()
	if strings.TrimSpace(path) == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		logPath = filepath.Join(os.TempDir(), logFileName)
		return
	}
	logPath = path
}

func openLog() (*os.File, error) {
	return os.OpenFile(Path(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
}
