// Package colors provides color output utilities.
package colors

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

// Color constants
const (
	Red    = "\033[0;31m"
	Green  = "\033[0;32m"
	Yellow = "\033[1;33m"
	Blue   = "\033[0;34m"
	Cyan   = "\033[0;36m"
	Reset  = "\033[0m"
)

const checkmark = "✓"

// Logger receives a structured copy of every console message. It is
// satisfied by the logging package without importing it, which keeps the
// dependency direction one-way: logging writes through colors at init time,
// never the reverse.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

var (
	debugEnabled = false

	loggerMu sync.RWMutex
	logger   Logger

	fallbackMu sync.Mutex
	inFallback bool
)

func init() {
	if val := os.Getenv("TUI_RELAY_DEBUG"); val == "true" || val == "1" {
		debugEnabled = true
	}
}

// SetDebug enables or disables debug output.
func SetDebug(enabled bool) {
	debugEnabled = enabled
}

// SetLogger sets the structured logger to mirror console output.
// Pass nil to stop mirroring.
func SetLogger(l Logger) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = l
}

func mirror() Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()
	return logger
}

// emit writes one colored line to w. A failed write is reported through
// Warning at most once; if that report itself cannot be printed, the text
// goes straight to stderr so the two paths cannot recurse into each other.
func emit(w *os.File, line, kind string) {
	if _, err := fmt.Fprintln(w, line); err == nil {
		return
	} else {
		fallbackMu.Lock()
		already := inFallback
		if !already {
			inFallback = true
		}
		fallbackMu.Unlock()

		report := fmt.Sprintf("failed to print %s message: %v", kind, err)
		if already {
			fmt.Fprintf(os.Stderr, "%s\n", report)
			return
		}
		defer func() {
			fallbackMu.Lock()
			inFallback = false
			fallbackMu.Unlock()
		}()
		Warning(report)
	}
}

// Error outputs an error message to stderr.
func Error(msgs ...string) {
	msg := strings.Join(msgs, " ")
	if l := mirror(); l != nil {
		l.Error(msg)
	}
	emit(os.Stderr, fmt.Sprintf("%sError:%s %s", Red, Reset, msg), "error")
}

// Warning outputs a warning message to stderr.
func Warning(msgs ...string) {
	msg := strings.Join(msgs, " ")
	if l := mirror(); l != nil {
		l.Warn(msg)
	}
	emit(os.Stderr, fmt.Sprintf("%sWarning:%s %s", Yellow, Reset, msg), "warning")
}

// Success outputs a success message to stdout.
func Success(msgs ...string) {
	msg := strings.Join(msgs, " ")
	if l := mirror(); l != nil {
		l.Info(msg, "type", "success")
	}
	emit(os.Stdout, fmt.Sprintf("%s%s%s %s", Green, checkmark, Reset, msg), "success")
}

// Info outputs an informational message to stdout.
func Info(msgs ...string) {
	msg := strings.Join(msgs, " ")
	if l := mirror(); l != nil {
		l.Info(msg)
	}
	emit(os.Stdout, fmt.Sprintf("%s%s%s", Blue, msg, Reset), "info")
}

// LogInfo outputs an informational message to stderr. Commands that print
// machine-readable results on stdout use this for human-facing notices.
func LogInfo(msgs ...string) {
	msg := strings.Join(msgs, " ")
	if l := mirror(); l != nil {
		l.Info(msg)
	}
	emit(os.Stderr, fmt.Sprintf("%s%s%s", Blue, msg, Reset), "log info")
}

// Debug outputs a debug message to stderr if debug is enabled. The mirror
// always receives the message; the structured log applies its own level
// filtering.
func Debug(msgs ...string) {
	msg := strings.Join(msgs, " ")
	if l := mirror(); l != nil {
		l.Debug(msg)
	}
	if !debugEnabled {
		return
	}
	emit(os.Stderr, fmt.Sprintf("%sDebug:%s %s", Cyan, Reset, msg), "debug")
}
