// Package logger provides verbose logging for the handbook CLI.
// Logging is silent by default so it never corrupts the TUI. The --verbose
// flag lowers the threshold to debug and messages go to stderr.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Level is a logging threshold. Messages below the threshold are dropped.
type Level int

const (
	// LevelDebug shows everything.
	LevelDebug Level = iota
	// LevelInfo shows info and warnings.
	LevelInfo
	// LevelWarn shows warnings only.
	LevelWarn
	// LevelOff shows nothing.
	LevelOff
)

var (
	mu     sync.RWMutex
	level  Level     = LevelOff
	output io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose (debug) logging.
func SetVerbose(v bool) {
	if v {
		SetLevel(LevelDebug)
		return
	}
	SetLevel(LevelOff)
}

// IsVerbose returns true if debug messages are being written.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return level == LevelDebug
}

// SetLevel sets the logging threshold.
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	level = l
}

// SetOutput sets the output writer for logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

func logf(l Level, prefix, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if l >= level && level != LevelOff {
		fmt.Fprintf(output, prefix+format+"\n", args...)
	}
}

// Debug prints a message at debug level.
func Debug(format string, args ...any) {
	logf(LevelDebug, "[DEBUG] ", format, args...)
}

// Section prints a section header at debug level.
func Section(name string) {
	logf(LevelDebug, "", "\n=== %s ===", name)
}

// Info prints an informational message.
func Info(format string, args ...any) {
	logf(LevelInfo, "[INFO] ", format, args...)
}

// Warn prints a warning message.
func Warn(format string, args ...any) {
	logf(LevelWarn, "[WARN] ", format, args...)
}
