// Package logger implements a small leveled logger writing to one or more
// outputs. It carries just what the spancheck tool needs: levels, a
// pluggable format, and thread-safe writes.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelFatal
)

var levelString = map[LogLevel]string{
	LevelDebug:   "DEBUG ",
	LevelInfo:    "INFO  ",
	LevelWarning: "WARN  ",
	LevelError:   "ERROR ",
	LevelFatal:   "FATAL ",
}

// A FormatFunc turns a message and its level into the line that gets
// written (timestamping, level tags, etc.).
type FormatFunc func(msg string, lvl LogLevel) string

// DefaultFmt formats messages as `LEVEL 2006-01-02 15:04:05: message` with
// a trailing newline, without duplicating one the message already carries.
func DefaultFmt(msg string, lvl LogLevel) string {
	logTime := time.Now().Format(time.DateTime)
	if n := len(msg); n > 0 && msg[n-1] == '\n' {
		msg = msg[:n-1]
	}
	return fmt.Sprintf("%v%v: %v\n", levelString[lvl], logTime, msg)
}

// A Logger writes formatted messages to its outputs when their level passes
// the threshold. Methods are safe for concurrent use.
type Logger struct {
	level   LogLevel
	fmt     FormatFunc
	outputs []io.Writer
	mu      sync.Mutex
}

// New creates a logger at the given threshold writing to the given writers.
// Passing nil for `fmt` uses [DefaultFmt].
func New(fmt FormatFunc, lvl LogLevel, writers ...io.Writer) *Logger {
	if fmt == nil {
		fmt = DefaultFmt
	}
	return &Logger{
		level:   lvl,
		fmt:     fmt,
		outputs: writers,
	}
}

// NewOutputs creates a logger from output names: "stdout", "stderr", or a
// file path (created along with its directory if needed). Invalid outputs
// are skipped with a note on stderr; the logger is always usable.
func NewOutputs(lvl LogLevel, format FormatFunc, outputs ...string) *Logger {
	var outs []io.Writer
	for _, out := range outputs {
		switch out {
		case "stdout":
			outs = append(outs, os.Stdout)
		case "stderr":
			outs = append(outs, os.Stderr)
		default:
			// If this fails, opening the file will fail too.
			os.MkdirAll(filepath.Dir(out), os.ModePerm)
			f, err := os.OpenFile(out, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0660)
			if err != nil {
				fmt.Fprintf(os.Stderr, "logger: Couldn't open log file at %v (%v). Will not log to it.\n", out, err)
				continue
			}
			outs = append(outs, f)
		}
	}
	return New(format, lvl, outs...)
}

// Log formats a message and writes it to the outputs if the level passes.
func (l *Logger) Log(lvl LogLevel, msg string) {
	if lvl < l.level {
		return
	}
	// Format before taking the lock, in case a timestamp is used.
	s := l.fmt(msg, lvl)
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, out := range l.outputs {
		io.WriteString(out, s)
	}
}

// Debugf logs at Debug level with a format string.
func (l *Logger) Debugf(format string, a ...any) {
	l.Log(LevelDebug, fmt.Sprintf(format, a...))
}

// Infof logs at Info level with a format string.
func (l *Logger) Infof(format string, a ...any) {
	l.Log(LevelInfo, fmt.Sprintf(format, a...))
}

// Warnf logs at Warning level with a format string.
func (l *Logger) Warnf(format string, a ...any) {
	l.Log(LevelWarning, fmt.Sprintf(format, a...))
}

// Errorf logs at Error level with a format string.
func (l *Logger) Errorf(format string, a ...any) {
	l.Log(LevelError, fmt.Sprintf(format, a...))
}

// Fatalf logs at Fatal level with a format string. Exiting is left to the
// caller.
func (l *Logger) Fatalf(format string, a ...any) {
	l.Log(LevelFatal, fmt.Sprintf(format, a...))
}
