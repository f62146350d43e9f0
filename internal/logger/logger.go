// Package logger provides structured logging for keybar.
// By default logs go to a per-process file in the XDG state directory so
// they never interleave with the rendered status line on stdout.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// ErrInvalidLogLevel is returned when an unrecognised log level is provided.
var ErrInvalidLogLevel = errors.New("invalid log level")

const (
	dirPermissions  = 0o755
	filePermissions = 0o644
)

// Logger wraps slog with an optional owned log file.
type Logger struct {
	log     *slog.Logger
	logFile *os.File
}

type options struct {
	dir    string
	writer io.Writer
}

// Option configures New.
type Option func(*options)

// WithDir overrides the log directory. The default is
// $XDG_STATE_HOME/keybar, or ~/.local/state/keybar.
func WithDir(dir string) Option {
	return func(o *options) { o.dir = dir }
}

// WithWriter sends log output to w instead of a file.
func WithWriter(w io.Writer) Option {
	return func(o *options) { o.writer = w }
}

// New creates a Logger. If level is empty, returns a no-op logger.
// Valid levels: debug, info, warn, error (case-insensitive).
func New(level string, opts ...Option) (*Logger, error) {
	if level == "" {
		return Nop(), nil
	}

	slogLevel, err := parseLogLevel(level)
	if err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	l := &Logger{}
	w := o.writer
	if w == nil {
		dir, err := logDir(o.dir)
		if err != nil {
			return nil, err
		}
		if l.logFile, err = openLogFile(dir); err != nil {
			return nil, err
		}
		w = l.logFile
	}

	l.log = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slogLevel}))

	attrs := []any{"pid", os.Getpid(), "level", level}
	if l.logFile != nil {
		attrs = append(attrs, "log_path", l.logFile.Name())
	}
	l.Info("keybar started", attrs...)

	return l, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{log: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// With returns a logger that adds args to every record. The returned logger
// shares the log file; only the original should be closed.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{log: l.log.With(args...)}
}

// Close closes the log file if open.
func (l *Logger) Close() {
	if l.logFile != nil {
		l.logFile.Close()
	}
}

// Debug logs a debug message with optional key-value pairs.
func (l *Logger) Debug(msg string, args ...any) {
	l.log.Debug(msg, args...)
}

// Info logs an info message with optional key-value pairs.
func (l *Logger) Info(msg string, args ...any) {
	l.log.Info(msg, args...)
}

// Warn logs a warning message with optional key-value pairs.
func (l *Logger) Warn(msg string, args ...any) {
	l.log.Warn(msg, args...)
}

// Error logs an error message with optional key-value pairs.
func (l *Logger) Error(msg string, args ...any) {
	l.log.Error(msg, args...)
}

func logDir(dir string) (string, error) {
	if dir == "" {
		stateDir := os.Getenv("XDG_STATE_HOME")
		if stateDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("could not determine home directory: %w", err)
			}
			stateDir = filepath.Join(home, ".local", "state")
		}
		dir = filepath.Join(stateDir, "keybar")
	}

	if err := os.MkdirAll(dir, dirPermissions); err != nil {
		return "", fmt.Errorf("could not create log directory: %w", err)
	}
	return dir, nil
}

// openLogFile opens keybar-<pid>.log in dir, truncating any previous run.
func openLogFile(dir string) (*os.File, error) {
	path := filepath.Join(dir, fmt.Sprintf("keybar-%d.log", os.Getpid()))

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePermissions)
	if err != nil {
		return nil, fmt.Errorf("could not open log file: %w", err)
	}
	return f, nil
}

func parseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return -1, fmt.Errorf("%w: %s (use debug, info, warn, error)", ErrInvalidLogLevel, level)
	}
}
