package logger

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func TestNew_ValidLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error", "DEBUG", "Warn"} {
		t.Run(level, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv("XDG_STATE_HOME", tempDir)

			l, err := New(level)
			if err != nil {
				t.Fatalf("New(%q) returned error: %v", level, err)
			}
			l.Close()

			entries, err := os.ReadDir(filepath.Join(tempDir, "keybar"))
			if err != nil {
				t.Fatalf("failed to read log directory: %v", err)
			}
			if len(entries) != 1 {
				t.Errorf("expected 1 log file, got %d", len(entries))
			}
		})
	}
}

func TestNew_InvalidLevels_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		level := rapid.StringMatching(`[a-z]{1,10}`).Draw(rt, "level")

		switch strings.ToLower(level) {
		case "debug", "info", "warn", "error":
			rt.Skip("valid level generated")
		}

		l, err := New(level, WithWriter(&bytes.Buffer{}))
		if err == nil {
			l.Close()
			rt.Fatalf("New(%q) should return error for invalid level", level)
		}
		if !errors.Is(err, ErrInvalidLogLevel) {
			rt.Fatalf("error should wrap ErrInvalidLogLevel, got: %v", err)
		}
	})
}

func TestNew_EmptyLevel_NoOpLogger(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", tempDir)

	l, err := New("")
	if err != nil {
		t.Fatalf("New(\"\") returned error: %v", err)
	}
	defer l.Close()

	l.Debug("test debug")
	l.Error("test error")

	if _, err := os.Stat(filepath.Join(tempDir, "keybar")); !os.IsNotExist(err) {
		t.Errorf("log directory should not exist for empty level")
	}
}

func TestNew_WithDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	l, err := New("info", WithDir(dir))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	l.Info("hello")
	l.Close()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("failed to read log directory: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 log file, got %d", len(entries))
	}

	name := entries[0].Name()
	if !strings.HasPrefix(name, "keybar-") || !strings.HasSuffix(name, ".log") {
		t.Errorf("unexpected log filename %q", name)
	}
}

func TestNew_ClobbersExistingFile(t *testing.T) {
	dir := t.TempDir()

	l1, err := New("debug", WithDir(dir))
	if err != nil {
		t.Fatalf("first New returned error: %v", err)
	}
	l1.Info("first session")
	l1.Close()

	l2, err := New("debug", WithDir(dir))
	if err != nil {
		t.Fatalf("second New returned error: %v", err)
	}
	l2.Info("second session")
	l2.Close()

	entries, _ := os.ReadDir(dir)
	content, _ := os.ReadFile(filepath.Join(dir, entries[0].Name()))

	if strings.Contains(string(content), "first session") {
		t.Errorf("log file should be clobbered, still contains first session content")
	}
	if !strings.Contains(string(content), "second session") {
		t.Errorf("log file should contain second session content")
	}
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		level  string
		logged []string
		hidden []string
	}{
		{"debug", []string{"debug msg", "info msg", "warn msg", "error msg"}, nil},
		{"info", []string{"info msg", "warn msg", "error msg"}, []string{"debug msg"}},
		{"warn", []string{"warn msg", "error msg"}, []string{"debug msg", "info msg"}},
		{"error", []string{"error msg"}, []string{"debug msg", "info msg", "warn msg"}},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			l, err := New(tt.level, WithWriter(&buf))
			if err != nil {
				t.Fatalf("New returned error: %v", err)
			}

			l.Debug("debug msg")
			l.Info("info msg")
			l.Warn("warn msg")
			l.Error("error msg")

			for _, s := range tt.logged {
				if !strings.Contains(buf.String(), s) {
					t.Errorf("%s level should log %q", tt.level, s)
				}
			}
			for _, s := range tt.hidden {
				if strings.Contains(buf.String(), s) {
					t.Errorf("%s level should NOT log %q", tt.level, s)
				}
			}
		})
	}
}

func TestWith_StructuredArgs(t *testing.T) {
	var buf bytes.Buffer
	l, err := New("debug", WithWriter(&buf))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	l.With("component", "watcher").Info("test message", "key1", "value1", "key2", 42)

	for _, want := range []string{"component=watcher", "key1=value1", "key2=42"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("log should contain %s, got %q", want, buf.String())
		}
	}
}
