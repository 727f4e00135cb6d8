package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MissQuinn-dev/todo-frontend/internal/errors"
)

func TestNewLogger(t *testing.T) {
	t.Run("creates log file in directory", func(t *testing.T) {
		dir := t.TempDir()

		logger, err := NewLogger(dir, LevelDebug, DefaultRotationConfig())
		if err != nil {
			t.Fatalf("NewLogger failed: %v", err)
		}
		defer logger.Close()

		logPath := filepath.Join(dir, LogFileName)
		if _, err := os.Stat(logPath); os.IsNotExist(err) {
			t.Errorf("log file was not created at %s", logPath)
		}
	})

	t.Run("writes to stderr when dir is empty", func(t *testing.T) {
		logger, err := NewLogger("", LevelInfo, DefaultRotationConfig())
		if err != nil {
			t.Fatalf("NewLogger failed: %v", err)
		}
		if logger.closer != nil {
			t.Error("expected no closer when dir is empty")
		}
		if err := logger.Close(); err != nil {
			t.Errorf("Close() = %v, want nil", err)
		}
	})
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("invalid JSON log line %q: %v", line, err)
		}
		out = append(out, m)
	}
	return out
}

func TestLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		level string
		want  []string
	}{
		{LevelDebug, []string{"d", "i", "w", "e"}},
		{LevelInfo, []string{"i", "w", "e"}},
		{LevelWarn, []string{"w", "e"}},
		{LevelError, []string{"e"}},
		{"bogus", []string{"i", "w", "e"}},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewWriterLogger(&buf, tt.level)
			logger.Debug("d")
			logger.Info("i")
			logger.Warn("w")
			logger.Error("e")

			lines := decodeLines(t, &buf)
			if len(lines) != len(tt.want) {
				t.Fatalf("got %d lines, want %d", len(lines), len(tt.want))
			}
			for i, line := range lines {
				if line["msg"] != tt.want[i] {
					t.Errorf("line %d msg = %v, want %q", i, line["msg"], tt.want[i])
				}
			}
		})
	}
}

func TestLogger_ChildAttributes(t *testing.T) {
	var buf bytes.Buffer
	root := NewWriterLogger(&buf, LevelDebug)
	child := root.WithComponent("api").WithRequest("req-1").With("path", "/api/v1/task")

	child.Info("request completed", "status", 200)
	root.Info("root only")

	lines := decodeLines(t, &buf)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}

	first := lines[0]
	if first["component"] != "api" {
		t.Errorf("component = %v, want api", first["component"])
	}
	if first["request_id"] != "req-1" {
		t.Errorf("request_id = %v, want req-1", first["request_id"])
	}
	if first["path"] != "/api/v1/task" {
		t.Errorf("path = %v, want /api/v1/task", first["path"])
	}
	if first["status"] != float64(200) {
		t.Errorf("status = %v, want 200", first["status"])
	}

	if _, ok := lines[1]["component"]; ok {
		t.Error("parent logger picked up child attributes")
	}
}

func TestLogger_WithNoArgsReturnsSame(t *testing.T) {
	logger := NopLogger()
	if logger.With() != logger {
		t.Error("With() with no args should return the receiver")
	}
}

func TestLogger_NilSafe(t *testing.T) {
	var logger *Logger
	logger.Info("ignored")
	if err := logger.Close(); err != nil {
		t.Errorf("Close() on nil = %v, want nil", err)
	}
}

func TestLogger_CloseIdempotent(t *testing.T) {
	logger, err := NewLogger(t.TempDir(), LevelInfo, DefaultRotationConfig())
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("first Close() = %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("second Close() = %v, want nil", err)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"Warn", LevelWarn},
		{"error", LevelError},
		{"", LevelInfo},
		{"verbose", LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidLevels(t *testing.T) {
	levels := ValidLevels()
	if len(levels) != 4 {
		t.Fatalf("ValidLevels() returned %d levels, want 4", len(levels))
	}
	for _, l := range levels {
		if ParseLevel(l) != l {
			t.Errorf("ParseLevel(%q) did not round-trip", l)
		}
	}
}

func TestLogger_Failure(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
	}{
		{"validation", errors.NewValidationError("Points must be at least 1."), LevelWarn},
		{"not found", errors.NewNotFoundError("task", "9"), LevelWarn},
		{"wrapped not found", errors.Wrap(errors.NewNotFoundError("user", "3"), "assign"), LevelWarn},
		{"backend", errors.NewAPIError("GET", "/api/v1/user", nil).WithStatus(500), LevelError},
		{"unclassified", errors.ErrRequestFailed, LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewWriterLogger(&buf, LevelDebug)
			logger.Failure("request failed", tt.err, "op", "create")

			lines := decodeLines(t, &buf)
			if len(lines) != 1 {
				t.Fatalf("got %d lines, want 1", len(lines))
			}
			if got := lines[0]["level"]; got != tt.wantLevel {
				t.Errorf("level = %v, want %s", got, tt.wantLevel)
			}
			if got := lines[0]["error"]; got != tt.err.Error() {
				t.Errorf("error = %v, want %q", got, tt.err.Error())
			}
			if got := lines[0]["op"]; got != "create" {
				t.Errorf("op = %v, want create", got)
			}
		})
	}
}
