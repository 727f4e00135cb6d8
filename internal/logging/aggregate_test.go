package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"
)

const sampleLog = `{"time":"2026-10-19T10:00:02Z","level":"WARN","msg":"request failed","component":"api","request_id":"r2","status":500}
not json
{"time":"2026-10-19T10:00:00Z","level":"DEBUG","msg":"request completed","component":"api","request_id":"r1","status":200}

{"time":"2026-10-19T10:00:01Z","level":"INFO","msg":"theme changed","component":"tui","theme":"nord"}
`

func TestReadLogs(t *testing.T) {
	path := filepath.Join(t.TempDir(), LogFileName)
	if err := os.WriteFile(path, []byte(sampleLog), 0o644); err != nil {
		t.Fatal(err)
	}

	entries, err := ReadLogs(path)
	if err != nil {
		t.Fatalf("ReadLogs failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}

	wantOrder := []string{"r1", "", "r2"}
	for i, e := range entries {
		if e.RequestID != wantOrder[i] {
			t.Errorf("entries[%d].RequestID = %q, want %q", i, e.RequestID, wantOrder[i])
		}
	}
	if entries[1].Attrs["theme"] != "nord" {
		t.Errorf("Attrs[theme] = %v, want nord", entries[1].Attrs["theme"])
	}
}

func TestReadLogs_Missing(t *testing.T) {
	_, err := ReadLogs(filepath.Join(t.TempDir(), "nope.log"))
	if err == nil || !os.IsNotExist(unwrapAll(err)) {
		t.Errorf("ReadLogs() error = %v, want not-exist", err)
	}
}

func unwrapAll(err error) error {
	for {
		u, ok := err.(interface{ Unwrap() error })
		if !ok || u.Unwrap() == nil {
			return err
		}
		err = u.Unwrap()
	}
}

func TestFilterLogs(t *testing.T) {
	entries, err := parseLogs(strings.NewReader(sampleLog))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		filter LogFilter
		want   int
	}{
		{"empty", LogFilter{}, 3},
		{"min level info", LogFilter{Level: "info"}, 2},
		{"min level warn", LogFilter{Level: "WARN"}, 1},
		{"component", LogFilter{Component: "api"}, 2},
		{"request id", LogFilter{RequestID: "r1"}, 1},
		{"since", LogFilter{Since: time.Date(2026, 10, 19, 10, 0, 1, 0, time.UTC)}, 2},
		{"pattern on message", LogFilter{Pattern: regexp.MustCompile("fail")}, 1},
		{"pattern on attrs", LogFilter{Pattern: regexp.MustCompile("theme=nord")}, 1},
		{"combined", LogFilter{Component: "api", Level: "WARN"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(FilterLogs(entries, tt.filter)); got != tt.want {
				t.Errorf("len(FilterLogs) = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTail(t *testing.T) {
	entries := []LogEntry{{Message: "a"}, {Message: "b"}, {Message: "c"}}

	tests := []struct {
		n     int
		first string
		count int
	}{
		{0, "a", 3},
		{2, "b", 2},
		{10, "a", 3},
	}
	for _, tt := range tests {
		got := Tail(entries, tt.n)
		if len(got) != tt.count || got[0].Message != tt.first {
			t.Errorf("Tail(%d) = %v, want %d entries starting with %q", tt.n, got, tt.count, tt.first)
		}
	}
}

func TestWriteEntries(t *testing.T) {
	entries := []LogEntry{{
		Timestamp: time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC),
		Level:     LevelInfo,
		Message:   "request completed",
		Component: "api",
		RequestID: "r1",
		Attrs:     map[string]any{"status": 200, "method": "GET"},
	}}

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		if err := WriteEntries(&buf, entries, "text"); err != nil {
			t.Fatal(err)
		}
		out := buf.String()
		for _, want := range []string{"INFO", "api - request completed", "request_id=r1", "method=GET status=200"} {
			if !strings.Contains(out, want) {
				t.Errorf("text output %q missing %q", out, want)
			}
		}
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		if err := WriteEntries(&buf, entries, "json"); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(buf.String(), `"msg":"request completed"`) {
			t.Errorf("json output = %q", buf.String())
		}
	})

	t.Run("csv", func(t *testing.T) {
		var buf bytes.Buffer
		if err := WriteEntries(&buf, entries, "csv"); err != nil {
			t.Fatal(err)
		}
		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		if len(lines) != 2 {
			t.Fatalf("csv lines = %d, want 2", len(lines))
		}
		if !strings.HasPrefix(lines[0], "timestamp,level,component") {
			t.Errorf("csv header = %q", lines[0])
		}
	})

	t.Run("unsupported", func(t *testing.T) {
		if err := WriteEntries(&bytes.Buffer{}, entries, "xml"); err == nil {
			t.Error("expected error for unsupported format")
		}
	})
}
