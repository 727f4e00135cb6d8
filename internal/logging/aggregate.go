package logging

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/bytedance/sonic"
)

// LogEntry is one parsed JSON log line.
type LogEntry struct {
	Timestamp time.Time      `json:"time"`
	Level     string         `json:"level"`
	Message   string         `json:"msg"`
	Component string         `json:"component,omitempty"`
	RequestID string         `json:"request_id,omitempty"`
	Attrs     map[string]any `json:"attrs,omitempty"`
}

// LogFilter selects entries. Zero-valued fields match everything and
// populated fields are combined with AND.
type LogFilter struct {
	// Level is the minimum level (DEBUG < INFO < WARN < ERROR).
	Level     string
	Since     time.Time
	Component string
	RequestID string
	// Pattern is matched against the message and the rendered attributes.
	Pattern *regexp.Regexp
}

var levelOrder = map[string]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

// ReadLogs parses every entry in the log file at path, oldest first.
// Lines that are not valid JSON are skipped.
func ReadLogs(path string) ([]LogEntry, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no log file at %s: %w", path, err)
		}
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return parseLogs(file)
}

func parseLogs(r io.Reader) ([]LogEntry, error) {
	var entries []LogEntry
	scanner := bufio.NewScanner(r)
	const maxLine = 1024 * 1024
	scanner.Buffer(make([]byte, 64*1024), maxLine)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		entry, err := parseLogEntry(line)
		if err != nil {
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading log file: %w", err)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.Before(entries[j].Timestamp)
	})
	return entries, nil
}

func parseLogEntry(line string) (LogEntry, error) {
	var raw map[string]any
	if err := sonic.UnmarshalString(line, &raw); err != nil {
		return LogEntry{}, fmt.Errorf("invalid JSON: %w", err)
	}

	entry := LogEntry{Attrs: make(map[string]any)}
	for key, value := range raw {
		switch key {
		case "time":
			if s, ok := value.(string); ok {
				if ts, err := time.Parse(time.RFC3339Nano, s); err == nil {
					entry.Timestamp = ts
				}
			}
		case "level":
			entry.Level, _ = value.(string)
		case "msg":
			entry.Message, _ = value.(string)
		case "component":
			entry.Component, _ = value.(string)
		case "request_id":
			entry.RequestID, _ = value.(string)
		default:
			entry.Attrs[key] = value
		}
	}
	if len(entry.Attrs) == 0 {
		entry.Attrs = nil
	}
	return entry, nil
}

// FilterLogs returns the entries matching filter.
func FilterLogs(entries []LogEntry, filter LogFilter) []LogEntry {
	var out []LogEntry
	for _, entry := range entries {
		if filter.matches(entry) {
			out = append(out, entry)
		}
	}
	return out
}

func (f LogFilter) matches(entry LogEntry) bool {
	if f.Level != "" {
		want, wantOK := levelOrder[strings.ToUpper(f.Level)]
		got, gotOK := levelOrder[entry.Level]
		if wantOK && gotOK && got < want {
			return false
		}
	}
	if !f.Since.IsZero() && entry.Timestamp.Before(f.Since) {
		return false
	}
	if f.Component != "" && entry.Component != f.Component {
		return false
	}
	if f.RequestID != "" && entry.RequestID != f.RequestID {
		return false
	}
	if f.Pattern != nil && !f.Pattern.MatchString(entry.Message) && !f.Pattern.MatchString(formatAttrs(entry.Attrs)) {
		return false
	}
	return true
}

// Tail returns the last n entries. n <= 0 returns all of them.
func Tail(entries []LogEntry, n int) []LogEntry {
	if n <= 0 || n >= len(entries) {
		return entries
	}
	return entries[len(entries)-n:]
}

// WriteEntries renders entries to w as "text", "json" (one object per line)
// or "csv".
func WriteEntries(w io.Writer, entries []LogEntry, format string) error {
	switch strings.ToLower(format) {
	case "", "text":
		for _, entry := range entries {
			if _, err := io.WriteString(w, FormatEntry(entry)+"\n"); err != nil {
				return err
			}
		}
		return nil
	case "json":
		for _, entry := range entries {
			line, err := sonic.Marshal(entry)
			if err != nil {
				return fmt.Errorf("failed to encode log entry: %w", err)
			}
			if _, err := fmt.Fprintf(w, "%s\n", line); err != nil {
				return err
			}
		}
		return nil
	case "csv":
		return writeCSV(w, entries)
	default:
		return fmt.Errorf("unsupported log format: %s (supported: text, json, csv)", format)
	}
}

// FormatEntry renders one entry as
// "[2006-01-02 15:04:05.000] LEVEL component - message key=value ...".
func FormatEntry(entry LogEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %-5s", entry.Timestamp.Local().Format("2006-01-02 15:04:05.000"), entry.Level)
	if entry.Component != "" {
		fmt.Fprintf(&b, " %s", entry.Component)
	}
	fmt.Fprintf(&b, " - %s", entry.Message)
	if entry.RequestID != "" {
		fmt.Fprintf(&b, " request_id=%s", entry.RequestID)
	}
	if attrs := formatAttrs(entry.Attrs); attrs != "" {
		b.WriteString(" ")
		b.WriteString(attrs)
	}
	return b.String()
}

func formatAttrs(attrs map[string]any) string {
	if len(attrs) == 0 {
		return ""
	}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, attrs[k]))
	}
	return strings.Join(parts, " ")
}

func writeCSV(w io.Writer, entries []LogEntry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"timestamp", "level", "component", "request_id", "message", "attrs"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, entry := range entries {
		record := []string{
			entry.Timestamp.Format(time.RFC3339Nano),
			entry.Level,
			entry.Component,
			entry.RequestID,
			entry.Message,
			formatAttrs(entry.Attrs),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
