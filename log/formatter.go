package log

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"
)

// LogLevel is the severity printed by the formatters.
type LogLevel int

// Levels in increasing severity.
const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
	FATAL
)

// String returns the uppercase name of the level.
func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	case FATAL:
		return "FATAL"
	default:
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
}

// Slog returns the slog level with the same severity. FATAL sits four steps
// above slog.LevelError, following slog's spacing.
func (l LogLevel) Slog() slog.Level {
	switch l {
	case DEBUG:
		return slog.LevelDebug
	case WARN:
		return slog.LevelWarn
	case ERROR:
		return slog.LevelError
	case FATAL:
		return slog.LevelError + 4
	default:
		return slog.LevelInfo
	}
}

// LevelFromSlog buckets an slog level into a LogLevel.
func LevelFromSlog(level slog.Level) LogLevel {
	switch {
	case level < slog.LevelInfo:
		return DEBUG
	case level < slog.LevelWarn:
		return INFO
	case level < slog.LevelError:
		return WARN
	case level < slog.LevelError+4:
		return ERROR
	default:
		return FATAL
	}
}

// LevelFromString parses a level name, case-insensitively. Unrecognised
// strings return INFO.
func LevelFromString(s string) LogLevel {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DEBUG
	case "WARN", "WARNING":
		return WARN
	case "ERROR":
		return ERROR
	case "FATAL":
		return FATAL
	default:
		return INFO
	}
}

// LogEntry holds all data for a single log event.
type LogEntry struct {
	Timestamp time.Time
	Level     LogLevel
	Message   string
	Fields    map[string]any
}

// LogFormatter formats a LogEntry into a single line without a trailing
// newline.
type LogFormatter interface {
	Format(entry LogEntry) string
}

// FormatterByName returns the formatter registered under name: "text",
// "json" or "color".
func FormatterByName(name string) (LogFormatter, error) {
	switch name {
	case "text":
		return &TextFormatter{}, nil
	case "json":
		return &JSONFormatter{}, nil
	case "color":
		return &ColorFormatter{}, nil
	}
	return nil, fmt.Errorf("log: unknown format %q", name)
}

const defaultTextTime = "2006-01-02 15:04:05"

// TextFormatter renders entries as
//
//	[2026-01-01 12:00:00] INFO  message key=value
type TextFormatter struct {
	// TimeFormat defaults to "2006-01-02 15:04:05".
	TimeFormat string
}

// Format produces a plain-text line for the given entry.
func (f *TextFormatter) Format(entry LogEntry) string {
	return formatText(entry, f.TimeFormat, "", "")
}

// JSONFormatter renders entries as one JSON object per line.
type JSONFormatter struct {
	// TimeFormat defaults to time.RFC3339.
	TimeFormat string
}

// Format produces a JSON object for the given entry. Fields named time,
// level or msg are shadowed by the record's own values.
func (f *JSONFormatter) Format(entry LogEntry) string {
	tf := f.TimeFormat
	if tf == "" {
		tf = time.RFC3339
	}

	obj := make(map[string]any, 3+len(entry.Fields))
	for k, v := range entry.Fields {
		obj[k] = v
	}
	obj["time"] = entry.Timestamp.Format(tf)
	obj["level"] = entry.Level.String()
	obj["msg"] = entry.Message

	data, err := json.Marshal(obj)
	if err != nil {
		return fmt.Sprintf(`{"time":%q,"level":%q,"msg":%q,"error":"marshal failed"}`,
			entry.Timestamp.Format(tf), entry.Level.String(), entry.Message)
	}
	return string(data)
}

const (
	ansiReset  = "\033[0m"
	ansiGray   = "\033[37m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiRed    = "\033[31m"
	ansiBold   = "\033[1m"
)

// ColorFormatter is TextFormatter with the level name in ANSI color.
type ColorFormatter struct {
	// TimeFormat defaults to "2006-01-02 15:04:05".
	TimeFormat string
}

func colorForLevel(level LogLevel) string {
	switch level {
	case DEBUG:
		return ansiGray
	case INFO:
		return ansiGreen
	case WARN:
		return ansiYellow
	case ERROR:
		return ansiRed
	case FATAL:
		return ansiBold + ansiRed
	default:
		return ansiReset
	}
}

// Format produces a colored text line for the given entry.
func (f *ColorFormatter) Format(entry LogEntry) string {
	return formatText(entry, f.TimeFormat, colorForLevel(entry.Level), ansiReset)
}

// formatText writes the bracketed timestamp, the level padded to five
// columns between pre and post, the message and the fields sorted by key.
func formatText(entry LogEntry, tf, pre, post string) string {
	if tf == "" {
		tf = defaultTextTime
	}
	var b strings.Builder
	b.WriteString("[")
	b.WriteString(entry.Timestamp.Format(tf))
	b.WriteString("] ")
	b.WriteString(pre)
	fmt.Fprintf(&b, "%-5s", entry.Level.String())
	b.WriteString(post)
	b.WriteString(" ")
	b.WriteString(entry.Message)
	for _, k := range sortedKeys(entry.Fields) {
		fmt.Fprintf(&b, " %s=%v", k, entry.Fields[k])
	}
	return b.String()
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
