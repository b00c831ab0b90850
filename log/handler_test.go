package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestFormatterHandler_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := NewFormatted(&buf, &TextFormatter{}, slog.LevelWarn)

	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("shown")
	l.Error("shown too")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "WARN  shown") || !strings.Contains(lines[1], "ERROR shown too") {
		t.Errorf("unexpected output: %q", lines)
	}
	if l.Enabled(slog.LevelInfo) || !l.Enabled(slog.LevelError) {
		t.Error("Enabled disagrees with the handler level")
	}
}

func TestFormatterHandler_AttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	l := NewFormatted(&buf, &JSONFormatter{}, slog.LevelDebug)

	child := l.Module("ed25519").With("point", "0x58")
	child.Debug("precomputed", "entries", 8, slog.Group("timing", "ms", 3))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal: %v (raw: %s)", err, buf.String())
	}
	if entry["module"] != "ed25519" || entry["point"] != "0x58" {
		t.Errorf("context attrs missing: %v", entry)
	}
	if v, ok := entry["entries"].(float64); !ok || v != 8 {
		t.Errorf("entries = %v", entry["entries"])
	}
	if v, ok := entry["timing.ms"].(float64); !ok || v != 3 {
		t.Errorf("timing.ms = %v", entry["timing.ms"])
	}
	if entry["level"] != "DEBUG" {
		t.Errorf("level = %v", entry["level"])
	}
}

func TestFormatterHandler_WithGroup(t *testing.T) {
	var buf bytes.Buffer
	h := NewFormatterHandler(&buf, &TextFormatter{}, nil)
	l := slog.New(h.WithGroup("cache").WithAttrs([]slog.Attr{slog.Int("size", 2)}))

	l.Info("evicted", "key", "ab")
	out := buf.String()
	if !strings.Contains(out, "cache.key=ab") || !strings.Contains(out, "cache.size=2") {
		t.Errorf("group prefix missing: %q", out)
	}
	if h.WithGroup("") != h {
		t.Error("empty group should return the handler unchanged")
	}
}

func TestFormatterHandler_Concurrent(t *testing.T) {
	var buf bytes.Buffer
	l := NewFormatted(&buf, &TextFormatter{}, slog.LevelInfo)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				l.Info("line", "worker", i)
			}
		}(i)
	}
	wg.Wait()

	if n := strings.Count(buf.String(), "\n"); n != 200 {
		t.Errorf("got %d lines, want 200", n)
	}
}
