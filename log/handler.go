package log

import (
	"context"
	"io"
	"log/slog"
	"sync"
)

// FormatterHandler is an slog.Handler that renders records through a
// LogFormatter. Attributes added with WithAttrs become fields; groups are
// flattened into dotted keys.
type FormatterHandler struct {
	mu     *sync.Mutex
	w      io.Writer
	f      LogFormatter
	level  slog.Leveler
	attrs  []slog.Attr
	prefix string
}

// NewFormatterHandler returns a handler writing one formatted line per
// record to w. A nil level means slog.LevelInfo.
func NewFormatterHandler(w io.Writer, f LogFormatter, level slog.Leveler) *FormatterHandler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &FormatterHandler{mu: new(sync.Mutex), w: w, f: f, level: level}
}

// Enabled implements slog.Handler.
func (h *FormatterHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle implements slog.Handler.
func (h *FormatterHandler) Handle(_ context.Context, r slog.Record) error {
	fields := make(map[string]any, len(h.attrs)+r.NumAttrs())
	for _, a := range h.attrs {
		addField(fields, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		addField(fields, h.prefix, a)
		return true
	})

	line := h.f.Format(LogEntry{
		Timestamp: r.Time,
		Level:     LevelFromSlog(r.Level),
		Message:   r.Message,
		Fields:    fields,
	})

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, line+"\n")
	return err
}

// WithAttrs implements slog.Handler.
func (h *FormatterHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h2 := *h
	h2.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	h2.attrs = append(h2.attrs, h.attrs...)
	for _, a := range attrs {
		if h.prefix != "" {
			a.Key = h.prefix + a.Key
		}
		h2.attrs = append(h2.attrs, a)
	}
	return &h2
}

// WithGroup implements slog.Handler.
func (h *FormatterHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.prefix = h.prefix + name + "."
	return &h2
}

func addField(fields map[string]any, prefix string, a slog.Attr) {
	v := a.Value.Resolve()
	if v.Kind() == slog.KindGroup {
		p := prefix
		if a.Key != "" {
			p += a.Key + "."
		}
		for _, ga := range v.Group() {
			addField(fields, p, ga)
		}
		return
	}
	if a.Key == "" {
		return
	}
	fields[prefix+a.Key] = v.Any()
}
