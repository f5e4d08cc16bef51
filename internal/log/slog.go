package log

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/olusolaa/lumalog/pkg/lumalog"
)

// SlogHandler routes log/slog records through a Dispatcher so libraries that
// log via slog obey the same level and build-mode policy.
type SlogHandler struct {
	dispatcher *lumalog.Dispatcher
	prefix     string
	attrs      string
}

func NewSlogHandler(d *lumalog.Dispatcher) *SlogHandler {
	return &SlogHandler{dispatcher: d}
}

// LevelFromSlog maps slog levels onto the five lumalog levels. Anything below
// slog.LevelDebug is TRACE.
func LevelFromSlog(level slog.Level) lumalog.Level {
	switch {
	case level >= slog.LevelError:
		return lumalog.LevelError
	case level >= slog.LevelWarn:
		return lumalog.LevelWarn
	case level >= slog.LevelInfo:
		return lumalog.LevelInfo
	case level >= slog.LevelDebug:
		return lumalog.LevelDebug
	default:
		return lumalog.LevelTrace
	}
}

func (h *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.dispatcher.Enabled(LevelFromSlog(level))
}

func (h *SlogHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Message)
	b.WriteString(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&b, h.prefix, a)
		return true
	})
	h.dispatcher.Emit(LevelFromSlog(r.Level), b.String())
	return nil
}

func (h *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var b strings.Builder
	b.WriteString(h.attrs)
	for _, a := range attrs {
		appendAttr(&b, h.prefix, a)
	}
	h2 := *h
	h2.attrs = b.String()
	return &h2
}

func (h *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.prefix = h.prefix + name + "."
	return &h2
}

func appendAttr(b *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		group := a.Value.Group()
		if len(group) == 0 {
			return
		}
		next := prefix
		if a.Key != "" {
			next = prefix + a.Key + "."
		}
		for _, ga := range group {
			appendAttr(b, next, ga)
		}
		return
	}

	var value string
	switch a.Value.Kind() {
	case slog.KindTime:
		value = a.Value.Time().Format(time.RFC3339)
	default:
		value = a.Value.String()
	}
	writeField(b, prefix+a.Key, value)
}
