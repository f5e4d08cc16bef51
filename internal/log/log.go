package log

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/olusolaa/lumalog/internal/core/ports"
	apperrors "github.com/olusolaa/lumalog/pkg/errors"
	"github.com/olusolaa/lumalog/pkg/lumalog"
)

type dispatcherAdapter struct {
	dispatcher *lumalog.Dispatcher
	fields     map[string]any
	suffix     string
}

// NewLogger builds the dispatcher for cfg and exposes it through the Logger
// port. The caller owns the returned dispatcher and must Close it.
func NewLogger(cfg Config, opts ...lumalog.Option) (ports.Logger, *lumalog.Dispatcher, error) {
	resolved, err := cfg.Builder().Build()
	if err != nil {
		return nil, nil, err
	}
	d := lumalog.NewDispatcher(resolved, append(cfg.Options(), opts...)...)
	return Wrap(d), d, nil
}

// NewDiagnosticsLogger builds a console-only dispatcher for messages about the
// program itself. It shares cfg's level policy but writes every level to w and
// never touches cfg's file sink.
func NewDiagnosticsLogger(cfg Config, w io.Writer, opts ...lumalog.Option) (ports.Logger, *lumalog.Dispatcher, error) {
	cfg.Console = true
	cfg.File = FileConfig{}
	opts = append(opts, lumalog.WithConsoleWriters(w, w))
	return NewLogger(cfg, opts...)
}

// Wrap exposes an existing dispatcher through the Logger port.
func Wrap(d *lumalog.Dispatcher) ports.Logger {
	return &dispatcherAdapter{dispatcher: d}
}

func (a *dispatcherAdapter) log(level lumalog.Level, err error, format string, args ...any) {
	if !a.dispatcher.Enabled(level) {
		return
	}

	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}

	var b strings.Builder
	b.WriteString(msg)
	b.WriteString(a.suffix)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			writeField(&b, "error_code", string(appErr.Code))
			if appErr.InternalDetails != "" {
				writeField(&b, "error_details", appErr.InternalDetails)
			}
			if appErr.WrappedError != nil {
				writeField(&b, "error_wrapped", appErr.WrappedError.Error())
			}
		} else {
			writeField(&b, "error", err.Error())
		}
	}

	a.dispatcher.Emit(level, b.String())
}

func (a *dispatcherAdapter) Log(_ context.Context, level lumalog.Level, format string, args ...any) {
	a.log(level, nil, format, args...)
}

func (a *dispatcherAdapter) Tracef(_ context.Context, format string, args ...any) {
	a.log(lumalog.LevelTrace, nil, format, args...)
}

func (a *dispatcherAdapter) Debugf(_ context.Context, format string, args ...any) {
	a.log(lumalog.LevelDebug, nil, format, args...)
}

func (a *dispatcherAdapter) Infof(_ context.Context, format string, args ...any) {
	a.log(lumalog.LevelInfo, nil, format, args...)
}

func (a *dispatcherAdapter) Warnf(_ context.Context, format string, args ...any) {
	a.log(lumalog.LevelWarn, nil, format, args...)
}

func (a *dispatcherAdapter) Errorf(_ context.Context, err error, format string, args ...any) {
	a.log(lumalog.LevelError, err, format, args...)
}

// WithFields returns a logger that appends the merged fields, sorted by key,
// to every message.
func (a *dispatcherAdapter) WithFields(fields map[string]any) ports.Logger {
	merged := make(map[string]any, len(a.fields)+len(fields))
	for k, v := range a.fields {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		writeField(&b, k, fmt.Sprint(merged[k]))
	}
	return &dispatcherAdapter{dispatcher: a.dispatcher, fields: merged, suffix: b.String()}
}

func writeField(b *strings.Builder, key, value string) {
	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteByte('=')
	b.WriteString(quoteIfNeeded(value))
}

func quoteIfNeeded(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return strconv.Quote(s)
	}
	return s
}
