package lumalog

import (
	"fmt"
	"io"
	"time"
)

type options struct {
	out     io.Writer
	errOut  io.Writer
	noColor bool
	now     func() time.Time
}

type Option func(*options)

// WithConsoleWriters replaces stdout and stderr for the console sink.
func WithConsoleWriters(out, errOut io.Writer) Option {
	return func(o *options) {
		o.out = out
		o.errOut = errOut
	}
}

func WithNoColor(noColor bool) Option {
	return func(o *options) {
		o.noColor = noColor
	}
}

func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// Dispatcher is the emit entry point. Every call runs on the caller's
// goroutine and returns after all enabled sinks were attempted.
type Dispatcher struct {
	cfg       Config
	threshold Level
	now       func() time.Time
	console   *ConsoleRenderer
	file      *FileRenderer
}

func NewDispatcher(cfg Config, opts ...Option) *Dispatcher {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	d := &Dispatcher{
		cfg:       cfg,
		threshold: cfg.EffectiveThreshold(),
		now:       o.now,
	}
	if cfg.ConsoleEnabled() {
		d.console = NewConsoleRenderer(o.out, o.errOut, o.noColor)
	}
	if cfg.File().Enabled() {
		d.file = NewFileRenderer(cfg.File())
	}
	return d
}

func (d *Dispatcher) Config() Config {
	return d.cfg
}

// Enabled reports whether a message at level would reach the sinks.
func (d *Dispatcher) Enabled(level Level) bool {
	return level.Valid() && level.Rank() <= d.threshold.Rank()
}

func (d *Dispatcher) Emit(level Level, message string) {
	if !d.Enabled(level) {
		return
	}
	d.dispatch(level, message)
}

func (d *Dispatcher) Errorf(format string, args ...any) { d.logf(LevelError, format, args...) }
func (d *Dispatcher) Warnf(format string, args ...any)  { d.logf(LevelWarn, format, args...) }
func (d *Dispatcher) Infof(format string, args ...any)  { d.logf(LevelInfo, format, args...) }
func (d *Dispatcher) Debugf(format string, args ...any) { d.logf(LevelDebug, format, args...) }
func (d *Dispatcher) Tracef(format string, args ...any) { d.logf(LevelTrace, format, args...) }

func (d *Dispatcher) logf(level Level, format string, args ...any) {
	if !d.Enabled(level) {
		return
	}
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	d.dispatch(level, msg)
}

// dispatch fans out console first, then file. A sink failure never stops the
// other sink.
func (d *Dispatcher) dispatch(level Level, message string) {
	rec := d.record(level, message)

	if d.console != nil {
		_ = d.console.Render(rec)
	}

	if d.file != nil {
		if err := d.file.Render(rec); err != nil {
			d.reportFileFailure(err)
		}
	}
}

// reportFileFailure goes to the console only, never back to the file.
func (d *Dispatcher) reportFileFailure(err error) {
	if d.console == nil {
		return
	}
	rec := d.record(LevelError, fmt.Sprintf("Can not save log information in file: %v", err))
	_ = d.console.Render(rec)
}

func (d *Dispatcher) record(level Level, message string) Record {
	rec := Record{Level: level, Message: message}
	if d.cfg.WithTime() {
		now := d.now()
		rec.Time = &now
	}
	return rec
}

// Close releases the file handle, if any.
func (d *Dispatcher) Close() error {
	if d.file == nil {
		return nil
	}
	return d.file.Close()
}
