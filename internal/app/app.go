package app

import (
	"bufio"
	"context"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/olusolaa/lumalog/internal/config"
	"github.com/olusolaa/lumalog/internal/core/ports"
	"github.com/olusolaa/lumalog/pkg/errors"
	"github.com/olusolaa/lumalog/pkg/lumalog"
)

const maxLineSize = 1024 * 1024

// Source is a named stream of newline-separated messages.
type Source struct {
	Name   string
	Reader io.Reader
}

// Application emits messages through the configured dispatcher. Emitter is
// the only path into the configured sinks.
type Application struct {
	Dispatcher *lumalog.Dispatcher
	// Diagnostics backs Logger; it is console-only.
	Diagnostics *lumalog.Dispatcher
	// Logger reports on the application itself.
	Logger ports.Logger
	// Emitter carries the configured emit fields.
	Emitter ports.Logger
	Config  *config.Config
}

func NewApplication(dispatcher *lumalog.Dispatcher, logger, emitter ports.Logger, cfg *config.Config) *Application {
	if emitter == nil {
		emitter = logger
	}
	return &Application{
		Dispatcher: dispatcher,
		Logger:     logger,
		Emitter:    emitter,
		Config:     cfg,
	}
}

func (a *Application) Emit(ctx context.Context, level lumalog.Level, message string) {
	a.Emitter.Log(ctx, level, "%s", message)
}

// EmitLines emits every non-empty line of every source at level. Sources are
// read concurrently, up to Emit.Concurrency at once; lines of one source keep
// their order. With more than one source each message carries source=<name>.
func (a *Application) EmitLines(ctx context.Context, level lumalog.Level, sources ...Source) error {
	if len(sources) == 0 {
		return nil
	}

	concurrency := a.Config.Emit.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	g, childCtx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for _, src := range sources {
		emitter := a.Emitter
		if len(sources) > 1 {
			emitter = emitter.WithFields(map[string]any{"source": src.Name})
		}
		g.Go(func() error {
			return a.emitSource(childCtx, emitter, level, src)
		})
	}

	if err := g.Wait(); err != nil {
		a.Logger.Errorf(ctx, err, "Emitting from sources failed")
		return err
	}
	return nil
}

func (a *Application) emitSource(ctx context.Context, emitter ports.Logger, level lumalog.Level, src Source) error {
	a.Logger.Tracef(ctx, "Reading messages from %s", src.Name)

	scanner := bufio.NewScanner(src.Reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	count := 0
	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		emitter.Log(ctx, level, "%s", line)
		count++
	}
	if err := scanner.Err(); err != nil {
		return errors.WrapUserFacing(err, errors.CodeInputReadError,
			"failed to read messages from "+src.Name,
			"Check that the input exists and lines are shorter than 1 MiB.")
	}

	a.Logger.Tracef(ctx, "Emitted %d messages from %s", count, src.Name)
	return nil
}

// Check hands the resolved logging configuration to reporter.
func (a *Application) Check(ctx context.Context, reporter ports.ConfigReporter) error {
	cfg := a.Dispatcher.Config()
	a.Logger.Debugf(ctx, "Reporting configuration (effective threshold: %s)", cfg.EffectiveThreshold())
	if err := reporter.Report(ctx, cfg); err != nil {
		return errors.Wrap(err, errors.CodeInternal, "failed to write configuration report")
	}
	return nil
}

// Close releases the dispatchers' file handles.
func (a *Application) Close() error {
	var err error
	for _, d := range []*lumalog.Dispatcher{a.Dispatcher, a.Diagnostics} {
		if d == nil {
			continue
		}
		if closeErr := d.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}
	return err
}
