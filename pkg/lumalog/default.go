package lumalog

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"

	apperrors "github.com/olusolaa/lumalog/pkg/errors"
)

const notInitializedMessage = "[ FATAL ] LumaLog: Config has not been initialized!\n"

var (
	defaultDispatcher atomic.Pointer[Dispatcher]
	fatalOut          io.Writer = os.Stdout
)

// Init installs the process-wide dispatcher used by the package-level
// functions. It can succeed only once until Shutdown is called.
func Init(cfg Config, opts ...Option) error {
	d := NewDispatcher(cfg, opts...)
	if !defaultDispatcher.CompareAndSwap(nil, d) {
		return apperrors.New(apperrors.CodeInternal, "lumalog already initialized")
	}
	return nil
}

// Default returns the process-wide dispatcher, or nil before Init.
func Default() *Dispatcher {
	return defaultDispatcher.Load()
}

// Shutdown removes the process-wide dispatcher and closes its file.
func Shutdown() error {
	d := defaultDispatcher.Swap(nil)
	if d == nil {
		return nil
	}
	return d.Close()
}

func Log(level Level, message string) {
	d := Default()
	if d == nil {
		fmt.Fprint(fatalOut, notInitializedMessage)
		return
	}
	d.Emit(level, message)
}

func logf(level Level, format string, args ...any) {
	d := Default()
	if d == nil {
		fmt.Fprint(fatalOut, notInitializedMessage)
		return
	}
	d.logf(level, format, args...)
}

func Error(format string, args ...any) { logf(LevelError, format, args...) }
func Warn(format string, args ...any)  { logf(LevelWarn, format, args...) }
func Info(format string, args ...any)  { logf(LevelInfo, format, args...) }
func Debug(format string, args ...any) { logf(LevelDebug, format, args...) }
func Trace(format string, args ...any) { logf(LevelTrace, format, args...) }
