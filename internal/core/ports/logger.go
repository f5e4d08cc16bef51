package ports

import (
	"context"

	"github.com/olusolaa/lumalog/pkg/lumalog"
)

//go:generate mockery --name Logger --output ./mocks --outpkg mocks --case underscore

type Logger interface {
	Log(ctx context.Context, level lumalog.Level, format string, args ...any)
	Tracef(ctx context.Context, format string, args ...any)
	Debugf(ctx context.Context, format string, args ...any)
	Infof(ctx context.Context, format string, args ...any)
	Warnf(ctx context.Context, format string, args ...any)
	Errorf(ctx context.Context, err error, format string, args ...any)
	WithFields(fields map[string]any) Logger // Returns a new logger with added context
}
