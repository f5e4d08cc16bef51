package log

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/olusolaa/lumalog/pkg/lumalog"
	"github.com/stretchr/testify/assert"
)

func TestLevelFromSlog(t *testing.T) {
	tests := []struct {
		in   slog.Level
		want lumalog.Level
	}{
		{slog.LevelError + 4, lumalog.LevelError},
		{slog.LevelError, lumalog.LevelError},
		{slog.LevelWarn, lumalog.LevelWarn},
		{slog.LevelInfo, lumalog.LevelInfo},
		{slog.LevelInfo + 1, lumalog.LevelInfo},
		{slog.LevelDebug, lumalog.LevelDebug},
		{slog.LevelDebug - 4, lumalog.LevelTrace},
	}
	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, LevelFromSlog(tt.in))
		})
	}
}

func TestSlogHandler(t *testing.T) {
	buf, d := newTestLogger(t, testConfig(lumalog.LevelInfo))
	logger := slog.New(NewSlogHandler(d))

	logger.Debug("filtered", "k", "v")
	logger.Info("request served", "status", 200, "path", "/health")
	logger.With("component", "db").WithGroup("pool").Warn("exhausted", "size", 10, slog.Group("wait", "ms", 250))
	logger.Error("failed", "at", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, " INFO  request served status=200 path=/health\n", buf.out.String())
	assert.Equal(t,
		" WARN  exhausted component=db pool.size=10 pool.wait.ms=250\n"+
			" ERROR  failed at=2024-01-01T00:00:00Z\n",
		buf.errOut.String())
}

func TestSlogHandler_Enabled(t *testing.T) {
	_, d := newTestLogger(t, testConfig(lumalog.LevelWarn))
	h := NewSlogHandler(d)
	ctx := context.Background()

	assert.True(t, h.Enabled(ctx, slog.LevelError))
	assert.True(t, h.Enabled(ctx, slog.LevelWarn))
	assert.False(t, h.Enabled(ctx, slog.LevelInfo))
	assert.False(t, h.Enabled(ctx, slog.LevelDebug-4))
	assert.Same(t, h, h.WithGroup(""))
}
