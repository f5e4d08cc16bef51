package json

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/olusolaa/lumalog/pkg/lumalog"
	"github.com/stretchr/testify/require"
)

func TestReporter_Report(t *testing.T) {
	cfg, err := lumalog.NewConfigBuilder().
		BuildMode(lumalog.BuildDebug).
		LogLevel(lumalog.LevelWarn).
		LogWithTime(false).
		Std(false).
		FileLoggerConfig(lumalog.NewFileLoggerBuilder().Enabled(true).Path("out.log")).
		Build()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, NewReporter(&buf).Report(context.Background(), cfg))

	var got jsonReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	want := jsonReport{
		BuildMode:          "debug",
		Threshold:          "WARN",
		EffectiveThreshold: "WARN",
		WithTime:           false,
		Console:            false,
		File:               jsonFileSink{Enabled: true, Path: "out.log", Format: "text"},
		Levels: []jsonLevelInfo{
			{Level: "ERROR", Rank: 0, Emitted: true},
			{Level: "WARN", Rank: 1, Emitted: true},
			{Level: "INFO", Rank: 2, Emitted: false},
			{Level: "DEBUG", Rank: 3, Emitted: false},
			{Level: "TRACE", Rank: 4, Emitted: false},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Report() mismatch (-want +got):\n%s", diff)
	}
}
