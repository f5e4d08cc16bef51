package lumalog

import (
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/olusolaa/lumalog/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRenderer_Encode(t *testing.T) {
	tests := []struct {
		name   string
		format FileFormat
		rec    Record
		want   string
	}{
		{
			name:   "text with time",
			format: FormatText,
			rec:    Record{Level: LevelInfo, Message: "message", Time: &fixedTime},
			want:   "[INFO] 2024-01-01T00:00:00 message\n",
		},
		{
			name:   "text without time",
			format: FormatText,
			rec:    Record{Level: LevelTrace, Message: "message"},
			want:   "[TRACE] message\n",
		},
		{
			name:   "json with time",
			format: FormatJSON,
			rec:    Record{Level: LevelInfo, Message: "...", Time: &fixedTime},
			want:   `{"level":"INFO","message":"...","timestamp":"2024-01-01T00:00:00"}` + "\n",
		},
		{
			name:   "json without time",
			format: FormatJSON,
			rec:    Record{Level: LevelError, Message: `say "hi"`},
			want:   `{"level":"ERROR","message":"say \"hi\"","timestamp":null}` + "\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := NewConfigBuilder().
				FileLoggerConfig(NewFileLoggerBuilder().Enabled(true).Path("unused.log").LogFormat(tt.format)).
				Build()
			require.NoError(t, err)

			got, err := NewFileRenderer(cfg.File()).Encode(tt.rec)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestFileRenderer_ReusesHandle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	r := NewFileRenderer(FileSinkConfig{enabled: true, path: path, format: FormatText})
	defer r.Close()

	require.NoError(t, r.Render(Record{Level: LevelInfo, Message: "one"}))
	first := r.file
	require.NoError(t, r.Render(Record{Level: LevelInfo, Message: "two"}))
	assert.Same(t, first, r.file)

	require.NoError(t, r.Close())
	assert.Nil(t, r.file)
	require.NoError(t, r.Close(), "closing twice is harmless")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[INFO] one\n[INFO] two\n", string(data))
}

func TestFileRenderer_OpenError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "app.log")
	r := NewFileRenderer(FileSinkConfig{enabled: true, path: path})

	err := r.Render(Record{Level: LevelInfo, Message: "lost"})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeSinkWriteError))

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.InternalDetails, path)
	assert.Empty(t, appErr.StackTrace)
	assert.Nil(t, r.file)
}
