package lumalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	apperrors "github.com/olusolaa/lumalog/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBuilder_Defaults(t *testing.T) {
	cfg, err := NewConfigBuilder().BuildMode(BuildDebug).Build()
	require.NoError(t, err)

	assert.Equal(t, LevelInfo, cfg.Threshold())
	assert.False(t, cfg.LogInRelease())
	assert.True(t, cfg.WithTime(), "debug builds default to timestamps")
	assert.True(t, cfg.ConsoleEnabled())
	assert.False(t, cfg.File().Enabled())
	assert.Equal(t, BuildDebug, cfg.BuildMode())
}

func TestConfigBuilder_WithTimeResolution(t *testing.T) {
	tests := []struct {
		name     string
		mode     BuildMode
		explicit *bool
		auto     bool
		want     bool
	}{
		{name: "auto debug", mode: BuildDebug, want: true},
		{name: "auto release", mode: BuildRelease, want: false},
		{name: "explicit off in debug", mode: BuildDebug, explicit: boolPtr(false), want: false},
		{name: "explicit on in release", mode: BuildRelease, explicit: boolPtr(true), want: true},
		{name: "back to auto in debug", mode: BuildDebug, explicit: boolPtr(false), auto: true, want: true},
		{name: "back to auto in release", mode: BuildRelease, explicit: boolPtr(true), auto: true, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewConfigBuilder().BuildMode(tt.mode)
			if tt.explicit != nil {
				b.LogWithTime(*tt.explicit)
			}
			if tt.auto {
				b.LogWithAutoTime()
			}
			cfg, err := b.Build()
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.WithTime())
		})
	}
}

func TestConfigBuilder_FileSinkValidation(t *testing.T) {
	t.Run("enabled without path fails", func(t *testing.T) {
		_, err := NewConfigBuilder().
			FileLoggerConfig(NewFileLoggerBuilder().Enabled(true)).
			Build()
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.CodeConfigValidation))
		assert.Contains(t, err.Error(), "file sink enabled without a path")
	})

	t.Run("enabled with blank path fails", func(t *testing.T) {
		_, err := NewConfigBuilder().
			FileLoggerConfig(NewFileLoggerBuilder().Enabled(true).Path("   ")).
			Build()
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.CodeConfigValidation))
	})

	t.Run("enabled with path succeeds", func(t *testing.T) {
		cfg, err := NewConfigBuilder().
			FileLoggerConfig(NewFileLoggerBuilder().Enabled(true).Path("x.log")).
			Build()
		require.NoError(t, err)
		assert.True(t, cfg.File().Enabled())
		assert.Equal(t, "x.log", cfg.File().Path())
		assert.Equal(t, FormatText, cfg.File().Format())
	})

	t.Run("path without enabling stays disabled", func(t *testing.T) {
		cfg, err := NewConfigBuilder().
			FileLoggerConfig(NewFileLoggerBuilder().Path("x.log").LogFormat(FormatJSON)).
			Build()
		require.NoError(t, err)
		assert.False(t, cfg.File().Enabled())
		assert.Empty(t, cfg.File().Path())
	})

	t.Run("unsupported format fails", func(t *testing.T) {
		_, err := NewConfigBuilder().
			FileLoggerConfig(NewFileLoggerBuilder().Enabled(true).Path("x.log").LogFormat("xml")).
			Build()
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.CodeConfigValidation))
		assert.Contains(t, err.Error(), `"xml"`)
	})

	t.Run("nil file builder removes sink", func(t *testing.T) {
		cfg, err := NewConfigBuilder().
			FileLoggerConfig(NewFileLoggerBuilder().Enabled(true).Path("x.log")).
			FileLoggerConfig(nil).
			Build()
		require.NoError(t, err)
		assert.False(t, cfg.File().Enabled())
	})
}

func TestConfigBuilder_FileLoggerSnapshot(t *testing.T) {
	fb := NewFileLoggerBuilder().Enabled(true).Path("first.log")
	b := NewConfigBuilder().FileLoggerConfig(fb)
	fb.Path("second.log").LogFormat(FormatJSON)

	cfg, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, "first.log", cfg.File().Path())
	assert.Equal(t, FormatText, cfg.File().Format())
}

func TestConfigBuilder_Deterministic(t *testing.T) {
	build := func() Config {
		cfg, err := NewConfigBuilder().
			LogLevel(LevelTrace).
			LogInRelease(true).
			Std(false).
			BuildMode(BuildRelease).
			FileLoggerConfig(NewFileLoggerBuilder().Enabled(true).Path("app.log").LogFormat(FormatJSON)).
			Build()
		require.NoError(t, err)
		return cfg
	}

	first, second := build(), build()
	if diff := cmp.Diff(first, second, cmp.AllowUnexported(Config{}, FileSinkConfig{})); diff != "" {
		t.Errorf("Build() not deterministic (-first +second):\n%s", diff)
	}
}

func TestConfigBuilder_InvalidLevel(t *testing.T) {
	_, err := NewConfigBuilder().LogLevel(Level(12)).Build()
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.CodeConfigValidation))
}

func TestConfigBuilder_DetectsBuildModeFromEnv(t *testing.T) {
	t.Setenv(BuildModeEnv, "release")
	cfg, err := NewConfigBuilder().Build()
	require.NoError(t, err)
	assert.Equal(t, BuildRelease, cfg.BuildMode())
	assert.False(t, cfg.WithTime())

	t.Setenv(BuildModeEnv, "DEBUG")
	cfg, err = NewConfigBuilder().Build()
	require.NoError(t, err)
	assert.Equal(t, BuildDebug, cfg.BuildMode())

	t.Setenv(BuildModeEnv, "debug")
	cfg, err = NewConfigBuilder().BuildMode(BuildRelease).Build()
	require.NoError(t, err)
	assert.Equal(t, BuildRelease, cfg.BuildMode(), "an injected mode wins over detection")
}

func TestConfig_EffectiveThreshold(t *testing.T) {
	tests := []struct {
		name         string
		mode         BuildMode
		logInRelease bool
		threshold    Level
		want         Level
	}{
		{"debug keeps trace", BuildDebug, false, LevelTrace, LevelTrace},
		{"release clamps trace", BuildRelease, false, LevelTrace, LevelInfo},
		{"release clamps debug", BuildRelease, false, LevelDebug, LevelInfo},
		{"release keeps warn", BuildRelease, false, LevelWarn, LevelWarn},
		{"release keeps info", BuildRelease, false, LevelInfo, LevelInfo},
		{"log in release keeps trace", BuildRelease, true, LevelTrace, LevelTrace},
		{"log in release in debug", BuildDebug, true, LevelDebug, LevelDebug},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := NewConfigBuilder().
				BuildMode(tt.mode).
				LogInRelease(tt.logInRelease).
				LogLevel(tt.threshold).
				Build()
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.EffectiveThreshold())
			assert.Equal(t, tt.threshold, cfg.Threshold(), "configured threshold is never rewritten")
		})
	}
}

func TestParseFileFormat(t *testing.T) {
	f, err := ParseFileFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = ParseFileFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatText, f)

	_, err = ParseFileFormat("yaml")
	assert.True(t, apperrors.Is(err, apperrors.CodeConfigValidation))
}

func boolPtr(v bool) *bool {
	return &v
}
