package log

import "github.com/olusolaa/lumalog/pkg/lumalog"

type FileConfig struct {
	Enabled bool               `mapstructure:"enabled"`
	Path    string             `mapstructure:"path" validate:"required_if=Enabled true"`
	Format  lumalog.FileFormat `mapstructure:"format" validate:"omitempty,oneof=text json"`
}

// Config is the logging section of the application configuration.
type Config struct {
	Level        lumalog.Level `mapstructure:"level" validate:"min=0,max=4"`
	LogInRelease bool          `mapstructure:"log_in_release"`
	// WithTime nil means automatic: timestamps in debug builds only.
	WithTime *bool      `mapstructure:"with_time"`
	Console  bool       `mapstructure:"console"`
	NoColor  bool       `mapstructure:"no_color"`
	File     FileConfig `mapstructure:"file"`
}

func DefaultConfig() Config {
	return Config{
		Level:   lumalog.LevelInfo,
		Console: true,
		File: FileConfig{
			Format: lumalog.FormatText,
		},
	}
}

// Builder stages c on a lumalog.ConfigBuilder. The build mode is left to
// detection unless the caller pins it.
func (c Config) Builder() *lumalog.ConfigBuilder {
	b := lumalog.NewConfigBuilder().
		LogLevel(c.Level).
		LogInRelease(c.LogInRelease).
		Std(c.Console)
	if c.WithTime != nil {
		b.LogWithTime(*c.WithTime)
	}
	if c.File.Enabled || c.File.Path != "" {
		b.FileLoggerConfig(lumalog.NewFileLoggerBuilder().
			Enabled(c.File.Enabled).
			Path(c.File.Path).
			LogFormat(c.File.Format))
	}
	return b
}

// Options returns the dispatcher options implied by c.
func (c Config) Options() []lumalog.Option {
	return []lumalog.Option{lumalog.WithNoColor(c.NoColor)}
}
