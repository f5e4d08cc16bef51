package lumalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	apperrors "github.com/olusolaa/lumalog/pkg/errors"
)

// FileFormat selects how the file sink renders records.
type FileFormat string

const (
	FormatText FileFormat = "text"
	FormatJSON FileFormat = "json"
)

// ParseFileFormat accepts "text" or "json" in any case. An empty string means text.
func ParseFileFormat(s string) (FileFormat, error) {
	switch FileFormat(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return FormatText, apperrors.NewUserFacing(
		apperrors.CodeConfigValidation,
		fmt.Sprintf("unsupported file format %q", s),
		"Use one of: text, json.",
	)
}

func (f *FileFormat) UnmarshalText(text []byte) error {
	parsed, err := ParseFileFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// FileSinkConfig is the resolved file sink. The zero value is a disabled sink.
type FileSinkConfig struct {
	enabled bool
	path    string
	format  FileFormat
}

func (f FileSinkConfig) Enabled() bool { return f.enabled }
func (f FileSinkConfig) Path() string { return f.path }
func (f FileSinkConfig) Format() FileFormat { return f.format }

// Config is the resolved, read-only logging configuration. It is safe to share
// between goroutines.
type Config struct {
	threshold    Level
	logInRelease bool
	withTime     bool
	console      bool
	file         FileSinkConfig
	buildMode    BuildMode
}

func (c Config) Threshold() Level { return c.threshold }
func (c Config) LogInRelease() bool { return c.logInRelease }
func (c Config) WithTime() bool { return c.withTime }
func (c Config) ConsoleEnabled() bool { return c.console }
func (c Config) File() FileSinkConfig { return c.file }
func (c Config) BuildMode() BuildMode { return c.buildMode }

// EffectiveThreshold is the most verbose level that can reach a sink. Release
// builds without LogInRelease never go past INFO.
func (c Config) EffectiveThreshold() Level {
	if c.buildMode == BuildRelease && !c.logInRelease && c.threshold.Rank() > LevelInfo.Rank() {
		return LevelInfo
	}
	return c.threshold
}

// FileLoggerBuilder stages the file sink settings. Enabling is explicit: a path
// alone never turns the sink on.
type FileLoggerBuilder struct {
	enabled bool
	path    string
	format  FileFormat
}

func NewFileLoggerBuilder() *FileLoggerBuilder {
	return &FileLoggerBuilder{format: FormatText}
}

func (b *FileLoggerBuilder) Enabled(enabled bool) *FileLoggerBuilder {
	b.enabled = enabled
	return b
}

func (b *FileLoggerBuilder) Path(path string) *FileLoggerBuilder {
	b.path = path
	return b
}

func (b *FileLoggerBuilder) LogFormat(format FileFormat) *FileLoggerBuilder {
	b.format = format
	return b
}

// ConfigBuilder stages settings for Build. Setters only record values.
type ConfigBuilder struct {
	level        Level
	logInRelease bool
	withTime     *bool
	std          bool
	file         *FileLoggerBuilder
	buildMode    *BuildMode
}

// NewConfigBuilder starts from INFO, console on, no file sink and automatic
// timestamps (on for debug builds, off for release builds).
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		level: LevelInfo,
		std:   true,
	}
}

func (b *ConfigBuilder) LogLevel(level Level) *ConfigBuilder {
	b.level = level
	return b
}

func (b *ConfigBuilder) LogInRelease(enabled bool) *ConfigBuilder {
	b.logInRelease = enabled
	return b
}

func (b *ConfigBuilder) LogWithTime(enabled bool) *ConfigBuilder {
	b.withTime = &enabled
	return b
}

// LogWithAutoTime undoes LogWithTime: timestamps follow the build mode again.
func (b *ConfigBuilder) LogWithAutoTime() *ConfigBuilder {
	b.withTime = nil
	return b
}

func (b *ConfigBuilder) Std(enabled bool) *ConfigBuilder {
	b.std = enabled
	return b
}

// FileLoggerConfig snapshots fb; later changes to fb do not affect this builder.
// A nil fb removes the file sink.
func (b *ConfigBuilder) FileLoggerConfig(fb *FileLoggerBuilder) *ConfigBuilder {
	if fb == nil {
		b.file = nil
		return b
	}
	snapshot := *fb
	b.file = &snapshot
	return b
}

// BuildMode pins the build mode instead of calling DetectBuildMode during Build.
func (b *ConfigBuilder) BuildMode(mode BuildMode) *ConfigBuilder {
	b.buildMode = &mode
	return b
}

var validate = validator.New(validator.WithRequiredStructEnabled())

type fileSinkRules struct {
	Enabled bool
	Path    string     `validate:"required_if=Enabled true"`
	Format  FileFormat `validate:"oneof=text json"`
}

// Build resolves the build mode once, validates and returns the immutable
// Config. Validation failures carry CodeConfigValidation.
func (b *ConfigBuilder) Build() (Config, error) {
	if !b.level.Valid() {
		return Config{}, apperrors.NewUserFacing(apperrors.CodeConfigValidation,
			fmt.Sprintf("invalid log level %d", int(b.level)),
			"Use one of: error, warn, info, debug, trace.")
	}

	var buildMode BuildMode
	if b.buildMode != nil {
		buildMode = *b.buildMode
	} else {
		buildMode = DetectBuildMode()
	}

	withTime := buildMode == BuildDebug
	if b.withTime != nil {
		withTime = *b.withTime
	}

	file, err := b.resolveFile()
	if err != nil {
		return Config{}, err
	}

	return Config{
		threshold:    b.level,
		logInRelease: b.logInRelease,
		withTime:     withTime,
		console:      b.std,
		file:         file,
		buildMode:    buildMode,
	}, nil
}

func (b *ConfigBuilder) resolveFile() (FileSinkConfig, error) {
	if b.file == nil || !b.file.enabled {
		return FileSinkConfig{}, nil
	}

	format := b.file.format
	if format == "" {
		format = FormatText
	}
	rules := fileSinkRules{
		Enabled: b.file.enabled,
		Path:    strings.TrimSpace(b.file.path),
		Format:  format,
	}
	if err := validate.Struct(rules); err != nil {
		return FileSinkConfig{}, fileSinkError(err, rules)
	}

	return FileSinkConfig{enabled: true, path: b.file.path, format: format}, nil
}

func fileSinkError(err error, rules fileSinkRules) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return apperrors.Wrap(err, apperrors.CodeConfigValidation, "invalid file sink configuration")
	}

	fe := validationErrors[0]
	switch fe.Field() {
	case "Path":
		return apperrors.NewUserFacing(apperrors.CodeConfigValidation,
			"file sink enabled without a path",
			"Set a file path or disable the file sink.")
	case "Format":
		return apperrors.NewUserFacing(apperrors.CodeConfigValidation,
			fmt.Sprintf("unsupported file format %q", rules.Format),
			"Use one of: text, json.")
	}
	return apperrors.New(apperrors.CodeConfigValidation,
		fmt.Sprintf("file sink field '%s' failed on '%s'", fe.Field(), fe.Tag()))
}
