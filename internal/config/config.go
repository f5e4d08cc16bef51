package config

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/olusolaa/lumalog/internal/log"
	apperrors "github.com/olusolaa/lumalog/pkg/errors"
	"github.com/olusolaa/lumalog/pkg/lumalog"
	"github.com/spf13/viper"
)

type Config struct {
	Logging log.Config `mapstructure:"logging"`
	Emit    EmitConfig `mapstructure:"emit"`
}

// EmitConfig drives the emit command.
type EmitConfig struct {
	Level lumalog.Level `mapstructure:"level" validate:"min=0,max=4"`
	// Concurrency caps how many input sources are read at once.
	Concurrency int               `mapstructure:"concurrency" validate:"min=1,max=64"`
	Fields      map[string]string `mapstructure:"fields"`
}

func DefaultConfig() *Config {
	return &Config{
		Logging: log.DefaultConfig(),
		Emit: EmitConfig{
			Level:       lumalog.LevelInfo,
			Concurrency: 4,
		},
	}
}

// SetDefaults registers every key so environment variables are picked up by
// Unmarshal even when no config file mentions them.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("logging.level", d.Logging.Level.String())
	v.SetDefault("logging.log_in_release", d.Logging.LogInRelease)
	v.SetDefault("logging.console", d.Logging.Console)
	v.SetDefault("logging.no_color", d.Logging.NoColor)
	v.SetDefault("logging.file.enabled", d.Logging.File.Enabled)
	v.SetDefault("logging.file.path", d.Logging.File.Path)
	v.SetDefault("logging.file.format", string(d.Logging.File.Format))
	v.SetDefault("emit.level", d.Emit.Level.String())
	v.SetDefault("emit.concurrency", d.Emit.Concurrency)
}

// EnvPrefix prefixes environment overrides, e.g. LUMALOG_LOGGING_LEVEL.
const EnvPrefix = "LUMALOG"

func ConfigureEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// with_time has no default because unset means automatic, so bind it explicitly.
	_ = v.BindEnv("logging.with_time")
}

// Load decodes and validates the configuration held by v.
func Load(ctx context.Context, v *viper.Viper) (*Config, error) {
	cfg := DefaultConfig()
	err := v.Unmarshal(cfg, viper.DecodeHook(mapstructure.TextUnmarshallerHookFunc()))
	if err != nil {
		return nil, apperrors.WrapUserFacing(err, apperrors.CodeConfigParseError,
			fmt.Sprintf("failed to decode configuration: %v", err),
			"Check the value types in your configuration file, environment and flags.")
	}

	if err := Validate(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func Validate(ctx context.Context, cfg *Config) error {
	err := validate.StructCtx(ctx, cfg)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return apperrors.Wrap(err, apperrors.CodeConfigValidation, "configuration validation failed")
	}

	var errorDetails strings.Builder
	errorDetails.WriteString("Configuration validation failed:")
	for _, fe := range validationErrors {
		errorDetails.WriteString(fmt.Sprintf("\n - Field '%s': Failed on '%s' validation (value: '%v')", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return apperrors.NewUserFacing(apperrors.CodeConfigValidation, errorDetails.String(), "Please check your configuration file or flags.")
}
