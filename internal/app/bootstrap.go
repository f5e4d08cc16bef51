package app

import (
	"context"
	"io"
	"os"

	"github.com/spf13/viper"

	"github.com/olusolaa/lumalog/internal/config"
	"github.com/olusolaa/lumalog/internal/log"
	"github.com/olusolaa/lumalog/pkg/errors"
	"github.com/olusolaa/lumalog/pkg/lumalog"
)

// FieldsKey holds the --fields override, merged over emit.fields.
const FieldsKey = "fields"

// BuildApplicationFromViper loads and validates configuration, resolves the
// logging Config and wires the dispatcher behind the Logger port. Messages
// about the program itself go to diagnostics (stderr when nil) and never reach
// the configured sinks; opts apply to both dispatchers.
func BuildApplicationFromViper(ctx context.Context, v *viper.Viper, diagnostics io.Writer, opts ...lumalog.Option) (*Application, error) {
	cfg, err := config.Load(ctx, v)
	if err != nil {
		return nil, err
	}

	if override := parseFieldsOverride(v.GetString(FieldsKey)); override != nil {
		if cfg.Emit.Fields == nil {
			cfg.Emit.Fields = make(map[string]string, len(override))
		}
		for k, val := range override {
			cfg.Emit.Fields[k] = val
		}
	}

	userLogger, dispatcher, err := log.NewLogger(cfg.Logging, opts...)
	if err != nil {
		return nil, errors.WrapUserFacing(err, errors.CodeConfigValidation,
			"invalid logging configuration: "+err.Error(),
			"Check the logging section of your configuration file or flags.")
	}

	if diagnostics == nil {
		diagnostics = os.Stderr
	}
	logger, diagDispatcher, err := log.NewDiagnosticsLogger(cfg.Logging, diagnostics, opts...)
	if err != nil {
		_ = dispatcher.Close()
		return nil, errors.Wrap(err, errors.CodeInternal, "cannot build diagnostics logger")
	}

	resolved := dispatcher.Config()
	logger.Debugf(ctx, "Logger initialized (threshold: %s, effective: %s, build: %s)",
		resolved.Threshold(), resolved.EffectiveThreshold(), resolved.BuildMode())
	if v.ConfigFileUsed() != "" {
		logger.Debugf(ctx, "Using configuration file: %s", v.ConfigFileUsed())
	} else {
		logger.Tracef(ctx, "No configuration file found, using defaults/env/flags.")
	}

	emitter := userLogger
	if len(cfg.Emit.Fields) > 0 {
		fields := make(map[string]any, len(cfg.Emit.Fields))
		for k, val := range cfg.Emit.Fields {
			fields[k] = val
		}
		emitter = userLogger.WithFields(fields)
	}

	application := NewApplication(dispatcher, logger, emitter, cfg)
	application.Diagnostics = diagDispatcher
	return application, nil
}
