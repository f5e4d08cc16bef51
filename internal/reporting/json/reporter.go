package json

import (
	"context"
	"fmt"
	"io"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/olusolaa/lumalog/pkg/lumalog"
)

const ReporterTypeJSON = "json"

type Reporter struct {
	writer io.Writer
}

func NewReporter(w io.Writer) *Reporter {
	if w == nil {
		w = os.Stdout
	}
	return &Reporter{writer: w}
}

type jsonReport struct {
	BuildMode          string          `json:"build_mode"`
	Threshold          string          `json:"threshold"`
	EffectiveThreshold string          `json:"effective_threshold"`
	LogInRelease       bool            `json:"log_in_release"`
	WithTime           bool            `json:"with_time"`
	Console            bool            `json:"console"`
	File               jsonFileSink    `json:"file"`
	Levels             []jsonLevelInfo `json:"levels"`
}

type jsonFileSink struct {
	Enabled bool   `json:"enabled"`
	Path    string `json:"path,omitempty"`
	Format  string `json:"format,omitempty"`
}

type jsonLevelInfo struct {
	Level   string `json:"level"`
	Rank    int    `json:"rank"`
	Emitted bool   `json:"emitted"`
}

func (r *Reporter) Report(ctx context.Context, cfg lumalog.Config) error {
	report := jsonReport{
		BuildMode:          cfg.BuildMode().String(),
		Threshold:          cfg.Threshold().String(),
		EffectiveThreshold: cfg.EffectiveThreshold().String(),
		LogInRelease:       cfg.LogInRelease(),
		WithTime:           cfg.WithTime(),
		Console:            cfg.ConsoleEnabled(),
		File:               jsonFileSink{Enabled: cfg.File().Enabled()},
	}
	if cfg.File().Enabled() {
		report.File.Path = cfg.File().Path()
		report.File.Format = string(cfg.File().Format())
	}

	for _, level := range lumalog.Levels() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		report.Levels = append(report.Levels, jsonLevelInfo{
			Level:   level.String(),
			Rank:    level.Rank(),
			Emitted: level.Rank() <= cfg.EffectiveThreshold().Rank(),
		})
	}

	encoder := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(r.writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("failed to encode JSON report: %w", err)
	}
	return nil
}
