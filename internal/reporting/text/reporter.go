package text

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/olusolaa/lumalog/pkg/lumalog"
)

const ReporterTypeText = "text"

type Config struct {
	NoColor bool `mapstructure:"no_color"`
}

// Reporter prints a resolved configuration as an aligned table followed by
// the outcome of each level.
type Reporter struct {
	config Config
	writer io.Writer
}

func NewReporter(cfg Config, w io.Writer) *Reporter {
	if w == nil {
		w = os.Stdout
	}
	return &Reporter{config: cfg, writer: w}
}

func (r *Reporter) Report(ctx context.Context, cfg lumalog.Config) error {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	cyan := color.New(color.FgCyan)
	if r.config.NoColor {
		for _, c := range []*color.Color{green, red, cyan} {
			c.DisableColor()
		}
	}
	onOff := func(enabled bool) string {
		if enabled {
			return green.Sprint("enabled")
		}
		return red.Sprint("disabled")
	}

	tw := tabwriter.NewWriter(r.writer, 0, 8, 2, ' ', 0)

	fmt.Fprintln(tw, "Logging Configuration")
	fmt.Fprintln(tw, "=====================")
	fmt.Fprintf(tw, "Build mode:\t%s\n", cyan.Sprint(cfg.BuildMode()))
	fmt.Fprintf(tw, "Threshold:\t%s\n", cfg.Threshold())
	fmt.Fprintf(tw, "Effective threshold:\t%s\n", cfg.EffectiveThreshold())
	fmt.Fprintf(tw, "Log in release:\t%t\n", cfg.LogInRelease())
	fmt.Fprintf(tw, "Timestamps:\t%s\n", onOff(cfg.WithTime()))
	fmt.Fprintf(tw, "Console sink:\t%s\n", onOff(cfg.ConsoleEnabled()))

	file := cfg.File()
	if file.Enabled() {
		fmt.Fprintf(tw, "File sink:\t%s (%s, %s)\n", onOff(true), file.Path(), file.Format())
	} else {
		fmt.Fprintf(tw, "File sink:\t%s\n", onOff(false))
	}

	fmt.Fprintln(tw, "\nLevels:")
	fmt.Fprintln(tw, "-------")
	for _, level := range lumalog.Levels() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		status := red.Sprint("suppressed")
		if level.Rank() <= cfg.EffectiveThreshold().Rank() {
			status = green.Sprint("emitted")
		}
		fmt.Fprintf(tw, "%s\t%s\n", level, status)
	}

	return tw.Flush()
}
