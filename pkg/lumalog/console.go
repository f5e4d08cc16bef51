package lumalog

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

var levelBackgrounds = map[Level]color.Attribute{
	LevelError: color.BgRed,
	LevelWarn:  color.BgHiYellow,
	LevelInfo:  color.BgWhite,
	LevelDebug: color.BgCyan,
	LevelTrace: color.BgHiBlack,
}

// ConsoleRenderer writes styled lines. ERROR and WARN go to errOut, every
// other level goes to out.
type ConsoleRenderer struct {
	out       io.Writer
	errOut    io.Writer
	levels    map[Level]*color.Color
	timeStyle *color.Color
}

// NewConsoleRenderer uses os.Stdout and os.Stderr for nil writers. With noColor
// unset, colors follow fatih/color's terminal detection.
func NewConsoleRenderer(out, errOut io.Writer, noColor bool) *ConsoleRenderer {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}

	r := &ConsoleRenderer{
		out:       out,
		errOut:    errOut,
		levels:    make(map[Level]*color.Color, len(levelBackgrounds)),
		timeStyle: color.New(color.BgHiBlack),
	}
	for level, bg := range levelBackgrounds {
		r.levels[level] = color.New(bg)
	}
	if noColor {
		r.timeStyle.DisableColor()
		for _, c := range r.levels {
			c.DisableColor()
		}
	}
	return r
}

func (r *ConsoleRenderer) Render(rec Record) error {
	_, err := io.WriteString(r.writerFor(rec.Level), r.Format(rec))
	return err
}

// Format returns the styled line including its trailing newline.
func (r *ConsoleRenderer) Format(rec Record) string {
	var b strings.Builder
	if rec.HasTime() {
		b.WriteString(r.timeStyle.Sprint(rec.Timestamp()))
		b.WriteByte(' ')
	}
	tag := " " + rec.Level.String() + " "
	if c, ok := r.levels[rec.Level]; ok {
		tag = c.Sprint(tag)
	}
	b.WriteString(tag)
	b.WriteByte(' ')
	b.WriteString(rec.Message)
	b.WriteByte('\n')
	return b.String()
}

func (r *ConsoleRenderer) writerFor(level Level) io.Writer {
	if level == LevelError || level == LevelWarn {
		return r.errOut
	}
	return r.out
}
