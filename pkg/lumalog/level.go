package lumalog

import (
	"fmt"
	"strings"

	apperrors "github.com/olusolaa/lumalog/pkg/errors"
)

// Level is the severity of a message. Lower values are more severe.
type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

var levelNames = [...]string{
	LevelError: "ERROR",
	LevelWarn:  "WARN",
	LevelInfo:  "INFO",
	LevelDebug: "DEBUG",
	LevelTrace: "TRACE",
}

// Levels returns every level from most to least severe.
func Levels() []Level {
	return []Level{LevelError, LevelWarn, LevelInfo, LevelDebug, LevelTrace}
}

// Rank is the filtering key: ERROR is 0, TRACE is 4.
func (l Level) Rank() int {
	return int(l)
}

func (l Level) Valid() bool {
	return l >= LevelError && l <= LevelTrace
}

func (l Level) String() string {
	if !l.Valid() {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelNames[l]
}

// ParseLevel parses a level name, case-insensitively.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error", "err":
		return LevelError, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "info":
		return LevelInfo, nil
	case "debug":
		return LevelDebug, nil
	case "trace":
		return LevelTrace, nil
	}
	return LevelInfo, apperrors.NewUserFacing(
		apperrors.CodeConfigValidation,
		fmt.Sprintf("unknown log level %q", s),
		"Use one of: error, warn, info, debug, trace.",
	)
}

func (l Level) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, apperrors.New(apperrors.CodeConfigValidation, fmt.Sprintf("invalid log level %d", int(l)))
	}
	return []byte(strings.ToLower(l.String())), nil
}

func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
