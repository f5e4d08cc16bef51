package lumalog

import (
	"os"
	"strings"
)

// BuildMode reports whether the running binary is a debug or a release build.
type BuildMode int

const (
	BuildDebug BuildMode = iota
	BuildRelease
)

// BuildModeEnv overrides the compiled-in build mode when set to "debug" or "release".
const BuildModeEnv = "LUMALOG_BUILD_MODE"

func (m BuildMode) String() string {
	if m == BuildRelease {
		return "release"
	}
	return "debug"
}

// DetectBuildMode returns the compiled-in mode (release when built with
// -tags lumalog_release) unless BuildModeEnv says otherwise.
func DetectBuildMode() BuildMode {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(BuildModeEnv))) {
	case "release":
		return BuildRelease
	case "debug":
		return BuildDebug
	}
	return compiledBuildMode
}
