//go:build !lumalog_release

package lumalog

const compiledBuildMode = BuildDebug
