package ports

import (
	"context"

	"github.com/olusolaa/lumalog/pkg/lumalog"
)

//go:generate mockery --name ConfigReporter --output ./mocks --outpkg mocks --case underscore

// ConfigReporter describes a resolved logging configuration to the user.
type ConfigReporter interface {
	Report(ctx context.Context, cfg lumalog.Config) error
}
