package opts

import (
	"context"

	"github.com/walteh/themefix/pkg/config"
	"github.com/walteh/themefix/pkg/status"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Config     *config.Config
	UserLogger *status.UserLogger
	DryRun     bool
}

// Factory builds RootOpts after flag parsing, so commands see final values
type Factory func(ctx context.Context) (*RootOpts, error)
