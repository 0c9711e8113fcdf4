package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/themefix/cmd/themefix/commands"
	"github.com/walteh/themefix/cmd/themefix/opts"
	"github.com/walteh/themefix/pkg/config"
	"github.com/walteh/themefix/pkg/status"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	configFile  string
	projectRoot string
	debug       bool
	dryRun      bool
)

// newRootOpts creates a new RootOpts with initialized dependencies
func newRootOpts(ctx context.Context) (*opts.RootOpts, error) {
	// Create user logger
	userLogger := status.NewUserLogger(ctx)

	// Load config (built-in defaults when no file is given)
	cfg, err := config.Load(ctx, configFile)
	if err != nil {
		return nil, errors.Errorf("loading config: %w", err)
	}

	// Override project root if provided
	if projectRoot != "" {
		cfg.Root = projectRoot
	}

	return &opts.RootOpts{
		Config:     cfg,
		UserLogger: userLogger,
		DryRun:     dryRun,
	}, nil
}

// newRootCmd creates the root command. Running it with no arguments performs
// the full rewrite pass from the current directory.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "themefix",
		Short: "Replace hardcoded theme colors in stylesheets with CSS variables",
		Long: `themefix scans the project's stylesheets and rewrites hardcoded theme
colors (hex tokens, rgba values, gradient expressions) to their symbolic CSS
variable references, so the theme can be changed centrally.

Files are rewritten in place, and only when their content actually changed.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := newRootOpts(cmd.Context())
			if err != nil {
				return err
			}
			return commands.RunFix(cmd.Context(), o)
		},
	}

	addRootFlags(cmd)
	cmd.AddCommand(commands.NewFixCmd(newRootOpts))
	cmd.AddCommand(commands.NewStatusCmd(newRootOpts))

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path (default: built-in rules)")
	cmd.PersistentFlags().StringVarP(&projectRoot, "root", "r", "", "project root (default: current directory)")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "report changes without writing files")
}

// setupLogging configures zerolog based on flags
func setupLogging() {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log
}
