package commands

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/walteh/themefix/cmd/themefix/opts"
	"github.com/walteh/themefix/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewFixCmd creates a new fix command
func NewFixCmd(factory opts.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix",
		Short: "Rewrite hardcoded theme colors in place",
		Long: `Fix runs the full rewrite pass.
It will:
1. Scan the component stylesheet directory
2. Apply the ordered substitution table to each file
3. Process the dark mode stylesheet
4. Apply the scoped rewrite to the app stylesheet`,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := factory(cmd.Context())
			if err != nil {
				return err
			}
			return RunFix(cmd.Context(), o)
		},
	}

	return cmd
}

// RunFix runs the rewrite pass described by o. With DryRun set nothing is
// written and the pass only reports what would change.
func RunFix(ctx context.Context, o *opts.RootOpts) error {
	op, err := operation.New(operation.Options{
		Config:     o.Config,
		UserLogger: o.UserLogger,
	})
	if err != nil {
		return errors.Errorf("creating operator: %w", err)
	}

	if o.DryRun {
		if _, err := op.Status(ctx); err != nil {
			return errors.Errorf("checking stylesheets: %w", err)
		}
		return nil
	}

	if err := op.Fix(ctx); err != nil {
		return errors.Errorf("fixing stylesheets: %w", err)
	}

	return nil
}
