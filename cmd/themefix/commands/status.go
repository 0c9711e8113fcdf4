package commands

import (
	"github.com/spf13/cobra"
	"github.com/walteh/themefix/cmd/themefix/opts"
	"github.com/walteh/themefix/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewStatusCmd creates a new status command
func NewStatusCmd(factory opts.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Check if stylesheets still contain hardcoded colors",
		Long: `Status runs the rewrite pass without writing anything.
It will:
1. Scan the same files as fix
2. Apply the substitution table in memory
3. Report which files would change`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			o, err := factory(ctx)
			if err != nil {
				return err
			}

			op, err := operation.New(operation.Options{
				Config:     o.Config,
				UserLogger: o.UserLogger,
			})
			if err != nil {
				return errors.Errorf("creating operator: %w", err)
			}

			needsFix, err := op.Status(ctx)
			if err != nil {
				return errors.Errorf("checking status: %w", err)
			}

			if needsFix {
				o.UserLogger.Warning("Stylesheets still contain hardcoded colors, run fix")
			} else {
				o.UserLogger.Info("Stylesheets are up to date")
			}

			return nil
		},
	}

	return cmd
}
