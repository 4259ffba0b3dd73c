package commands

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/copytree/cmd/copytree/opts"
	"github.com/walteh/copytree/pkg/config"
	"github.com/walteh/copytree/pkg/operation"
	"github.com/walteh/copytree/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// NewStatusCmd creates a new status command
func NewStatusCmd(ropts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Check if destination trees need a copy",
		Long: `Status inspects the destination tree of every task.
It will:
1. Load and validate the config
2. Check each destination for existing content
3. Report whether a copy is needed`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "status").Logger().WithContext(ctx)

			cfg, err := config.Load(ctx, ropts.ConfigFile)
			if err != nil {
				return errors.Errorf("loading config: %w", err)
			}

			needsCopy, err := operation.CheckStatus(ctx, cfg)
			if err != nil {
				return errors.Errorf("checking status: %w", err)
			}

			// Log result
			events := status.NewUserLogger(ctx)
			if needsCopy {
				events.LogStateChange("Trees need to be copied")
			} else {
				events.LogStateChange("Trees are up to date")
			}

			return nil
		},
	}

	return cmd
}
