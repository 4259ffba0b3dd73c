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

// NewCleanCmd creates a new clean command
func NewCleanCmd(ropts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove the destination trees of a config file",
		Long: `Clean removes the destination tree of every task.
It will:
1. Load and validate the config
2. Refuse obviously dangerous destinations
3. Remove each destination tree that exists`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "clean").Logger().WithContext(ctx)

			cfg, err := config.Load(ctx, ropts.ConfigFile)
			if err != nil {
				return errors.Errorf("loading config: %w", err)
			}

			statusMgr := status.New(zerolog.Ctx(ctx))
			ops, err := operation.CleanTasks(operation.Options{
				Config:     cfg,
				Store:      ropts.AttrStore(),
				StatusMgr:  statusMgr,
				UserLogger: ropts.Logger(),
			})
			if err != nil {
				return errors.Errorf("building operations: %w", err)
			}

			runner := operation.NewRunner(zerolog.Ctx(ctx), false)
			if err := runner.RunAll(ctx, ops); err != nil {
				return errors.Errorf("cleaning destinations: %w", err)
			}
			ropts.Logger().Successf("cleaned %d destinations", len(ops))
			return nil
		},
	}

	return cmd
}
