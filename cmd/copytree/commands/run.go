package commands

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/copytree/cmd/copytree/opts"
	"github.com/walteh/copytree/pkg/config"
	"github.com/walteh/copytree/pkg/operation"
	"github.com/walteh/copytree/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// NewRunCmd creates a new run command
func NewRunCmd(ropts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the copy tasks of a config file",
		Long: `Run executes every task declared in the config file.
It will:
1. Load and validate the config
2. Build one copy operation per task
3. Execute them in order, or concurrently when async is set
4. Report every entry and a final summary`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "run").Logger().WithContext(ctx)

			cfg, err := config.Load(ctx, ropts.ConfigFile)
			if err != nil {
				return errors.Errorf("loading config: %w", err)
			}

			statusMgr := status.New(zerolog.Ctx(ctx))
			ops, err := operation.Tasks(operation.Options{
				Config:     cfg,
				Store:      ropts.AttrStore(),
				StatusMgr:  statusMgr,
				UserLogger: ropts.Logger(),
			})
			if err != nil {
				return errors.Errorf("building operations: %w", err)
			}

			ropts.Logger().Header(fmt.Sprintf("running %d tasks from %s", len(ops), cfg.Location()))

			runner := operation.NewRunner(zerolog.Ctx(ctx), cfg.Async)
			runErr := runner.RunAll(ctx, ops)

			if runErr != nil {
				// Recap the failed entries, useful under --quiet
				events := status.NewUserLogger(ctx)
				for _, e := range statusMgr.Failures() {
					events.LogEntry(e)
				}
			}

			ropts.Logger().LogNewline()
			ropts.Logger().Summary(statusMgr.Summarize())
			statusMgr.Finish(ctx)

			if runErr != nil {
				return errors.Errorf("running tasks: %w", runErr)
			}
			return nil
		},
	}

	return cmd
}
