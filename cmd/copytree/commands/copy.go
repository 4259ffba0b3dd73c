package commands

import (
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/copytree/cmd/copytree/opts"
	"github.com/walteh/copytree/pkg/config"
	"github.com/walteh/copytree/pkg/operation"
	"github.com/walteh/copytree/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// NewCopyCmd creates a new copy command
func NewCopyCmd(ropts *opts.RootOpts) *cobra.Command {
	var (
		followSymlinks  bool
		exclude         []string
		excludePatterns []string
		attrs           string
		attrNamespaces  []string
		attrErrors      string
		errorMode       string
		concurrency     int
	)

	cmd := &cobra.Command{
		Use:   "copy SRC DST",
		Short: "Copy one directory tree",
		Long: `Copy replicates the tree rooted at SRC under DST.
It will:
1. Walk SRC depth-first, skipping excluded names
2. Recreate symlinks, or follow them with --follow-symlinks
3. Propagate extended attributes when --attrs or --attr-namespace is set
4. Report every entry and a final summary`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "copy").Logger().WithContext(ctx)

			// Build a single-task config from the flags
			cfg := &config.Config{
				Concurrency: concurrency,
				Tasks: []config.Task{{
					Name:                filepath.Base(args[0]),
					Source:              args[0],
					Destination:         args[1],
					FollowSymlinks:      followSymlinks,
					Exclude:             exclude,
					ExcludePatterns:     excludePatterns,
					Attributes:          attrs,
					AttributeNamespaces: attrNamespaces,
					AttributeErrors:     attrErrors,
					OnError:             errorMode,
				}},
			}
			if err := cfg.Validate(); err != nil {
				return errors.Errorf("validating flags: %w", err)
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

			runner := operation.NewRunner(zerolog.Ctx(ctx), false)
			runErr := runner.RunAll(ctx, ops)

			ropts.Logger().LogNewline()
			ropts.Logger().Summary(statusMgr.Summarize())
			statusMgr.Finish(ctx)

			if runErr != nil {
				return errors.Errorf("copying %s: %w", args[0], runErr)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&followSymlinks, "follow-symlinks", false, "copy symlink targets instead of recreating links")
	cmd.Flags().StringArrayVar(&exclude, "exclude", nil, "child name to skip at every level (repeatable)")
	cmd.Flags().StringArrayVar(&excludePatterns, "exclude-pattern", nil, "child name pattern to skip (repeatable)")
	cmd.Flags().StringVar(&attrs, "attrs", "", `extended attributes to propagate ("none" or "all")`)
	cmd.Flags().StringArrayVar(&attrNamespaces, "attr-namespace", nil, "attribute namespace to propagate (repeatable)")
	cmd.Flags().StringVar(&attrErrors, "attr-errors", "", `attribute failure handling ("abort" or "continue")`)
	cmd.Flags().StringVar(&errorMode, "errors", "", `failure handling ("collect" or "continue")`)
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "copy up to N sibling entries at once")

	return cmd
}
