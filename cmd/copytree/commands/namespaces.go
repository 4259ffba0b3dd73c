package commands

import (
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/copytree/cmd/copytree/opts"
	"gitlab.com/tozd/go/errors"
)

// NewNamespacesCmd creates a new namespaces command
func NewNamespacesCmd(ropts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "namespaces [PATH]",
		Short: "List extended attribute namespaces",
		Long: `Namespaces lists the attribute namespaces the store exposes.
Given a PATH, it also lists the attribute names found in each namespace.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "namespaces").Logger().WithContext(ctx)

			store := ropts.AttrStore()
			namespaces, err := store.Namespaces()
			if err != nil {
				return errors.Errorf("listing namespaces: %w", err)
			}

			names := make([]string, 0, len(namespaces))
			for name := range namespaces {
				names = append(names, name)
			}
			sort.Strings(names)

			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, name := range names {
					fmt.Fprintln(out, name)
				}
				return nil
			}

			path := args[0]
			if _, err := os.Stat(path); err != nil {
				return errors.Errorf("inspecting %s: %w", path, err)
			}

			for _, name := range names {
				attrs, err := store.List(path, namespaces[name], true)
				if err != nil {
					// Unreadable namespaces are routine for unprivileged users
					zerolog.Ctx(ctx).Warn().Err(err).Str("namespace", name).Msg("listing attributes")
					continue
				}
				sort.Strings(attrs)

				fmt.Fprintf(out, "%s (%d)\n", color.New(color.Bold).Sprint(name), len(attrs))
				for _, attr := range attrs {
					fmt.Fprintf(out, "    %s\n", attr)
				}
			}
			return nil
		},
	}

	return cmd
}
