// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/walteh/copytree/cmd/copytree/commands"
	"github.com/walteh/copytree/cmd/copytree/opts"
	"github.com/walteh/copytree/pkg/status"
)

func main() {
	ctx := context.Background()

	// Create user logger for failure reporting
	userLogger := status.NewUserLogger(ctx)

	ropts := &opts.RootOpts{}

	// Create root command
	rootCmd := &cobra.Command{
		Use:   "copytree",
		Short: "A tool for copying directory trees with their extended attributes",
		Long: `copytree copies directory trees locally, with exclusion filtering,
symlink preservation or following, and extended attribute propagation.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Flags are parsed by now
			setupLogging(ropts)
		},
	}

	// Add shared flags
	addRootFlags(rootCmd, ropts)

	// Add commands
	rootCmd.AddCommand(
		commands.NewCopyCmd(ropts),
		commands.NewRunCmd(ropts),
		commands.NewCleanCmd(ropts),
		commands.NewStatusCmd(ropts),
		commands.NewNamespacesCmd(ropts),
		newVersionCmd(),
	)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		userLogger.LogValidation(false, "Command failed", err)
		os.Exit(1)
	}
}
