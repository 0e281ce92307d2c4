// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	goruntime "runtime"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "folio %s\n", Version)
		fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", GitCommit)
		fmt.Fprintf(cmd.OutOrStdout(), "  built:  %s\n", BuildDate)
		fmt.Fprintf(cmd.OutOrStdout(), "  go:     %s %s/%s\n", goruntime.Version(), goruntime.GOOS, goruntime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
