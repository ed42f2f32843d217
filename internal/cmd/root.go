// Package cmd implements the CLI commands for perftree.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "perftree",
	Short: "Call-tree profiler for single-threaded workloads",
	Long: `Perftree measures explicitly marked code regions, aggregates repeated
invocations of the same region under the same call path, and renders the
result as a tree showing each region's share of its parent's time, the
average time per top-level pass, and sample counts.

The measurement API lives in the library packages; this CLI demonstrates
it on a built-in workload and showcases the report formats.`,
}

func Execute() error {
	return rootCmd.Execute()
}

// SetVersionInfo wires build metadata into the root command.
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
}

func init() {
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(formatsCmd)
	rootCmd.AddCommand(liveCmd)
}
