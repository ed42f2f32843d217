package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/tidwall/pretty"

	"github.com/perftree/perftree/internal/config"
	"github.com/perftree/perftree/internal/profiler"
	"github.com/perftree/perftree/internal/report"
)

var (
	demoStyle      string
	demoDecimals   int
	demoColor      bool
	demoJSON       bool
	demoIterations int
	demoDelay      time.Duration
	demoProfileDir string
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the built-in workload and print its report",
	Long: `Run a small synthetic workload and print the resulting call-tree
report. Each iteration runs a "main" region containing nested "inner
operations" and "processing" regions, so the output demonstrates path-keyed
aggregation and per-parent percentages.

Examples:
  perftree demo
  perftree demo --iterations 4 --delay 50ms
  perftree demo --style doubled --decimals 2
  perftree demo --json
  perftree demo --cpuprofile ./profiles`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().StringVar(&demoStyle, "style", "", "Report style (see 'perftree formats')")
	demoCmd.Flags().IntVar(&demoDecimals, "decimals", 0, "Fractional digits in the ms/loop column")
	demoCmd.Flags().BoolVar(&demoColor, "color", false, "Colorize the report")
	demoCmd.Flags().BoolVar(&demoJSON, "json", false, "Print the tree as JSON instead of text")
	demoCmd.Flags().IntVar(&demoIterations, "iterations", 2, "Outer workload passes")
	demoCmd.Flags().DurationVar(&demoDelay, "delay", 100*time.Millisecond, "Duration of one processing step")
	demoCmd.Flags().StringVar(&demoProfileDir, "cpuprofile", "", "Also capture a pprof CPU profile into this directory")
}

func runDemo(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("style") {
		cfg.Style = demoStyle
		if _, ok := report.StyleByName(cfg.Style); !ok {
			return fmt.Errorf("unknown style %q", cfg.Style)
		}
	}
	if cmd.Flags().Changed("decimals") {
		cfg.Decimals = demoDecimals
	}
	if cmd.Flags().Changed("color") {
		cfg.Color = demoColor
	}

	if demoProfileDir != "" {
		defer profile.Start(profile.ProfilePath(demoProfileDir), profile.Quiet).Stop()
	}

	profiler.Reset()
	for i := 0; i < demoIterations; i++ {
		runScenarioPass(demoDelay)
	}

	if demoJSON {
		b, err := profiler.ExportJSON()
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(pretty.Pretty(b))
		return err
	}

	out, err := profiler.ReportWith(cfg.ReportOptions())
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}
