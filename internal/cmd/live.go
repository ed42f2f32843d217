package cmd

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/perftree/perftree/internal/config"
	"github.com/perftree/perftree/internal/debug"
	"github.com/perftree/perftree/internal/profiler"
	"github.com/perftree/perftree/internal/report"
	"github.com/perftree/perftree/internal/tui"
)

var (
	liveInterval time.Duration
	liveDelay    time.Duration
)

var liveCmd = &cobra.Command{
	Use:   "live",
	Short: "Watch the demo workload's report refresh in place",
	Long: `Run the demo workload continuously and show its report in a TUI,
re-rendered once per interval. After every render the measurements are
reset, so each report covers exactly one interval of fresh samples.

Controls:
  q - Quit`,
	Args: cobra.NoArgs,
	RunE: runLive,
}

func init() {
	liveCmd.Flags().DurationVar(&liveInterval, "interval", time.Second, "Report refresh interval")
	liveCmd.Flags().DurationVar(&liveDelay, "delay", 20*time.Millisecond, "Duration of one processing step")
}

func runLive(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	reports := make(chan string)
	done := make(chan struct{})
	go workloadLoop(reports, done, cfg.ReportOptions(), liveInterval, liveDelay)

	p := tea.NewProgram(tui.NewModel(reports, liveInterval), tea.WithAltScreen())
	_, err = p.Run()
	close(done)
	return err
}

// workloadLoop owns the measuring goroutine: it repeats the demo scenario,
// and once per interval renders the report, resets the tree, and hands the
// text to the TUI. Rendering happens here because the tree belongs to this
// goroutine.
func workloadLoop(reports chan<- string, done <-chan struct{}, opts report.Options, interval, delay time.Duration) {
	defer close(reports)
	profiler.Reset()
	next := time.Now().Add(interval)
	for {
		select {
		case <-done:
			return
		default:
		}

		runScenarioPass(delay)

		if !time.Now().After(next) {
			continue
		}
		out, err := profiler.ReportWith(opts)
		if err != nil {
			debug.Logf("live: render: %v", err)
			continue
		}
		profiler.Reset()
		select {
		case reports <- out:
		case <-done:
			return
		}
		next = time.Now().Add(interval)
	}
}
