package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/perftree/perftree/internal/calltree"
	"github.com/perftree/perftree/internal/report"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the report styles with sample output",
	Args:  cobra.NoArgs,
	RunE:  runFormats,
}

func runFormats(_ *cobra.Command, _ []string) error {
	tree := sampleTree()
	for _, style := range report.Styles() {
		out, err := report.Render(tree, report.Options{Style: style})
		if err != nil {
			return err
		}
		fmt.Printf("%s:\n%s\n", style.Name, out)
	}
	return nil
}

// sampleTree builds a fixed tree with synthetic timings for showcasing the
// styles: one frame of a game loop with a physics step and a render step.
func sampleTree() *calltree.Tree {
	now := time.Unix(0, 0)
	tree := calltree.NewWithClock(func() time.Time { return now })

	step := func(name string, d time.Duration) {
		tree.Enter(name)
		now = now.Add(d)
		_ = tree.Exit()
	}

	tree.Enter("main")
	tree.Enter("physics simulation")
	step("moving things", 100*time.Millisecond)
	step("resolving collisions", 100*time.Millisecond)
	_ = tree.Exit()
	step("rendering", 100*time.Millisecond)
	_ = tree.Exit()
	return tree
}
