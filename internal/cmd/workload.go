package cmd

import (
	"time"

	"github.com/perftree/perftree/internal/profiler"
)

// runScenarioPass executes one outer pass of the demo workload: a "main"
// region running "inner operations" (each wrapping one "processing" step)
// twice, then one "processing" step directly. With the default delay the
// pass takes about 300ms and exercises the same region name at two
// different call paths.
func runScenarioPass(delay time.Duration) {
	process := func() {
		defer profiler.Measure("processing")()
		time.Sleep(delay)
	}

	defer profiler.Measure("main")()
	for i := 0; i < 2; i++ {
		profiler.Do("inner operations", process)
	}
	process()
}
