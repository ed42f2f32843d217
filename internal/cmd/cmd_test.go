package cmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perftree/perftree/internal/profiler"
	"github.com/perftree/perftree/internal/report"
)

func TestSampleTreeRender(t *testing.T) {
	out, err := report.Render(sampleTree(), report.DefaultOptions())
	require.NoError(t, err)

	assert.Contains(t, out, "main")
	assert.Contains(t, out, "physics simulation")
	assert.Contains(t, out, " 66.7%, 200 ms/loop, 1 samples")
	assert.Contains(t, out, " 33.3%, 100 ms/loop, 1 samples")
	assert.Contains(t, out, " 50.0%, 100 ms/loop, 1 samples")
}

func TestSampleTreeRendersInEveryStyle(t *testing.T) {
	tree := sampleTree()
	for _, style := range report.Styles() {
		out, err := report.Render(tree, report.Options{Style: style})
		require.NoError(t, err, style.Name)
		assert.Contains(t, out, style.Starting, style.Name)
		assert.Contains(t, out, "rendering", style.Name)
	}
}

func TestRunScenarioPassShape(t *testing.T) {
	profiler.Reset()
	t.Cleanup(profiler.Reset)

	runScenarioPass(0)
	runScenarioPass(0)

	tree := profiler.Current()
	require.True(t, tree.AtRoot())

	main, ok := tree.Root().Child("main")
	require.True(t, ok)
	assert.Equal(t, 2, main.Calls())

	inner, ok := main.Child("inner operations")
	require.True(t, ok)
	assert.Equal(t, 4, inner.Calls())

	nested, ok := inner.Child("processing")
	require.True(t, ok)
	assert.Equal(t, 4, nested.Calls())

	direct, ok := main.Child("processing")
	require.True(t, ok)
	assert.Equal(t, 2, direct.Calls())
	assert.NotSame(t, nested, direct)
}

func TestWorkloadLoopProducesReports(t *testing.T) {
	reports := make(chan string)
	done := make(chan struct{})
	go workloadLoop(reports, done, report.DefaultOptions(), 10*time.Millisecond, 0)

	select {
	case out := <-reports:
		assert.Contains(t, out, "main")
		assert.Contains(t, out, "samples")
	case <-time.After(5 * time.Second):
		t.Fatal("no report produced")
	}
	close(done)
}
