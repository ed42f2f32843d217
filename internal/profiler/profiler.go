// Package profiler exposes the caller-facing measurement API. Every
// goroutine gets its own call tree, created on first use, so the package
// functions are safe to call from any goroutine without stepping on each
// other's measurements. The typical pattern is:
//
//	defer profiler.Measure("load assets")()
//
// which opens the region immediately and closes it exactly once when the
// surrounding function returns, panicking or not.
//
// Setting PERFTREE_DISABLE=1 turns the whole package into no-ops.
package profiler

import (
	"os"
	"sync"

	"github.com/perftree/perftree/internal/calltree"
	"github.com/perftree/perftree/internal/debug"
	"github.com/perftree/perftree/internal/report"
)

var disabled = os.Getenv("PERFTREE_DISABLE") == "1"

// trees maps goroutine id -> *calltree.Tree.
var trees sync.Map

// Current returns the calling goroutine's tree, creating it on first use.
// The tree lives for the rest of the process; Reset clears its contents.
func Current() *calltree.Tree {
	id := goid()
	if v, ok := trees.Load(id); ok {
		return v.(*calltree.Tree)
	}
	t := calltree.New()
	if actual, loaded := trees.LoadOrStore(id, t); loaded {
		return actual.(*calltree.Tree)
	}
	debug.Logf("profiler: new tree for goroutine %d", id)
	return t
}

// Begin starts timing a named region in the calling goroutine's tree.
func Begin(name string) {
	if disabled {
		return
	}
	Current().Enter(name)
}

// End stops the most recently begun region. It returns
// calltree.ErrStackImbalance when no region is open; the tree is unchanged
// in that case and the error must not be ignored, because continuing to
// measure after a swallowed imbalance produces garbage.
func End() error {
	if disabled {
		return nil
	}
	if err := Current().Exit(); err != nil {
		debug.Logf("profiler: %v", err)
		return err
	}
	return nil
}

// Measure begins a region and returns the function that ends it, for use
// with defer. The returned function is idempotent: calling it more than
// once ends the region only the first time.
func Measure(name string) func() {
	if disabled {
		return func() {}
	}
	t := Current()
	t.Enter(name)
	done := false
	return func() {
		if done {
			return
		}
		done = true
		if err := t.Exit(); err != nil {
			// Unreachable through this guard unless End was called
			// manually in between.
			debug.Logf("profiler: unbalanced guard: %v", err)
		}
	}
}

// Do runs fn inside the named region.
func Do(name string, fn func()) {
	defer Measure(name)()
	fn()
}

// Reset discards the calling goroutine's measurements and starts a fresh
// epoch.
func Reset() {
	if disabled {
		return
	}
	debug.Logf("profiler: reset goroutine %d", goid())
	Current().Reset()
}

// Report renders the calling goroutine's tree with default options. It
// fails with report.ErrRenderWhileOpen while any region is still open.
func Report() (string, error) {
	return ReportWith(report.DefaultOptions())
}

// ReportWith renders the calling goroutine's tree with the given options.
func ReportWith(opts report.Options) (string, error) {
	return report.Render(Current(), opts)
}

// ExportJSON serializes the calling goroutine's tree as JSON, with the
// same open-measurement precondition as Report.
func ExportJSON() ([]byte, error) {
	return report.Export(Current())
}
