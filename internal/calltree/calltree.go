// Package calltree implements the measurement stack behind the profiler: a
// tree of named regions aggregated by call path, with a cursor tracking the
// innermost region currently being measured.
//
// A Tree is a single-goroutine data structure. It has no locking; each
// execution context must own its own instance (see internal/profiler for the
// per-goroutine registry).
package calltree

import (
	"errors"
	"time"
)

// ErrStackImbalance is returned by Exit when no region is open, i.e. the
// number of exits exceeds the number of enters. The tree is left unchanged.
var ErrStackImbalance = errors.New("calltree: exit without matching enter")

// Node accumulates statistics for one region name at one specific position
// in the call tree. The same name entered under different parents produces
// distinct nodes; repeated enters at the same path merge into one.
type Node struct {
	name     string
	total    time.Duration
	calls    int
	parent   *Node
	children map[string]*Node
	order    []string

	open    bool
	started time.Time
}

func newNode(name string, parent *Node) *Node {
	return &Node{
		name:     name,
		parent:   parent,
		children: make(map[string]*Node),
	}
}

// Name returns the region name supplied at the call site.
func (n *Node) Name() string { return n.name }

// Total returns the accumulated duration of all completed measurements at
// this path.
func (n *Node) Total() time.Duration { return n.total }

// Calls returns the number of completed enter/exit pairs at this path.
func (n *Node) Calls() int { return n.calls }

// Parent returns the enclosing node, or nil for the synthetic root.
func (n *Node) Parent() *Node { return n.parent }

// Open reports whether a measurement is currently running on this node.
func (n *Node) Open() bool { return n.open }

// Children returns the direct children in first-insertion order.
func (n *Node) Children() []*Node {
	out := make([]*Node, 0, len(n.order))
	for _, name := range n.order {
		out = append(out, n.children[name])
	}
	return out
}

// Child returns the direct child with the given name, if any.
func (n *Node) Child(name string) (*Node, bool) {
	c, ok := n.children[name]
	return c, ok
}

// Tree owns a call tree and the cursor used during active measurement. The
// root is synthetic: it carries no duration and only anchors the top-level
// regions.
type Tree struct {
	root   *Node
	cursor *Node
	now    func() time.Time
}

// New creates an empty tree using the wall clock.
func New() *Tree {
	return NewWithClock(time.Now)
}

// NewWithClock creates an empty tree reading time from now. Tests use this
// to measure deterministic durations.
func NewWithClock(now func() time.Time) *Tree {
	root := newNode("", nil)
	return &Tree{root: root, cursor: root, now: now}
}

// Root returns the synthetic root node.
func (t *Tree) Root() *Node { return t.root }

// AtRoot reports whether no measurement is currently open.
func (t *Tree) AtRoot() bool { return t.cursor == t.root }

// Depth returns the number of currently open measurements.
func (t *Tree) Depth() int {
	d := 0
	for n := t.cursor; n != t.root; n = n.parent {
		d++
	}
	return d
}

// Enter opens a measurement for the named region as a child of the current
// cursor position, creating the node on first use at this path. Empty names
// are accepted and produce a node with an empty label.
func (t *Tree) Enter(name string) {
	child, ok := t.cursor.children[name]
	if !ok {
		child = newNode(name, t.cursor)
		t.cursor.children[name] = child
		t.cursor.order = append(t.cursor.order, name)
	}
	child.open = true
	child.started = t.now()
	t.cursor = child
}

// Exit closes the innermost open measurement, committing its elapsed time
// into the node's running totals and moving the cursor back to the parent.
// Exits must mirror enters exactly (strict nesting); calling Exit with no
// open measurement returns ErrStackImbalance and mutates nothing.
func (t *Tree) Exit() error {
	if t.cursor == t.root {
		return ErrStackImbalance
	}
	n := t.cursor
	n.total += t.now().Sub(n.started)
	n.calls++
	n.open = false
	t.cursor = n.parent
	return nil
}

// Reset discards all accumulated nodes and returns the cursor to a fresh
// root, starting a new measurement epoch.
func (t *Tree) Reset() {
	t.root = newNode("", nil)
	t.cursor = t.root
}
