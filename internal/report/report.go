// Package report renders a finished call tree as an indented box-drawing
// tree. Each line shows the region's share of its parent's time, the average
// time spent per top-level pass, and the number of completed samples.
package report

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/perftree/perftree/internal/calltree"
)

// ErrRenderWhileOpen is returned when the tree still has open measurements.
// Finish every region (or reset the tree) before rendering.
var ErrRenderWhileOpen = errors.New("report: measurements still open")

// Options configures rendering.
type Options struct {
	Style    Style
	Decimals int  // fractional digits of the ms/loop column
	Color    bool // colorize with lipgloss styles; layout is unaffected
}

// DefaultOptions returns the streamlined style with whole-millisecond
// timings and no color.
func DefaultOptions() Options {
	return Options{Style: Streamlined}
}

// row is one rendered node: the branch prefix plus everything needed for
// the info columns.
type row struct {
	branch string
	node   *calltree.Node
	base   time.Duration // percentage denominator (enclosing scope total)
	loops  int           // completed top-level passes above this node
}

// Render walks the tree depth-first and produces the report text, one line
// per node, ending with a newline. An empty tree renders as an empty string.
// Rendering a tree whose cursor is not back at the root returns
// ErrRenderWhileOpen.
func Render(t *calltree.Tree, opts Options) (string, error) {
	if !t.AtRoot() {
		return "", ErrRenderWhileOpen
	}
	if opts.Style.Ending == "" {
		opts.Style = Streamlined
	}

	top := t.Root().Children()
	if len(top) == 0 {
		return "", nil
	}

	// Top-level percentages are relative to the sum of all top-level
	// totals, so a single recurring top-level region reads 100%.
	var topBase time.Duration
	for _, n := range top {
		topBase += n.Total()
	}

	var rows []row
	for _, n := range top {
		loops := n.Calls()
		if loops < 1 {
			loops = 1
		}
		rows = appendRows(rows, n, opts.Style, "", true, true, topBase, loops)
	}

	width := 0
	for _, r := range rows {
		if w := utf8.RuneCountInString(r.branch) + 1 + utf8.RuneCountInString(r.node.Name()); w > width {
			width = w
		}
	}
	width++

	var b strings.Builder
	for _, r := range rows {
		writeRow(&b, r, width, opts)
	}
	return b.String(), nil
}

// appendRows adds node and its subtree in preorder. prefix is the indent
// accumulated from the ancestors; topLevel nodes use the starting glyph and
// indent their subtree with plain spaces regardless of siblings.
func appendRows(rows []row, n *calltree.Node, style Style, prefix string, isLast, topLevel bool, base time.Duration, loops int) []row {
	var branch, childPrefix string
	switch {
	case topLevel:
		branch = prefix + style.Starting
		childPrefix = prefix + "   "
	case isLast:
		branch = prefix + style.Turning
		childPrefix = prefix + "   "
	default:
		branch = prefix + style.Branching
		childPrefix = prefix + style.Continuing + "  "
	}

	children := n.Children()
	if len(children) > 0 {
		branch += style.TurningEnding
	} else {
		branch += style.Ending
	}

	rows = append(rows, row{branch: branch, node: n, base: base, loops: loops})
	for i, c := range children {
		rows = appendRows(rows, c, style, childPrefix, i == len(children)-1, false, n.Total(), loops)
	}
	return rows
}

func writeRow(b *strings.Builder, r row, width int, opts Options) {
	pct := 0.0
	if r.base > 0 {
		pct = 100 * float64(r.node.Total()) / float64(r.base)
	}
	ms := float64(r.node.Total().Nanoseconds()) / float64(r.loops) / 1e6

	pad := width - utf8.RuneCountInString(r.branch) - 1 - utf8.RuneCountInString(r.node.Name())
	info := fmt.Sprintf("%5.1f%%, %s ms/loop, %d samples",
		pct, strconv.FormatFloat(ms, 'f', opts.Decimals, 64), r.node.Calls())

	if opts.Color {
		b.WriteString(branchStyle.Render(r.branch))
		b.WriteString(" ")
		b.WriteString(nameStyle.Render(r.node.Name()))
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(" - ")
		b.WriteString(colorizeInfo(pct, info))
	} else {
		b.WriteString(r.branch)
		b.WriteString(" ")
		b.WriteString(r.node.Name())
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(" - ")
		b.WriteString(info)
	}
	b.WriteString("\n")
}
