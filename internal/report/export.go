package report

import (
	"encoding/json"

	"github.com/perftree/perftree/internal/calltree"
)

// ExportNode is the JSON shape of one call-tree node.
type ExportNode struct {
	Name     string       `json:"name"`
	TotalNS  int64        `json:"total_ns"`
	Calls    int          `json:"calls"`
	Children []ExportNode `json:"children,omitempty"`
}

// Export serializes the finished tree as JSON: an object holding the
// top-level regions in first-insertion order. Like Render, it refuses trees
// with open measurements.
func Export(t *calltree.Tree) ([]byte, error) {
	if !t.AtRoot() {
		return nil, ErrRenderWhileOpen
	}
	regions := exportChildren(t.Root())
	if regions == nil {
		regions = []ExportNode{}
	}
	doc := struct {
		Regions []ExportNode `json:"regions"`
	}{Regions: regions}
	return json.Marshal(doc)
}

func exportChildren(n *calltree.Node) []ExportNode {
	children := n.Children()
	if len(children) == 0 {
		return nil
	}
	out := make([]ExportNode, 0, len(children))
	for _, c := range children {
		out = append(out, ExportNode{
			Name:     c.Name(),
			TotalNS:  c.Total().Nanoseconds(),
			Calls:    c.Calls(),
			Children: exportChildren(c),
		})
	}
	return out
}
