package printer

import (
	"encoding/json"
	"strings"

	"github.com/joshuapare/slabtree/pkg/tree"
)

// docNode is the nested shape shared by the JSON and YAML formats.
type docNode[T any] struct {
	Value    T             `json:"value" yaml:"value"`
	Children []*docNode[T] `json:"children,omitempty" yaml:"children,omitempty"`
}

type docEntry[T any] struct {
	node  *docNode[T]
	depth int
}

// document converts the subtree rooted at n into nested docNodes, honoring
// MaxDepth. It walks in pre-order so every parent is built before its
// children.
func (p *Printer[T]) document(n tree.NodeRef[T]) *docNode[T] {
	root := &docNode[T]{Value: n.Data()}
	built := map[tree.NodeID]docEntry[T]{n.NodeID(): {node: root}}

	it := n.PreOrder()
	it.Next() // n itself
	for c, ok := it.Next(); ok; c, ok = it.Next() {
		parent, _ := c.Parent()
		pe, found := built[parent.NodeID()]
		if !found || !p.within(pe.depth+1) {
			continue
		}
		child := &docNode[T]{Value: c.Data()}
		pe.node.Children = append(pe.node.Children, child)
		built[c.NodeID()] = docEntry[T]{node: child, depth: pe.depth + 1}
	}
	return root
}

// printJSON writes the subtree rooted at n as indented JSON.
func (p *Printer[T]) printJSON(n tree.NodeRef[T]) error {
	enc := json.NewEncoder(p.writer)
	enc.SetIndent("", strings.Repeat(" ", p.opts.IndentSize))
	enc.SetEscapeHTML(false)
	return enc.Encode(p.document(n))
}
