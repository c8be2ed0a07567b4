package treeio

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/joshuapare/slabtree/internal/logger"
	"github.com/joshuapare/slabtree/pkg/tree"
)

const (
	valueKey    = "value"
	childrenKey = "children"
)

// pending is a YAML node waiting to be attached under parent.
type pending struct {
	doc    *yaml.Node
	parent tree.NodeMut[string]
}

// ReadYAML builds a tree from a YAML document:
//
//	value: html
//	children:
//	  - value: head
//	  - value: body
//	    children: [h1, p]
func ReadYAML(r io.Reader) (*tree.Tree[string], error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, ErrEmpty
	}

	value, children, err := splitNode(doc.Content[0])
	if err != nil {
		return nil, err
	}
	t := tree.NewWithRoot(value)
	root, _ := t.RootMut()

	var stack []pending
	push := func(parent tree.NodeMut[string], kids []*yaml.Node) {
		// Reversed so siblings pop in document order.
		for _, k := range slices.Backward(kids) {
			stack = append(stack, pending{doc: k, parent: parent})
		}
	}
	push(root, children)

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		value, children, err := splitNode(p.doc)
		if err != nil {
			return nil, err
		}
		push(p.parent.Append(value), children)
	}

	logger.L.Debug("yaml loaded", "nodes", t.Len())
	return t, nil
}

// splitNode returns the payload and child documents of n. A scalar is a
// leaf; a mapping must have a scalar value and may have a children
// sequence.
func splitNode(n *yaml.Node) (string, []*yaml.Node, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return n.Value, nil, nil
	case yaml.MappingNode:
	default:
		return "", nil, invalid(n, "expected a scalar or a mapping")
	}

	var (
		value    *yaml.Node
		children []*yaml.Node
	)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		switch key.Value {
		case valueKey:
			if val.Kind != yaml.ScalarNode {
				return "", nil, invalid(val, "value must be a scalar")
			}
			value = val
		case childrenKey:
			if val.Kind != yaml.SequenceNode {
				return "", nil, invalid(val, "children must be a sequence")
			}
			children = val.Content
		default:
			return "", nil, invalid(key, fmt.Sprintf("unknown key %q", key.Value))
		}
	}
	if value == nil {
		return "", nil, invalid(n, "missing value")
	}
	return value.Value, children, nil
}

func invalid(n *yaml.Node, msg string) error {
	return fmt.Errorf("line %d: %s: %w", n.Line, msg, ErrInvalidDocument)
}
