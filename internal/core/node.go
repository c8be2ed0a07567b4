package core

// Relatives is the five-way link block that encodes tree shape. A zero
// NodeID in any field means the link is absent.
type Relatives struct {
	Parent      NodeID
	PrevSibling NodeID
	NextSibling NodeID
	FirstChild  NodeID
	LastChild   NodeID
}

// Node is the record stored in each slab slot.
type Node[T any] struct {
	Data      T
	Relatives Relatives
}

// IsLeaf reports whether the node has no children.
func (n *Node[T]) IsLeaf() bool { return n.Relatives.FirstChild.IsZero() }
