package tree

import (
	"fmt"

	"github.com/joshuapare/slabtree/internal/core"
)

// NodeRef is a read-only view of one node. It holds only the node id and the
// Tree; every accessor looks the node up again.
//
// A NodeRef must not be used after a NodeMut was acquired from its Tree or
// after a tree-level mutation; doing so panics with ErrStaleView.
type NodeRef[T any] struct {
	id    NodeID
	tree  *Tree[T]
	epoch uint64
}

// NodeID returns the id of the viewed node.
func (n NodeRef[T]) NodeID() NodeID { return n.id }

// Data returns the node's payload.
func (n NodeRef[T]) Data() T { return n.node().Data }

// Parent returns the parent node, if any.
func (n NodeRef[T]) Parent() (NodeRef[T], bool) {
	return n.related(n.node().Relatives.Parent)
}

// PrevSibling returns the previous sibling, if any.
func (n NodeRef[T]) PrevSibling() (NodeRef[T], bool) {
	return n.related(n.node().Relatives.PrevSibling)
}

// NextSibling returns the next sibling, if any.
func (n NodeRef[T]) NextSibling() (NodeRef[T], bool) {
	return n.related(n.node().Relatives.NextSibling)
}

// FirstChild returns the first child, if any.
func (n NodeRef[T]) FirstChild() (NodeRef[T], bool) {
	return n.related(n.node().Relatives.FirstChild)
}

// LastChild returns the last child, if any.
func (n NodeRef[T]) LastChild() (NodeRef[T], bool) {
	return n.related(n.node().Relatives.LastChild)
}

// HasChildren reports whether the node has at least one child.
func (n NodeRef[T]) HasChildren() bool { return !n.node().IsLeaf() }

// Ancestors returns an iterator over the node's parent, grandparent and so
// on up to the root. The node itself is not included.
//
//	leaf, _ := t.Get(leafID)
//	for a := range leaf.Ancestors().All() {
//	    fmt.Println(a.Data())
//	}
func (n NodeRef[T]) Ancestors() *Ancestors[T] {
	return &Ancestors[T]{guard: n.guard(), current: n.id}
}

// Children returns an iterator over the node's children, first to last.
func (n NodeRef[T]) Children() *Children[T] {
	g := n.guard()
	return &Children[T]{guard: g, current: n.node().Relatives.FirstChild}
}

// PreOrder returns a depth-first pre-order iterator over the subtree rooted
// at this node.
func (n NodeRef[T]) PreOrder() *PreOrder[T] {
	return &PreOrder[T]{guard: n.guard(), start: n.id}
}

// PostOrder returns a depth-first post-order iterator over the subtree
// rooted at this node.
func (n NodeRef[T]) PostOrder() *PostOrder[T] {
	g := n.guard()
	return &PostOrder[T]{
		guard: g,
		stack: []postFrame[T]{{
			id:       n.id,
			children: &Children[T]{guard: g, current: n.node().Relatives.FirstChild},
		}},
	}
}

// LevelOrder returns a breadth-first iterator over the subtree rooted at
// this node, left to right within each depth.
func (n NodeRef[T]) LevelOrder() *LevelOrder[T] {
	return &LevelOrder[T]{guard: n.guard(), queue: []NodeID{n.id}}
}

func (n NodeRef[T]) String() string {
	return fmt.Sprintf("NodeRef(%s)", n.id)
}

func (n NodeRef[T]) node() *core.Node[T] {
	if n.tree == nil {
		panic("tree: use of zero NodeRef")
	}
	n.tree.checkEpoch(n.epoch)
	node, err := n.tree.core.Get(n.id)
	if err != nil {
		panic(fmt.Errorf("tree: view of %s: %w", n.id, err))
	}
	return node
}

func (n NodeRef[T]) related(id NodeID) (NodeRef[T], bool) {
	if id.IsZero() {
		return NodeRef[T]{}, false
	}
	return n.tree.newNodeRef(id, n.epoch), true
}

// guard validates the view and snapshots the tree for an iterator.
func (n NodeRef[T]) guard() guard[T] {
	n.node()
	return guard[T]{tree: n.tree, epoch: n.epoch, mods: n.tree.mods}
}
