package tree

import (
	"fmt"

	"github.com/joshuapare/slabtree/internal/core"
)

// NodeMut is a read-write view of one node. Like NodeRef it holds only the
// node id and the Tree, and resolves the node on every call.
//
// Acquiring a NodeMut from the Tree (RootMut, GetMut) invalidates every view
// obtained earlier. NodeMuts and NodeRefs derived from this one (navigation,
// Append, Prepend, AsRef) share its borrow and stay usable together.
type NodeMut[T any] struct {
	id    NodeID
	tree  *Tree[T]
	epoch uint64
}

// NodeID returns the id of the viewed node.
func (n NodeMut[T]) NodeID() NodeID { return n.id }

// Data returns the node's payload.
func (n NodeMut[T]) Data() T { return n.node().Data }

// SetData replaces the node's payload.
func (n NodeMut[T]) SetData(data T) { n.node().Data = data }

// Update calls fn with a pointer to the node's payload. The pointer must not
// be retained after fn returns.
func (n NodeMut[T]) Update(fn func(data *T)) { fn(&n.node().Data) }

// Parent returns the parent node, if any.
func (n NodeMut[T]) Parent() (NodeMut[T], bool) {
	return n.related(n.node().Relatives.Parent)
}

// PrevSibling returns the previous sibling, if any.
func (n NodeMut[T]) PrevSibling() (NodeMut[T], bool) {
	return n.related(n.node().Relatives.PrevSibling)
}

// NextSibling returns the next sibling, if any.
func (n NodeMut[T]) NextSibling() (NodeMut[T], bool) {
	return n.related(n.node().Relatives.NextSibling)
}

// FirstChild returns the first child, if any.
func (n NodeMut[T]) FirstChild() (NodeMut[T], bool) {
	return n.related(n.node().Relatives.FirstChild)
}

// LastChild returns the last child, if any.
func (n NodeMut[T]) LastChild() (NodeMut[T], bool) {
	return n.related(n.node().Relatives.LastChild)
}

// Append adds data as the node's last child and returns a view of it.
//
//	root, _ := t.RootMut()
//	root.Append("a")
//	root.Append("b").Append("c")
func (n NodeMut[T]) Append(data T) NodeMut[T] {
	n.node()
	return n.tree.newNodeMut(n.tree.appendChild(n.id, data), n.epoch)
}

// Prepend adds data as the node's first child and returns a view of it.
func (n NodeMut[T]) Prepend(data T) NodeMut[T] {
	n.node()
	return n.tree.newNodeMut(n.tree.prependChild(n.id, data), n.epoch)
}

// RemoveFirst removes the node's first child and returns its payload. Only
// that child is freed; its own children are orphaned. It reports false if
// the node has no children.
func (n NodeMut[T]) RemoveFirst() (T, bool) {
	n.node()
	return n.tree.removeFirstChild(n.id)
}

// RemoveLast removes the node's last child and returns its payload. Only
// that child is freed; its own children are orphaned. It reports false if
// the node has no children.
func (n NodeMut[T]) RemoveLast() (T, bool) {
	n.node()
	return n.tree.removeLastChild(n.id)
}

// SwapNextSibling exchanges the node with its next sibling. It reports
// false, changing nothing, if the node is the last of its siblings.
func (n NodeMut[T]) SwapNextSibling() bool {
	n.node()
	return n.tree.swapNextSibling(n.id)
}

// SwapPrevSibling exchanges the node with its previous sibling. It reports
// false, changing nothing, if the node is the first of its siblings.
func (n NodeMut[T]) SwapPrevSibling() bool {
	n.node()
	return n.tree.swapPrevSibling(n.id)
}

// MakeFirstSibling moves the node to the front of its parent's children.
// It reports false if the node is already first or has no parent.
func (n NodeMut[T]) MakeFirstSibling() bool {
	n.node()
	return n.tree.makeFirstSibling(n.id)
}

// MakeLastSibling moves the node to the end of its parent's children.
// It reports false if the node is already last or has no parent.
func (n NodeMut[T]) MakeLastSibling() bool {
	n.node()
	return n.tree.makeLastSibling(n.id)
}

// AsRef returns a read-only view of the node under the same borrow.
func (n NodeMut[T]) AsRef() NodeRef[T] {
	n.node()
	return n.tree.newNodeRef(n.id, n.epoch)
}

func (n NodeMut[T]) String() string {
	return fmt.Sprintf("NodeMut(%s)", n.id)
}

func (n NodeMut[T]) node() *core.Node[T] {
	if n.tree == nil {
		panic("tree: use of zero NodeMut")
	}
	n.tree.checkEpoch(n.epoch)
	node, err := n.tree.core.Get(n.id)
	if err != nil {
		panic(fmt.Errorf("tree: view of %s: %w", n.id, err))
	}
	return node
}

func (n NodeMut[T]) related(id NodeID) (NodeMut[T], bool) {
	if id.IsZero() {
		return NodeMut[T]{}, false
	}
	return n.tree.newNodeMut(id, n.epoch), true
}
