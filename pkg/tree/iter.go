package tree

import (
	"iter"

	"github.com/joshuapare/slabtree/internal/core"
)

// Iterators are lazy and single-pass. None of them recurses: depth-first
// orders keep an explicit stack and level order keeps a FIFO queue, so
// arbitrarily deep trees are safe.
//
// Each iterator remembers the tree's borrow and structural modification
// count at creation. Advancing it after the tree changed shape panics with
// ErrConcurrentModification; advancing it after its borrow ended panics with
// ErrStaleView.

// guard ties an iterator to the tree state it was created from.
type guard[T any] struct {
	tree  *Tree[T]
	epoch uint64
	mods  uint64
}

func (g guard[T]) check() {
	g.tree.checkEpoch(g.epoch)
	if g.tree.mods != g.mods {
		panic(ErrConcurrentModification)
	}
}

func (g guard[T]) ref(id NodeID) NodeRef[T] {
	return g.tree.newNodeRef(id, g.epoch)
}

func (g guard[T]) relatives(id NodeID) core.Relatives {
	return g.tree.relatives(id)
}

// seq adapts a pull-style Next into a range-over-func sequence.
func seq[T any](next func() (NodeRef[T], bool)) iter.Seq[NodeRef[T]] {
	return func(yield func(NodeRef[T]) bool) {
		for {
			n, ok := next()
			if !ok || !yield(n) {
				return
			}
		}
	}
}

// Values maps a sequence of views to their payloads.
//
//	got := slices.Collect(tree.Values(root.PreOrder().All()))
func Values[T any](nodes iter.Seq[NodeRef[T]]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := range nodes {
			if !yield(n.Data()) {
				return
			}
		}
	}
}

// Ancestors walks parent links from a node up to the root.
type Ancestors[T any] struct {
	guard[T]
	current NodeID
}

// Next returns the next ancestor.
func (it *Ancestors[T]) Next() (NodeRef[T], bool) {
	if it.current.IsZero() {
		return NodeRef[T]{}, false
	}
	it.check()
	parent := it.relatives(it.current).Parent
	it.current = parent
	if parent.IsZero() {
		return NodeRef[T]{}, false
	}
	return it.ref(parent), true
}

// All returns the remaining ancestors as a sequence.
func (it *Ancestors[T]) All() iter.Seq[NodeRef[T]] { return seq(it.Next) }

// Children walks a sibling list from a node's first child.
type Children[T any] struct {
	guard[T]
	current NodeID
}

// Next returns the next child.
func (it *Children[T]) Next() (NodeRef[T], bool) {
	if it.current.IsZero() {
		return NodeRef[T]{}, false
	}
	it.check()
	id := it.current
	it.current = it.relatives(id).NextSibling
	return it.ref(id), true
}

// All returns the remaining children as a sequence.
func (it *Children[T]) All() iter.Seq[NodeRef[T]] { return seq(it.Next) }

// PreOrder yields each node before its descendants.
type PreOrder[T any] struct {
	guard[T]
	start   NodeID
	started bool
	// stack holds, per depth reached, the siblings not yet visited.
	stack []*Children[T]
}

// Next returns the next node in pre-order.
func (it *PreOrder[T]) Next() (NodeRef[T], bool) {
	if !it.started {
		it.started = true
		it.check()
		it.descend(it.start)
		return it.ref(it.start), true
	}

	for len(it.stack) > 0 {
		top := it.stack[len(it.stack)-1]
		if n, ok := top.Next(); ok {
			it.descend(n.id)
			return n, true
		}
		it.stack[len(it.stack)-1] = nil
		it.stack = it.stack[:len(it.stack)-1]
	}
	return NodeRef[T]{}, false
}

// All returns the remaining nodes as a sequence.
func (it *PreOrder[T]) All() iter.Seq[NodeRef[T]] { return seq(it.Next) }

func (it *PreOrder[T]) descend(id NodeID) {
	if first := it.relatives(id).FirstChild; !first.IsZero() {
		it.stack = append(it.stack, &Children[T]{guard: it.guard, current: first})
	}
}

type postFrame[T any] struct {
	id       NodeID
	children *Children[T]
}

// PostOrder yields each node after all of its descendants.
type PostOrder[T any] struct {
	guard[T]
	// stack holds the path from the start node down to the node being
	// visited, each with the iterator over its unvisited children.
	stack []postFrame[T]
}

// Next returns the next node in post-order.
func (it *PostOrder[T]) Next() (NodeRef[T], bool) {
	if len(it.stack) == 0 {
		return NodeRef[T]{}, false
	}
	it.check()

	top := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]

	child, ok := top.children.Next()
	if !ok {
		return it.ref(top.id), true
	}
	it.stack = append(it.stack, top)

	// Drive down first-child links to a leaf, leaving each visited node on
	// the stack with its sibling iterator already past the child we took.
	id := child.id
	for {
		first := it.relatives(id).FirstChild
		if first.IsZero() {
			return it.ref(id), true
		}
		it.stack = append(it.stack, postFrame[T]{
			id:       id,
			children: &Children[T]{guard: it.guard, current: it.relatives(first).NextSibling},
		})
		id = first
	}
}

// All returns the remaining nodes as a sequence.
func (it *PostOrder[T]) All() iter.Seq[NodeRef[T]] { return seq(it.Next) }

// LevelOrder yields nodes breadth first, left to right within a depth.
type LevelOrder[T any] struct {
	guard[T]
	queue []NodeID
	head  int
}

// Next returns the next node in level order.
func (it *LevelOrder[T]) Next() (NodeRef[T], bool) {
	if it.head == len(it.queue) {
		it.queue, it.head = nil, 0
		return NodeRef[T]{}, false
	}
	it.check()

	id := it.queue[it.head]
	it.head++

	children := Children[T]{guard: it.guard, current: it.relatives(id).FirstChild}
	for c, ok := children.Next(); ok; c, ok = children.Next() {
		it.queue = append(it.queue, c.id)
	}

	// Reclaim the consumed prefix once it dominates the queue.
	if it.head > 64 && it.head*2 > len(it.queue) {
		n := copy(it.queue, it.queue[it.head:])
		it.queue = it.queue[:n]
		it.head = 0
	}

	return it.ref(id), true
}

// All returns the remaining nodes as a sequence.
func (it *LevelOrder[T]) All() iter.Seq[NodeRef[T]] { return seq(it.Next) }
