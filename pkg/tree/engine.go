package tree

import (
	"fmt"

	"github.com/joshuapare/slabtree/internal/core"
)

// The structural engine. These are the only functions that write link
// fields. Each one leaves the tree satisfying:
//   - a parent's FirstChild has no PrevSibling and its LastChild has no
//     NextSibling;
//   - A.NextSibling == B iff B.PrevSibling == A;
//   - a node's Parent is the node whose child list contains it, or zero for
//     the root and for orphans.

// node resolves id and panics if it is gone. Callers only pass ids that the
// links themselves point at, so a failure here is a broken invariant.
func (t *Tree[T]) node(id NodeID) *core.Node[T] {
	n, err := t.core.Get(id)
	if err != nil {
		panic(fmt.Sprintf("tree: link target %s unresolvable: %v", id, err))
	}
	return n
}

func (t *Tree[T]) relatives(id NodeID) core.Relatives {
	return t.node(id).Relatives
}

func (t *Tree[T]) setParent(id, parent NodeID) {
	t.node(id).Relatives.Parent = parent
}

func (t *Tree[T]) setPrevSibling(id, prev NodeID) {
	t.node(id).Relatives.PrevSibling = prev
}

func (t *Tree[T]) setNextSibling(id, next NodeID) {
	t.node(id).Relatives.NextSibling = next
}

func (t *Tree[T]) setFirstChild(id, first NodeID) {
	t.node(id).Relatives.FirstChild = first
}

func (t *Tree[T]) setLastChild(id, last NodeID) {
	t.node(id).Relatives.LastChild = last
}

func (t *Tree[T]) setRoot(data T) NodeID {
	oldRoot := t.rootID
	newRoot := t.core.Insert(data)
	t.rootID = newRoot
	t.mods++

	if !oldRoot.IsZero() {
		t.setFirstChild(newRoot, oldRoot)
		t.setLastChild(newRoot, oldRoot)
		t.setParent(oldRoot, newRoot)
		t.log.Debug("root replaced", "old", oldRoot, "new", newRoot)
	}
	return newRoot
}

// appendChild inserts data as the last child of parent, which must exist.
func (t *Tree[T]) appendChild(parent NodeID, data T) NodeID {
	newID := t.core.Insert(data)
	t.mods++

	p := t.node(parent)
	prev := p.Relatives.LastChild
	if p.Relatives.FirstChild.IsZero() {
		p.Relatives.FirstChild = newID
	}
	p.Relatives.LastChild = newID

	n := t.node(newID)
	n.Relatives.Parent = parent
	n.Relatives.PrevSibling = prev

	if !prev.IsZero() {
		t.setNextSibling(prev, newID)
	}
	return newID
}

// prependChild inserts data as the first child of parent, which must exist.
func (t *Tree[T]) prependChild(parent NodeID, data T) NodeID {
	newID := t.core.Insert(data)
	t.mods++

	p := t.node(parent)
	next := p.Relatives.FirstChild
	if p.Relatives.LastChild.IsZero() {
		p.Relatives.LastChild = newID
	}
	p.Relatives.FirstChild = newID

	n := t.node(newID)
	n.Relatives.Parent = parent
	n.Relatives.NextSibling = next

	if !next.IsZero() {
		t.setPrevSibling(next, newID)
	}
	return newID
}

// unlink splices id out of its sibling list and fixes the parent's end
// pointers. id's own links are left as they were.
func (t *Tree[T]) unlink(id NodeID, rel core.Relatives) {
	if !rel.Parent.IsZero() {
		p := t.node(rel.Parent)
		if p.Relatives.FirstChild == id {
			p.Relatives.FirstChild = rel.NextSibling
		}
		if p.Relatives.LastChild == id {
			p.Relatives.LastChild = rel.PrevSibling
		}
	}
	if !rel.PrevSibling.IsZero() {
		t.setNextSibling(rel.PrevSibling, rel.NextSibling)
	}
	if !rel.NextSibling.IsZero() {
		t.setPrevSibling(rel.NextSibling, rel.PrevSibling)
	}
}

func (t *Tree[T]) remove(id NodeID, behavior RemoveBehavior) (T, error) {
	n, err := t.core.Get(id)
	if err != nil {
		var zero T
		return zero, err
	}
	rel := n.Relatives

	t.unlink(id, rel)
	t.mods++

	switch behavior {
	case DropChildren:
		t.dropDescendants(rel.FirstChild)
	case OrphanChildren:
		t.orphanChildren(rel.FirstChild)
	}

	if t.rootID == id {
		t.rootID = NodeID{}
	}

	return t.core.Remove(id)
}

// dropDescendants frees first and all its siblings together with their
// subtrees, breadth first.
func (t *Tree[T]) dropDescendants(first NodeID) {
	if first.IsZero() {
		return
	}

	queue := []NodeID{first}
	freed := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		rel := t.relatives(id)
		if !rel.NextSibling.IsZero() {
			queue = append(queue, rel.NextSibling)
		}
		if !rel.FirstChild.IsZero() {
			queue = append(queue, rel.FirstChild)
		}
		if _, err := t.core.Remove(id); err != nil {
			panic(fmt.Sprintf("tree: dropping %s: %v", id, err))
		}
		freed++
	}
	t.log.Debug("subtree dropped", "descendants", freed)
}

// orphanChildren clears the parent link of first and its siblings. Sibling
// links between the orphans are kept.
func (t *Tree[T]) orphanChildren(first NodeID) {
	orphans := 0
	for id := first; !id.IsZero(); {
		n := t.node(id)
		n.Relatives.Parent = NodeID{}
		id = n.Relatives.NextSibling
		orphans++
	}
	if orphans > 0 {
		t.log.Debug("children orphaned", "count", orphans)
	}
}

// removeFirstChild frees the first child of parent only. Its own children
// are orphaned.
func (t *Tree[T]) removeFirstChild(parent NodeID) (T, bool) {
	return t.removeEnd(t.relatives(parent).FirstChild)
}

// removeLastChild frees the last child of parent only. Its own children are
// orphaned.
func (t *Tree[T]) removeLastChild(parent NodeID) (T, bool) {
	return t.removeEnd(t.relatives(parent).LastChild)
}

func (t *Tree[T]) removeEnd(child NodeID) (T, bool) {
	if child.IsZero() {
		var zero T
		return zero, false
	}
	data, err := t.remove(child, OrphanChildren)
	return data, err == nil
}

// swapNextSibling exchanges id with its next sibling:
// prev, id, next, after  ->  prev, next, id, after.
func (t *Tree[T]) swapNextSibling(id NodeID) bool {
	rel := t.relatives(id)
	next := rel.NextSibling
	if next.IsZero() {
		return false
	}
	prev := rel.PrevSibling
	after := t.relatives(next).NextSibling

	if !rel.Parent.IsZero() {
		p := t.node(rel.Parent)
		if p.Relatives.FirstChild == id {
			p.Relatives.FirstChild = next
		}
		if p.Relatives.LastChild == next {
			p.Relatives.LastChild = id
		}
	}

	if !prev.IsZero() {
		t.setNextSibling(prev, next)
	}
	t.setPrevSibling(next, prev)
	t.setNextSibling(next, id)
	t.setPrevSibling(id, next)
	t.setNextSibling(id, after)
	if !after.IsZero() {
		t.setPrevSibling(after, id)
	}

	t.mods++
	return true
}

// swapPrevSibling exchanges id with its previous sibling, which is the same
// as swapping that sibling with its next one.
func (t *Tree[T]) swapPrevSibling(id NodeID) bool {
	prev := t.relatives(id).PrevSibling
	if prev.IsZero() {
		return false
	}
	return t.swapNextSibling(prev)
}

// makeLastSibling moves id to the end of its parent's child list.
func (t *Tree[T]) makeLastSibling(id NodeID) bool {
	rel := t.relatives(id)
	if rel.Parent.IsZero() {
		return false
	}
	p := t.node(rel.Parent)
	last := p.Relatives.LastChild
	if last == id {
		return false
	}

	if p.Relatives.FirstChild == id {
		p.Relatives.FirstChild = rel.NextSibling
	}
	p.Relatives.LastChild = id

	// rel.NextSibling is non-zero because id was not last.
	if !rel.PrevSibling.IsZero() {
		t.setNextSibling(rel.PrevSibling, rel.NextSibling)
	}
	t.setPrevSibling(rel.NextSibling, rel.PrevSibling)

	t.setNextSibling(last, id)
	t.setPrevSibling(id, last)
	t.setNextSibling(id, NodeID{})

	t.mods++
	return true
}

// makeFirstSibling moves id to the front of its parent's child list.
func (t *Tree[T]) makeFirstSibling(id NodeID) bool {
	rel := t.relatives(id)
	if rel.Parent.IsZero() {
		return false
	}
	p := t.node(rel.Parent)
	first := p.Relatives.FirstChild
	if first == id {
		return false
	}

	if p.Relatives.LastChild == id {
		p.Relatives.LastChild = rel.PrevSibling
	}
	p.Relatives.FirstChild = id

	// rel.PrevSibling is non-zero because id was not first.
	t.setNextSibling(rel.PrevSibling, rel.NextSibling)
	if !rel.NextSibling.IsZero() {
		t.setPrevSibling(rel.NextSibling, rel.PrevSibling)
	}

	t.setPrevSibling(first, id)
	t.setNextSibling(id, first)
	t.setPrevSibling(id, NodeID{})

	t.mods++
	return true
}
