package tree

import (
	"log/slog"

	"github.com/joshuapare/slabtree/internal/core"
)

// NodeID identifies one node of one Tree. It stays valid until the node is
// removed; afterwards every lookup reports ErrNodeNotFound, even if the
// node's storage has been reused. Ids from another Tree report
// ErrForeignNode. The zero NodeID never resolves.
type NodeID = core.NodeID

type borrowMode uint8

const (
	borrowShared borrowMode = iota
	borrowExclusive
)

// Tree is an arena-backed tree of T values.
//
// All node storage belongs to the Tree; views (NodeRef, NodeMut) hold only
// a NodeID and the Tree pointer and look the node up on every access.
type Tree[T any] struct {
	rootID NodeID
	core   *core.CoreTree[T]
	log    *slog.Logger

	// epoch identifies the current borrow; views carry the epoch they were
	// created under and are stale once it moves.
	epoch  uint64
	borrow borrowMode

	// mods counts structural changes. Iterators snapshot it.
	mods uint64
}

// New creates an empty Tree with zero capacity.
func New[T any]() *Tree[T] {
	return NewBuilder[T]().Build()
}

// NewWithRoot creates a Tree whose root holds root.
func NewWithRoot[T any](root T) *Tree[T] {
	return NewBuilder[T]().WithRoot(root).Build()
}

// Capacity returns how many nodes the Tree can hold before its arena has to
// grow.
func (t *Tree[T]) Capacity() int { return t.core.Capacity() }

// Len returns the number of allocated nodes, including detached (orphaned)
// ones.
func (t *Tree[T]) Len() int { return t.core.Len() }

// IsEmpty reports whether the Tree has no root.
func (t *Tree[T]) IsEmpty() bool { return t.rootID.IsZero() }

// RootID returns the id of the root node.
func (t *Tree[T]) RootID() (NodeID, bool) {
	return t.rootID, !t.rootID.IsZero()
}

// Root returns a read-only view of the root node.
func (t *Tree[T]) Root() (NodeRef[T], bool) {
	if t.rootID.IsZero() {
		return NodeRef[T]{}, false
	}
	return t.newNodeRef(t.rootID, t.shared()), true
}

// RootMut returns a read-write view of the root node. Views obtained
// earlier become stale.
func (t *Tree[T]) RootMut() (NodeMut[T], bool) {
	if t.rootID.IsZero() {
		return NodeMut[T]{}, false
	}
	return t.newNodeMut(t.rootID, t.exclusive()), true
}

// Get returns a read-only view of the node identified by id.
func (t *Tree[T]) Get(id NodeID) (NodeRef[T], error) {
	if _, err := t.core.Get(id); err != nil {
		return NodeRef[T]{}, err
	}
	return t.newNodeRef(id, t.shared()), nil
}

// GetMut returns a read-write view of the node identified by id. Views
// obtained earlier become stale.
func (t *Tree[T]) GetMut(id NodeID) (NodeMut[T], error) {
	if _, err := t.core.Get(id); err != nil {
		return NodeMut[T]{}, err
	}
	return t.newNodeMut(id, t.exclusive()), nil
}

// Contains reports whether id identifies a live node of this Tree.
func (t *Tree[T]) Contains(id NodeID) bool { return t.core.Contains(id) }

// SetRoot inserts a new root holding data. An existing root becomes the
// only child of the new one. Views obtained earlier become stale.
func (t *Tree[T]) SetRoot(data T) NodeID {
	t.exclusive()
	return t.setRoot(data)
}

// Remove removes the node identified by id and returns its payload. The
// descendants are dropped or orphaned according to behavior. Views obtained
// earlier become stale.
//
// Removing the root leaves the Tree empty; SetRoot may be called again.
func (t *Tree[T]) Remove(id NodeID, behavior RemoveBehavior) (T, error) {
	t.exclusive()
	return t.remove(id, behavior)
}

// shared joins the current shared borrow, ending an exclusive one.
func (t *Tree[T]) shared() uint64 {
	if t.borrow == borrowExclusive {
		t.epoch++
		t.borrow = borrowShared
	}
	return t.epoch
}

// exclusive starts a new exclusive borrow, invalidating every view.
func (t *Tree[T]) exclusive() uint64 {
	t.epoch++
	t.borrow = borrowExclusive
	return t.epoch
}

func (t *Tree[T]) checkEpoch(epoch uint64) {
	if epoch != t.epoch {
		panic(ErrStaleView)
	}
}

func (t *Tree[T]) newNodeRef(id NodeID, epoch uint64) NodeRef[T] {
	return NodeRef[T]{id: id, tree: t, epoch: epoch}
}

func (t *Tree[T]) newNodeMut(id NodeID, epoch uint64) NodeMut[T] {
	return NodeMut[T]{id: id, tree: t, epoch: epoch}
}
