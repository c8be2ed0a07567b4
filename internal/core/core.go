// Package core binds a slab of node records to a process-unique tree
// identity.
//
// Every NodeID minted by a CoreTree carries that tree's identifier, and
// every lookup checks it first, so an id from one tree can never resolve
// against another. A mismatch is reported as ErrWrongTree, distinct from
// ErrNotFound (empty slot or stale generation).
package core

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/joshuapare/slabtree/internal/slab"
)

var (
	// ErrNotFound indicates an unknown or stale node id.
	ErrNotFound = errors.New("core: node not found")

	// ErrWrongTree indicates a node id minted by a different tree.
	ErrWrongTree = errors.New("core: node belongs to a different tree")
)

// NodeID is a tree-scoped generational handle. Two ids are equal only if
// both the tree identifier and the slab index match. The zero NodeID never
// resolves and is used to mean "no node".
type NodeID struct {
	tree  uuid.UUID
	index slab.Index
}

// IsZero reports whether id is the zero NodeID.
func (id NodeID) IsZero() bool { return id == NodeID{} }

// Tree returns the identifier of the tree that minted id.
func (id NodeID) Tree() uuid.UUID { return id.tree }

// Slot returns the slab slot position of id.
func (id NodeID) Slot() int { return id.index.Slot() }

// Generation returns the slab generation stamp of id.
func (id NodeID) Generation() uint64 { return id.index.Generation() }

func (id NodeID) String() string {
	if id.IsZero() {
		return "NodeID(none)"
	}
	return fmt.Sprintf("NodeID(%s:%s)", id.tree.String()[:8], id.index)
}

// CoreTree is a slab of Node records stamped with a tree identifier.
type CoreTree[T any] struct {
	id   uuid.UUID
	slab *slab.Slab[Node[T]]
}

// New creates an empty CoreTree with a fresh identifier.
func New[T any](capacity int) *CoreTree[T] {
	return &CoreTree[T]{
		id:   uuid.New(),
		slab: slab.New[Node[T]](capacity),
	}
}

// ID returns the tree identifier. It is fixed at construction.
func (c *CoreTree[T]) ID() uuid.UUID { return c.id }

// Capacity returns the slab capacity.
func (c *CoreTree[T]) Capacity() int { return c.slab.Capacity() }

// Len returns the number of allocated nodes.
func (c *CoreTree[T]) Len() int { return c.slab.Len() }

// FreeSlots returns the number of recycled slots awaiting reuse.
func (c *CoreTree[T]) FreeSlots() int { return c.slab.Free() }

// Generation returns the slab generation counter.
func (c *CoreTree[T]) Generation() uint64 { return c.slab.Generation() }

// Insert allocates a detached node holding data.
func (c *CoreTree[T]) Insert(data T) NodeID {
	idx := c.slab.Insert(Node[T]{Data: data})
	return NodeID{tree: c.id, index: idx}
}

// Remove frees the node addressed by id and returns its payload.
func (c *CoreTree[T]) Remove(id NodeID) (T, error) {
	var zero T
	if err := c.check(id); err != nil {
		return zero, err
	}
	node, ok := c.slab.Remove(id.index)
	if !ok {
		return zero, ErrNotFound
	}
	return node.Data, nil
}

// Get returns the node addressed by id. The pointer is valid until the next
// Insert.
func (c *CoreTree[T]) Get(id NodeID) (*Node[T], error) {
	if err := c.check(id); err != nil {
		return nil, err
	}
	node, ok := c.slab.Get(id.index)
	if !ok {
		return nil, ErrNotFound
	}
	return node, nil
}

// Contains reports whether id addresses a live node of this tree.
func (c *CoreTree[T]) Contains(id NodeID) bool {
	return c.check(id) == nil && c.slab.Contains(id.index)
}

// Each calls fn for every allocated node until fn returns false.
func (c *CoreTree[T]) Each(fn func(id NodeID, node *Node[T]) bool) {
	c.slab.Each(func(idx slab.Index, node *Node[T]) bool {
		return fn(NodeID{tree: c.id, index: idx}, node)
	})
}

func (c *CoreTree[T]) check(id NodeID) error {
	if id.IsZero() {
		return ErrNotFound
	}
	if id.tree != c.id {
		return ErrWrongTree
	}
	return nil
}
