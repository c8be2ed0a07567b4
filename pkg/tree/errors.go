package tree

import (
	"errors"

	"github.com/joshuapare/slabtree/internal/core"
)

var (
	// ErrNodeNotFound indicates an unknown id, or an id whose node has been
	// removed (its slot is empty or now holds a newer node).
	ErrNodeNotFound = core.ErrNotFound

	// ErrForeignNode indicates an id minted by a different Tree.
	ErrForeignNode = core.ErrWrongTree

	// ErrStaleView is the panic value raised when a view is used after the
	// tree was borrowed in a conflicting way (a newer NodeMut was acquired,
	// or a tree-level mutation ran).
	ErrStaleView = errors.New("tree: view used after a conflicting borrow")

	// ErrConcurrentModification is the panic value raised when an iterator
	// observes a structural change made after it was created.
	ErrConcurrentModification = errors.New("tree: tree modified during iteration")
)
