package tree

import (
	"io"
	"log/slog"

	"github.com/joshuapare/slabtree/internal/core"
)

// Builder configures how a Tree is created.
//
// Example:
//
//	t := tree.NewBuilder[string]().
//	    WithRoot("root").
//	    WithCapacity(1024).
//	    Build()
type Builder[T any] struct {
	root     T
	hasRoot  bool
	capacity int
	logger   *slog.Logger
}

// NewBuilder returns a Builder with no root, zero capacity and a discarding
// logger.
func NewBuilder[T any]() *Builder[T] {
	return &Builder[T]{}
}

// WithRoot sets the value of the root node.
func (b *Builder[T]) WithRoot(root T) *Builder[T] {
	b.root = root
	b.hasRoot = true
	return b
}

// WithCapacity reserves room for capacity nodes before the arena has to
// grow.
func (b *Builder[T]) WithCapacity(capacity int) *Builder[T] {
	b.capacity = capacity
	return b
}

// WithLogger sets the logger used for debug records about structural
// changes that touch more than one node.
func (b *Builder[T]) WithLogger(logger *slog.Logger) *Builder[T] {
	b.logger = logger
	return b
}

// Build creates the Tree.
func (b *Builder[T]) Build() *Tree[T] {
	logger := b.logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	t := &Tree[T]{
		core: core.New[T](b.capacity),
		log:  logger,
	}
	if b.hasRoot {
		t.rootID = t.core.Insert(b.root)
	}
	return t
}
