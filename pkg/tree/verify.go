package tree

import (
	"fmt"

	"github.com/joshuapare/slabtree/internal/core"
)

// ValidationError describes a broken structural invariant.
type ValidationError struct {
	Type    string
	Message string
	Node    NodeID
	Details map[string]any
}

func (e *ValidationError) Error() string {
	if !e.Node.IsZero() {
		return fmt.Sprintf("%s at %s: %s", e.Type, e.Node, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Validate checks every allocated node, attached or orphaned, and returns
// the first broken invariant found:
//   - Root: the root exists and has no parent or siblings.
//   - Siblings: next/previous links are mutually consistent.
//   - ChildList: walking a parent's children from its first child reaches
//     its last child, every child names that parent, the first child has no
//     previous sibling and the last has no next sibling.
//   - Parent: every node naming a parent appears in that parent's child
//     list.
//
// Validate does not borrow the tree; existing views stay usable.
func (t *Tree[T]) Validate() error {
	if err := t.validateRoot(); err != nil {
		return err
	}

	listed := make(map[NodeID]NodeID, t.core.Len())
	var firstErr error
	t.core.Each(func(id NodeID, n *core.Node[T]) bool {
		if err := t.validateSiblings(id, n.Relatives); err != nil {
			firstErr = err
			return false
		}
		if err := t.validateChildList(id, n.Relatives, listed); err != nil {
			firstErr = err
			return false
		}
		return true
	})
	if firstErr != nil {
		return firstErr
	}

	t.core.Each(func(id NodeID, n *core.Node[T]) bool {
		parent := n.Relatives.Parent
		if parent.IsZero() {
			return true
		}
		if got, ok := listed[id]; !ok || got != parent {
			firstErr = &ValidationError{
				Type:    "Parent",
				Message: fmt.Sprintf("names parent %s but is not in its child list", parent),
				Node:    id,
			}
			return false
		}
		return true
	})
	return firstErr
}

func (t *Tree[T]) validateRoot() error {
	if t.rootID.IsZero() {
		return nil
	}
	root, err := t.core.Get(t.rootID)
	if err != nil {
		return &ValidationError{
			Type:    "Root",
			Message: fmt.Sprintf("root unresolvable: %v", err),
			Node:    t.rootID,
		}
	}
	rel := root.Relatives
	if !rel.Parent.IsZero() || !rel.PrevSibling.IsZero() || !rel.NextSibling.IsZero() {
		return &ValidationError{
			Type:    "Root",
			Message: "root has a parent or siblings",
			Node:    t.rootID,
			Details: map[string]any{
				"parent": rel.Parent,
				"prev":   rel.PrevSibling,
				"next":   rel.NextSibling,
			},
		}
	}
	return nil
}

func (t *Tree[T]) validateSiblings(id NodeID, rel core.Relatives) error {
	if next := rel.NextSibling; !next.IsZero() {
		n, err := t.core.Get(next)
		if err != nil || n.Relatives.PrevSibling != id {
			return &ValidationError{
				Type:    "Siblings",
				Message: fmt.Sprintf("next sibling %s does not link back", next),
				Node:    id,
			}
		}
	}
	if prev := rel.PrevSibling; !prev.IsZero() {
		n, err := t.core.Get(prev)
		if err != nil || n.Relatives.NextSibling != id {
			return &ValidationError{
				Type:    "Siblings",
				Message: fmt.Sprintf("previous sibling %s does not link back", prev),
				Node:    id,
			}
		}
	}
	return nil
}

func (t *Tree[T]) validateChildList(id NodeID, rel core.Relatives, listed map[NodeID]NodeID) error {
	if rel.FirstChild.IsZero() != rel.LastChild.IsZero() {
		return &ValidationError{
			Type:    "ChildList",
			Message: "exactly one of first and last child is set",
			Node:    id,
		}
	}

	var prev NodeID
	limit := t.core.Len()
	for child := rel.FirstChild; !child.IsZero(); {
		if limit == 0 {
			return &ValidationError{
				Type:    "ChildList",
				Message: "child list does not terminate",
				Node:    id,
			}
		}
		limit--

		n, err := t.core.Get(child)
		if err != nil {
			return &ValidationError{
				Type:    "ChildList",
				Message: fmt.Sprintf("child %s unresolvable: %v", child, err),
				Node:    id,
			}
		}
		if n.Relatives.Parent != id {
			return &ValidationError{
				Type:    "ChildList",
				Message: fmt.Sprintf("child %s names parent %s", child, n.Relatives.Parent),
				Node:    id,
			}
		}
		if n.Relatives.PrevSibling != prev {
			return &ValidationError{
				Type:    "ChildList",
				Message: fmt.Sprintf("child %s has previous sibling %s, want %s", child, n.Relatives.PrevSibling, prev),
				Node:    id,
			}
		}
		listed[child] = id
		prev = child
		child = n.Relatives.NextSibling
	}

	if prev != rel.LastChild {
		return &ValidationError{
			Type:    "ChildList",
			Message: fmt.Sprintf("child list ends at %s but last child is %s", prev, rel.LastChild),
			Node:    id,
		}
	}
	return nil
}
