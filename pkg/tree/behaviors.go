package tree

// RemoveBehavior selects what happens to the descendants of a removed node.
type RemoveBehavior uint8

const (
	// DropChildren frees the whole subtree below the removed node.
	DropChildren RemoveBehavior = iota

	// OrphanChildren clears the parent link of each direct child. The
	// children and everything below them stay allocated and reachable by
	// id, but no longer from any ancestor.
	OrphanChildren
)

func (b RemoveBehavior) String() string {
	switch b {
	case DropChildren:
		return "drop"
	case OrphanChildren:
		return "orphan"
	default:
		return "unknown"
	}
}
