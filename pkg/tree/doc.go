// Package tree provides an arena-backed tree with generational node ids.
//
// # Overview
//
// A Tree stores all of its nodes in one slab. Nodes never point at each
// other directly: parent, sibling and child relationships are NodeIDs into
// the slab, so arbitrary shapes (ASTs, scene graphs, DOM-like hierarchies)
// are expressed without reference cycles.
//
// A NodeID pairs a slab slot with the generation the slot had when the node
// was inserted, plus the identifier of the Tree that minted it. Lookups
// fail cleanly instead of returning the wrong node:
//
//   - ErrNodeNotFound: the node was removed (even if its slot was reused).
//   - ErrForeignNode: the id belongs to another Tree.
//
// # Views
//
// NodeRef (read-only) and NodeMut (read-write) are small values holding a
// NodeID and the Tree. Every accessor resolves the node again; nothing is
// cached.
//
//	t := tree.NewWithRoot("html")
//	root, _ := t.RootMut()
//	body := root.Append("body")
//	body.Append("h1")
//	body.Append("p")
//	root.Prepend("head")
//
// # Borrowing
//
// At most one read-write borrow is live per Tree, and read-only views do
// not coexist with it. Acquiring a NodeMut from the Tree, or calling SetRoot
// or Remove, ends every earlier borrow. Acquiring a NodeRef from the Tree
// ends a read-write borrow. Views derived from a view share its borrow.
// Using a view whose borrow ended panics with ErrStaleView.
//
// # Removal
//
// Remove unlinks a node from its siblings and handles its descendants
// according to a RemoveBehavior:
//
//   - DropChildren frees the whole subtree.
//   - OrphanChildren clears the parent link of each direct child only. The
//     children keep their own subtrees and their sibling links to each other
//     and stay reachable by id.
//
// # Traversal
//
// Ancestors, Children, PreOrder, PostOrder and LevelOrder are lazy iterators
// with a pull-style Next method and an All method for range loops:
//
//	root, _ := t.Root()
//	for n := range root.PreOrder().All() {
//	    fmt.Println(n.Data())
//	}
//
// None of them recurse. Advancing an iterator after the tree changed shape
// panics with ErrConcurrentModification.
//
// # Thread Safety
//
// Tree instances are not thread-safe. Callers must synchronize access to the
// whole Tree externally.
package tree
