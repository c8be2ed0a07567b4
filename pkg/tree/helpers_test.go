package tree

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/slabtree/internal/core"
)

// buildScenario builds
//
//	0
//	├── 1
//	│   └── 2
//	│       ├── 3
//	│       └── 4
//	├── 5
//	│   ├── 6
//	│   │   └── 7
//	│   └── 8
//	└── 9
//
// and returns the tree plus the id of every payload.
func buildScenario(t *testing.T) (*Tree[int], map[int]NodeID) {
	t.Helper()

	tr := NewWithRoot(0)
	root, ok := tr.RootMut()
	require.True(t, ok)

	ids := map[int]NodeID{0: root.NodeID()}
	add := func(parent NodeMut[int], v int) NodeMut[int] {
		n := parent.Append(v)
		ids[v] = n.NodeID()
		return n
	}

	one := add(root, 1)
	five := add(root, 5)
	add(root, 9)
	two := add(one, 2)
	add(two, 3)
	add(two, 4)
	six := add(five, 6)
	add(six, 7)
	add(five, 8)

	require.NoError(t, tr.Validate())
	return tr, ids
}

func collect[T any](nodes iter.Seq[NodeRef[T]]) []T {
	return slices.Collect(Values(nodes))
}

func childValues[T any](t *testing.T, tr *Tree[T], id NodeID) []T {
	t.Helper()
	n, err := tr.Get(id)
	require.NoError(t, err)
	return collect(n.Children().All())
}

func linksOf[T any](t *testing.T, tr *Tree[T], id NodeID) core.Relatives {
	t.Helper()
	n, err := tr.core.Get(id)
	require.NoError(t, err)
	return n.Relatives
}
