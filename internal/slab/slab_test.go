package slab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Capacity(t *testing.T) {
	s := New[int](5)
	require.Equal(t, 5, s.Capacity())
	require.Equal(t, 0, s.Len())

	s = New[int](-3)
	require.Equal(t, 0, s.Capacity())
}

func TestInsert_Get(t *testing.T) {
	s := New[string](0)

	a := s.Insert("a")
	b := s.Insert("b")

	require.Equal(t, 0, a.Slot())
	require.Equal(t, 1, b.Slot())
	require.Equal(t, uint64(0), a.Generation())
	require.Equal(t, uint64(0), b.Generation())

	v, ok := s.Get(a)
	require.True(t, ok)
	require.Equal(t, "a", *v)

	v, ok = s.Get(b)
	require.True(t, ok)
	require.Equal(t, "b", *v)

	require.Equal(t, 2, s.Len())
}

func TestGet_Mutate(t *testing.T) {
	s := New[int](0)
	idx := s.Insert(1)

	v, ok := s.Get(idx)
	require.True(t, ok)
	*v = 2

	v, ok = s.Get(idx)
	require.True(t, ok)
	require.Equal(t, 2, *v)
}

func TestRemove(t *testing.T) {
	s := New[int](0)
	idx := s.Insert(7)

	got, ok := s.Remove(idx)
	require.True(t, ok)
	require.Equal(t, 7, got)
	require.Equal(t, uint64(1), s.Generation())
	require.Equal(t, 0, s.Len())
	require.Equal(t, 1, s.Free())

	_, ok = s.Get(idx)
	require.False(t, ok, "removed index must not resolve")

	// Second remove is a no-op.
	_, ok = s.Remove(idx)
	require.False(t, ok)
	require.Equal(t, uint64(1), s.Generation(), "failed remove must not advance the generation")
}

func TestRemove_OutOfRange(t *testing.T) {
	s := New[int](0)
	s.Insert(1)

	_, ok := s.Remove(Index{slot: 10})
	require.False(t, ok)
	_, ok = s.Remove(Index{slot: -1})
	require.False(t, ok)
	_, ok = s.Get(Index{slot: 10})
	require.False(t, ok)
	require.Equal(t, 1, s.Len())
}

func TestReuse_StaleIndex(t *testing.T) {
	s := New[string](0)

	old := s.Insert("old")
	_, ok := s.Remove(old)
	require.True(t, ok)

	fresh := s.Insert("new")
	require.Equal(t, old.Slot(), fresh.Slot(), "freed slot should be reused")
	require.NotEqual(t, old.Generation(), fresh.Generation())

	_, ok = s.Get(old)
	require.False(t, ok, "stale index must stay absent after reuse")

	v, ok := s.Get(fresh)
	require.True(t, ok)
	require.Equal(t, "new", *v)
}

func TestRemove_StaleIndexLeavesOccupant(t *testing.T) {
	s := New[string](0)

	old := s.Insert("old")
	s.Remove(old)
	fresh := s.Insert("new")
	gen := s.Generation()

	_, ok := s.Remove(old)
	require.False(t, ok)
	require.Equal(t, gen, s.Generation())

	v, ok := s.Get(fresh)
	require.True(t, ok, "stale remove must not disturb the live occupant")
	require.Equal(t, "new", *v)
}

func TestFreeList_LIFO(t *testing.T) {
	s := New[int](0)
	idx := make([]Index, 4)
	for i := range idx {
		idx[i] = s.Insert(i)
	}

	s.Remove(idx[1])
	s.Remove(idx[3])

	// Most recently freed slot comes back first.
	a := s.Insert(10)
	b := s.Insert(11)
	c := s.Insert(12)

	assert.Equal(t, 3, a.Slot())
	assert.Equal(t, 1, b.Slot())
	assert.Equal(t, 4, c.Slot())
	assert.Equal(t, 5, s.Len())
	assert.Equal(t, 0, s.Free())
}

func TestSharedGeneration(t *testing.T) {
	s := New[int](0)
	a := s.Insert(1)
	b := s.Insert(2)

	s.Remove(a)
	s.Remove(b)
	require.Equal(t, uint64(2), s.Generation())

	// Two slots filled after the same removal share a generation but never
	// alias, because the slot position differs.
	c := s.Insert(3)
	d := s.Insert(4)
	require.Equal(t, c.Generation(), d.Generation())
	require.NotEqual(t, c.Slot(), d.Slot())

	_, ok := s.Get(a)
	require.False(t, ok)
	_, ok = s.Get(b)
	require.False(t, ok)
}

func TestInsertRemoveSequence(t *testing.T) {
	s := New[int](0)
	live := map[Index]int{}
	var dead []Index

	for i := range 200 {
		idx := s.Insert(i)
		live[idx] = i
		if i%3 == 0 {
			for k := range live {
				v, ok := s.Remove(k)
				require.True(t, ok)
				require.Equal(t, live[k], v)
				delete(live, k)
				dead = append(dead, k)
				break
			}
		}
	}

	require.Equal(t, len(live), s.Len())
	for k, want := range live {
		v, ok := s.Get(k)
		require.True(t, ok)
		require.Equal(t, want, *v)
	}
	for _, k := range dead {
		_, ok := s.Get(k)
		require.False(t, ok, "dead index %s resolved", k)
	}
}

func TestEach(t *testing.T) {
	s := New[int](0)
	a := s.Insert(1)
	s.Insert(2)
	s.Insert(3)
	s.Remove(a)

	var got []int
	s.Each(func(_ Index, item *int) bool {
		got = append(got, *item)
		return true
	})
	require.Equal(t, []int{2, 3}, got)

	count := 0
	s.Each(func(Index, *int) bool {
		count++
		return false
	})
	require.Equal(t, 1, count)
}
