package slab

import "fmt"

// noFreeSlot terminates the free list.
const noFreeSlot = -1

// Index addresses one occupant of one slot.
type Index struct {
	slot       int
	generation uint64
}

// Slot returns the slot position.
func (i Index) Slot() int { return i.slot }

// Generation returns the generation stamp the slot carried when it was filled.
func (i Index) Generation() uint64 { return i.generation }

func (i Index) String() string {
	return fmt.Sprintf("%d@%d", i.slot, i.generation)
}

// slot is either filled (item + generation) or empty (nextFree).
type slot[T any] struct {
	item       T
	generation uint64
	nextFree   int
	filled     bool
}

// Slab is a generational slot store. The zero value is not usable; use New.
type Slab[T any] struct {
	slots      []slot[T]
	firstFree  int
	generation uint64
	len        int
}

// New creates an empty slab with room for capacity values before the
// backing slice has to grow.
func New[T any](capacity int) *Slab[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Slab[T]{
		slots:     make([]slot[T], 0, capacity),
		firstFree: noFreeSlot,
	}
}

// Capacity returns the number of slots the backing slice can hold without
// reallocating.
func (s *Slab[T]) Capacity() int { return cap(s.slots) }

// Len returns the number of filled slots.
func (s *Slab[T]) Len() int { return s.len }

// Free returns the number of empty slots waiting on the free list.
func (s *Slab[T]) Free() int { return len(s.slots) - s.len }

// Generation returns the current value of the shared generation counter.
func (s *Slab[T]) Generation() uint64 { return s.generation }

// Insert stores item and returns its Index. The head of the free list is
// reused if there is one, otherwise a new slot is appended.
func (s *Slab[T]) Insert(item T) Index {
	filled := slot[T]{
		item:       item,
		generation: s.generation,
		filled:     true,
	}

	s.len++

	if s.firstFree != noFreeSlot {
		pos := s.firstFree
		if s.slots[pos].filled {
			panic(fmt.Sprintf("slab: free list head %d is filled", pos))
		}
		s.firstFree = s.slots[pos].nextFree
		s.slots[pos] = filled
		return Index{slot: pos, generation: s.generation}
	}

	s.slots = append(s.slots, filled)
	return Index{slot: len(s.slots) - 1, generation: s.generation}
}

// Remove empties the slot addressed by idx and returns its item.
//
// It reports false, leaving the slab untouched, when idx is out of range,
// the slot is already empty, or the slot holds a newer occupant.
func (s *Slab[T]) Remove(idx Index) (T, bool) {
	var zero T

	if idx.slot < 0 || idx.slot >= len(s.slots) {
		return zero, false
	}
	sl := &s.slots[idx.slot]
	if !sl.filled || sl.generation != idx.generation {
		return zero, false
	}

	item := sl.item
	*sl = slot[T]{nextFree: s.firstFree}
	s.firstFree = idx.slot
	s.generation++
	s.len--

	return item, true
}

// Get returns a pointer to the item addressed by idx.
//
// The pointer is only valid until the next Insert, which may move the
// backing slice.
func (s *Slab[T]) Get(idx Index) (*T, bool) {
	if idx.slot < 0 || idx.slot >= len(s.slots) {
		return nil, false
	}
	sl := &s.slots[idx.slot]
	if !sl.filled || sl.generation != idx.generation {
		return nil, false
	}
	return &sl.item, true
}

// Contains reports whether idx addresses a live item.
func (s *Slab[T]) Contains(idx Index) bool {
	_, ok := s.Get(idx)
	return ok
}

// Each calls fn for every filled slot in slot order until fn returns false.
func (s *Slab[T]) Each(fn func(idx Index, item *T) bool) {
	for i := range s.slots {
		sl := &s.slots[i]
		if !sl.filled {
			continue
		}
		if !fn(Index{slot: i, generation: sl.generation}, &sl.item) {
			return
		}
	}
}
