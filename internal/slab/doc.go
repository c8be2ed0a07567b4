// Package slab provides a generational slot store with free-list recycling.
//
// # Overview
//
// A Slab holds values of a single type in one contiguous slice of slots.
// Every slot is either empty or filled. Empty slots are threaded into a
// free list (a stack: the most recently freed slot is reused first), so
// Insert and Remove are O(1) and storage is recycled without shifting.
//
// Callers address values by Index, a pair of (slot position, generation).
//
// # Generations
//
// The slab keeps a single generation counter shared by all slots. Insert
// stamps the filled slot with the current counter value and Remove advances
// the counter by one. A lookup succeeds only if the slot is filled and its
// stamp equals the Index generation, so an Index that outlived a Remove can
// never resolve to the value that later reuses its slot:
//
//	s := slab.New[string](0)
//	a := s.Insert("a")      // slot 0, generation 0
//	s.Remove(a)             // counter -> 1
//	b := s.Insert("b")      // slot 0 reused, generation 1
//
//	_, ok := s.Get(a)       // ok == false, stale
//	v, _ := s.Get(b)        // *v == "b"
//
// A shared counter means two different slots filled after the same Remove
// carry the same generation. That is harmless: an Index also carries its
// slot position, so the counter only has to tell apart successive occupants
// of one slot, and every Remove of that slot's occupant advances it.
//
// # Thread Safety
//
// Slab instances are not thread-safe. Callers must synchronize access
// externally.
package slab
