package tree

// Stats summarizes a Tree's storage and shape.
type Stats struct {
	Nodes      int    // allocated nodes
	Reachable  int    // nodes reachable from the root
	Detached   int    // allocated but not reachable from the root
	Height     int    // levels below and including the root; 0 if empty
	Capacity   int    // arena capacity
	FreeSlots  int    // recycled slots awaiting reuse
	Generation uint64 // arena generation counter
}

// Stats walks the tree from the root and reports its statistics. It does
// not borrow the tree.
func (t *Tree[T]) Stats() Stats {
	s := Stats{
		Nodes:      t.core.Len(),
		Capacity:   t.core.Capacity(),
		FreeSlots:  t.core.FreeSlots(),
		Generation: t.core.Generation(),
	}

	if !t.rootID.IsZero() {
		level := []NodeID{t.rootID}
		for len(level) > 0 {
			s.Height++
			s.Reachable += len(level)
			var next []NodeID
			for _, id := range level {
				for c := t.relatives(id).FirstChild; !c.IsZero(); c = t.relatives(c).NextSibling {
					next = append(next, c)
				}
			}
			level = next
		}
	}

	s.Detached = s.Nodes - s.Reachable
	return s
}
