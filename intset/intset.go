package intset

import (
	"github.com/katalvlaran/cyclath/arena"
	"github.com/katalvlaran/cyclath/smallvec"
)

// Slot sentinels. Stored values are node indices and therefore
// non-negative; the negative range is free for markers.
const (
	slotEmpty int32 = -1 // never held a value on this probe chain
	slotDel   int32 = -2 // tombstone: erased, probe chains continue past it
)

// initialSlots is the lazily allocated starting table size.
const initialSlots = 8

// Set is an open-addressed hash set of non-negative int32 values.
// The zero value is an empty, usable set. Do not copy after first use
// (it embeds a smallvec.Vec).
type Set struct {
	table    smallvec.Vec
	occupied int // live entries plus tombstones
	live     int // live entries only
}

// Bind routes slot storage through a. Must precede the first Insert;
// unbound sets use arena.Default().
func (s *Set) Bind(a *arena.Arena) { s.table.Bind(a) }

// Len returns the number of elements.
func (s *Set) Len() int { return s.live }

// Contains reports whether v is in the set.
//
// Complexity: O(1) expected.
func (s *Set) Contains(v int32) bool {
	if s.table.Len() == 0 {
		return false
	}
	_, found := s.findSlot(v)

	return found
}

// Insert adds v, returning true if it was newly added and false if it
// was already present.
//
// Complexity: O(1) expected, amortized over growth.
func (s *Set) Insert(v int32) bool {
	// 1) Lazy table creation: an empty set costs nothing.
	if s.table.Len() == 0 {
		s.table.Resize(initialSlots)
		s.table.Fill(slotEmpty)
	}

	// 2) Probe. findSlot lands on the existing entry, or on the first
	//    tombstone of the chain, or on the terminating empty slot.
	i, found := s.findSlot(v)
	if found {
		return false
	}
	if s.table.At(i) == slotEmpty {
		s.occupied++
	}
	s.table.SetAt(i, v)
	s.live++

	// 3) Double at 75% occupancy, tombstones included, so probe chains
	//    always terminate at an empty slot.
	if s.occupied >= s.table.Len()-s.table.Len()/4 {
		s.grow()
	}

	return true
}

// Erase removes v, returning true if it was present. The slot becomes a
// tombstone so probe chains through it stay intact.
func (s *Set) Erase(v int32) bool {
	if s.table.Len() == 0 {
		return false
	}
	i, found := s.findSlot(v)
	if !found {
		return false
	}
	s.table.SetAt(i, slotDel)
	s.live--

	return true
}

// Clear empties the set, keeping the table for reuse.
func (s *Set) Clear() {
	if s.table.Len() > 0 {
		s.table.Fill(slotEmpty)
	}
	s.occupied = 0
	s.live = 0
}

// Release empties the set and returns slot storage to the arena.
func (s *Set) Release() {
	s.table.Release()
	s.occupied = 0
	s.live = 0
}

// Next advances an iteration cursor and returns the next element.
// Start with cursor == 0; iteration order is unspecified. Mutating the
// set invalidates cursors.
//
//	for cur, v := 0, int32(0); ; {
//		v, ok := s.Next(&cur)
//		if !ok { break }
//		...
//	}
func (s *Set) Next(cursor *int) (int32, bool) {
	for *cursor < s.table.Len() {
		slot := s.table.At(*cursor)
		*cursor++
		if slot >= 0 {
			return slot, true
		}
	}

	return 0, false
}

// findSlot walks the probe chain for v. It returns (slot of v, true)
// when present; otherwise (insertion slot, false), preferring the first
// tombstone seen on the chain over the terminating empty slot.
// The table must be non-empty. Growth keeps at least a quarter of the
// slots empty, so the walk always terminates.
func (s *Set) findSlot(v int32) (int, bool) {
	mask := s.table.Len() - 1
	i := int(uint32(v)*41) & mask
	firstDel := -1
	for {
		switch slot := s.table.At(i); {
		case slot == v:
			return i, true
		case slot == slotEmpty:
			if firstDel >= 0 {
				return firstDel, false
			}

			return i, false
		case slot == slotDel && firstDel < 0:
			firstDel = i
		}
		i = (i + 1) & mask
	}
}

// grow doubles the table and rehashes surviving entries. The old table
// is stolen via MoveFrom (O(1) when spilled) and released afterwards,
// so rehashing never holds two long-lived buffers.
func (s *Set) grow() {
	newSize := s.table.Len() * 2

	var old smallvec.Vec
	old.MoveFrom(&s.table)

	s.table.Resize(newSize)
	s.table.Fill(slotEmpty)
	s.occupied = 0
	s.live = 0

	for _, v := range old.Data() {
		if v >= 0 {
			s.Insert(v)
		}
	}
	old.Release()
}
