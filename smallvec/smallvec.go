package smallvec

import (
	"github.com/katalvlaran/cyclath/arena"
)

// InlineCap is the number of elements stored inside the Vec struct
// before it spills to arena-backed storage.
const InlineCap = 8

// Vec is a growable int32 sequence with an inline buffer of InlineCap
// elements. The zero value is an empty, usable vector. Do not copy a
// Vec after first use: the inline buffer would be duplicated and the
// spill buffer aliased.
type Vec struct {
	ar     *arena.Arena
	heap   []int32 // spill storage; nil while inline
	n      int
	inline [InlineCap]int32
}

// Bind sets the arena used for spill storage. Must be called before the
// vector first grows past InlineCap; unbound vectors use arena.Default().
func (v *Vec) Bind(a *arena.Arena) { v.ar = a }

func (v *Vec) arena() *arena.Arena {
	if v.ar == nil {
		v.ar = arena.Default()
	}

	return v.ar
}

// Len returns the number of elements.
func (v *Vec) Len() int { return v.n }

// Cap returns the current storage capacity.
func (v *Vec) Cap() int {
	if v.heap != nil {
		return cap(v.heap)
	}

	return InlineCap
}

// Data returns a view of the live elements. The view is invalidated by
// any operation that grows the vector.
func (v *Vec) Data() []int32 {
	if v.heap != nil {
		return v.heap[:v.n]
	}

	return v.inline[:v.n]
}

// At returns the element at index i. i must be in [0, Len()).
func (v *Vec) At(i int) int32 {
	if v.heap != nil {
		return v.heap[i]
	}

	return v.inline[i]
}

// SetAt stores val at index i. i must be in [0, Len()).
func (v *Vec) SetAt(i int, val int32) {
	if v.heap != nil {
		v.heap[i] = val

		return
	}
	v.inline[i] = val
}

// PushBack appends val, growing storage as needed.
//
// Complexity: O(1) amortized.
func (v *Vec) PushBack(val int32) {
	if v.n == v.Cap() {
		v.grow(v.n * 2)
	}
	if v.heap != nil {
		v.heap = v.heap[:v.n+1]
		v.heap[v.n] = val
	} else {
		v.inline[v.n] = val
	}
	v.n++
}

// PopBack removes and returns the last element. Len() must be > 0.
func (v *Vec) PopBack() int32 {
	v.n--
	if v.heap != nil {
		val := v.heap[v.n]
		v.heap = v.heap[:v.n]

		return val
	}

	return v.inline[v.n]
}

// Resize sets the length to n. When growing, the contents of the new
// tail are unspecified; callers fill before reading.
func (v *Vec) Resize(n int) {
	if n > v.Cap() {
		v.grow(n)
	}
	if v.heap != nil {
		v.heap = v.heap[:n]
	}
	v.n = n
}

// Fill sets every live element to val.
func (v *Vec) Fill(val int32) {
	data := v.Data()
	for i := range data {
		data[i] = val
	}
}

// Clear drops all elements, keeping storage for reuse.
func (v *Vec) Clear() { v.Resize(0) }

// MoveFrom transfers src's contents into v, leaving src empty.
// When src has spilled to the arena the transfer is an O(1) buffer
// steal; an inline source is copied in O(n). v's own spill buffer, if
// any, is returned to the arena first. This asymmetry is what lets the
// hash set rehash without double-buffering.
func (v *Vec) MoveFrom(src *Vec) {
	if v == src {
		return
	}

	// 1) Drop our own spill storage.
	if v.heap != nil {
		v.arena().Free(v.heap)
		v.heap = nil
	}

	// 2) Steal or copy. Stealing adopts the source's arena binding when
	//    we have none, so the buffer is freed back where it came from.
	if src.heap != nil {
		v.heap = src.heap
		if v.ar == nil {
			v.ar = src.ar
		}
	} else {
		copy(v.inline[:], src.inline[:src.n])
	}
	v.n = src.n

	// 3) Leave src empty but usable.
	src.heap = nil
	src.n = 0
}

// Release returns spill storage to the arena and empties the vector.
func (v *Vec) Release() {
	if v.heap != nil {
		v.arena().Free(v.heap)
		v.heap = nil
	}
	v.n = 0
}

// grow moves storage to an arena buffer with capacity ≥ want (and at
// least double the inline capacity), preserving live elements.
func (v *Vec) grow(want int) {
	if want < InlineCap*2 {
		want = InlineCap * 2
	}
	nb := v.arena().Alloc(want)[:v.n]
	if v.heap != nil {
		copy(nb, v.heap)
		v.arena().Free(v.heap)
	} else {
		copy(nb, v.inline[:v.n])
	}
	v.heap = nb
}
