// Package arena: power-of-two slab recycler. See doc.go for the contract.
package arena

import (
	"math/bits"
	"sync"
)

// minClass is the smallest class handed out: 1<<minClass == 8 slots,
// matching the inline capacity of smallvec.Vec so the first spill
// already doubles.
const minClass = 3

// classCount covers every power of two representable in an int32 length.
const classCount = 31

// Arena recycles int32 buffers through per-size-class free lists.
// The zero value is NOT ready; use New or Default.
type Arena struct {
	mu      sync.Mutex
	classes [classCount][][]int32
}

// New returns an independent Arena. Most callers want Default; a private
// arena is useful for tests that assert on recycling behavior.
func New() *Arena {
	return &Arena{}
}

var (
	defaultOnce  sync.Once
	defaultArena *Arena
)

// Default returns the process-wide Arena, creating it on first use.
// The singleton lives for the life of the process and is never torn down.
func Default() *Arena {
	defaultOnce.Do(func() {
		defaultArena = New()
	})

	return defaultArena
}

// classFor maps a requested element count to its size class.
func classFor(n int) int {
	if n <= 1<<minClass {
		return minClass
	}

	return bits.Len(uint(n - 1))
}

// Alloc returns a buffer with len == n and power-of-two capacity ≥ n.
// Contents of a recycled buffer are unspecified: callers must write
// before they read. n must be ≥ 0.
//
// Complexity: O(1) amortized; one lock acquisition.
func (a *Arena) Alloc(n int) []int32 {
	if n == 0 {
		return nil
	}
	c := classFor(n)

	// 1) Try the free list for this class.
	a.mu.Lock()
	if l := len(a.classes[c]); l > 0 {
		buf := a.classes[c][l-1]
		a.classes[c][l-1] = nil
		a.classes[c] = a.classes[c][:l-1]
		a.mu.Unlock()

		return buf[:n]
	}
	a.mu.Unlock()

	// 2) Class empty: take a fresh slab from the runtime.
	return make([]int32, n, 1<<c)
}

// Free returns buf to its size class for reuse. buf must have been
// obtained from Alloc on any Arena with the same class geometry;
// freeing a nil or zero-capacity buffer is a no-op. The caller must not
// touch buf afterwards.
func (a *Arena) Free(buf []int32) {
	c := cap(buf)
	if c == 0 {
		return
	}

	// Non-power-of-two capacity means the buffer did not come from
	// Alloc; dropping it on the floor is safe, recycling it is not.
	if c&(c-1) != 0 {
		return
	}
	cls := bits.Len(uint(c)) - 1

	a.mu.Lock()
	a.classes[cls] = append(a.classes[cls], buf[:0])
	a.mu.Unlock()
}
