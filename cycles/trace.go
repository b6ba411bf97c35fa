package cycles

// UpdateStackTrace records debug context for a node. capture is handed
// the node's fixed frame buffer (MaxStackDepth entries) and returns the
// number of frames it filled. runtime.Callers has exactly this shape
// once the buffer is adapted:
//
//	g.UpdateStackTrace(id, 1, func(buf []uintptr) int {
//		return runtime.Callers(2, buf)
//	})
//
// The stored trace is only replaced when priority is strictly higher
// than the one recorded, so cheap low-priority captures cannot clobber
// a more significant one. Stale handles and nil captures are no-ops.
func (g *Graph) UpdateStackTrace(id ID, priority int, capture func(buf []uintptr) int) {
	_, n := g.resolve(id)
	if n == nil || capture == nil || priority <= n.priority {
		return
	}

	c := capture(n.stack[:])
	if c < 0 {
		c = 0
	}
	if c > MaxStackDepth {
		c = MaxStackDepth
	}
	n.nstack = c
	n.priority = priority
}

// StackTrace returns the frames recorded for id, or nil when the handle
// is stale or no trace was captured. The slice views the node's own
// buffer: it is valid until the next UpdateStackTrace for this node and
// must not be written.
func (g *Graph) StackTrace(id ID) []uintptr {
	_, n := g.resolve(id)
	if n == nil || n.nstack == 0 {
		return nil
	}

	return n.stack[:n.nstack]
}
