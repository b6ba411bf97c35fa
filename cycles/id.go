package cycles

// ID is an opaque, versioned node handle: a (slot index, version) pair
// packed into one integer. Versions start at 1, so the zero ID never
// refers to a live node and doubles as the invalid sentinel.
//
// An ID stays valid until its node is removed; after that every
// operation taking the ID degrades to a safe no-op ("not found"), even
// if the slot has since been recycled for another node.
type ID uint64

// InvalidID is the reserved null handle. It is returned for a zero key
// and resolves to nothing.
const InvalidID ID = 0

// Valid reports whether id could refer to a node (it carries a non-zero
// version). It does not check liveness; use Graph.HasNode for that.
func (id ID) Valid() bool { return id.version() != 0 }

// makeID packs a slot index and version into a handle.
func makeID(idx int32, ver uint32) ID {
	return ID(uint64(ver)<<32 | uint64(uint32(idx)))
}

// index extracts the slot index.
func (id ID) index() int32 { return int32(uint32(id)) }

// version extracts the generation counter.
func (id ID) version() uint32 { return uint32(id >> 32) }
