package geometry

import "strings"

// Edges is a set of viewport edges, packed as a bitmask. The hover engine
// returns it from collision detection to indicate which edges of the visible
// viewport a candidate tooltip placement would overflow.
type Edges uint8

// Edge flags. EdgeNone is exactly the zero value: an Edges equal to EdgeNone
// has no other bit set.
const (
	EdgeNone   Edges = 0
	EdgeTop    Edges = 1
	EdgeBottom Edges = 2
	EdgeLeft   Edges = 4
	EdgeRight  Edges = 8
)

// Union returns the set containing the edges of both operands.
func (e Edges) Union(other Edges) Edges {
	return e | other
}

// Has reports whether every edge in flags is present in the set.
func (e Edges) Has(flags Edges) bool {
	return e&flags == flags
}

// Count returns the number of edges in the set. It clears the lowest set bit
// per iteration, so it costs one loop turn per flagged edge; callers use it
// to rank placement candidates by fewest collisions.
func (e Edges) Count() int {
	n := 0
	for e != EdgeNone {
		e &= e - 1
		n++
	}
	return n
}

// String returns a readable form such as "top|left", or "none" for the
// empty set. Useful in debug logs.
func (e Edges) String() string {
	if e == EdgeNone {
		return "none"
	}
	parts := make([]string, 0, 4)
	for _, f := range []struct {
		flag Edges
		name string
	}{
		{EdgeTop, "top"},
		{EdgeBottom, "bottom"},
		{EdgeLeft, "left"},
		{EdgeRight, "right"},
	} {
		if e.Has(f.flag) {
			parts = append(parts, f.name)
		}
	}
	return strings.Join(parts, "|")
}
