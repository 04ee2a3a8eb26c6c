// Package quadtree implements a region quadtree: a recursive spatial index
// that stores axis-aligned bounding boxes keyed by opaque identifiers and
// answers which of them contain a given point.
package quadtree

import "errors"

// NoLimit tells QueryPoint to collect every match.
const NoLimit = -1

// ErrDoesNotFit is returned by Insert when the rectangle is not fully
// enclosed by the tree's boundary. It is the only error the tree produces.
var ErrDoesNotFit = errors.New("quadtree: rectangle does not fit the boundary")

// Tree is a quadtree node. It covers a fixed boundary rectangle, holds boxes
// keyed by identifier, and subdivides into four equal quadrants the first
// time an insert finds it at capacity. Capacity is a soft threshold, not a
// hard bound: a box that straddles the quadrant seams fits no child and
// stays at the node that tried to delegate it, however many such boxes
// accumulate.
//
// The zero value is not usable; call New. A Tree performs no locking and
// must not be mutated concurrently with reads or other writes: hosts that
// need that serialize access themselves, typically by rebuilding the whole
// tree on bulk changes instead of mutating in place.
type Tree[ID comparable] struct {
	boundary Rect
	objects  map[ID]Rect
	children *[4]Tree[ID]
	capacity int
}

// New creates an empty leaf covering boundary. capacity is the per-node
// threshold that triggers the first subdivision attempt; it must be at least
// 1 and New panics otherwise, since a zero capacity would attempt to
// subdivide before accepting anything at all.
func New[ID comparable](boundary Rect, capacity int) *Tree[ID] {
	if capacity < 1 {
		panic("quadtree: capacity must be at least 1")
	}
	return &Tree[ID]{
		boundary: boundary,
		objects:  make(map[ID]Rect),
		capacity: capacity,
	}
}

// Boundary returns the rectangle this tree covers. Every box the root ever
// accepts is fully enclosed by it.
func (t *Tree[ID]) Boundary() Rect { return t.boundary }

// Capacity returns the soft per-node threshold the tree was built with.
func (t *Tree[ID]) Capacity() int { return t.capacity }

// Len returns the number of entries stored in the subtree.
func (t *Tree[ID]) Len() int {
	n := len(t.objects)
	if t.children == nil {
		return n
	}
	for i := range t.children {
		n += t.children[i].Len()
	}
	return n
}

// subdivide creates the four child quadrants, each centered on the midpoint
// between the boundary's center and one of its corners, with half the
// boundary's extents. It is idempotent: children, once created, are never
// destroyed or replaced.
func (t *Tree[ID]) subdivide() {
	if t.children != nil {
		return
	}
	var kids [4]Tree[ID]
	for c := NE; c <= SE; c++ {
		corner := t.boundary.Corner(c)
		kids[c] = Tree[ID]{
			boundary: Rect{
				Center: Point{
					X: (t.boundary.Center.X + corner.X) / 2,
					Y: (t.boundary.Center.Y + corner.Y) / 2,
				},
				HalfW: t.boundary.HalfW / 2,
				HalfH: t.boundary.HalfH / 2,
			},
			objects:  make(map[ID]Rect),
			capacity: t.capacity,
		}
	}
	t.children = &kids
}

// Insert stores rect in the subtree under id. It fails with ErrDoesNotFit
// when rect is not fully enclosed by the tree's boundary; that is the only
// failure mode, and it surfaces to the caller only from the root's own
// boundary check. Identifiers are supplied by the host and expected to be
// unique.
func (t *Tree[ID]) Insert(rect Rect, id ID) error {
	if !t.boundary.ContainsRect(rect) {
		return ErrDoesNotFit
	}
	t.insert(rect, id)
	return nil
}

// insert places rect somewhere in the subtree. The caller has already
// verified that rect fits t's boundary, so placement cannot fail: the worst
// case is storing at t itself past capacity.
func (t *Tree[ID]) insert(rect Rect, id ID) {
	if len(t.objects) < t.capacity {
		t.objects[id] = rect
		return
	}

	if t.children == nil {
		t.subdivide()
	}

	// Probe the quadrants in creation order; the first whose boundary fully
	// encloses rect takes it. A box straddling a seam fits none and stays
	// here past capacity: capacity decides when delegation is attempted,
	// not how much a node may hold.
	for i := range t.children {
		if t.children[i].boundary.ContainsRect(rect) {
			t.children[i].insert(rect, id)
			return
		}
	}

	t.objects[id] = rect
}

// QueryPoint returns the identifiers of every stored rectangle that
// contains p. limit caps how many identifiers each branch of the walk may
// still collect; pass NoLimit for all of them. A branch whose budget
// reaches zero stops matching but is still walked to the leaves, and the
// budget never drops below zero. A point outside the boundary yields an
// empty set, never an error, and repeated calls without interleaved
// mutation return equal sets.
func (t *Tree[ID]) QueryPoint(p Point, limit int) map[ID]struct{} {
	found := make(map[ID]struct{})
	t.queryPoint(p, limit, found)
	return found
}

func (t *Tree[ID]) queryPoint(p Point, limit int, found map[ID]struct{}) {
	if !t.boundary.ContainsPoint(p) {
		return
	}

	for id, rect := range t.objects {
		if limit == 0 {
			break
		}
		if rect.ContainsPoint(p) {
			found[id] = struct{}{}
			if limit > 0 {
				limit--
			}
		}
	}

	if t.children == nil {
		return
	}
	// Each child receives the leftover budget of this node, not a share of
	// it, and is visited even at zero so pruning stays purely geometric.
	for i := range t.children {
		t.children[i].queryPoint(p, limit, found)
	}
}

// VisitObjects walks every stored (id, rectangle) entry in the subtree,
// parents before children, handing each to fn. Returning false stops the
// walk early. The walk is read-only and restartable.
func (t *Tree[ID]) VisitObjects(fn func(id ID, rect Rect) bool) {
	t.visitObjects(fn)
}

func (t *Tree[ID]) visitObjects(fn func(ID, Rect) bool) bool {
	for id, rect := range t.objects {
		if !fn(id, rect) {
			return false
		}
	}
	if t.children == nil {
		return true
	}
	for i := range t.children {
		if !t.children[i].visitObjects(fn) {
			return false
		}
	}
	return true
}

// VisitRegions walks the boundary rectangle of every node in the subtree,
// parents before children, handing each to fn. Returning false stops the
// walk early.
func (t *Tree[ID]) VisitRegions(fn func(boundary Rect) bool) {
	t.visitRegions(fn)
}

func (t *Tree[ID]) visitRegions(fn func(Rect) bool) bool {
	if !fn(t.boundary) {
		return false
	}
	if t.children == nil {
		return true
	}
	for i := range t.children {
		if !t.children[i].visitRegions(fn) {
			return false
		}
	}
	return true
}
