package quadtree

// Corner identifies one of the four corners of a Rect. The constant order
// NE, NW, SW, SE is also the order in which child quadrants are created and
// probed, which keeps placement deterministic.
type Corner int

const (
	NE Corner = iota // north-east
	NW               // north-west
	SW               // south-west
	SE               // south-east
)

// Point is a position in the plane. The origin is the top-left corner and y
// grows downward, the usual screen convention.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned rectangle stored as a center point and two half
// extents. Half extents are never negative; a Rect with zero half extents is
// a legal point-sized rectangle. Rects are plain values with no identity:
// copy them freely, nothing aliases.
type Rect struct {
	Center Point   `json:"center"`
	HalfW  float64 `json:"halfW"`
	HalfH  float64 `json:"halfH"`
}

// NewRect builds a Rect from its top-left corner and outer dimensions,
// converting to the center/half-extent form. w and h must not be negative.
func NewRect(x, y, w, h float64) Rect {
	return Rect{
		Center: Point{X: x + w/2, Y: y + h/2},
		HalfW:  w / 2,
		HalfH:  h / 2,
	}
}

// Corner returns the requested corner of the rectangle. Corners are derived
// from the center and half extents, never stored. which must be one of NE,
// NW, SW or SE; anything else is a programming error and panics.
func (r Rect) Corner(which Corner) Point {
	switch which {
	case NE:
		return Point{X: r.Center.X + r.HalfW, Y: r.Center.Y - r.HalfH}
	case NW:
		return Point{X: r.Center.X - r.HalfW, Y: r.Center.Y - r.HalfH}
	case SW:
		return Point{X: r.Center.X - r.HalfW, Y: r.Center.Y + r.HalfH}
	case SE:
		return Point{X: r.Center.X + r.HalfW, Y: r.Center.Y + r.HalfH}
	}
	panic("quadtree: invalid corner")
}

// Width returns the full horizontal extent of the rectangle.
func (r Rect) Width() float64 { return 2 * r.HalfW }

// Height returns the full vertical extent of the rectangle.
func (r Rect) Height() float64 { return 2 * r.HalfH }

// ContainsPoint reports whether p lies inside the rectangle. Every edge is
// inclusive: a point exactly on an edge or corner counts as contained.
func (r Rect) ContainsPoint(p Point) bool {
	return r.Center.X-r.HalfW <= p.X && p.X <= r.Center.X+r.HalfW &&
		r.Center.Y-r.HalfH <= p.Y && p.Y <= r.Center.Y+r.HalfH
}

// ContainsRect reports whether other lies entirely inside r, meaning all
// four of its corners are contained. Partial overlap is not containment.
func (r Rect) ContainsRect(other Rect) bool {
	return r.ContainsPoint(other.Corner(NE)) &&
		r.ContainsPoint(other.Corner(NW)) &&
		r.ContainsPoint(other.Corner(SW)) &&
		r.ContainsPoint(other.Corner(SE))
}
