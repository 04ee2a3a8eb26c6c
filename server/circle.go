package main

import (
	"github.com/google/uuid"

	"github.com/drozdziak1/qtree-demo/quadtree"
)

// Circle is what the world actually stores; the quadtree only ever sees
// its bounding box and its id.
type Circle struct {
	ID     uuid.UUID      `json:"id"`
	Center quadtree.Point `json:"center"`
	R      float64        `json:"r"`
}

// NewCircle creates a circle at the given position with the minimum
// radius and a fresh id.
func NewCircle(x, y float64) *Circle {
	return &Circle{
		ID:     uuid.New(),
		Center: quadtree.Point{X: x, Y: y},
		R:      MinRadius,
	}
}

// ContainsPoint checks whether a point is inclusively within the radius.
func (c *Circle) ContainsPoint(p quadtree.Point) bool {
	dx := p.X - c.Center.X
	dy := p.Y - c.Center.Y
	return dx*dx+dy*dy <= c.R*c.R
}

// BoundingBox returns the square circumscribing the circle.
func (c *Circle) BoundingBox() quadtree.Rect {
	return quadtree.NewRect(c.Center.X-c.R, c.Center.Y-c.R, c.R*2, c.R*2)
}
