package main

import (
	"github.com/google/uuid"

	"github.com/drozdziak1/qtree-demo/quadtree"
)

// Draw layers a client can toggle, matching keys 1..3 in the browser.
const (
	LayerCircles = 1
	LayerBoxes   = 2
	LayerRegions = 3
)

// ClientMessage represents incoming messages from clients
type ClientMessage struct {
	Type  string  `json:"type"`
	X     float64 `json:"x,omitempty"`
	Y     float64 `json:"y,omitempty"`
	Dy    int     `json:"dy,omitempty"`
	Layer int     `json:"layer,omitempty"`
}

// ServerMessage represents outgoing messages to clients
type ServerMessage struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

// WelcomePayload is sent once after a client connects
type WelcomePayload struct {
	WorldWidth  float64 `json:"worldWidth"`
	WorldHeight float64 `json:"worldHeight"`
	MinRadius   float64 `json:"minRadius"`
	Capacity    int     `json:"capacity"`
}

// StatePayload is one rendering frame for a client. Boxes and Regions
// are only present while the matching layer is toggled on.
type StatePayload struct {
	Circles []CircleState `json:"circles"`
	Hover   []uuid.UUID   `json:"hover"`
	Boxes   []RectShape   `json:"boxes,omitempty"`
	Regions []RectShape   `json:"regions,omitempty"`
}

// CircleState represents a single circle on the wire
type CircleState struct {
	ID uuid.UUID `json:"id"`
	X  float64   `json:"x"`
	Y  float64   `json:"y"`
	R  float64   `json:"r"`
}

// RectShape is a rectangle in top-left/size form, ready for canvas
// drawing on the other end.
type RectShape struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// NewRectShape converts from the tree's center/half-extent form.
func NewRectShape(r quadtree.Rect) RectShape {
	nw := r.Corner(quadtree.NW)
	return RectShape{X: nw.X, Y: nw.Y, W: r.Width(), H: r.Height()}
}
