package main

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/drozdziak1/qtree-demo/quadtree"
)

// World owns the circles and the quadtree over their bounding boxes.
// The tree is not safe for concurrent use, so every operation goes
// through the world's lock: mutations hold the write lock and rebuild
// or extend the tree, snapshot readers hold the read lock.
type World struct {
	Circles map[uuid.UUID]*Circle
	Tree    *quadtree.Tree[uuid.UUID]
	Clients map[string]*Client
	mu      sync.RWMutex
}

// NewWorld creates an empty world covering a width x height canvas.
func NewWorld(width, height float64, capacity int) *World {
	return &World{
		Circles: make(map[uuid.UUID]*Circle),
		Tree:    quadtree.New[uuid.UUID](quadtree.NewRect(0, 0, width, height), capacity),
		Clients: make(map[string]*Client),
	}
}

// Start begins the broadcast loop
func (w *World) Start() {
	go w.BroadcastLoop()
}

// Bounds returns the world boundary rectangle.
func (w *World) Bounds() quadtree.Rect {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.Tree.Boundary()
}

// Capacity returns the node capacity of the underlying tree.
func (w *World) Capacity() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.Tree.Capacity()
}

// AddCircle inserts a circle whose bounding box fits the world. A
// circle close enough to the edge for its box to escape is refused.
func (w *World) AddCircle(c *Circle) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.addCircleLocked(c)
}

func (w *World) addCircleLocked(c *Circle) error {
	box := c.BoundingBox()
	if !w.Tree.Boundary().ContainsRect(box) {
		return fmt.Errorf("circle %s at (%g, %g) r=%g: %w", c.ID, c.Center.X, c.Center.Y, c.R, quadtree.ErrDoesNotFit)
	}
	if err := w.Tree.Insert(box, c.ID); err != nil {
		return fmt.Errorf("insert circle %s: %w", c.ID, err)
	}
	w.Circles[c.ID] = c
	log.Debugf("Added circle %s at (%g, %g) r=%g", c.ID, c.Center.X, c.Center.Y, c.R)
	return nil
}

// Scatter creates n circles at uniformly random positions. Circles
// whose boxes land outside the world are skipped; the rest go in.
// Returns how many made it.
func (w *World) Scatter(n int) int {
	w.mu.Lock()
	defer w.mu.Unlock()

	bounds := w.Tree.Boundary()
	origin := bounds.Corner(quadtree.NW)
	added := 0
	for i := 0; i < n; i++ {
		c := NewCircle(
			origin.X+RandomFloat(0, bounds.Width()),
			origin.Y+RandomFloat(0, bounds.Height()),
		)
		if err := w.addCircleLocked(c); err != nil {
			log.Debugf("Could not add circle: %v", err)
			continue
		}
		added++
	}
	log.Infof("Scattered %d of %d circles", added, n)
	return added
}

// Purge drops every circle and replaces the tree with a fresh empty
// one. There is no per-item deletion; the whole index is rebuilt.
func (w *World) Purge() {
	w.mu.Lock()
	defer w.mu.Unlock()

	n := len(w.Circles)
	w.Circles = make(map[uuid.UUID]*Circle)
	w.Tree = quadtree.New[uuid.UUID](w.Tree.Boundary(), w.Tree.Capacity())
	log.Infof("Purged %d circles", n)
}

// Hover returns the ids of circles that actually contain p. The tree
// narrows the candidates to bounding-box holders, the exact disk test
// does the rest.
func (w *World) Hover(p quadtree.Point) []uuid.UUID {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.hoverLocked(p)
}

func (w *World) hoverLocked(p quadtree.Point) []uuid.UUID {
	candidates := w.Tree.QueryPoint(p, quadtree.NoLimit)
	hits := make([]uuid.UUID, 0, len(candidates))
	for id := range candidates {
		if c, ok := w.Circles[id]; ok && c.ContainsPoint(p) {
			hits = append(hits, id)
		}
	}
	return hits
}

// ScaleAt grows or shrinks the smallest circle under p by steps wheel
// notches. Shrinking stops at MinRadius; the change is refused when the
// scaled bounding box would escape the world. Any accepted change
// rebuilds the tree.
func (w *World) ScaleAt(p quadtree.Point, steps int) {
	w.mu.Lock()
	defer w.mu.Unlock()

	var smallest *Circle
	for id := range w.Tree.QueryPoint(p, quadtree.NoLimit) {
		c, ok := w.Circles[id]
		if !ok || !c.ContainsPoint(p) {
			continue
		}
		if smallest == nil || c.R < smallest.R {
			smallest = c
		}
	}
	if smallest == nil {
		return
	}

	newR := smallest.R + ScaleDelta*float64(steps)
	if newR < MinRadius {
		newR = MinRadius
	}
	scaled := Circle{ID: smallest.ID, Center: smallest.Center, R: newR}
	if !w.Tree.Boundary().ContainsRect(scaled.BoundingBox()) {
		log.Debugf("Not scaling circle %s: scaled box escapes the world", smallest.ID)
		return
	}

	smallest.R = newR
	w.rebuildLocked()
	log.Infof("Scaled circle %s to r=%g", smallest.ID, newR)
}

// rebuildLocked replaces the tree and reinserts every circle's box.
func (w *World) rebuildLocked() {
	w.Tree = quadtree.New[uuid.UUID](w.Tree.Boundary(), w.Tree.Capacity())
	for id, c := range w.Circles {
		if err := w.Tree.Insert(c.BoundingBox(), id); err != nil {
			log.Errorf("Could not insert circle %s: %v", id, err)
		}
	}
}

// WorldStats summarizes the world for the console and logs.
type WorldStats struct {
	Circles int
	Entries int
	Regions int
}

// Stats counts circles, stored tree entries and tree regions.
func (w *World) Stats() WorldStats {
	w.mu.RLock()
	defer w.mu.RUnlock()

	stats := WorldStats{Circles: len(w.Circles), Entries: w.Tree.Len()}
	w.Tree.VisitRegions(func(quadtree.Rect) bool {
		stats.Regions++
		return true
	})
	return stats
}

// Snapshot assembles a state frame for one client. Each section is
// walked only when the matching layer toggle is on; the hover set is
// always included.
func (w *World) Snapshot(pointer quadtree.Point, circles, boxes, regions bool) StatePayload {
	w.mu.RLock()
	defer w.mu.RUnlock()

	state := StatePayload{
		Circles: make([]CircleState, 0),
		Hover:   w.hoverLocked(pointer),
	}
	if circles {
		for id, c := range w.Circles {
			state.Circles = append(state.Circles, CircleState{ID: id, X: c.Center.X, Y: c.Center.Y, R: c.R})
		}
	}
	if boxes {
		w.Tree.VisitObjects(func(id uuid.UUID, box quadtree.Rect) bool {
			state.Boxes = append(state.Boxes, NewRectShape(box))
			return true
		})
	}
	if regions {
		w.Tree.VisitRegions(func(boundary quadtree.Rect) bool {
			state.Regions = append(state.Regions, NewRectShape(boundary))
			return true
		})
	}
	return state
}

// AddClient registers a connected client.
func (w *World) AddClient(c *Client) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.Clients[c.ID] = c
	log.Infof("Client %s connected. Total clients: %d", c.ID, len(w.Clients))
}

// Disconnect removes a client when they disconnect.
func (w *World) Disconnect(c *Client) {
	w.mu.Lock()
	if _, ok := w.Clients[c.ID]; !ok {
		w.mu.Unlock()
		return
	}
	delete(w.Clients, c.ID)
	remaining := len(w.Clients)
	w.mu.Unlock()

	c.mu.Lock()
	if !c.closed {
		c.closed = true
		close(c.Send)
	}
	c.mu.Unlock()

	log.Infof("Client %s disconnected. Total clients: %d", c.ID, remaining)
}

// BroadcastLoop pushes state frames to every client at a fixed rate.
func (w *World) BroadcastLoop() {
	ticker := time.NewTicker(time.Second / BroadcastRate)
	defer ticker.Stop()

	for range ticker.C {
		w.BroadcastState()
	}
}

// BroadcastState sends each client a state frame shaped by its own
// pointer and layer toggles. The client list is copied out first so a
// slow client being dropped mid-broadcast never touches the world lock
// while it is held here.
func (w *World) BroadcastState() {
	w.mu.RLock()
	clients := make([]*Client, 0, len(w.Clients))
	for _, c := range w.Clients {
		clients = append(clients, c)
	}
	w.mu.RUnlock()

	for _, c := range clients {
		pointer, circles, boxes, regions := c.View()
		state := w.Snapshot(pointer, circles, boxes, regions)
		c.SendMessage(ServerMessage{Type: "state", Payload: state})
	}
}
