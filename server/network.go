package main

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"github.com/drozdziak1/qtree-demo/quadtree"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:    2048,
	WriteBufferSize:   8192,
	EnableCompression: true,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

// Client represents a connected WebSocket client. Each client carries
// its own pointer position and draw-layer toggles, so two browsers can
// look at the same world differently.
type Client struct {
	ID    string
	Conn  *websocket.Conn
	Send  chan []byte
	World *World

	mu          sync.Mutex
	pointer     quadtree.Point
	drawCircles bool
	drawBoxes   bool
	drawRegions bool
	closed      bool
}

// NewClient creates a new client with the default layer toggles:
// circles on, boxes and regions off.
func NewClient(id string, conn *websocket.Conn, world *World) *Client {
	return &Client{
		ID:          id,
		Conn:        conn,
		Send:        make(chan []byte, WriteChannelSize),
		World:       world,
		drawCircles: true,
	}
}

// View returns the pointer position and layer toggles for snapshot
// assembly.
func (c *Client) View() (pointer quadtree.Point, circles, boxes, regions bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pointer, c.drawCircles, c.drawBoxes, c.drawRegions
}

// ReadPump reads messages from the WebSocket connection
func (c *Client) ReadPump() {
	defer func() {
		c.World.Disconnect(c)
		c.Conn.Close()
	}()

	c.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Errorf("WebSocket error: %v", err)
			}
			break
		}

		var msg ClientMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			log.Errorf("Error unmarshaling message: %v", err)
			continue
		}

		c.HandleMessage(msg)
	}
}

// WritePump sends messages to the WebSocket connection
func (c *Client) WritePump() {
	ticker := time.NewTicker(time.Duration(PingInterval) * time.Millisecond)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// HandleMessage processes incoming client messages
func (c *Client) HandleMessage(msg ClientMessage) {
	switch msg.Type {
	case "pointer":
		c.HandlePointer(msg)
	case "click":
		log.Infof("Creating new circle at (%g, %g)", msg.X, msg.Y)
		if err := c.World.AddCircle(NewCircle(msg.X, msg.Y)); err != nil {
			log.Errorf("Could not add circle: %v", err)
		}
	case "scatter":
		log.Infof("Creating %d new circles", NRandomCircles)
		c.World.Scatter(NRandomCircles)
	case "purge":
		log.Infof("Purging all circles")
		c.World.Purge()
	case "wheel":
		c.HandleWheel(msg)
	case "toggle":
		c.HandleToggle(msg)
	case "ping":
		c.SendMessage(ServerMessage{Type: "pong"})
	default:
		log.Warnf("Unknown message type: %s", msg.Type)
	}
}

// HandlePointer tracks the client's pointer; the hover set in the next
// state frame is computed from it.
func (c *Client) HandlePointer(msg ClientMessage) {
	log.Tracef("Pointer moved: %g, %g", msg.X, msg.Y)
	c.mu.Lock()
	c.pointer = quadtree.Point{X: msg.X, Y: msg.Y}
	c.mu.Unlock()
}

// HandleWheel scales the smallest circle under the pointer.
func (c *Client) HandleWheel(msg ClientMessage) {
	log.Debugf("Got mousewheel (x: %g, y: %g, dy: %d)", msg.X, msg.Y, msg.Dy)
	c.mu.Lock()
	c.pointer = quadtree.Point{X: msg.X, Y: msg.Y}
	c.mu.Unlock()

	c.World.ScaleAt(quadtree.Point{X: msg.X, Y: msg.Y}, msg.Dy)
}

// HandleToggle flips one of the client's draw layers.
func (c *Client) HandleToggle(msg ClientMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch msg.Layer {
	case LayerCircles:
		c.drawCircles = !c.drawCircles
		logToggle("Circles", c.drawCircles)
	case LayerBoxes:
		c.drawBoxes = !c.drawBoxes
		logToggle("Boxes", c.drawBoxes)
	case LayerRegions:
		c.drawRegions = !c.drawRegions
		logToggle("Regions", c.drawRegions)
	default:
		log.Warnf("Unknown layer: %d", msg.Layer)
	}
}

func logToggle(layer string, on bool) {
	if on {
		log.Infof("%s ON", layer)
	} else {
		log.Infof("%s OFF", layer)
	}
}

// SendMessage queues a message for the client. A client whose send
// buffer is full is dropped rather than allowed to stall the world.
func (c *Client) SendMessage(msg ServerMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Errorf("Error marshaling message: %v", err)
		return
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	select {
	case c.Send <- data:
		c.mu.Unlock()
	default:
		c.mu.Unlock()
		log.Warnf("Client %s send channel full, closing connection", c.ID)
		c.World.Disconnect(c)
	}
}

// HandleWebSocket upgrades HTTP connections to WebSocket
func HandleWebSocket(world *World) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Errorf("WebSocket upgrade error: %v", err)
			return
		}

		client := NewClient(uuid.NewString(), conn, world)
		world.AddClient(client)

		// Start read and write pumps
		go client.WritePump()
		go client.ReadPump()

		bounds := world.Bounds()
		client.SendMessage(ServerMessage{
			Type: "welcome",
			Payload: WelcomePayload{
				WorldWidth:  bounds.Width(),
				WorldHeight: bounds.Height(),
				MinRadius:   MinRadius,
				Capacity:    world.Capacity(),
			},
		})
	}
}
