package main

const (
	// World configuration
	WorldWidth   = 800.0
	WorldHeight  = 600.0
	NodeCapacity = 4 // quadtree bucket size before subdivision

	// Circle configuration
	MinRadius      = 10.0
	ScaleDelta     = 10.0 // radius change per mouse wheel notch
	NRandomCircles = 1000 // circles created by a scatter request

	// Network
	BroadcastRate    = 15 // state frames per second
	WriteChannelSize = 256
	PingInterval     = 2000 // milliseconds
)
