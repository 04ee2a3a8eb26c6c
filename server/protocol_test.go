package main

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/drozdziak1/qtree-demo/quadtree"
)

func TestClientMessageDecoding(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want ClientMessage
	}{
		{"pointer", `{"type":"pointer","x":12.5,"y":7}`, ClientMessage{Type: "pointer", X: 12.5, Y: 7}},
		{"click", `{"type":"click","x":100,"y":200}`, ClientMessage{Type: "click", X: 100, Y: 200}},
		{"wheel up", `{"type":"wheel","x":1,"y":2,"dy":1}`, ClientMessage{Type: "wheel", X: 1, Y: 2, Dy: 1}},
		{"wheel down", `{"type":"wheel","x":1,"y":2,"dy":-1}`, ClientMessage{Type: "wheel", X: 1, Y: 2, Dy: -1}},
		{"toggle", `{"type":"toggle","layer":2}`, ClientMessage{Type: "toggle", Layer: 2}},
		{"scatter", `{"type":"scatter"}`, ClientMessage{Type: "scatter"}},
		{"purge", `{"type":"purge"}`, ClientMessage{Type: "purge"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got ClientMessage
			require.NoError(t, json.Unmarshal([]byte(tc.raw), &got))
			require.Equal(t, tc.want, got)
		})
	}
}

func TestWelcomeEncoding(t *testing.T) {
	data, err := json.Marshal(ServerMessage{
		Type: "welcome",
		Payload: WelcomePayload{
			WorldWidth:  800,
			WorldHeight: 600,
			MinRadius:   10,
			Capacity:    4,
		},
	})
	require.NoError(t, err)
	require.JSONEq(t,
		`{"type":"welcome","payload":{"worldWidth":800,"worldHeight":600,"minRadius":10,"capacity":4}}`,
		string(data))
}

func TestStateEncodingOmitsToggledOffLayers(t *testing.T) {
	data, err := json.Marshal(ServerMessage{
		Type: "state",
		Payload: StatePayload{
			Circles: []CircleState{},
			Hover:   []uuid.UUID{},
		},
	})
	require.NoError(t, err)
	require.JSONEq(t, `{"type":"state","payload":{"circles":[],"hover":[]}}`, string(data))
}

func TestNewRectShape(t *testing.T) {
	shape := NewRectShape(quadtree.NewRect(10, 20, 30, 40))
	require.Equal(t, RectShape{X: 10, Y: 20, W: 30, H: 40}, shape)
}
