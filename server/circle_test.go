package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/drozdziak1/qtree-demo/quadtree"
)

func TestNewCircleDefaults(t *testing.T) {
	a := NewCircle(30, 40)
	b := NewCircle(30, 40)

	require.Equal(t, quadtree.Point{X: 30, Y: 40}, a.Center)
	require.Equal(t, float64(MinRadius), a.R)
	require.NotEqual(t, a.ID, b.ID)
}

func TestCircleContainsPoint(t *testing.T) {
	c := NewCircle(100, 100)
	c.R = 5

	require.True(t, c.ContainsPoint(quadtree.Point{X: 100, Y: 100}))
	// 3-4-5 triangle: exactly on the rim counts.
	require.True(t, c.ContainsPoint(quadtree.Point{X: 103, Y: 104}))
	require.False(t, c.ContainsPoint(quadtree.Point{X: 103.01, Y: 104}))
	require.False(t, c.ContainsPoint(quadtree.Point{X: 100, Y: 106}))
}

func TestCircleBoundingBox(t *testing.T) {
	c := NewCircle(50, 60)
	require.Equal(t, quadtree.NewRect(40, 50, 20, 20), c.BoundingBox())
}
