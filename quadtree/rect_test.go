package quadtree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRectConvertsToCenterForm(t *testing.T) {
	r := NewRect(0, 0, 200, 100)
	require.Equal(t, Point{X: 100, Y: 50}, r.Center)
	require.Equal(t, 100.0, r.HalfW)
	require.Equal(t, 50.0, r.HalfH)
}

func TestCornerFormulas(t *testing.T) {
	// Distinct half extents so an x/y mixup cannot cancel out. North
	// corners have the smaller y: the origin is top-left, y grows down.
	r := NewRect(0, 0, 10, 4)

	tests := []struct {
		name   string
		corner Corner
		want   Point
	}{
		{"NE", NE, Point{X: 10, Y: 0}},
		{"NW", NW, Point{X: 0, Y: 0}},
		{"SW", SW, Point{X: 0, Y: 4}},
		{"SE", SE, Point{X: 10, Y: 4}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, r.Corner(tc.corner))
		})
	}
}

func TestCornerPanicsOutsideEnum(t *testing.T) {
	r := NewRect(0, 0, 10, 10)
	require.Panics(t, func() { r.Corner(Corner(4)) })
	require.Panics(t, func() { r.Corner(Corner(-1)) })
}

func TestContainsPointInclusiveEdges(t *testing.T) {
	r := NewRect(0, 0, 100, 100)

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"center", Point{X: 50, Y: 50}, true},
		{"nw corner", Point{X: 0, Y: 0}, true},
		{"ne corner", Point{X: 100, Y: 0}, true},
		{"sw corner", Point{X: 0, Y: 100}, true},
		{"se corner", Point{X: 100, Y: 100}, true},
		{"top edge", Point{X: 50, Y: 0}, true},
		{"left edge", Point{X: 0, Y: 50}, true},
		{"just right of right edge", Point{X: 100.5, Y: 50}, false},
		{"just left of left edge", Point{X: -0.5, Y: 50}, false},
		{"just above top edge", Point{X: 50, Y: -0.5}, false},
		{"just below bottom edge", Point{X: 50, Y: 100.5}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, r.ContainsPoint(tc.p))
		})
	}
}

func TestRectContainsItself(t *testing.T) {
	for _, r := range []Rect{
		NewRect(0, 0, 100, 100),
		NewRect(-50, -50, 10, 30),
		{Center: Point{X: 5, Y: 5}}, // degenerate point-rectangle
	} {
		require.True(t, r.ContainsRect(r))
	}
}

func TestRectContainsOwnCorners(t *testing.T) {
	r := NewRect(0, 0, 100, 100)
	for _, c := range []Corner{NE, NW, SW, SE} {
		require.True(t, r.ContainsPoint(r.Corner(c)))
	}
}

func TestOverlapIsNotContainment(t *testing.T) {
	r := NewRect(0, 0, 100, 100)

	// Shifting an identical rectangle by any nonzero offset pushes at
	// least one corner out, so overlap alone never counts.
	offsets := []Point{
		{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}, {X: 1, Y: 1},
	}
	for _, off := range offsets {
		shifted := r
		shifted.Center.X += off.X
		shifted.Center.Y += off.Y
		require.False(t, r.ContainsRect(shifted), "offset %+v", off)
	}
}

func TestContainsRectDisjoint(t *testing.T) {
	r := NewRect(0, 0, 100, 100)
	require.False(t, r.ContainsRect(NewRect(200, 200, 10, 10)))
}

func TestContainsRectEnclosed(t *testing.T) {
	r := NewRect(0, 0, 100, 100)
	require.True(t, r.ContainsRect(NewRect(10, 10, 30, 30)))
	// Touching the edges from the inside still counts: containment is
	// inclusive like the point test it is built on.
	require.True(t, r.ContainsRect(NewRect(0, 0, 100, 50)))
}

func TestDegeneratePointRectangle(t *testing.T) {
	r := Rect{Center: Point{X: 5, Y: 5}}
	require.True(t, r.ContainsPoint(Point{X: 5, Y: 5}))
	require.False(t, r.ContainsPoint(Point{X: 5.1, Y: 5}))

	outer := NewRect(0, 0, 10, 10)
	require.True(t, outer.ContainsRect(r))
}
