package main

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"os"

	"github.com/google/uuid"
	"golang.org/x/image/bmp"

	"github.com/drozdziak1/qtree-demo/quadtree"
)

// RenderBMP writes a debug snapshot of the world to path: region
// boundaries in green, stored bounding boxes in red, circle outlines
// in white on a black background, the same palette the browser client
// uses.
func (w *World) RenderBMP(path string) error {
	w.mu.RLock()
	defer w.mu.RUnlock()

	bounds := w.Tree.Boundary()
	frame := image.NewRGBA(image.Rect(0, 0, int(bounds.Width())+1, int(bounds.Height())+1))
	draw.Draw(frame, frame.Bounds(), &image.Uniform{color.Black}, image.Point{}, draw.Src)

	col := color.RGBA{0, 255, 0, 255}

	HLine := func(x1, y, x2 int) {
		for ; x1 <= x2; x1++ {
			frame.Set(x1, y, col)
		}
	}

	VLine := func(x, y1, y2 int) {
		for ; y1 <= y2; y1++ {
			frame.Set(x, y1, col)
		}
	}

	Rect := func(r quadtree.Rect) {
		nw := r.Corner(quadtree.NW)
		se := r.Corner(quadtree.SE)
		x1, y1, x2, y2 := int(nw.X), int(nw.Y), int(se.X), int(se.Y)
		HLine(x1, y1, x2)
		HLine(x1, y2, x2)
		VLine(x1, y1, y2)
		VLine(x2, y1, y2)
	}

	w.Tree.VisitRegions(func(boundary quadtree.Rect) bool {
		Rect(boundary)
		return true
	})

	col = color.RGBA{255, 0, 0, 255}
	w.Tree.VisitObjects(func(_ uuid.UUID, box quadtree.Rect) bool {
		Rect(box)
		return true
	})

	white := color.RGBA{255, 255, 255, 255}
	for _, c := range w.Circles {
		// One sample per circumference pixel keeps the outline closed.
		steps := int(2 * math.Pi * c.R)
		if steps < 8 {
			steps = 8
		}
		for i := 0; i < steps; i++ {
			a := 2 * math.Pi * float64(i) / float64(steps)
			frame.Set(int(c.Center.X+c.R*math.Cos(a)), int(c.Center.Y+c.R*math.Sin(a)), white)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return bmp.Encode(f, frame)
}
