// Package boardview maps the hex board to screen pixels and draws it.
package boardview

import (
	"math"

	"chosenoffset.com/hexrealm/internal/board"
	"chosenoffset.com/hexrealm/internal/render"
)

const sqrt3 = 1.7320508

// Layout places the board inside a pixel rectangle. Hexagons are flat-topped,
// column c sits 3/4 of a hexagon width right of column c-1 and odd columns
// are raised half a hexagon. Row 0 is drawn at the bottom.
type Layout struct {
	X, Y     float32 // Top-left corner of the board's bounding box
	HexWidth float32 // Corner to corner
}

// FitLayout returns the largest layout that fits the board into a w x h
// rectangle at (x, y), centered.
func FitLayout(x, y, w, h float32) Layout {
	// In hexagon widths the board spans 0.75*(Width-1)+1 across and
	// (Height+0.5)*sqrt3/2 down.
	spanX := 0.75*float32(board.Width-1) + 1
	spanY := (float32(board.Height) + 0.5) * sqrt3 / 2
	hexWidth := w / spanX
	if byHeight := h / spanY; byHeight < hexWidth {
		hexWidth = byHeight
	}
	l := Layout{HexWidth: hexWidth}
	bw, bh := l.Size()
	l.X = x + (w-bw)/2
	l.Y = y + (h-bh)/2
	return l
}

// HexHeight is the flat side to flat side height of one hexagon
func (l Layout) HexHeight() float32 {
	return l.HexWidth * sqrt3 / 2
}

// Size returns the pixel size of the board's bounding box
func (l Layout) Size() (w, h float32) {
	w = l.HexWidth * (0.75*float32(board.Width-1) + 1)
	h = l.HexHeight() * (float32(board.Height) + 0.5)
	return w, h
}

// Center returns the pixel center of a space
func (l Layout) Center(pos board.Coordinate) render.Point {
	hh := l.HexHeight()
	_, bh := l.Size()
	up := hh/2 + float32(pos.Row)*hh
	if pos.Col%2 == 1 {
		up += hh / 2
	}
	return render.Point{
		X: l.X + l.HexWidth/2 + float32(pos.Col)*0.75*l.HexWidth,
		Y: l.Y + bh - up,
	}
}

// Corners returns the six corners of a space's hexagon, clockwise from the right
func (l Layout) Corners(pos board.Coordinate) []render.Point {
	c := l.Center(pos)
	r := float64(l.HexWidth / 2)
	out := make([]render.Point, 6)
	for i := range out {
		angle := float64(i) * math.Pi / 3
		out[i] = render.Point{
			X: c.X + float32(r*math.Cos(angle)),
			Y: c.Y + float32(r*math.Sin(angle)),
		}
	}
	return out
}

// SlotTriangle returns the triangle joining the centers of a slot's spaces
func (l Layout) SlotTriangle(s board.Slot) []render.Point {
	return []render.Point{l.Center(s[0]), l.Center(s[1]), l.Center(s[2])}
}

// SpaceAt returns the space whose hexagon contains the pixel
func (l Layout) SpaceAt(x, y float32) (board.Coordinate, bool) {
	var (
		best     board.Coordinate
		bestDist = float32(math.MaxFloat32)
	)
	for _, pos := range board.AllCoordinates() {
		c := l.Center(pos)
		dx, dy := x-c.X, y-c.Y
		if d := dx*dx + dy*dy; d < bestDist {
			best, bestDist = pos, d
		}
	}
	if !l.insideHex(best, x, y) {
		return board.Coordinate{}, false
	}
	return best, true
}

func (l Layout) insideHex(pos board.Coordinate, x, y float32) bool {
	c := l.Center(pos)
	dx := abs(x - c.X)
	dy := abs(y - c.Y)
	r := l.HexWidth / 2
	return dy <= l.HexHeight()/2 && sqrt3*dx+dy <= sqrt3*r
}

// SlotAt returns the tile slot whose triangle contains the pixel
func (l Layout) SlotAt(x, y float32) (board.Slot, bool) {
	p := render.Point{X: x, Y: y}
	for _, s := range board.Slots() {
		t := l.SlotTriangle(s)
		if inTriangle(p, t[0], t[1], t[2]) {
			return s, true
		}
	}
	return board.Slot{}, false
}

func inTriangle(p, a, b, c render.Point) bool {
	d1 := cross(p, a, b)
	d2 := cross(p, b, c)
	d3 := cross(p, c, a)
	neg := d1 < 0 || d2 < 0 || d3 < 0
	pos := d1 > 0 || d2 > 0 || d3 > 0
	return !(neg && pos)
}

func cross(p, a, b render.Point) float32 {
	return (p.X-b.X)*(a.Y-b.Y) - (a.X-b.X)*(p.Y-b.Y)
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
