// Package board provides the hex grid, its terrain, the city and knight
// registries, and the legality checks that gate every placement or move.
//
// The grid uses offset coordinates: columns run left to right, rows run bottom
// to top, and odd columns sit half a row higher than even columns.
package board

import "fmt"

// Grid dimensions
const (
	Width  = 13
	Height = 7
)

// Coordinate addresses one space of the grid
type Coordinate struct {
	Col uint8
	Row uint8
}

// At is shorthand for building a coordinate from ints
func At(col, row int) Coordinate {
	return Coordinate{Col: uint8(col), Row: uint8(row)}
}

// Valid reports whether the coordinate lies on the grid
func (c Coordinate) Valid() bool {
	return int(c.Col) < Width && int(c.Row) < Height
}

// String returns "(col,row)"
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

func (c Coordinate) oddColumn() bool {
	return c.Col%2 == 1
}

// offset builds the coordinate dc/dr away, or false if it leaves the grid
func (c Coordinate) offset(dc, dr int) (Coordinate, bool) {
	col := int(c.Col) + dc
	row := int(c.Row) + dr
	if col < 0 || col >= Width || row < 0 || row >= Height {
		return Coordinate{}, false
	}
	return At(col, row), true
}

// Up returns the space above this one
func (c Coordinate) Up() (Coordinate, bool) {
	return c.offset(0, 1)
}

// UpRight returns the space up and to the right
func (c Coordinate) UpRight() (Coordinate, bool) {
	if c.oddColumn() {
		return c.offset(1, 1)
	}
	return c.offset(1, 0)
}

// DownRight returns the space down and to the right
func (c Coordinate) DownRight() (Coordinate, bool) {
	if c.oddColumn() {
		return c.offset(1, 0)
	}
	return c.offset(1, -1)
}

// Down returns the space below this one
func (c Coordinate) Down() (Coordinate, bool) {
	return c.offset(0, -1)
}

// DownLeft returns the space down and to the left
func (c Coordinate) DownLeft() (Coordinate, bool) {
	if c.oddColumn() {
		return c.offset(-1, 0)
	}
	return c.offset(-1, -1)
}

// UpLeft returns the space up and to the left
func (c Coordinate) UpLeft() (Coordinate, bool) {
	if c.oddColumn() {
		return c.offset(-1, 1)
	}
	return c.offset(-1, 0)
}

// Neighbors returns the adjacent spaces that exist, clockwise from Up
func (c Coordinate) Neighbors() []Coordinate {
	steps := [6]func() (Coordinate, bool){
		c.Up, c.UpRight, c.DownRight, c.Down, c.DownLeft, c.UpLeft,
	}
	result := make([]Coordinate, 0, len(steps))
	for _, step := range steps {
		if n, ok := step(); ok {
			result = append(result, n)
		}
	}
	return result
}

// IsNeighbor reports whether other is adjacent to c
func (c Coordinate) IsNeighbor(other Coordinate) bool {
	for _, n := range c.Neighbors() {
		if n == other {
			return true
		}
	}
	return false
}

// AllCoordinates returns every space of the grid, column by column
func AllCoordinates() []Coordinate {
	result := make([]Coordinate, 0, Width*Height)
	for col := 0; col < Width; col++ {
		for row := 0; row < Height; row++ {
			result = append(result, At(col, row))
		}
	}
	return result
}
