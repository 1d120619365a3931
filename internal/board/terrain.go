package board

// SpaceType is the terrain of one board space
type SpaceType uint8

const (
	Void SpaceType = iota // Not yet covered by a tile
	Water
	Mountain
	Forest
	Plains
	Field
)

// String returns the terrain name
func (s SpaceType) String() string {
	switch s {
	case Void:
		return "void"
	case Water:
		return "water"
	case Mountain:
		return "mountain"
	case Forest:
		return "forest"
	case Plains:
		return "plains"
	case Field:
		return "field"
	default:
		return "unknown"
	}
}

// Tile is a board piece covering three spaces, listed clockwise
type Tile struct {
	A, B, C SpaceType
}

// Rotate returns the tile turned clockwise n steps (mod 3)
func (t Tile) Rotate(n int) Tile {
	switch ((n % 3) + 3) % 3 {
	case 1:
		return Tile{A: t.C, B: t.A, C: t.B}
	case 2:
		return Tile{A: t.B, B: t.C, C: t.A}
	default:
		return t
	}
}

// SameAs reports whether u is t under some rotation
func (t Tile) SameAs(u Tile) bool {
	for n := 0; n < 3; n++ {
		if t.Rotate(n) == u {
			return true
		}
	}
	return false
}

// catalog is the physical set of 36 board pieces
var catalog = [36]Tile{
	// Mostly mountain
	{Mountain, Mountain, Mountain},
	{Water, Mountain, Mountain},
	{Water, Mountain, Mountain},
	{Forest, Mountain, Mountain},
	{Plains, Mountain, Mountain},
	{Field, Mountain, Mountain},
	// Mostly field
	{Field, Field, Field},
	{Water, Field, Field},
	{Water, Field, Field},
	{Mountain, Field, Field},
	{Forest, Field, Field},
	{Plains, Field, Field},
	// Mostly plains
	{Plains, Plains, Plains},
	{Plains, Plains, Plains},
	{Water, Plains, Plains},
	{Water, Plains, Plains},
	{Mountain, Plains, Plains},
	{Forest, Plains, Plains},
	{Field, Plains, Plains},
	// Mostly forest
	{Forest, Forest, Forest},
	{Forest, Forest, Forest},
	{Water, Forest, Forest},
	{Water, Forest, Forest},
	{Mountain, Forest, Forest},
	{Plains, Forest, Forest},
	{Field, Forest, Forest},
	{Plains, Field, Forest},
	// Mixed
	{Field, Plains, Mountain},
	{Water, Plains, Mountain},
	{Field, Mountain, Water},
	{Plains, Field, Water},
	{Plains, Forest, Mountain},
	{Field, Forest, Mountain},
	{Mountain, Forest, Water},
	{Plains, Forest, Water},
	{Field, Forest, Water},
}

// CatalogSize is the number of tiles in a full pool
const CatalogSize = len(catalog)

// Catalog returns a copy of the full tile set
func Catalog() []Tile {
	tiles := make([]Tile, CatalogSize)
	copy(tiles, catalog[:])
	return tiles
}
