package turn

import "chosenoffset.com/hexrealm/internal/board"

// Key is a key symbol already translated by the input layer
type Key int

const (
	KeyUnknown Key = iota
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	KeyBackspace
	KeyY
)

// Digit returns the number on a digit key
func (k Key) Digit() (int, bool) {
	if k >= Key1 && k <= Key6 {
		return int(k-Key1) + 1, true
	}
	return 0, false
}

// DigitKey returns the key for digit n (1-6), or KeyUnknown
func DigitKey(n int) Key {
	if n < 1 || n > 6 {
		return KeyUnknown
	}
	return Key1 + Key(n-1)
}

// Pointer is what lies under the pointer when it is activated. Either field
// may be nil when the pointer is off the board.
type Pointer struct {
	Space *board.Coordinate // Single space, used after board setup
	Tile  *board.Slot       // Three-space slot, used during board setup
}

// PointAt builds a pointer event over one space
func PointAt(pos board.Coordinate) Pointer {
	return Pointer{Space: &pos}
}

// PointAtSlot builds a pointer event over a tile slot
func PointAtSlot(s board.Slot) Pointer {
	return Pointer{Tile: &s}
}
