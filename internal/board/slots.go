package board

// Slot is the triangle of three mutually adjacent spaces a tile covers, in
// clockwise order
type Slot [3]Coordinate

// Slot grid dimensions. Slots are addressed by the triangle they form when the
// centers of adjacent spaces are joined: x is the column the triangle's
// vertical edge sits on, y counts triangles upward in half-space steps.
const (
	SlotColumns = Width - 1
	SlotRows    = (Height - 1) * 2
)

// SlotAt returns the slot addressed by triangle (x, y), or false if there is none
func SlotAt(x, y int) (Slot, bool) {
	if x < 0 || y < 0 || x >= SlotColumns || y >= SlotRows {
		return Slot{}, false
	}

	if x%2 == y%2 {
		// two spaces on the left, one on the right
		lowerLeft := At(x, y/2)
		upperLeft, ok := lowerLeft.Up()
		if !ok {
			return Slot{}, false
		}
		right, ok := lowerLeft.UpRight()
		if !ok {
			return Slot{}, false
		}
		return Slot{lowerLeft, upperLeft, right}, true
	}

	// two spaces on the right, one on the left; even columns sit lower
	row := y / 2
	if x%2 == 0 {
		row++
	}
	left := At(x, row)
	upperRight, ok := left.UpRight()
	if !ok {
		return Slot{}, false
	}
	lowerRight, ok := left.DownRight()
	if !ok {
		return Slot{}, false
	}
	return Slot{left, upperRight, lowerRight}, true
}

// Slots returns every tile slot on the grid
func Slots() []Slot {
	result := make([]Slot, 0, SlotColumns*SlotRows)
	for x := 0; x < SlotColumns; x++ {
		for y := 0; y < SlotRows; y++ {
			if s, ok := SlotAt(x, y); ok {
				result = append(result, s)
			}
		}
	}
	return result
}

// Contains reports whether the slot covers pos
func (s Slot) Contains(pos Coordinate) bool {
	return s[0] == pos || s[1] == pos || s[2] == pos
}
