package board

// Randomizer is the random source used to draw and orient tiles
type Randomizer interface {
	Index(n int) int
	Rotation() int
}

// Pool is the bag of tiles not yet laid on the board
type Pool struct {
	remaining []Tile
	placed    []Tile
}

// NewPool creates a pool holding the full catalog
func NewPool() *Pool {
	return &Pool{remaining: Catalog()}
}

// Remaining returns how many tiles are left in the bag
func (p *Pool) Remaining() int {
	return len(p.remaining)
}

// Unplaced returns the tiles still in the bag
func (p *Pool) Unplaced() []Tile {
	return append([]Tile(nil), p.remaining...)
}

// Placed returns the tiles drawn so far, as drawn (before rotation)
func (p *Pool) Placed() []Tile {
	return append([]Tile(nil), p.placed...)
}

// Draw removes one tile uniformly at random and returns it with a random
// clockwise rotation applied. It returns false when the bag is empty.
func (p *Pool) Draw(r Randomizer) (Tile, bool) {
	if len(p.remaining) == 0 {
		return Tile{}, false
	}
	i := r.Index(len(p.remaining))
	tile := p.remaining[i]
	p.remaining = append(p.remaining[:i], p.remaining[i+1:]...)
	p.placed = append(p.placed, tile)
	return tile.Rotate(r.Rotation()), true
}

// SlotEmpty reports whether all three spaces of s are still Void
func (b *Board) SlotEmpty(s Slot) bool {
	for _, pos := range s {
		if b.Space(pos) != Void {
			return false
		}
	}
	return true
}

// LayTile writes a tile's terrain into a slot, A/B/C in clockwise order
func (b *Board) LayTile(s Slot, t Tile) {
	b.SetSpace(s[0], t.A)
	b.SetSpace(s[1], t.B)
	b.SetSpace(s[2], t.C)
}
