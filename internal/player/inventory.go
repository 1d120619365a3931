package player

import (
	"fmt"
	"sort"
)

// Piece is a kind of token a player places on the board
type Piece int

const (
	City Piece = iota
	Stronghold
	Village
	Knight
)

// Pieces lists every piece kind in display order
var Pieces = [4]Piece{City, Stronghold, Village, Knight}

// String returns the piece name
func (p Piece) String() string {
	switch p {
	case City:
		return "city"
	case Stronghold:
		return "stronghold"
	case Village:
		return "village"
	case Knight:
		return "knight"
	default:
		return "unknown"
	}
}

// Counts is a starting allotment of pieces
type Counts struct {
	Cities      int `json:"cities"`
	Strongholds int `json:"strongholds"`
	Villages    int `json:"villages"`
	Knights     int `json:"knights"`
}

// DefaultCounts is the allotment a player starts the game with
func DefaultCounts() Counts {
	return Counts{
		Cities:      7,
		Strongholds: 6,
		Villages:    14,
		Knights:     24,
	}
}

// Inventory holds the remaining pieces of the acting player.
//
// There is one Inventory per session, not one per seat. Callers must not use
// it from more than one goroutine.
type Inventory struct {
	// Slots maps piece kind to the number still in hand
	Slots map[Piece]int

	// OnChange callback when inventory changes (for UI updates)
	OnChange func()
}

// New creates an inventory holding the given counts
func New(c Counts) *Inventory {
	inv := &Inventory{Slots: make(map[Piece]int, len(Pieces))}
	inv.Slots[City] = c.Cities
	inv.Slots[Stronghold] = c.Strongholds
	inv.Slots[Village] = c.Villages
	inv.Slots[Knight] = c.Knights
	return inv
}

// Count returns how many of a piece remain (0 if none)
func (inv *Inventory) Count(p Piece) int {
	return inv.Slots[p]
}

// Has reports whether at least n of a piece remain
func (inv *Inventory) Has(p Piece, n int) bool {
	return inv.Slots[p] >= n
}

// Take removes n of a piece, returns false and leaves the inventory untouched
// if fewer than n remain
func (inv *Inventory) Take(p Piece, n int) bool {
	if n <= 0 {
		return true
	}
	if inv.Slots[p] < n {
		return false
	}
	inv.Slots[p] -= n
	inv.notifyChange()
	return true
}

// Snapshot returns the current counts
func (inv *Inventory) Snapshot() Counts {
	return Counts{
		Cities:      inv.Slots[City],
		Strongholds: inv.Slots[Stronghold],
		Villages:    inv.Slots[Village],
		Knights:     inv.Slots[Knight],
	}
}

// Total returns the number of pieces of every kind still in hand
func (inv *Inventory) Total() int {
	total := 0
	for _, n := range inv.Slots {
		total += n
	}
	return total
}

// notifyChange calls the OnChange callback if set
func (inv *Inventory) notifyChange() {
	if inv.OnChange != nil {
		inv.OnChange()
	}
}

// Debug returns a string representation of the inventory
func (inv *Inventory) Debug() string {
	kinds := make([]Piece, 0, len(inv.Slots))
	for p := range inv.Slots {
		kinds = append(kinds, p)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	s := "Inventory{"
	for i, p := range kinds {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%s: %d", p, inv.Slots[p])
	}
	return s + "}"
}
