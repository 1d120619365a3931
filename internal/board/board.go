package board

import (
	"fmt"

	"chosenoffset.com/hexrealm/internal/player"
)

// Unit is a city or knight token on the board
type Unit struct {
	Position Coordinate
	Owner    player.Color
}

// Board holds the terrain grid and the city and knight registries.
//
// Mutators apply no checks; callers run the matching Space*OK predicate first.
type Board struct {
	grid    [Width][Height]SpaceType
	cities  []Unit
	knights []Unit
}

// New creates an empty board: every space Void, no units
func New() *Board {
	return &Board{}
}

// Space returns the terrain at pos
func (b *Board) Space(pos Coordinate) SpaceType {
	return b.grid[pos.Col][pos.Row]
}

// SetSpace overwrites the terrain at pos
func (b *Board) SetSpace(pos Coordinate, kind SpaceType) {
	b.grid[pos.Col][pos.Row] = kind
}

// Cities returns a copy of the city registry in placement order
func (b *Board) Cities() []Unit {
	return append([]Unit(nil), b.cities...)
}

// Knights returns a copy of the knight registry
func (b *Board) Knights() []Unit {
	return append([]Unit(nil), b.knights...)
}

// NumCities returns the number of cities on the board
func (b *Board) NumCities() int {
	return len(b.cities)
}

// NumKnights returns the number of knights on the board
func (b *Board) NumKnights() int {
	return len(b.knights)
}

// AddCity places a city
func (b *Board) AddCity(pos Coordinate, owner player.Color) {
	b.cities = append(b.cities, Unit{Position: pos, Owner: owner})
}

// AddKnight places a knight
func (b *Board) AddKnight(pos Coordinate, owner player.Color) {
	b.knights = append(b.knights, Unit{Position: pos, Owner: owner})
}

// CityAt returns the city on pos, if any
func (b *Board) CityAt(pos Coordinate) (Unit, bool) {
	for _, c := range b.cities {
		if c.Position == pos {
			return c, true
		}
	}
	return Unit{}, false
}

// KnightsAt returns the knights on pos in registry order
func (b *Board) KnightsAt(pos Coordinate) []Unit {
	var result []Unit
	for _, k := range b.knights {
		if k.Position == pos {
			result = append(result, k)
		}
	}
	return result
}

// CountKnights counts the knights of owner on pos
func (b *Board) CountKnights(pos Coordinate, owner player.Color) int {
	n := 0
	for _, k := range b.knights {
		if k.Position == pos && k.Owner == owner {
			n++
		}
	}
	return n
}

// CountOpposingKnights counts the knights on pos not owned by owner
func (b *Board) CountOpposingKnights(pos Coordinate, owner player.Color) int {
	n := 0
	for _, k := range b.knights {
		if k.Position == pos && k.Owner != owner {
			n++
		}
	}
	return n
}

// SpaceOKForCity reports whether a new city may be founded on pos.
// Cities need buildable terrain and at least one free space between them.
func (b *Board) SpaceOKForCity(pos Coordinate) bool {
	switch b.Space(pos) {
	case Void, Water, Forest:
		return false
	}

	if _, taken := b.CityAt(pos); taken {
		return false
	}
	for _, n := range pos.Neighbors() {
		if _, taken := b.CityAt(n); taken {
			return false
		}
	}
	return true
}

// SpaceOKForKnight reports whether a knight of owner may enter pos
func (b *Board) SpaceOKForKnight(pos Coordinate, owner player.Color) bool {
	if city, ok := b.CityAt(pos); ok && city.Owner != owner {
		return false
	}

	switch b.Space(pos) {
	case Mountain:
		return b.CountOpposingKnights(pos, owner) == 0
	case Forest, Plains, Field:
		return b.CountOpposingKnights(pos, owner) < 2
	default:
		return false
	}
}

// LegalDestinations lists the neighbors of from a knight of owner may enter
func (b *Board) LegalDestinations(from Coordinate, owner player.Color) []Coordinate {
	var result []Coordinate
	for _, n := range from.Neighbors() {
		if b.SpaceOKForKnight(n, owner) {
			result = append(result, n)
		}
	}
	return result
}

// IsMovableFrom reports whether owner has a knight on pos with somewhere to go
func (b *Board) IsMovableFrom(pos Coordinate, owner player.Color) bool {
	if b.CountKnights(pos, owner) == 0 {
		return false
	}
	for _, n := range pos.Neighbors() {
		if b.SpaceOKForKnight(n, owner) {
			return true
		}
	}
	return false
}

// MoveKnight moves one knight of owner from one space to another and resolves
// any combat on the destination. It returns the knights removed by combat.
// Adjacency is not checked here; the movement phase does that.
func (b *Board) MoveKnight(from, to Coordinate, owner player.Color) ([]Unit, error) {
	idx := -1
	for i, k := range b.knights {
		if k.Position == from && k.Owner == owner {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, &MoveError{From: from, To: to, Owner: owner, Reason: "no knight to move"}
	}
	if !b.SpaceOKForKnight(to, owner) {
		return nil, &MoveError{From: from, To: to, Owner: owner,
			Reason: fmt.Sprintf("destination %s not enterable", b.Space(to))}
	}

	b.knights[idx].Position = to
	return b.ResolveCoexistence(to), nil
}

// RelocateKnight puts one knight of owner from one space onto another without
// checking the destination or resolving combat. It returns false if owner has
// no knight on from. Used to take back a move that was legal when it was made.
func (b *Board) RelocateKnight(from, to Coordinate, owner player.Color) bool {
	for i, k := range b.knights {
		if k.Position == from && k.Owner == owner {
			b.knights[i].Position = to
			return true
		}
	}
	return false
}
