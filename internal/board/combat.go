package board

import (
	"fmt"

	"chosenoffset.com/hexrealm/internal/player"
)

// ResolveCoexistence settles a space held by knights of more than one owner.
//
// The single owner with two or more knights on pos wins and every other
// knight there is removed and returned. Stacks below three knights and stacks
// of lone knights from three or four owners are left alone. Two owners with
// two or more knights each cannot arise through legal moves and panic with an
// *InvariantError.
func (b *Board) ResolveCoexistence(pos Coordinate) []Unit {
	tally := make(map[player.Color]int)
	present := 0
	for _, k := range b.knights {
		if k.Position == pos {
			tally[k.Owner]++
			present++
		}
	}
	if present < 3 {
		return nil
	}

	var winner player.Color
	winners := 0
	for owner, n := range tally {
		if n >= 2 {
			winner = owner
			winners++
		}
	}
	if winners > 1 {
		panic(&InvariantError{Position: pos, Detail: fmt.Sprintf("%d owners hold two or more knights", winners)})
	}
	if winners == 0 {
		return nil
	}

	var casualties []Unit
	kept := b.knights[:0]
	for _, k := range b.knights {
		if k.Position == pos && k.Owner != winner {
			casualties = append(casualties, k)
			continue
		}
		kept = append(kept, k)
	}
	b.knights = kept
	return casualties
}
