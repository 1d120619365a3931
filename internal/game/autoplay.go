package game

import (
	"errors"
	"fmt"

	"chosenoffset.com/hexrealm/internal/board"
	"chosenoffset.com/hexrealm/internal/dice"
	"chosenoffset.com/hexrealm/internal/turn"
)

// ErrSetupStuck is returned when automatic setup runs out of places to try
var ErrSetupStuck = errors.New("setup stuck")

// AutoSetup plays both setup phases with random but legal choices, leaving
// the session in ChooseAction. It draws from the session's own random source
// so a seeded session always produces the same map.
func (s *Session) AutoSetup() error {
	if s.Kind() == turn.SetupBoard {
		slots := board.Slots()
		shuffle(s.roller, slots)
		for _, slot := range slots {
			if s.Kind() != turn.SetupBoard {
				break
			}
			s.OnPointer(turn.PointAtSlot(slot))
		}
		if s.Kind() == turn.SetupBoard {
			return fmt.Errorf("%w: %d tiles left in the bag", ErrSetupStuck, s.TilesLeft())
		}
	}

	if s.Kind() == turn.SetupCities {
		spaces := board.AllCoordinates()
		shuffle(s.roller, spaces)
		for _, pos := range spaces {
			if s.Kind() != turn.SetupCities {
				break
			}
			s.OnPointer(turn.PointAt(pos))
		}
		if s.Kind() == turn.SetupCities {
			return fmt.Errorf("%w: only %d cities fit the map", ErrSetupStuck, s.NumCities())
		}
	}
	return nil
}

// shuffle permutes items in place with the session's random source
func shuffle[T any](r *dice.Roller, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := r.Index(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}
