package board

import (
	"errors"
	"fmt"

	"chosenoffset.com/hexrealm/internal/player"
)

// ErrIllegalMove is returned when a knight move fails its legality check.
// The board is never modified when it is returned.
var ErrIllegalMove = errors.New("illegal move")

// MoveError describes a rejected knight move
type MoveError struct {
	From   Coordinate
	To     Coordinate
	Owner  player.Color
	Reason string
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("illegal move %s -> %s for %s: %s", e.From, e.To, e.Owner, e.Reason)
}

// Unwrap lets errors.Is match ErrIllegalMove
func (e *MoveError) Unwrap() error {
	return ErrIllegalMove
}

// InvariantError reports board state that legality checks should have made
// impossible. It is raised with panic and must not be recovered.
type InvariantError struct {
	Position Coordinate
	Detail   string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("board invariant violated at %s: %s", e.Position, e.Detail)
}
