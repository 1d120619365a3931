package turn

import (
	"go.uber.org/zap"

	"chosenoffset.com/hexrealm/internal/board"
)

// selectable reports whether the acting player may pick up a knight on pos.
// The knight that made the first move cannot go again unless it has company.
func (c *Controller) selectable(pos board.Coordinate) bool {
	owner := c.rules.ActivePlayer
	if !c.board.IsMovableFrom(pos, owner) {
		return false
	}
	if m := c.phase.FirstMove; m != nil && m.To == pos && c.board.CountKnights(pos, owner) <= 1 {
		return false
	}
	return true
}

func (c *Controller) legalStep(from, to board.Coordinate) bool {
	return from.IsNeighbor(to) && c.board.SpaceOKForKnight(to, c.rules.ActivePlayer)
}

func (c *Controller) movementPointer(p Pointer) (Kind, bool) {
	if p.Space == nil {
		return Movement, false
	}
	pos := *p.Space

	if c.phase.SelectedKnight == nil {
		if c.selectable(pos) {
			c.phase.SelectedKnight = &pos
		}
		return Movement, false
	}

	from := *c.phase.SelectedKnight
	if !c.legalStep(from, pos) {
		return Movement, false
	}
	casualties, err := c.board.MoveKnight(from, pos, c.rules.ActivePlayer)
	if err != nil {
		c.logger.Debug("move rejected", zap.Error(err))
		return Movement, false
	}
	c.recordCasualties(casualties)

	if c.phase.FirstMove != nil {
		return ChooseAction, true
	}
	c.phase.FirstMove = &Move{From: from, To: pos, Casualties: casualties}
	c.phase.SelectedKnight = nil
	return Movement, false
}

func (c *Controller) movementKey(k Key) (Kind, bool) {
	switch k {
	case KeyBackspace:
		switch {
		case c.phase.FirstMove != nil && c.phase.SelectedKnight == nil:
			c.undoFirstMove()
			return Movement, false
		case c.phase.SelectedKnight != nil:
			c.phase.SelectedKnight = nil
			return Movement, false
		default:
			return ChooseAction, true
		}
	case KeyY:
		if c.phase.FirstMove != nil {
			return ChooseAction, true
		}
	}
	return Movement, false
}

// undoFirstMove walks the first knight back and puts its victims back on the board
func (c *Controller) undoFirstMove() {
	m := c.phase.FirstMove
	owner := c.rules.ActivePlayer
	c.phase.FirstMove = nil
	if !c.board.RelocateKnight(m.To, m.From, owner) {
		c.logger.Warn("undo found no knight to move back", zap.Stringer("position", m.To))
		return
	}
	for _, u := range m.Casualties {
		c.board.AddKnight(u.Position, u.Owner)
	}
	c.logger.Debug("first move undone",
		zap.Stringer("from", m.To),
		zap.Stringer("to", m.From),
		zap.Int("restored", len(m.Casualties)),
	)
}
