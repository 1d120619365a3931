package turn

import (
	"go.uber.org/zap"

	"chosenoffset.com/hexrealm/internal/board"
	"chosenoffset.com/hexrealm/internal/player"
)

func (c *Controller) ownCityAt(pos board.Coordinate) bool {
	city, ok := c.board.CityAt(pos)
	return ok && city.Owner == c.rules.ActivePlayer
}

// MaxRecruits returns how many knights may be added to the city on pos:
// three for a harbor city, two otherwise, never more than remain in hand
func (c *Controller) MaxRecruits(pos board.Coordinate) int {
	limit := 2
	for _, n := range pos.Neighbors() {
		if c.board.Space(n) == board.Water {
			limit = 3
			break
		}
	}
	if have := c.inv.Count(player.Knight); have < limit {
		limit = have
	}
	return limit
}

func (c *Controller) recruitmentPointer(p Pointer) (Kind, bool) {
	if p.Space != nil && c.ownCityAt(*p.Space) {
		pos := *p.Space
		c.phase.SelectedCity = &pos
	} else {
		c.phase.SelectedCity = nil
	}
	return Recruitment, false
}

func (c *Controller) recruitmentKey(k Key) (Kind, bool) {
	if k == KeyBackspace {
		if c.phase.SelectedCity != nil {
			c.phase.SelectedCity = nil
			return Recruitment, false
		}
		return ChooseAction, true
	}

	n, ok := k.Digit()
	if !ok || n > 3 || c.phase.SelectedCity == nil {
		return Recruitment, false
	}
	city := *c.phase.SelectedCity
	if n > c.MaxRecruits(city) {
		c.logger.Debug("recruitment rejected",
			zap.Stringer("city", city),
			zap.Int("requested", n),
			zap.Int("max", c.MaxRecruits(city)),
		)
		return Recruitment, false
	}

	for i := 0; i < n; i++ {
		c.board.AddKnight(city, c.rules.ActivePlayer)
	}
	c.inv.Take(player.Knight, n)
	return ChooseAction, true
}
