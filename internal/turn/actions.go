package turn

import (
	"go.uber.org/zap"

	"chosenoffset.com/hexrealm/internal/player"
)

// actionKinds maps the digits 1-6 to the action phases
var actionKinds = [6]Kind{Recruitment, Movement, Construction, NewCity, Expedition, NobleTitle}

func (c *Controller) chooseActionKey(k Key) (Kind, bool) {
	n, ok := k.Digit()
	if !ok {
		return ChooseAction, false
	}
	next := actionKinds[n-1]
	if !c.Viable(next) {
		c.logger.Debug("action not available", zap.Stringer("action", next))
		return ChooseAction, false
	}
	return next, true
}

// Viable reports whether the acting player can currently start an action
func (c *Controller) Viable(action Kind) bool {
	owner := c.rules.ActivePlayer
	switch action {
	case Recruitment:
		return c.inv.Has(player.Knight, 1) && c.ownsCity()
	case Movement:
		for _, k := range c.board.Knights() {
			if k.Owner == owner && c.board.IsMovableFrom(k.Position, owner) {
				return true
			}
		}
		return false
	case Construction:
		return c.ownsKnight() && (c.inv.Has(player.Stronghold, 1) || c.inv.Has(player.Village, 1))
	case NewCity:
		return c.inv.Has(player.City, 1)
	case Expedition:
		return c.inv.Has(player.Knight, 1)
	case NobleTitle:
		return true
	default:
		return false
	}
}

func (c *Controller) ownsCity() bool {
	for _, city := range c.board.Cities() {
		if city.Owner == c.rules.ActivePlayer {
			return true
		}
	}
	return false
}

func (c *Controller) ownsKnight() bool {
	for _, k := range c.board.Knights() {
		if k.Owner == c.rules.ActivePlayer {
			return true
		}
	}
	return false
}

// pendingActionKey serves the actions that only support backing out
func (c *Controller) pendingActionKey(k Key) (Kind, bool) {
	if k == KeyBackspace {
		return ChooseAction, true
	}
	return c.phase.Kind, false
}
