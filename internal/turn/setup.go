package turn

import (
	"go.uber.org/zap"

	"chosenoffset.com/hexrealm/internal/board"
	"chosenoffset.com/hexrealm/internal/player"
)

// setupThreshold is the pool size at which board setup is complete
func (c *Controller) setupThreshold() int {
	n := board.CatalogSize - c.rules.TilesPerPlayer*c.rules.Players
	if n < 0 {
		return 0
	}
	return n
}

func (c *Controller) setupBoardPointer(p Pointer) (Kind, bool) {
	if p.Tile != nil && c.board.SlotEmpty(*p.Tile) {
		if tile, ok := c.pool.Draw(c.roller); ok {
			c.board.LayTile(*p.Tile, tile)
			c.logger.Debug("tile laid",
				zap.Stringer("a", p.Tile[0]),
				zap.Stringer("b", p.Tile[1]),
				zap.Stringer("c", p.Tile[2]),
				zap.Int("remaining", c.pool.Remaining()),
			)
		}
	}

	if c.pool.Remaining() <= c.setupThreshold() {
		return SetupCities, true
	}
	return SetupBoard, false
}

func (c *Controller) canFoundCity(pos board.Coordinate) bool {
	return c.board.SpaceOKForCity(pos) && c.inv.Has(player.City, 1) && c.inv.Has(player.Knight, 1)
}

func (c *Controller) setupCitiesPointer(p Pointer) (Kind, bool) {
	if p.Space == nil {
		return SetupCities, false
	}
	pos := *p.Space
	if !c.canFoundCity(pos) {
		c.logger.Debug("city placement rejected", zap.Stringer("position", pos))
		return SetupCities, false
	}

	owner := c.rules.ActivePlayer
	c.board.AddCity(pos, owner)
	c.board.AddKnight(pos, owner)
	c.inv.Take(player.City, 1)
	c.inv.Take(player.Knight, 1)

	if c.board.NumCities() >= c.rules.CitiesToPlace {
		return ChooseAction, true
	}
	return SetupCities, false
}
