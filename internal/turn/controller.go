package turn

import (
	"go.uber.org/zap"

	"chosenoffset.com/hexrealm/internal/board"
	"chosenoffset.com/hexrealm/internal/player"
)

// Rules are the numbers the state machine needs from the game configuration
type Rules struct {
	Players        int          // Seats at the table; sizes the map
	TilesPerPlayer int          // Tiles laid per seat during board setup
	CitiesToPlace  int          // Cities placed before the first action
	ActivePlayer   player.Color // Owner of everything placed or moved
}

// DefaultRules returns the standard single-seat rules
func DefaultRules() Rules {
	return Rules{
		Players:        1,
		TilesPerPlayer: 9,
		CitiesToPlace:  3,
		ActivePlayer:   player.Red,
	}
}

// Controller runs the phase state machine over a board and an inventory.
//
// OnPointer and OnKey must be called serially; nothing here locks.
type Controller struct {
	board  *board.Board
	pool   *board.Pool
	inv    *player.Inventory
	roller board.Randomizer
	rules  Rules
	logger *zap.Logger

	phase          Phase
	lastCasualties []board.Unit

	// Callbacks
	OnTransition func(from, to Kind)
	OnCombat     func(casualties []board.Unit)
}

// NewController creates a controller in the SetupBoard phase
func NewController(b *board.Board, pool *board.Pool, inv *player.Inventory, roller board.Randomizer, rules Rules, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		board:  b,
		pool:   pool,
		inv:    inv,
		roller: roller,
		rules:  rules,
		logger: logger,
		phase:  Phase{Kind: SetupBoard},
	}
}

// Phase returns a copy of the live phase
func (c *Controller) Phase() Phase {
	return c.phase.clone()
}

// Kind returns the kind of the live phase
func (c *Controller) Kind() Kind {
	return c.phase.Kind
}

// Rules returns the rules the controller was built with
func (c *Controller) Rules() Rules {
	return c.rules
}

// LastCasualties returns the knights removed by the most recent combat.
// They are not returned to anyone's inventory.
func (c *Controller) LastCasualties() []board.Unit {
	return append([]board.Unit(nil), c.lastCasualties...)
}

// OnPointer handles a pointer activation. It reports whether the phase changed.
func (c *Controller) OnPointer(p Pointer) bool {
	var (
		next Kind
		ok   bool
	)
	switch c.phase.Kind {
	case SetupBoard:
		next, ok = c.setupBoardPointer(p)
	case SetupCities:
		next, ok = c.setupCitiesPointer(p)
	case ChooseAction:
	case Recruitment:
		next, ok = c.recruitmentPointer(p)
	case Movement:
		next, ok = c.movementPointer(p)
	case Construction, NewCity, Expedition, NobleTitle:
	case End:
	}
	if ok {
		c.transition(next)
	}
	return ok
}

// OnKey handles a key press. It reports whether the phase changed.
func (c *Controller) OnKey(k Key) bool {
	var (
		next Kind
		ok   bool
	)
	switch c.phase.Kind {
	case SetupBoard, SetupCities:
	case ChooseAction:
		next, ok = c.chooseActionKey(k)
	case Recruitment:
		next, ok = c.recruitmentKey(k)
	case Movement:
		next, ok = c.movementKey(k)
	case Construction, NewCity, Expedition, NobleTitle:
		next, ok = c.pendingActionKey(k)
	case End:
	}
	if ok {
		c.transition(next)
	}
	return ok
}

// PointerAccepted reports whether activating the pointer at p would do
// something in the live phase. The renderer uses it to tint highlights.
func (c *Controller) PointerAccepted(p Pointer) bool {
	switch c.phase.Kind {
	case SetupBoard:
		return p.Tile != nil && c.board.SlotEmpty(*p.Tile)
	case SetupCities:
		return p.Space != nil && c.canFoundCity(*p.Space)
	case Recruitment:
		return p.Space != nil && c.ownCityAt(*p.Space)
	case Movement:
		if p.Space == nil {
			return false
		}
		if c.phase.SelectedKnight == nil {
			return c.selectable(*p.Space)
		}
		return c.legalStep(*c.phase.SelectedKnight, *p.Space)
	default:
		return false
	}
}

// Finish moves the machine to End from any phase
func (c *Controller) Finish() {
	if c.phase.Kind != End {
		c.transition(End)
	}
}

func (c *Controller) transition(next Kind) {
	from := c.phase.Kind
	c.phase = Phase{Kind: next}
	c.logger.Info("phase transition",
		zap.Stringer("from", from),
		zap.Stringer("to", next),
	)
	if c.OnTransition != nil {
		c.OnTransition(from, next)
	}
}

func (c *Controller) recordCasualties(casualties []board.Unit) {
	c.lastCasualties = append([]board.Unit(nil), casualties...)
	if len(casualties) == 0 {
		return
	}
	for _, u := range casualties {
		c.logger.Info("knight lost in combat",
			zap.Stringer("position", u.Position),
			zap.Stringer("owner", u.Owner),
		)
	}
	if c.OnCombat != nil {
		c.OnCombat(casualties)
	}
}
