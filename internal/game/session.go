// Package game ties a board, a tile pool, the acting player's inventory and
// the turn controller into one playable session.
package game

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"chosenoffset.com/hexrealm/internal/board"
	"chosenoffset.com/hexrealm/internal/config"
	"chosenoffset.com/hexrealm/internal/dice"
	"chosenoffset.com/hexrealm/internal/player"
	"chosenoffset.com/hexrealm/internal/turn"
)

// Session is one game from board setup onwards
type Session struct {
	ID uuid.UUID

	rules  config.Rules
	base   *zap.Logger
	logger *zap.Logger

	roller *dice.Roller
	board  *board.Board
	pool   *board.Pool
	inv    *player.Inventory
	ctrl   *turn.Controller

	// Callbacks, kept across restarts
	OnTransition func(from, to turn.Kind)
	OnCombat     func(casualties []board.Unit)
	OnHandChange func(hand player.Counts)
}

// NewSession validates the rules and starts a fresh game
func NewSession(rules *config.Rules, logger *zap.Logger) (*Session, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Session{rules: *rules, base: logger}
	s.Restart()
	return s, nil
}

// Restart throws the current game away and starts over from board setup.
// A fixed seed replays the same tile draws.
func (s *Session) Restart() {
	s.ID = uuid.New()
	s.logger = s.base.With(zap.Stringer("session", s.ID))

	s.roller = dice.Seeded(s.rules.Seed)
	s.board = board.New()
	s.pool = board.NewPool()
	s.inv = player.New(s.rules.Counts())
	s.inv.OnChange = func() {
		s.logger.Debug("hand changed", zap.String("hand", s.inv.Debug()), zap.Int("total", s.inv.Total()))
		if s.OnHandChange != nil {
			s.OnHandChange(s.inv.Snapshot())
		}
	}
	s.ctrl = turn.NewController(s.board, s.pool, s.inv, s.roller, s.rules.TurnRules(), s.logger)
	s.ctrl.OnTransition = func(from, to turn.Kind) {
		if s.OnTransition != nil {
			s.OnTransition(from, to)
		}
	}
	s.ctrl.OnCombat = func(casualties []board.Unit) {
		if s.OnCombat != nil {
			s.OnCombat(casualties)
		}
	}

	s.logger.Info("session started",
		zap.Int("players", s.rules.Players),
		zap.Stringer("owner", s.rules.Color()),
		zap.Int64("seed", s.rules.Seed),
		zap.String("hand", s.inv.Debug()),
	)
}

// Rules returns the rules the session was started with
func (s *Session) Rules() config.Rules {
	return s.rules
}

// OnPointer forwards a pointer activation to the controller
func (s *Session) OnPointer(p turn.Pointer) bool {
	return s.ctrl.OnPointer(p)
}

// OnKey forwards a key press to the controller
func (s *Session) OnKey(k turn.Key) bool {
	return s.ctrl.OnKey(k)
}

// PointerAccepted reports whether activating p would do anything
func (s *Session) PointerAccepted(p turn.Pointer) bool {
	return s.ctrl.PointerAccepted(p)
}

// Finish ends the game
func (s *Session) Finish() {
	s.ctrl.Finish()
}

// Phase returns a copy of the live phase
func (s *Session) Phase() turn.Phase {
	return s.ctrl.Phase()
}

// Kind returns the live phase kind
func (s *Session) Kind() turn.Kind {
	return s.ctrl.Kind()
}

// Title is the banner headline for the live phase
func (s *Session) Title() string {
	return s.ctrl.Kind().Title()
}

// Instructions are the hint lines for the live phase
func (s *Session) Instructions() []string {
	return s.ctrl.Phase().Instructions()
}

// Viable reports whether an action can be started right now
func (s *Session) Viable(action turn.Kind) bool {
	return s.ctrl.Viable(action)
}

// LastCasualties returns the knights lost in the latest combat
func (s *Session) LastCasualties() []board.Unit {
	return s.ctrl.LastCasualties()
}

// Space returns the terrain on pos
func (s *Session) Space(pos board.Coordinate) board.SpaceType {
	return s.board.Space(pos)
}

// Cities returns every city on the board
func (s *Session) Cities() []board.Unit {
	return s.board.Cities()
}

// Knights returns every knight on the board
func (s *Session) Knights() []board.Unit {
	return s.board.Knights()
}

// NumCities returns how many cities stand on the board
func (s *Session) NumCities() int {
	return s.board.NumCities()
}

// NumKnights returns how many knights stand on the board
func (s *Session) NumKnights() int {
	return s.board.NumKnights()
}

// TilesLeft returns how many tiles are still in the bag
func (s *Session) TilesLeft() int {
	return s.pool.Remaining()
}

// Hand returns the acting player's remaining pieces
func (s *Session) Hand() player.Counts {
	return s.inv.Snapshot()
}
