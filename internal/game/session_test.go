package game

import (
	"errors"
	"testing"

	"go.uber.org/zap/zaptest"

	"chosenoffset.com/hexrealm/internal/board"
	"chosenoffset.com/hexrealm/internal/config"
	"chosenoffset.com/hexrealm/internal/player"
	"chosenoffset.com/hexrealm/internal/turn"
)

func seededRules(seed int64) *config.Rules {
	r := config.Default()
	r.Seed = seed
	return r
}

func newSession(t *testing.T, seed int64) *Session {
	t.Helper()
	s, err := NewSession(seededRules(seed), zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	return s
}

func TestNewSessionRejectsInvalidRules(t *testing.T) {
	r := config.Default()
	r.Players = 0
	if _, err := NewSession(r, nil); !errors.Is(err, config.ErrInvalidRules) {
		t.Errorf("Expected ErrInvalidRules, got %v", err)
	}
}

func TestNewSessionStartsEmpty(t *testing.T) {
	s := newSession(t, 1)
	if s.Kind() != turn.SetupBoard {
		t.Errorf("Expected SetupBoard, got %s", s.Kind())
	}
	if s.Title() != "Game Setup" {
		t.Errorf("Expected the setup banner, got %q", s.Title())
	}
	if s.TilesLeft() != board.CatalogSize {
		t.Errorf("Expected a full bag, got %d", s.TilesLeft())
	}
	if s.Hand() != player.DefaultCounts() {
		t.Errorf("Expected the default hand, got %+v", s.Hand())
	}
	if s.NumCities() != 0 || s.NumKnights() != 0 {
		t.Error("Expected no pieces on a new board")
	}
}

func TestAutoSetupReachesChooseAction(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		s := newSession(t, seed)
		err := s.AutoSetup()
		if errors.Is(err, ErrSetupStuck) {
			continue
		}
		if err != nil {
			t.Fatalf("Expected ErrSetupStuck or nil, got %v", err)
		}
		if s.Kind() != turn.ChooseAction {
			t.Fatalf("Expected ChooseAction, got %s", s.Kind())
		}
		if s.NumCities() != 3 || s.NumKnights() != 3 {
			t.Errorf("Expected 3 cities and 3 knights, got %d and %d", s.NumCities(), s.NumKnights())
		}
		if s.TilesLeft() != board.CatalogSize-9 {
			t.Errorf("Expected %d tiles left, got %d", board.CatalogSize-9, s.TilesLeft())
		}
		return
	}
	t.Fatal("Expected at least one seed to complete setup")
}

func TestSeededSessionsMatch(t *testing.T) {
	a, b := newSession(t, 11), newSession(t, 11)
	errA, errB := a.AutoSetup(), b.AutoSetup()
	if (errA == nil) != (errB == nil) {
		t.Fatalf("Expected the same outcome, got %v and %v", errA, errB)
	}
	for _, pos := range board.AllCoordinates() {
		if a.Space(pos) != b.Space(pos) {
			t.Fatalf("Expected identical maps, differ at %s", pos)
		}
	}
}

func TestRestartStartsOver(t *testing.T) {
	s := newSession(t, 3)
	id := s.ID
	var transitions int
	s.OnTransition = func(from, to turn.Kind) { transitions++ }

	_ = s.AutoSetup()
	if transitions == 0 {
		t.Fatal("Expected transitions during setup")
	}

	s.Restart()
	if s.ID == id {
		t.Error("Expected a new session id")
	}
	if s.Kind() != turn.SetupBoard || s.TilesLeft() != board.CatalogSize || s.NumCities() != 0 {
		t.Errorf("Expected a fresh game, got %s with %d tiles and %d cities", s.Kind(), s.TilesLeft(), s.NumCities())
	}
	if s.Hand() != player.DefaultCounts() {
		t.Errorf("Expected a full hand, got %+v", s.Hand())
	}

	before := transitions
	s.Finish()
	if transitions != before+1 {
		t.Error("Expected callbacks to survive a restart")
	}
	if s.Kind() != turn.End || s.Title() != "Game Over" {
		t.Errorf("Expected End, got %s", s.Kind())
	}
}

func TestHandChangesAreReported(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		s := newSession(t, seed)
		var reports []player.Counts
		s.OnHandChange = func(hand player.Counts) { reports = append(reports, hand) }

		if err := s.AutoSetup(); err != nil {
			continue
		}
		if len(reports) != 6 {
			t.Fatalf("Expected a report per city and knight placed, got %d", len(reports))
		}
		if last := reports[len(reports)-1]; last != s.Hand() {
			t.Errorf("Expected the last report to match the hand, got %+v and %+v", last, s.Hand())
		}

		s.Restart()
		reports = nil
		if err := s.AutoSetup(); err != nil {
			t.Fatalf("Expected the same seed to set up again, got %v", err)
		}
		if len(reports) != 6 {
			t.Errorf("Expected reports to survive a restart, got %d", len(reports))
		}
		return
	}
	t.Fatal("Expected at least one seed to complete setup")
}
