package turn

import (
	"math/rand"
	"testing"

	"go.uber.org/zap/zaptest"

	"chosenoffset.com/hexrealm/internal/board"
	"chosenoffset.com/hexrealm/internal/dice"
	"chosenoffset.com/hexrealm/internal/player"
)

// fixture bundles a controller with the state it drives
type fixture struct {
	c     *Controller
	board *board.Board
	pool  *board.Pool
	inv   *player.Inventory
}

func newFixture(t *testing.T, b *board.Board, counts player.Counts, seed int64) *fixture {
	t.Helper()
	pool := board.NewPool()
	inv := player.New(counts)
	roller := dice.NewRoller(rand.New(rand.NewSource(seed)))
	c := NewController(b, pool, inv, roller, DefaultRules(), zaptest.NewLogger(t))
	return &fixture{c: c, board: b, pool: pool, inv: inv}
}

// filled returns a board with every space set to kind
func filled(kind board.SpaceType) *board.Board {
	b := board.New()
	for _, pos := range board.AllCoordinates() {
		b.SetSpace(pos, kind)
	}
	return b
}

// enter forces the controller into a phase, as a transition would
func (f *fixture) enter(k Kind) {
	f.c.phase = Phase{Kind: k}
}

func TestNewControllerStartsInSetupBoard(t *testing.T) {
	f := newFixture(t, board.New(), player.DefaultCounts(), 1)
	if f.c.Kind() != SetupBoard {
		t.Errorf("Expected SetupBoard, got %s", f.c.Kind())
	}
}

func TestPhaseReturnsCopy(t *testing.T) {
	f := newFixture(t, filled(board.Plains), player.DefaultCounts(), 1)
	f.enter(Movement)
	pos := board.At(1, 1)
	f.c.phase.SelectedKnight = &pos

	snapshot := f.c.Phase()
	snapshot.SelectedKnight.Col = 9
	snapshot.SelectedKnight = nil

	if f.c.phase.SelectedKnight == nil || *f.c.phase.SelectedKnight != board.At(1, 1) {
		t.Errorf("Expected live phase untouched, got %v", f.c.phase.SelectedKnight)
	}
}

func TestTransitionCallback(t *testing.T) {
	f := newFixture(t, filled(board.Plains), player.DefaultCounts(), 1)
	f.enter(Construction)

	var from, to Kind
	f.c.OnTransition = func(a, b Kind) { from, to = a, b }
	f.c.OnKey(KeyBackspace)

	if from != Construction || to != ChooseAction {
		t.Errorf("Expected Construction -> ChooseAction, got %s -> %s", from, to)
	}
}

func TestPendingActionsOnlyBackOut(t *testing.T) {
	for _, k := range []Kind{Construction, NewCity, Expedition, NobleTitle} {
		t.Run(k.String(), func(t *testing.T) {
			f := newFixture(t, filled(board.Plains), player.DefaultCounts(), 1)
			f.enter(k)

			if f.c.OnPointer(PointAt(board.At(3, 3))) {
				t.Error("Expected pointer to be ignored")
			}
			for _, key := range []Key{Key1, KeyY, KeyUnknown} {
				if f.c.OnKey(key) {
					t.Errorf("Expected key %d to be ignored", key)
				}
			}
			if !f.c.OnKey(KeyBackspace) || f.c.Kind() != ChooseAction {
				t.Errorf("Expected Backspace to return to ChooseAction, got %s", f.c.Kind())
			}
		})
	}
}

func TestEndIgnoresEverything(t *testing.T) {
	f := newFixture(t, filled(board.Plains), player.DefaultCounts(), 1)
	f.c.Finish()
	if f.c.Kind() != End {
		t.Fatalf("Expected End, got %s", f.c.Kind())
	}
	if f.c.OnKey(KeyBackspace) || f.c.OnKey(Key1) || f.c.OnPointer(PointAt(board.At(0, 0))) {
		t.Error("Expected End to ignore all input")
	}
	f.c.Finish()
	if f.c.Kind() != End {
		t.Errorf("Expected Finish to be idempotent, got %s", f.c.Kind())
	}
}

func TestInstructionsFollowSubState(t *testing.T) {
	p := Phase{Kind: Movement}
	if got := p.Instructions()[0]; got != "Select a knight to move." {
		t.Errorf("Expected the idle movement hint, got %q", got)
	}
	p.FirstMove = &Move{From: board.At(1, 1), To: board.At(1, 2)}
	if got := p.Instructions()[0]; got != "Select a second knight to move, or press Y to finish." {
		t.Errorf("Expected the second-move hint, got %q", got)
	}
	if End.Title() != "Game Over" || SetupBoard.Title() != "Game Setup" {
		t.Errorf("Expected banner titles, got %q and %q", End.Title(), SetupBoard.Title())
	}
}

func TestDigitKeys(t *testing.T) {
	for n := 1; n <= 6; n++ {
		d, ok := DigitKey(n).Digit()
		if !ok || d != n {
			t.Errorf("Expected digit %d to round trip, got %d (ok=%v)", n, d, ok)
		}
	}
	if DigitKey(7) != KeyUnknown || DigitKey(0) != KeyUnknown {
		t.Error("Expected out-of-range digits to map to KeyUnknown")
	}
	if _, ok := KeyBackspace.Digit(); ok {
		t.Error("Expected Backspace not to be a digit")
	}
}
