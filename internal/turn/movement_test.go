package turn

import (
	"testing"

	"chosenoffset.com/hexrealm/internal/board"
	"chosenoffset.com/hexrealm/internal/player"
)

func moving(t *testing.T) *fixture {
	t.Helper()
	f := newFixture(t, filled(board.Plains), player.DefaultCounts(), 1)
	f.enter(Movement)
	return f
}

func step(t *testing.T, f *fixture, from, to board.Coordinate) bool {
	t.Helper()
	f.c.OnPointer(PointAt(from))
	if f.c.Phase().SelectedKnight == nil {
		t.Fatalf("Expected knight on %s to be selectable", from)
	}
	return f.c.OnPointer(PointAt(to))
}

func TestMovementTwoMoves(t *testing.T) {
	f := moving(t)
	a, b := board.At(4, 3), board.At(8, 3)
	f.board.AddKnight(a, player.Red)
	f.board.AddKnight(b, player.Red)
	aUp, _ := a.Up()
	bUp, _ := b.Up()

	if step(t, f, a, aUp) {
		t.Fatal("Expected the first move to stay in Movement")
	}
	first := f.c.Phase().FirstMove
	if first == nil || first.From != a || first.To != aUp {
		t.Fatalf("Expected first move %s -> %s, got %+v", a, aUp, first)
	}
	if f.c.Phase().SelectedKnight != nil {
		t.Error("Expected selection cleared after the first move")
	}

	if !step(t, f, b, bUp) {
		t.Fatal("Expected the second move to end the action")
	}
	if f.c.Kind() != ChooseAction {
		t.Errorf("Expected ChooseAction, got %s", f.c.Kind())
	}
	if f.board.CountKnights(bUp, player.Red) != 1 {
		t.Error("Expected second knight moved")
	}
}

func TestMovementRejectsFarAndBlockedSteps(t *testing.T) {
	f := moving(t)
	a := board.At(4, 3)
	f.board.AddKnight(a, player.Red)
	f.c.OnPointer(PointAt(a))

	f.c.OnPointer(PointAt(board.At(4, 5)))
	if f.board.CountKnights(a, player.Red) != 1 {
		t.Error("Expected a two-space move to be ignored")
	}

	up, _ := a.Up()
	f.board.SetSpace(up, board.Water)
	if f.c.PointerAccepted(PointAt(up)) {
		t.Error("Expected water not to be highlighted")
	}
	f.c.OnPointer(PointAt(up))
	if f.c.Phase().FirstMove != nil {
		t.Error("Expected a move onto water to be ignored")
	}
	if f.c.Phase().SelectedKnight == nil {
		t.Error("Expected the knight to stay selected")
	}
}

func TestMovementUndoIsExactInverse(t *testing.T) {
	f := moving(t)
	target := board.At(6, 3)
	from, _ := target.Up()
	f.board.AddKnight(target, player.Red)
	f.board.AddKnight(target, player.Blue)
	f.board.AddKnight(from, player.Red)
	hand := f.inv.Snapshot()

	var fought []board.Unit
	f.c.OnCombat = func(c []board.Unit) { fought = c }
	step(t, f, from, target)

	casualties := f.c.LastCasualties()
	if len(casualties) != 1 || casualties[0].Owner != player.Blue || casualties[0].Position != target {
		t.Fatalf("Expected one blue casualty on %s, got %+v", target, casualties)
	}
	if len(fought) != 1 {
		t.Errorf("Expected the combat callback to fire once, got %+v", fought)
	}
	if f.inv.Snapshot() != hand {
		t.Errorf("Expected casualties not to be credited to any hand, got %+v", f.inv.Snapshot())
	}

	if f.c.OnKey(KeyBackspace) {
		t.Fatal("Expected undo to stay in Movement")
	}
	if f.c.Phase().FirstMove != nil {
		t.Error("Expected first move cleared by undo")
	}
	checks := []struct {
		pos   board.Coordinate
		owner player.Color
		want  int
	}{
		{target, player.Red, 1},
		{target, player.Blue, 1},
		{from, player.Red, 1},
	}
	for _, c := range checks {
		if got := f.board.CountKnights(c.pos, c.owner); got != c.want {
			t.Errorf("Expected %d %s knights on %s after undo, got %d", c.want, c.owner, c.pos, got)
		}
	}
	if f.board.NumKnights() != 3 {
		t.Errorf("Expected 3 knights after undo, got %d", f.board.NumKnights())
	}
}

func TestMovementUndoReturnsToContestedSpace(t *testing.T) {
	f := moving(t)
	from := board.At(6, 3)
	to, _ := from.Up()
	f.board.AddKnight(from, player.Red)
	f.board.AddKnight(from, player.Blue)
	f.board.AddKnight(from, player.Green)

	step(t, f, from, to)
	if f.c.OnKey(KeyBackspace) {
		t.Fatal("Expected undo to stay in Movement")
	}
	if f.c.Phase().FirstMove != nil {
		t.Error("Expected first move cleared by undo")
	}
	checks := []struct {
		pos   board.Coordinate
		owner player.Color
		want  int
	}{
		{from, player.Red, 1},
		{to, player.Red, 0},
		{from, player.Blue, 1},
		{from, player.Green, 1},
	}
	for _, c := range checks {
		if got := f.board.CountKnights(c.pos, c.owner); got != c.want {
			t.Errorf("Expected %d %s knights on %s after undo, got %d", c.want, c.owner, c.pos, got)
		}
	}

	if !f.c.OnKey(KeyBackspace) || f.c.Kind() != ChooseAction {
		t.Errorf("Expected a second Backspace to leave movement, got %s", f.c.Kind())
	}
}

func TestMovementMovedKnightCannotGoAgainAlone(t *testing.T) {
	f := moving(t)
	a := board.At(4, 3)
	f.board.AddKnight(a, player.Red)
	up, _ := a.Up()
	step(t, f, a, up)

	f.c.OnPointer(PointAt(up))
	if f.c.Phase().SelectedKnight != nil {
		t.Error("Expected the moved knight not to be selectable again")
	}

	f.board.AddKnight(up, player.Red)
	f.c.OnPointer(PointAt(up))
	if f.c.Phase().SelectedKnight == nil {
		t.Error("Expected a knight sharing the space to be selectable")
	}
}

func TestMovementKeys(t *testing.T) {
	t.Run("Y before any move", func(t *testing.T) {
		f := moving(t)
		if f.c.OnKey(KeyY) {
			t.Error("Expected Y to be ignored before the first move")
		}
	})

	t.Run("Y after one move", func(t *testing.T) {
		f := moving(t)
		a := board.At(4, 3)
		f.board.AddKnight(a, player.Red)
		up, _ := a.Up()
		step(t, f, a, up)
		if !f.c.OnKey(KeyY) || f.c.Kind() != ChooseAction {
			t.Errorf("Expected Y to finish movement, got %s", f.c.Kind())
		}
		if f.board.CountKnights(up, player.Red) != 1 {
			t.Error("Expected the first move to stand")
		}
	})

	t.Run("Backspace deselects then leaves", func(t *testing.T) {
		f := moving(t)
		a := board.At(4, 3)
		f.board.AddKnight(a, player.Red)
		f.c.OnPointer(PointAt(a))
		if f.c.OnKey(KeyBackspace) || f.c.Phase().SelectedKnight != nil {
			t.Error("Expected Backspace to deselect first")
		}
		if !f.c.OnKey(KeyBackspace) || f.c.Kind() != ChooseAction {
			t.Errorf("Expected Backspace to leave movement, got %s", f.c.Kind())
		}
	})

	t.Run("state discarded on exit", func(t *testing.T) {
		f := moving(t)
		a := board.At(4, 3)
		f.board.AddKnight(a, player.Red)
		up, _ := a.Up()
		step(t, f, a, up)
		f.c.OnKey(KeyY)
		f.c.OnKey(Key2)
		if f.c.Kind() != Movement {
			t.Fatalf("Expected Movement again, got %s", f.c.Kind())
		}
		if p := f.c.Phase(); p.FirstMove != nil || p.SelectedKnight != nil {
			t.Errorf("Expected fresh movement state, got %+v", p)
		}
	})
}

func TestMovementIgnoresEnemyKnights(t *testing.T) {
	f := moving(t)
	f.board.AddKnight(board.At(4, 3), player.Blue)
	f.c.OnPointer(PointAt(board.At(4, 3)))
	if f.c.Phase().SelectedKnight != nil {
		t.Error("Expected an enemy knight not to be selectable")
	}
}
