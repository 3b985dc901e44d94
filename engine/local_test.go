package engine

import (
	"testing"

	"loa/game"
)

func TestLocalEngineInit(t *testing.T) {
	engine := NewLocalEngine()
	board, getUpdate := engine.Init()

	if !board.Equal(game.NewBoard()) {
		t.Error("Init should hand out the standard initial position")
	}
	if engine.Turn() != game.Black {
		t.Errorf("expected Black to move, got %v", engine.Turn())
	}
	if len(engine.LegalMoves()) == 0 {
		t.Error("expected legal moves from the initial position")
	}

	move, update := getUpdate()
	if update != nil || !move.Equal(game.Move{}) {
		t.Errorf("expected no update yet, got move=%v board=%v", move, update)
	}
}

func TestLocalEnginePlay(t *testing.T) {
	engine := NewLocalEngine()
	board, getUpdate := engine.Init()

	if err := engine.PlayText("c1-c3"); err != nil {
		t.Fatalf("expected c1-c3 to be accepted, got %v", err)
	}

	move, update := getUpdate()
	if update == nil {
		t.Fatal("expected an update after playing a move")
	}
	if move.String() != "c1-c3" {
		t.Errorf("expected update for c1-c3, got %v", move)
	}
	if update.Get(game.Sq(2, 2)) != game.Black {
		t.Error("update board should show the moved piece on c3")
	}
	if update.Turn() != game.White {
		t.Errorf("expected White to move after the update, got %v", update.Turn())
	}
	if !board.Equal(game.NewBoard()) {
		t.Error("the board handed out by Init must not change under play")
	}
}

func TestLocalEnginePlayRejectsBadInput(t *testing.T) {
	engine := NewLocalEngine()
	engine.Init()

	if err := engine.PlayText("c1c3"); err == nil {
		t.Error("expected malformed move text to be rejected")
	}
	if err := engine.PlayText("c1-c4"); err == nil {
		t.Error("expected an illegal move to be rejected")
	}
	if err := engine.Play(game.NewMove(game.Sq(0, 0), game.Sq(0, 1))); err == nil {
		t.Error("expected a move from an empty square to be rejected")
	}
	if engine.Turn() != game.Black {
		t.Errorf("rejected moves must not change the turn, got %v", engine.Turn())
	}
}

func TestLocalEnginePlayRejectsOutOfTurnMove(t *testing.T) {
	engine := NewLocalEngine()
	engine.Init()

	// a2-c2 is a well-formed white move, but Black is to move.
	if err := engine.PlayText("a2-c2"); err == nil {
		t.Error("expected an out-of-turn white move to be rejected")
	}
	if engine.Turn() != game.Black {
		t.Errorf("rejected moves must not change the turn, got %v", engine.Turn())
	}
	if engine.MovesMade() != 0 {
		t.Errorf("rejected moves must not enter the history, got %d", engine.MovesMade())
	}
}

func TestLocalEngineKeepsLatestUpdate(t *testing.T) {
	engine := NewLocalEngine()
	_, getUpdate := engine.Init()

	if err := engine.PlayText("c1-c3"); err != nil {
		t.Fatal(err)
	}
	// Not consumed; the next confirmed move replaces it.
	if err := engine.PlayText("a2-c2"); err != nil {
		t.Fatal(err)
	}

	move, update := getUpdate()
	if update == nil {
		t.Fatal("expected an update")
	}
	if move.String() != "a2-c2" {
		t.Errorf("expected only the most recent update, got %v", move)
	}
	if update.MovesMade() != 2 {
		t.Errorf("update board should carry the full history, got %d moves", update.MovesMade())
	}
}
