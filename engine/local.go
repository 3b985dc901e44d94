package engine

import (
	"fmt"

	"loa/game"
)

// UpdateGetter returns the most recent confirmed move and the board after
// it, or zero values when nothing new has happened. The returned board is
// a private copy, safe to read while further moves are being considered.
type UpdateGetter func() (game.Move, *game.Board)

type update struct {
	move  game.Move
	board *game.Board
}

// LocalEngine owns the authoritative board of one game and exposes it to
// an orchestration or display layer: the board changes only through Play
// with a validated move, and every confirmed move publishes a wholesale
// board copy.
type LocalEngine struct {
	board    *game.Board
	updateCh chan update
	gameOver bool
}

func NewLocalEngine() *LocalEngine {
	return &LocalEngine{}
}

// Init sets up the standard initial position and returns a copy of it
// together with the update feed.
func (e *LocalEngine) Init() (*game.Board, UpdateGetter) {
	e.board = game.NewBoard()
	e.gameOver = false
	e.updateCh = make(chan update, 1)

	return e.board.Copy(), func() (game.Move, *game.Board) {
		select {
		case u, ok := <-e.updateCh:
			if !ok { // Game over
				return game.Move{}, nil
			}
			return u.move, u.board
		default:
			return game.Move{}, nil
		}
	}
}

// Play validates and applies one move for the side to move. Moves of the
// other side's pieces are rejected, not queued.
func (e *LocalEngine) Play(mv game.Move) error {
	if e.gameOver {
		return fmt.Errorf("game is over - no moves allowed")
	}
	if !e.board.IsLegalMove(mv) {
		return fmt.Errorf("illegal move %s", mv)
	}
	if e.board.Get(mv.From) != e.board.Turn() {
		return fmt.Errorf("no %s piece on %s", e.board.Turn(), mv.From)
	}

	e.board.MakeMove(mv)

	// Keep only the most recent update: drop one the display never read.
	select {
	case <-e.updateCh:
	default:
	}
	e.updateCh <- update{move: mv, board: e.board.Copy()}
	if e.board.GameOver() {
		e.gameOver = true
		close(e.updateCh)
	}
	return nil
}

// PlayText parses a move string such as "c1-f4" and plays it. Malformed
// input is rejected here, at the boundary, and never reaches the board.
func (e *LocalEngine) PlayText(s string) error {
	mv, err := game.ParseMove(s)
	if err != nil {
		return err
	}
	return e.Play(mv)
}

// Turn returns the side to move on the authoritative board.
func (e *LocalEngine) Turn() game.Piece {
	return e.board.Turn()
}

// MovesMade returns the number of moves applied to the authoritative board.
func (e *LocalEngine) MovesMade() int {
	return e.board.MovesMade()
}

// Winner reports the game result so far, as Board.Winner does.
func (e *LocalEngine) Winner() (game.Piece, bool) {
	return e.board.Winner()
}

// LegalMoves lists the legal moves on the authoritative board.
func (e *LocalEngine) LegalMoves() []game.Move {
	return e.board.LegalMoves()
}
