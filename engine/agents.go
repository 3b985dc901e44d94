package engine

import (
	"golang.org/x/exp/rand"

	"loa/game"
	"loa/searcher"
)

// MachineAgent chooses moves with a minimax search.
type MachineAgent struct {
	side   game.Piece
	search *searcher.Minimax
}

func NewMachineAgent(side game.Piece, search *searcher.Minimax) *MachineAgent {
	if side != game.Black && side != game.White {
		panic("machine agent needs a color")
	}
	return &MachineAgent{side: side, search: search}
}

func (a *MachineAgent) Side() game.Piece {
	return a.side
}

func (a *MachineAgent) FindMove(b *game.Board) (game.Move, searcher.MoveMetrics) {
	if b.Turn() != a.side {
		panic("not this agent's turn")
	}
	return a.search.FindMove(b)
}

// RandomAgent plays a uniformly random legal move. Useful as a baseline
// opponent and in tests.
type RandomAgent struct {
	side game.Piece
	rng  *rand.Rand
}

func NewRandomAgent(side game.Piece, seed uint64) *RandomAgent {
	if side != game.Black && side != game.White {
		panic("random agent needs a color")
	}
	return &RandomAgent{side: side, rng: rand.New(rand.NewSource(seed))}
}

func (a *RandomAgent) Side() game.Piece {
	return a.side
}

func (a *RandomAgent) FindMove(b *game.Board) (game.Move, searcher.MoveMetrics) {
	moves := b.LegalMoves()
	if len(moves) == 0 {
		panic("no legal moves to choose from")
	}
	return moves[a.rng.Intn(len(moves))], searcher.MoveMetrics{}
}
