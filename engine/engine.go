package engine

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"loa/game"
	"loa/searcher"
)

// Agent produces a move for one side whenever that side is to move.
type Agent interface {
	Side() game.Piece
	FindMove(b *game.Board) (game.Move, searcher.MoveMetrics)
}

// MoveRecord is one applied move with the metrics of the search that
// produced it.
type MoveRecord struct {
	Step    int
	Player  game.Piece
	Move    game.Move
	Metrics searcher.MoveMetrics
}

// Match runs two agents against each other on one board until the game is
// decided or the board's move limit declares a tie.
type Match struct {
	Board *game.Board
	black Agent
	white Agent
}

func NewMatch(black, white Agent) *Match {
	if black.Side() != game.Black || white.Side() != game.White {
		panic("agents assigned to the wrong sides")
	}
	return &Match{
		Board: game.NewBoard(),
		black: black,
		white: white,
	}
}

// Run plays the game out and returns the winner (Empty for a tie) and the
// per-move records.
func (m *Match) Run() (game.Piece, []MoveRecord) {
	log.Info().Stringer("side", m.Board.Turn()).Msg("match starting")

	var records []MoveRecord
	step := 1
	for !m.Board.GameOver() {
		agent := m.black
		if m.Board.Turn() == game.White {
			agent = m.white
		}

		mv, metrics := agent.FindMove(m.Board)
		if !m.Board.IsLegalMove(mv) || m.Board.Get(mv.From) != agent.Side() {
			panic(fmt.Sprintf("agent for %s produced illegal move %s", agent.Side(), mv))
		}
		capture := m.Board.Get(mv.To) != game.Empty
		m.Board.MakeMove(mv)

		log.Info().
			Int("step", step).
			Stringer("side", agent.Side()).
			Stringer("move", mv).
			Bool("capture", capture).
			Msg("move applied")
		records = append(records, MoveRecord{
			Step:    step,
			Player:  agent.Side(),
			Move:    mv,
			Metrics: metrics,
		})
		step++
	}

	winner, _ := m.Board.Winner()
	log.Info().Stringer("winner", winner).Int("moves", m.Board.MovesMade()).Msg("match over")
	return winner, records
}
