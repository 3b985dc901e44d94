package searcher

import (
	"math"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"loa/game"
)

// Infinity bounds the alpha-beta window; it exceeds every reachable score.
const Infinity = math.MaxInt32

// DefaultDepth is the search depth used when none is configured.
const DefaultDepth = 3

type Option func(*Minimax)

// WithDepth sets the fixed search depth in plies.
func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

// WithEvaluationFn replaces the leaf evaluation function.
func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(m *Minimax) {
		if evaluate != nil {
			m.evaluate = evaluate
		}
	}
}

// WithTieBreak makes the searcher pick uniformly among root moves of equal
// best value instead of keeping the first one found. A root value equal to
// the running best can be a pruning bound on a strictly worse move, so
// candidates are admitted only after a full-window re-search confirms the
// value is exact.
func WithTieBreak(seed uint64) Option {
	return func(m *Minimax) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMetrics enables per-search metric collection.
func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = NewMetricsCollector()
	}
}

// Minimax is a depth-limited minimax searcher with alpha-beta pruning. It
// copies the board it is given and explores by making and retracting moves
// on that single copy; one application and exactly one retraction bracket
// every node visit, on every exit path.
type Minimax struct {
	depth    int
	evaluate game.Evaluate
	rng      *rand.Rand
	metrics  MetricsCollector

	found      game.Move
	candidates []game.Move
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{
		depth:    DefaultDepth,
		evaluate: game.EvaluateGroups,
		metrics:  NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// FindMove returns the best move for the side to move on b, searching to
// the configured depth. The game must not be over. b itself is never
// mutated.
func (m *Minimax) FindMove(b *game.Board) (game.Move, MoveMetrics) {
	if b.GameOver() {
		panic("searching a finished game")
	}
	m.metrics.Start()

	work := b.Copy()
	sense := 1
	if work.Turn() == game.Black {
		sense = -1
	}
	m.found = game.Move{}
	m.candidates = m.candidates[:0]

	value := m.search(work, m.depth, true, sense, -Infinity, Infinity)

	move := m.found
	if m.rng != nil && len(m.candidates) > 1 {
		move = m.candidates[m.rng.Intn(len(m.candidates))]
	}
	log.Debug().
		Stringer("side", b.Turn()).
		Stringer("move", move).
		Int("value", value).
		Int("depth", m.depth).
		Msg("search complete")
	metrics := m.metrics.Complete(m.depth)
	metrics.Value = value
	return move, metrics
}

// search returns the value of the position on b looking depth plies ahead.
// sense is +1 to maximize (White's perspective) and -1 to minimize; the
// chosen move is recorded only when saveMove is set, i.e. at the root.
func (m *Minimax) search(b *game.Board, depth int, saveMove bool, sense, alpha, beta int) int {
	if depth == 0 || b.GameOver() {
		m.metrics.AddLeaf()
		return m.evaluate(b)
	}
	m.metrics.AddNode()

	mover := b.Turn()
	best := -sense * Infinity
	for _, mv := range b.LegalMoves() {
		value, decisive := m.explore(b, mv, depth, mover, sense, alpha, beta)
		if decisive {
			// The move wins outright for the mover; nothing at this level
			// can beat it.
			if saveMove {
				m.record(mv, true)
			}
			return value
		}
		if sense == 1 {
			switch {
			case value > best:
				best = value
				if saveMove {
					m.record(mv, true)
				}
			case value == best && saveMove:
				m.recordTie(b, mv, depth, mover, sense, best)
			}
			if value > alpha {
				alpha = value
			}
		} else {
			switch {
			case value < best:
				best = value
				if saveMove {
					m.record(mv, true)
				}
			case value == best && saveMove:
				m.recordTie(b, mv, depth, mover, sense, best)
			}
			if value < beta {
				beta = value
			}
		}
		if beta <= alpha {
			m.metrics.AddCutoff()
			break
		}
	}
	return best
}

// explore applies mv, scores the resulting position, and retracts the move
// before returning, regardless of how the score was produced. decisive is
// true when mv immediately wins the game for the mover.
func (m *Minimax) explore(b *game.Board, mv game.Move, depth int, mover game.Piece, sense, alpha, beta int) (value int, decisive bool) {
	b.MakeMove(mv)
	defer b.Retract()
	if winner, over := b.Winner(); over && winner == mover {
		if mover == game.White {
			return game.WinningValue, true
		}
		return -game.WinningValue, true
	}
	return m.search(b, depth-1, false, -sense, alpha, beta), false
}

// recordTie admits mv to the tie pool. After root window tightening an
// equal value may be a mere bound, so the move's subtree is re-searched
// with the full window first; a move whose exact value falls short of best
// is discarded. Skipped entirely without a tie-break rng, where the pool
// is never consulted.
func (m *Minimax) recordTie(b *game.Board, mv game.Move, depth int, mover game.Piece, sense, best int) {
	if m.rng == nil {
		return
	}
	if exact, _ := m.explore(b, mv, depth, mover, sense, -Infinity, Infinity); exact == best {
		m.record(mv, false)
	}
}

// record tracks the move chosen at the root. A strict improvement resets
// the tie candidates; an equal value only extends them.
func (m *Minimax) record(mv game.Move, improved bool) {
	if improved {
		m.found = mv
		m.candidates = append(m.candidates[:0], mv)
		return
	}
	m.candidates = append(m.candidates, mv)
}
