package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"sort"
	"strings"
)

// DefaultMoveLimit is the number of moves for each side after which the
// game is declared a tie.
const DefaultMoveLimit = 60

// initialContents is the standard starting position, bottom rank first:
// black pieces along the first and last ranks, white pieces along the a
// and h files, corners empty.
var initialContents = [BoardSize][BoardSize]Piece{
	{Empty, Black, Black, Black, Black, Black, Black, Empty},
	{White, Empty, Empty, Empty, Empty, Empty, Empty, White},
	{White, Empty, Empty, Empty, Empty, Empty, Empty, White},
	{White, Empty, Empty, Empty, Empty, Empty, Empty, White},
	{White, Empty, Empty, Empty, Empty, Empty, Empty, White},
	{White, Empty, Empty, Empty, Empty, Empty, Empty, White},
	{White, Empty, Empty, Empty, Empty, Empty, Empty, White},
	{Empty, Black, Black, Black, Black, Black, Black, Empty},
}

// Board is the full state of one game: square contents, the side to move,
// the unretracted move history, the move limit, and lazily computed
// connectivity and winner caches.
type Board struct {
	cells     [BoardSize * BoardSize]Piece
	turn      Piece
	moveLimit int // total moves (both sides) before a tie
	moves     []Move

	blackRegions []int
	whiteRegions []int
	regionsValid bool

	winner      Piece
	over        bool
	winnerValid bool
}

// NewBoard returns a board in the standard initial position with Black to
// move.
func NewBoard() *Board {
	return NewBoardFrom(initialContents, Black)
}

// NewBoardFrom returns a board with the given contents, bottom rank first
// (contents[row][col] ends up on the square at that row and column), and
// the given side to move.
func NewBoardFrom(contents [BoardSize][BoardSize]Piece, turn Piece) *Board {
	b := &Board{}
	b.initialize(contents, turn)
	return b
}

func (b *Board) initialize(contents [BoardSize][BoardSize]Piece, turn Piece) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			b.cells[Sq(col, row)] = contents[row][col]
		}
	}
	b.turn = turn
	b.moveLimit = 2 * DefaultMoveLimit
	b.moves = b.moves[:0]
	b.regionsValid = false
	b.winnerValid = false
}

// Clear resets the board to the standard initial position.
func (b *Board) Clear() {
	b.initialize(initialContents, Black)
}

// Copy returns an independent deep copy of the board, history and caches
// included.
func (b *Board) Copy() *Board {
	c := &Board{}
	c.CopyFrom(b)
	return c
}

// CopyFrom replaces the board's entire state with a copy of o's.
func (b *Board) CopyFrom(o *Board) {
	if b == o {
		return
	}
	b.cells = o.cells
	b.turn = o.turn
	b.moveLimit = o.moveLimit
	b.moves = append(b.moves[:0], o.moves...)
	b.blackRegions = append(b.blackRegions[:0], o.blackRegions...)
	b.whiteRegions = append(b.whiteRegions[:0], o.whiteRegions...)
	b.regionsValid = o.regionsValid
	b.winner = o.winner
	b.over = o.over
	b.winnerValid = o.winnerValid
}

// Get returns the contents of sq.
func (b *Board) Get(sq Square) Piece {
	return b.cells[sq]
}

// Set writes v to sq and, when next is not Empty, makes next the side to
// move. Every call invalidates the connectivity and winner caches.
func (b *Board) Set(sq Square, v, next Piece) {
	b.cells[sq] = v
	if next != Empty {
		b.turn = next
	}
	b.regionsValid = false
	b.winnerValid = false
}

// Turn returns the side to move.
func (b *Board) Turn() Piece {
	return b.turn
}

// MovesMade returns the number of moves made and not retracted.
func (b *Board) MovesMade() int {
	return len(b.moves)
}

// SetMoveLimit sets the number of moves per side after which a tie is
// declared. The new limit must exceed half the moves already made.
func (b *Board) SetMoveLimit(limit int) {
	if 2*limit <= b.MovesMade() {
		panic(fmt.Sprintf("move limit %d too small for %d moves made", limit, b.MovesMade()))
	}
	b.moveLimit = 2 * limit
	b.winnerValid = false
}

// IsLegal reports whether from-to is a legal move on the current board.
func (b *Board) IsLegal(from, to Square) bool {
	if from == NoSquare || to == NoSquare || from == to {
		return false
	}
	if !from.IsValidMove(to) {
		return false
	}
	if b.blocked(from, to) {
		return false
	}
	return b.rightNumStep(from, to)
}

// IsLegalMove is IsLegal on the move's squares; the capture flag is
// ignored.
func (b *Board) IsLegalMove(m Move) bool {
	return b.IsLegal(m.From, m.To)
}

// blocked reports whether the move from-to runs over an opposing piece or
// lands on a piece of its own color. Friendly pieces strictly between the
// two squares may be jumped.
func (b *Board) blocked(from, to Square) bool {
	if b.cells[from] == b.cells[to] {
		return true
	}
	dir, ok := from.Direction(to)
	if !ok {
		return true
	}
	dist := from.Distance(to)
	for i := 1; i < dist; i++ {
		sq := from.MoveDest(dir, i)
		if b.cells[sq] != Empty && b.cells[sq] != b.cells[from] {
			return true
		}
	}
	return false
}

// rightNumStep reports whether the distance from-to equals the number of
// pieces of either color anywhere on the line of travel through from.
func (b *Board) rightNumStep(from, to Square) bool {
	dir, ok := from.Direction(to)
	if !ok {
		return false
	}
	count := 1
	for _, d := range [2]Direction{dir, dir.Opposite()} {
		for i := 1; i < BoardSize; i++ {
			sq := from.MoveDest(d, i)
			if sq != NoSquare && b.cells[sq] != Empty {
				count++
			}
		}
	}
	return from.Distance(to) == count
}

// LegalMoves returns every legal move for the side to move, origins and
// destinations both in row-major square order. The order is deterministic;
// search tie-breaking depends on it.
func (b *Board) LegalMoves() []Move {
	var result []Move
	for _, from := range AllSquares {
		if b.cells[from] != b.turn {
			continue
		}
		for _, to := range AllSquares {
			if b.IsLegal(from, to) {
				result = append(result, NewMove(from, to))
			}
		}
	}
	return result
}

// MakeMove applies m, which must be legal, records it for retraction
// (capture-flagged if the destination was occupied), and flips the side to
// move.
func (b *Board) MakeMove(m Move) {
	if !b.IsLegalMove(m) {
		panic(fmt.Sprintf("illegal move %s", m))
	}
	if b.cells[m.To] != Empty {
		b.moves = append(b.moves, m.asCapture())
	} else {
		b.moves = append(b.moves, m)
	}
	b.Set(m.To, b.cells[m.From], b.turn.Opposite())
	b.Set(m.From, Empty, Empty)
}

// Retract unmakes the last move, restoring the board exactly to its state
// before that move, captured piece and side to move included. Requires
// MovesMade() > 0.
func (b *Board) Retract() {
	if len(b.moves) == 0 {
		panic("retract with no moves made")
	}
	last := b.moves[len(b.moves)-1]
	b.moves = b.moves[:len(b.moves)-1]
	mover := b.cells[last.To]
	b.Set(last.From, mover, b.turn.Opposite())
	if last.IsCapture() {
		b.Set(last.To, mover.Opposite(), Empty)
	} else {
		b.Set(last.To, Empty, Empty)
	}
}

// RegionSizes returns the sizes of side's maximal connected regions in
// non-increasing order, computing them if the cache is stale. The returned
// slice is shared; callers must not modify it.
func (b *Board) RegionSizes(side Piece) []int {
	b.computeRegions()
	if side == White {
		return b.whiteRegions
	}
	return b.blackRegions
}

// PiecesContiguous reports whether all of side's pieces form one connected
// group under 8-directional adjacency. A side with no pieces is not
// contiguous.
func (b *Board) PiecesContiguous(side Piece) bool {
	return len(b.RegionSizes(side)) == 1
}

// computeRegions flood-fills the board, grouping same-colored adjacent
// pieces into regions. Worklist-based; each square is visited once.
func (b *Board) computeRegions() {
	if b.regionsValid {
		return
	}
	b.blackRegions = b.blackRegions[:0]
	b.whiteRegions = b.whiteRegions[:0]
	var visited [BoardSize * BoardSize]bool
	var stack []Square
	for _, sq := range AllSquares {
		p := b.cells[sq]
		if p == Empty || visited[sq] {
			continue
		}
		size := 0
		visited[sq] = true
		stack = append(stack[:0], sq)
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			size++
			for _, n := range cur.Adjacent() {
				if !visited[n] && b.cells[n] == p {
					visited[n] = true
					stack = append(stack, n)
				}
			}
		}
		if p == Black {
			b.blackRegions = append(b.blackRegions, size)
		} else {
			b.whiteRegions = append(b.whiteRegions, size)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(b.blackRegions)))
	sort.Sort(sort.Reverse(sort.IntSlice(b.whiteRegions)))
	b.regionsValid = true
}

// Winner returns the winning side and whether the game is over. A tie at
// the move limit is reported as Empty. When a move leaves both sides
// contiguous at once, the side that just moved wins.
func (b *Board) Winner() (Piece, bool) {
	if b.winnerValid {
		return b.winner, b.over
	}
	blackContig := b.PiecesContiguous(Black)
	whiteContig := b.PiecesContiguous(White)
	switch {
	case blackContig && whiteContig:
		b.winner, b.over = b.turn.Opposite(), true
	case blackContig:
		b.winner, b.over = Black, true
	case whiteContig:
		b.winner, b.over = White, true
	case len(b.moves) >= b.moveLimit:
		b.winner, b.over = Empty, true
	default:
		b.winner, b.over = Empty, false
	}
	b.winnerValid = true
	return b.winner, b.over
}

// GameOver reports whether either side has won or the move limit was
// reached.
func (b *Board) GameOver() bool {
	_, over := b.Winner()
	return over
}

// Equal compares square contents and side to move only; history, limits,
// and caches are ignored.
func (b *Board) Equal(o *Board) bool {
	return b.cells == o.cells && b.turn == o.turn
}

// Hash returns an FNV hash over the same state Equal compares.
func (b *Board) Hash() uint64 {
	h := fnv.New64a()
	for _, p := range b.cells {
		binary.Write(h, binary.LittleEndian, int64(p))
	}
	binary.Write(h, binary.LittleEndian, int64(b.turn))
	return h.Sum64()
}

// String renders the board rank 8 first, one abbreviation per square,
// bounded by === markers. Diagnostic output, not a machine format.
func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("===\n")
	for row := BoardSize - 1; row >= 0; row-- {
		sb.WriteString("    ")
		for col := 0; col < BoardSize; col++ {
			sb.WriteString(b.cells[Sq(col, row)].Abbrev())
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "Next move: %s\n===", b.turn)
	return sb.String()
}
