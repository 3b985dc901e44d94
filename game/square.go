package game

import (
	"fmt"
	"regexp"
)

// BoardSize is the number of files and ranks on the board.
const BoardSize = 8

// Square identifies one of the 64 board squares by its dense index
// row*BoardSize+col. NoSquare marks an off-board result.
type Square int8

const NoSquare Square = -1

// Direction is one of the 8 compass directions a piece can travel.
type Direction int

const (
	North Direction = iota
	Northeast
	East
	Southeast
	South
	Southwest
	West
	Northwest
)

// dirDeltas maps a Direction to its (column, row) unit step.
var dirDeltas = [8][2]int{
	North:     {0, 1},
	Northeast: {1, 1},
	East:      {1, 0},
	Southeast: {1, -1},
	South:     {0, -1},
	Southwest: {-1, -1},
	West:      {-1, 0},
	Northwest: {-1, 1},
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	return (d + 4) % 8
}

// AllSquares lists every square in row-major order (a1, b1, ..., h8).
var AllSquares [BoardSize * BoardSize]Square

// adjacency holds the board-edge-clipped neighbors of every square.
var adjacency [BoardSize * BoardSize][]Square

func init() {
	for i := range AllSquares {
		AllSquares[i] = Square(i)
	}
	for _, sq := range AllSquares {
		for d := North; d <= Northwest; d++ {
			if n := sq.MoveDest(d, 1); n != NoSquare {
				adjacency[sq] = append(adjacency[sq], n)
			}
		}
	}
}

// Sq returns the square at the given column and row, both in [0, BoardSize).
func Sq(col, row int) Square {
	if col < 0 || col >= BoardSize || row < 0 || row >= BoardSize {
		return NoSquare
	}
	return Square(row*BoardSize + col)
}

func (sq Square) Col() int { return int(sq) % BoardSize }

func (sq Square) Row() int { return int(sq) / BoardSize }

// IsValidMove reports whether to is a distinct square on the same row,
// column, or diagonal as sq.
func (sq Square) IsValidMove(to Square) bool {
	if sq == NoSquare || to == NoSquare || sq == to {
		return false
	}
	dc := to.Col() - sq.Col()
	dr := to.Row() - sq.Row()
	return dc == 0 || dr == 0 || dc == dr || dc == -dr
}

// Direction returns the compass direction from sq to to. The second result
// is false when the squares are not colinear or not distinct.
func (sq Square) Direction(to Square) (Direction, bool) {
	if !sq.IsValidMove(to) {
		return 0, false
	}
	dc := sign(to.Col() - sq.Col())
	dr := sign(to.Row() - sq.Row())
	for d, delta := range dirDeltas {
		if delta[0] == dc && delta[1] == dr {
			return Direction(d), true
		}
	}
	panic("unreachable")
}

// Distance returns the number of unit steps from sq to to along their
// common line.
func (sq Square) Distance(to Square) int {
	dc := abs(to.Col() - sq.Col())
	dr := abs(to.Row() - sq.Row())
	if dc > dr {
		return dc
	}
	return dr
}

// MoveDest returns the square reached by walking steps units from sq in
// direction d, or NoSquare if that leaves the board.
func (sq Square) MoveDest(d Direction, steps int) Square {
	delta := dirDeltas[d]
	return Sq(sq.Col()+delta[0]*steps, sq.Row()+delta[1]*steps)
}

// Adjacent returns the up to 8 immediate neighbors of sq. The returned
// slice is shared; callers must not modify it.
func (sq Square) Adjacent() []Square {
	return adjacency[sq]
}

// String returns the designator form, file letter then rank digit ("c4").
func (sq Square) String() string {
	if sq == NoSquare {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'a'+sq.Col(), sq.Row()+1)
}

// squarePattern describes a valid square designator.
var squarePattern = regexp.MustCompile(`^[a-h][1-8]$`)

// ParseSquare converts a designator such as "c4" into a Square.
func ParseSquare(s string) (Square, error) {
	if !squarePattern.MatchString(s) {
		return NoSquare, fmt.Errorf("invalid square designator %q", s)
	}
	return Sq(int(s[0]-'a'), int(s[1]-'1')), nil
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	default:
		return 0
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
