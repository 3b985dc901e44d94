package game

import (
	"fmt"
	"strings"
)

// MoveSeparator joins the origin and destination designators in a move's
// text form, e.g. "c1-f4".
const MoveSeparator = "-"

// Move is an ordered (from, to) pair. The capture flag is derived when the
// move is applied and is not part of move identity.
type Move struct {
	From, To Square
	capture  bool
}

// NewMove returns the move from one square to another.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

// IsCapture reports whether the move removed an opposing piece when it was
// made. It is false for moves that have not been applied.
func (m Move) IsCapture() bool {
	return m.capture
}

// asCapture returns a capture-flagged copy of m.
func (m Move) asCapture() Move {
	m.capture = true
	return m
}

// Equal compares moves by origin and destination only.
func (m Move) Equal(o Move) bool {
	return m.From == o.From && m.To == o.To
}

func (m Move) String() string {
	return m.From.String() + MoveSeparator + m.To.String()
}

// ParseMove converts text such as "c1-f4" into a Move.
func ParseMove(s string) (Move, error) {
	from, to, ok := strings.Cut(s, MoveSeparator)
	if !ok {
		return Move{}, fmt.Errorf("invalid move %q: missing separator", s)
	}
	fromSq, err := ParseSquare(from)
	if err != nil {
		return Move{}, fmt.Errorf("invalid move %q: %w", s, err)
	}
	toSq, err := ParseSquare(to)
	if err != nil {
		return Move{}, fmt.Errorf("invalid move %q: %w", s, err)
	}
	return NewMove(fromSq, toSq), nil
}
