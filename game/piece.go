package game

// Piece is the contents of one square: a black piece, a white piece, or
// nothing. Empty doubles as the "tie" winner value.
type Piece int

const (
	Empty Piece = iota
	Black
	White
)

// Opposite returns the other color. Empty has no opposite and maps to itself.
func (p Piece) Opposite() Piece {
	switch p {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

// Abbrev returns the single-character form used in board renderings.
func (p Piece) Abbrev() string {
	switch p {
	case Black:
		return "b"
	case White:
		return "w"
	default:
		return "-"
	}
}

func (p Piece) String() string {
	switch p {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "empty"
	}
}
