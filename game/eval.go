package game

import "math"

// WinningValue is the score magnitude of a decided position: positive for
// a white win, negative for a black win. It dominates any positional term.
const WinningValue = math.MaxInt32 - 20

// Evaluate scores a board, positive favoring White. Search plugs in any
// Evaluate at its leaves.
type Evaluate func(*Board) int

// EvaluateGroups is the standard heuristic: a decided position scores the
// winning sentinel; otherwise fewer groups, center occupation, and a larger
// biggest group are rewarded. Deterministic.
func EvaluateGroups(b *Board) int {
	if winner, over := b.Winner(); over {
		switch winner {
		case White:
			return WinningValue
		case Black:
			return -WinningValue
		}
		// Fall through on a tie and score the position as it stands.
	}
	score := 0
	black := b.RegionSizes(Black)
	white := b.RegionSizes(White)
	score += (len(black) - len(white)) * 20
	for row := 3; row < 5; row++ {
		for col := 3; col < 5; col++ {
			switch b.Get(Sq(col, row)) {
			case White:
				score += 10
			case Black:
				score -= 10
			}
		}
	}
	maxBlack, maxWhite := 0, 0
	if len(black) > 0 {
		maxBlack = black[0]
	}
	if len(white) > 0 {
		maxWhite = white[0]
	}
	score += (maxWhite - maxBlack) * 10
	return score
}
