package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluateDecidedPositions(t *testing.T) {
	blackWin := boardWith(White, []Square{Sq(3, 3), Sq(3, 4)}, []Square{Sq(0, 0), Sq(7, 7)})
	require.Equal(t, -WinningValue, EvaluateGroups(blackWin))

	whiteWin := boardWith(Black, []Square{Sq(0, 0), Sq(7, 7)}, []Square{Sq(3, 3), Sq(3, 4)})
	require.Equal(t, WinningValue, EvaluateGroups(whiteWin))
}

func TestEvaluatePositionalTerms(t *testing.T) {
	// Black: two groups, one on a center square. White: three groups.
	b := boardWith(Black,
		[]Square{Sq(3, 3), Sq(0, 0)},
		[]Square{Sq(7, 0), Sq(7, 3), Sq(7, 7)})

	// Group difference (2-3)*20, center occupation -10, equal max sizes.
	require.Equal(t, -30, EvaluateGroups(b))
}

func TestEvaluateDeterministic(t *testing.T) {
	b := NewBoard()
	first := EvaluateGroups(b)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, EvaluateGroups(b))
	}
}

func TestEvaluateTieScoresPosition(t *testing.T) {
	b := NewBoard()
	b.SetMoveLimit(1)
	b.MakeMove(b.LegalMoves()[0])
	b.MakeMove(b.LegalMoves()[0])
	require.True(t, b.GameOver())

	score := EvaluateGroups(b)
	require.Less(t, score, WinningValue, "a tie is not a win for either side")
	require.Greater(t, score, -WinningValue)
}
