package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSq(t *testing.T) {
	require.Equal(t, Square(0), Sq(0, 0), "a1 should have index 0")
	require.Equal(t, Square(63), Sq(7, 7), "h8 should have index 63")
	require.Equal(t, Square(26), Sq(2, 3), "c4 should have index row*8+col")
	require.Equal(t, NoSquare, Sq(-1, 0), "column off the board")
	require.Equal(t, NoSquare, Sq(0, 8), "row off the board")
}

func TestDirection(t *testing.T) {
	c4 := Sq(2, 3)

	cases := []struct {
		to   Square
		want Direction
	}{
		{Sq(2, 7), North},
		{Sq(5, 6), Northeast},
		{Sq(6, 3), East},
		{Sq(4, 1), Southeast},
		{Sq(2, 0), South},
		{Sq(0, 1), Southwest},
		{Sq(0, 3), West},
		{Sq(0, 5), Northwest},
	}
	for _, tc := range cases {
		got, ok := c4.Direction(tc.to)
		require.True(t, ok, "c4 and %s are colinear", tc.to)
		require.Equal(t, tc.want, got, "direction from c4 to %s", tc.to)
	}

	_, ok := c4.Direction(Sq(3, 5))
	require.False(t, ok, "c4 and d6 are not colinear")
	_, ok = c4.Direction(c4)
	require.False(t, ok, "a square has no direction to itself")
}

func TestDirectionOpposite(t *testing.T) {
	require.Equal(t, South, North.Opposite())
	require.Equal(t, Northeast, Southwest.Opposite())
	require.Equal(t, West, East.Opposite())
}

func TestDistance(t *testing.T) {
	require.Equal(t, 4, Sq(2, 3).Distance(Sq(6, 3)), "horizontal distance")
	require.Equal(t, 4, Sq(2, 3).Distance(Sq(2, 7)), "vertical distance")
	require.Equal(t, 3, Sq(2, 3).Distance(Sq(5, 6)), "diagonal distance")
}

func TestMoveDest(t *testing.T) {
	c4 := Sq(2, 3)
	require.Equal(t, Sq(2, 6), c4.MoveDest(North, 3))
	require.Equal(t, Sq(5, 0), c4.MoveDest(Southeast, 3))
	require.Equal(t, NoSquare, c4.MoveDest(West, 3), "walks off the a file")
	require.Equal(t, NoSquare, c4.MoveDest(South, 4), "walks off rank 1")
}

func TestAdjacent(t *testing.T) {
	require.Len(t, Sq(0, 0).Adjacent(), 3, "corner has 3 neighbors")
	require.Len(t, Sq(3, 0).Adjacent(), 5, "edge square has 5 neighbors")
	require.Len(t, Sq(3, 3).Adjacent(), 8, "interior square has 8 neighbors")
	require.Contains(t, Sq(0, 0).Adjacent(), Sq(1, 1))
	require.NotContains(t, Sq(0, 0).Adjacent(), Sq(2, 2))
}

func TestSquareString(t *testing.T) {
	require.Equal(t, "a1", Sq(0, 0).String())
	require.Equal(t, "c4", Sq(2, 3).String())
	require.Equal(t, "h8", Sq(7, 7).String())
}

func TestParseSquare(t *testing.T) {
	for _, sq := range AllSquares {
		got, err := ParseSquare(sq.String())
		require.NoError(t, err)
		require.Equal(t, sq, got, "designator round trip for %s", sq)
	}

	for _, bad := range []string{"", "c", "c0", "c9", "i4", "4c", "c44", "C4"} {
		_, err := ParseSquare(bad)
		require.Error(t, err, "designator %q should be rejected", bad)
	}
}
