package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMoveString(t *testing.T) {
	m := NewMove(Sq(2, 0), Sq(5, 3))
	require.Equal(t, "c1-f4", m.String())
}

func TestParseMove(t *testing.T) {
	m, err := ParseMove("c1-f4")
	require.NoError(t, err)
	require.Equal(t, NewMove(Sq(2, 0), Sq(5, 3)), m)

	for _, bad := range []string{"", "c1f4", "c1-", "-f4", "c1-f9", "z1-f4", "c1 f4"} {
		_, err := ParseMove(bad)
		require.Error(t, err, "move %q should be rejected", bad)
	}
}

func TestMoveEqualIgnoresCapture(t *testing.T) {
	m := NewMove(Sq(2, 0), Sq(5, 3))
	require.True(t, m.Equal(m.asCapture()), "capture status is not part of move identity")
	require.False(t, m.Equal(NewMove(Sq(2, 0), Sq(5, 4))))
	require.True(t, m.asCapture().IsCapture())
	require.False(t, m.IsCapture(), "asCapture must not modify the original")
}
