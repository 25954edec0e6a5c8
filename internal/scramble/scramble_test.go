package scramble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/gocube_puzzle/internal/cube"
	"github.com/SeamusWaldron/gocube_puzzle/pkg/types"
)

func TestSequenceLength(t *testing.T) {
	assert.Len(t, Sequence(7, New(1)), 7)
	assert.Len(t, Sequence(0, New(1)), DefaultLength)
	assert.Len(t, Sequence(-3, nil), DefaultLength)
}

func TestSequenceDeterministicForSeed(t *testing.T) {
	a := Sequence(25, New(42))
	b := Sequence(25, New(42))
	assert.Equal(t, a, b)

	c := Sequence(25, New(43))
	assert.NotEqual(t, a, c)
}

func TestSequenceUsesBaseMovesOnly(t *testing.T) {
	seen := make(map[types.Move]int)
	for _, m := range Sequence(2000, New(7)) {
		require.False(t, m.Face.IsSlice(), "slice move %s in scramble", m)
		seen[m]++
	}
	// 2000 draws over 12 moves: every move shows up.
	assert.Len(t, seen, types.BaseTokenCount)
}

func TestScrambleThenInverseRestoresSolved(t *testing.T) {
	solved := cube.New()
	state, moves := Scramble(solved, DefaultLength, New(2024))
	require.Len(t, moves, DefaultLength)
	assert.Equal(t, cube.ApplyAll(solved, moves...), state)

	for i := len(moves) - 1; i >= 0; i-- {
		state = cube.Apply(state, moves[i].Inverse())
	}
	assert.True(t, state.Equal(solved))
}

func TestScrambleDoesNotTouchInput(t *testing.T) {
	in := cube.New()
	_, _ = Scramble(in, 10, New(3))
	assert.True(t, in.IsSolved())
}
