// Package scramble generates random move sequences over the base moves.
package scramble

import (
	"math/rand/v2"

	"github.com/SeamusWaldron/gocube_puzzle/internal/cube"
	"github.com/SeamusWaldron/gocube_puzzle/pkg/types"
)

// DefaultLength is the scramble length used when none is given.
const DefaultLength = 20

// New returns a deterministic generator for the given seed.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Sequence draws length moves uniformly from the 12 base moves.
// A nil rng uses the shared global source. A length of zero or less
// yields DefaultLength moves.
func Sequence(length int, rng *rand.Rand) []types.Move {
	if length <= 0 {
		length = DefaultLength
	}

	intN := rand.IntN
	if rng != nil {
		intN = rng.IntN
	}

	moves := make([]types.Move, length)
	for i := range moves {
		moves[i] = types.MoveFromToken(uint8(intN(types.BaseTokenCount)))
	}
	return moves
}

// Scramble applies a fresh random sequence to state and returns both the
// new state and the sequence that produced it.
func Scramble(state cube.State, length int, rng *rand.Rand) (cube.State, []types.Move) {
	moves := Sequence(length, rng)
	return cube.ApplyAll(state, moves...), moves
}
