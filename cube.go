package gocube

import (
	"math/rand/v2"

	"github.com/SeamusWaldron/gocube_puzzle/internal/cube"
	"github.com/SeamusWaldron/gocube_puzzle/internal/notation"
	"github.com/SeamusWaldron/gocube_puzzle/internal/scramble"
)

// State is the color configuration of all six faces. It is a value:
// copies never share stickers.
type State = cube.State

// Color is a sticker color.
type Color = cube.Color

const (
	White  = cube.White
	Yellow = cube.Yellow
	Red    = cube.Red
	Orange = cube.Orange
	Green  = cube.Green
	Blue   = cube.Blue
)

// CubeFace indexes a sticker grid. It is distinct from Face, which names
// a layer in move notation.
type CubeFace = cube.Face

const (
	CubeFaceU = cube.U
	CubeFaceD = cube.D
	CubeFaceF = cube.F
	CubeFaceB = cube.B
	CubeFaceR = cube.R
	CubeFaceL = cube.L
)

// DefaultScrambleLength is the number of moves in a default scramble.
const DefaultScrambleLength = scramble.DefaultLength

// CreateSolvedState returns a solved cube: yellow up, green front.
func CreateSolvedState() State {
	return cube.New()
}

// ApplyMove returns the state after one quarter turn. s is unchanged.
// An unrecognized move panics.
func ApplyMove(s State, m Move) State {
	return cube.Apply(s, m)
}

// ApplyMoves applies moves in order.
func ApplyMoves(s State, moves ...Move) State {
	return cube.ApplyAll(s, moves...)
}

// ApplyNotation parses a sequence and applies it.
func ApplyNotation(s State, seq string) (State, error) {
	moves, err := notation.ParseSequence(seq)
	if err != nil {
		return s, err
	}
	return cube.ApplyAll(s, moves...), nil
}

// Scramble applies length random base moves to s. A length of zero or
// less uses DefaultScrambleLength.
func Scramble(s State, length int) State {
	out, _ := scramble.Scramble(s, length, nil)
	return out
}

// ScrambleWith is Scramble with an explicit source, also returning the
// sequence applied.
func ScrambleWith(s State, length int, rng *rand.Rand) (State, []Move) {
	return scramble.Scramble(s, length, rng)
}

// ScrambleSequence returns length random base moves.
func ScrambleSequence(length int, rng *rand.Rand) []Move {
	return scramble.Sequence(length, rng)
}

// NewRand returns a seeded source for reproducible scrambles.
func NewRand(seed uint64) *rand.Rand {
	return scramble.New(seed)
}
