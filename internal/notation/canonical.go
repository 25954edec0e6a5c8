// Package notation converts between layer rotations, moves and notation strings.
package notation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SeamusWaldron/gocube_puzzle/pkg/types"
)

// ErrInvalidNotation is returned for tokens that are not a known move.
var ErrInvalidNotation = errors.New("notation: invalid move notation")

// ParseNotation parses a single notation token into quarter turns.
// Examples: R, R', R2, M, E', S2
//
// A half turn (X2 or X2') expands to two clockwise quarter turns.
func ParseNotation(s string) ([]types.Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return nil, fmt.Errorf("%w: empty token", ErrInvalidNotation)
	}

	// Extract face
	var face types.Face
	switch s[0] {
	case 'R', 'r':
		face = types.FaceR
	case 'L', 'l':
		face = types.FaceL
	case 'U', 'u':
		face = types.FaceU
	case 'D', 'd':
		face = types.FaceD
	case 'F', 'f':
		face = types.FaceF
	case 'B', 'b':
		face = types.FaceB
	case 'M', 'm':
		face = types.FaceM
	case 'E', 'e':
		face = types.FaceE
	case 'S', 's':
		face = types.FaceS
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	// Extract turn
	move := types.Move{Face: face, Turn: types.TurnCW}
	switch s[1:] {
	case "":
		return []types.Move{move}, nil
	case "'", "`":
		move.Turn = types.TurnCCW
		return []types.Move{move}, nil
	case "2", "2'":
		return []types.Move{move, move}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}
}

// ParseSequence parses a space-separated sequence of moves.
// The first invalid token aborts the parse.
func ParseSequence(s string) ([]types.Move, error) {
	parts := strings.Fields(s)
	moves := make([]types.Move, 0, len(parts))

	for i, part := range parts {
		parsed, err := ParseNotation(part)
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", i+1, err)
		}
		moves = append(moves, parsed...)
	}

	return moves, nil
}

// FormatSequence formats a slice of moves as a space-separated string.
func FormatSequence(moves []types.Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// Invert returns the sequence that undoes moves: each move inverted,
// in reverse order.
func Invert(moves []types.Move) []types.Move {
	out := make([]types.Move, len(moves))
	for i, m := range moves {
		out[len(moves)-1-i] = m.Inverse()
	}
	return out
}

// NormalizeQuarterTurns reduces a signed quarter-turn count to 0..3.
// -1 -> 3, -2 -> 2, 4 -> 0, 5 -> 1
func NormalizeQuarterTurns(n int) int {
	return ((n % 4) + 4) % 4
}
