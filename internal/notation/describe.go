package notation

import (
	"strings"

	"github.com/SeamusWaldron/gocube_puzzle/pkg/types"
)

// Describe returns a plain-language description of a move as seen by
// someone holding the cube with the front face toward them.
//
// Mapping:
//
//	R  -> "R up"             R' -> "R down"
//	L  -> "L down"           L' -> "L up"
//	U  -> "Top rotate left"  U' -> "Top rotate right"
//	D  -> "Bottom rotate right"  D' -> "Bottom rotate left"
//	F  -> "Front rotate clockwise"   F' -> "Front rotate anti-clockwise"
//	B  -> "Back rotate clockwise"    B' -> "Back rotate anti-clockwise"
//	M  -> "Middle down"      E -> "Equator rotate right"   S -> "Standing rotate anti-clockwise"
//
// B and S are named from the front, so B reads as clockwise from behind.
func Describe(m types.Move) string {
	cw := m.Turn == types.TurnCW
	pick := func(ifCW, ifCCW string) string {
		if cw {
			return ifCW
		}
		return ifCCW
	}

	switch m.Face {
	case types.FaceR:
		return pick("R up", "R down")
	case types.FaceL:
		return pick("L down", "L up")
	case types.FaceU:
		return pick("Top rotate left", "Top rotate right")
	case types.FaceD:
		return pick("Bottom rotate right", "Bottom rotate left")
	case types.FaceF:
		return pick("Front rotate clockwise", "Front rotate anti-clockwise")
	case types.FaceB:
		return pick("Back rotate clockwise", "Back rotate anti-clockwise")
	case types.FaceM:
		return pick("Middle down", "Middle up")
	case types.FaceE:
		return pick("Equator rotate right", "Equator rotate left")
	case types.FaceS:
		return pick("Standing rotate anti-clockwise", "Standing rotate clockwise")
	}

	return m.Notation() // Fallback to standard notation
}

// DescribeSequence formats moves as a comma-separated description.
func DescribeSequence(moves []types.Move) string {
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = Describe(m)
	}
	return strings.Join(parts, ", ")
}
