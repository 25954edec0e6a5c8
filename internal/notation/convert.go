package notation

import (
	"fmt"

	"github.com/SeamusWaldron/gocube_puzzle/pkg/types"
)

type layerKey struct {
	axis  types.Axis
	layer types.Coord
}

// layerMoves holds the move for one positive quarter turn of each layer.
// Outer faces are named as seen from outside, so a positive rotation
// about +x on the right layer reads as R'.
var layerMoves = map[layerKey]types.Move{
	{types.AxisX, types.Pos}: {Face: types.FaceR, Turn: types.TurnCCW},
	{types.AxisX, types.Neg}: {Face: types.FaceL, Turn: types.TurnCW},
	{types.AxisX, types.Mid}: {Face: types.FaceM, Turn: types.TurnCW},
	{types.AxisY, types.Pos}: {Face: types.FaceU, Turn: types.TurnCCW},
	{types.AxisY, types.Neg}: {Face: types.FaceD, Turn: types.TurnCW},
	{types.AxisY, types.Mid}: {Face: types.FaceE, Turn: types.TurnCW},
	{types.AxisZ, types.Pos}: {Face: types.FaceF, Turn: types.TurnCCW},
	{types.AxisZ, types.Neg}: {Face: types.FaceB, Turn: types.TurnCW},
	{types.AxisZ, types.Mid}: {Face: types.FaceS, Turn: types.TurnCW},
}

func lookup(axis types.Axis, layer types.Coord) types.Move {
	m, ok := layerMoves[layerKey{axis, layer}]
	if !ok {
		panic(fmt.Sprintf("notation: no move for axis %q layer %d", string(axis), int(layer)))
	}
	return m
}

// ConvertToMove names a rotation of quarterTurns about axis on one layer.
// It returns false when the count normalizes to 0 or 2: the first is no
// move at all and the second has no single quarter-turn name.
func ConvertToMove(axis types.Axis, layer types.Coord, quarterTurns int) (types.Move, bool) {
	m := lookup(axis, layer)
	switch NormalizeQuarterTurns(quarterTurns) {
	case 1:
		return m, true
	case 3:
		return m.Inverse(), true
	default:
		return types.Move{}, false
	}
}

// ConvertToMoves resolves a rotation into the quarter turns to apply.
// A half turn becomes the one-turn move applied twice.
func ConvertToMoves(axis types.Axis, layer types.Coord, quarterTurns int) []types.Move {
	m := lookup(axis, layer)
	switch NormalizeQuarterTurns(quarterTurns) {
	case 1:
		return []types.Move{m}
	case 2:
		return []types.Move{m, m}
	case 3:
		return []types.Move{m.Inverse()}
	default:
		return nil
	}
}
