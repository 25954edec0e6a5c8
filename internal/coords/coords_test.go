package coords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/gocube_puzzle/internal/cube"
	"github.com/SeamusWaldron/gocube_puzzle/pkg/types"
)

func TestPositions(t *testing.T) {
	var all []Position
	for p := range Positions() {
		all = append(all, p)
	}
	require.Len(t, all, 27)
	assert.Equal(t, At(-1, -1, -1), all[0])
	assert.Equal(t, At(-1, -1, 0), all[1], "z varies fastest")
	assert.Equal(t, At(1, 1, 1), all[26])

	seen := make(map[Position]bool)
	for _, p := range all {
		assert.False(t, seen[p], "duplicate %s", p)
		seen[p] = true
	}

	// Restartable: a second walk yields the same sequence.
	var again []Position
	for p := range Positions() {
		again = append(again, p)
	}
	assert.Equal(t, all, again)
}

func TestPositionsEarlyBreak(t *testing.T) {
	n := 0
	for range Positions() {
		n++
		if n == 5 {
			break
		}
	}
	assert.Equal(t, 5, n)
}

func TestInteractiveSkipsCore(t *testing.T) {
	n := 0
	for p := range Interactive() {
		assert.False(t, p.IsCenter())
		n++
	}
	assert.Equal(t, 26, n)
}

func TestOrientation(t *testing.T) {
	corner := Orientation(At(1, 1, 1))
	assert.Equal(t, Faces{Top: true, Right: true, Front: true}, corner)
	assert.ElementsMatch(t, []cube.Face{cube.U, cube.F, cube.R}, corner.List())

	edge := Orientation(At(-1, 0, -1))
	assert.ElementsMatch(t, []cube.Face{cube.L, cube.B}, edge.List())
	assert.True(t, edge.Has(cube.B))
	assert.False(t, edge.Has(cube.F))

	center := Orientation(At(0, -1, 0))
	assert.Equal(t, []cube.Face{cube.D}, center.List())

	assert.Empty(t, Orientation(At(0, 0, 0)).List())
}

func TestIndexFromPlanes(t *testing.T) {
	tests := []struct {
		name string
		fn   func(a, b types.Coord) int
	}{
		{"XY", IndexFromXY},
		{"XZ", IndexFromXZ},
		{"ZY", IndexFromZY},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, 0, tt.fn(types.Neg, types.Pos))
			assert.Equal(t, 2, tt.fn(types.Pos, types.Pos))
			assert.Equal(t, 4, tt.fn(types.Mid, types.Mid))
			assert.Equal(t, 6, tt.fn(types.Neg, types.Neg))
			assert.Equal(t, 8, tt.fn(types.Pos, types.Neg))
		})
	}
}

func TestIndexOutOfRangePanics(t *testing.T) {
	assert.Panics(t, func() { IndexFromXY(2, 0) })
	assert.Panics(t, func() { IndexFromZY(0, -2) })
	assert.Panics(t, func() { At(0, 3, 0) })
	assert.Panics(t, func() { RenderIndex(cube.U, 9) })
}

func TestRenderIndex(t *testing.T) {
	assert.Equal(t, 2, RenderIndex(cube.B, 0))
	assert.Equal(t, 3, RenderIndex(cube.R, 5))
	assert.Equal(t, 6, RenderIndex(cube.U, 0))
	assert.Equal(t, 1, RenderIndex(cube.U, 7))

	for _, face := range cube.Faces {
		for i := 0; i < 9; i++ {
			switch face {
			case cube.U, cube.R, cube.B:
				assert.Equal(t, i, RenderIndex(face, RenderIndex(face, i)), "involution on %s[%d]", face, i)
			default:
				assert.Equal(t, i, RenderIndex(face, i), "identity on %s[%d]", face, i)
			}
		}
	}
}

func TestStickerIndexCoversEachFaceOnce(t *testing.T) {
	for _, face := range cube.Faces {
		hits := make(map[int]int)
		for p := range Interactive() {
			if !Orientation(p).Has(face) {
				continue
			}
			hits[StickerIndex(face, p)]++
		}
		require.Len(t, hits, 9, "face %s", face)
		for idx, n := range hits {
			assert.Equal(t, 1, n, "face %s index %d", face, idx)
		}
	}
}

func TestStickerColorsSolved(t *testing.T) {
	s := cube.New()
	colors := StickerColors(s, At(1, 1, 1))
	assert.Equal(t, map[cube.Face]cube.Color{
		cube.U: cube.Yellow,
		cube.F: cube.Green,
		cube.R: cube.Orange,
	}, colors)
}

func TestStickerColorsFollowMoves(t *testing.T) {
	// After R the right column of the top layer shows the old front color.
	s := cube.Apply(cube.New(), types.Move{Face: types.FaceR, Turn: types.TurnCW})
	for _, z := range types.Coords {
		p := Position{X: types.Pos, Y: types.Pos, Z: z}
		assert.Equal(t, cube.Green, StickerColors(s, p)[cube.U], "cubie %s", p)
	}

	// After U the top row of the front shows the old right color.
	s = cube.Apply(cube.New(), types.Move{Face: types.FaceU, Turn: types.TurnCW})
	for _, x := range types.Coords {
		p := Position{X: x, Y: types.Pos, Z: types.Pos}
		assert.Equal(t, cube.Orange, StickerColors(s, p)[cube.F], "cubie %s", p)
	}
}

func TestInLayer(t *testing.T) {
	count := 0
	for p := range Positions() {
		if InLayer(p, types.AxisX, types.Pos) {
			count++
			assert.Equal(t, types.Pos, p.X)
		}
	}
	assert.Equal(t, 9, count)
	assert.True(t, InLayer(At(0, 0, 0), types.AxisY, types.Mid))
	assert.False(t, InLayer(At(0, 1, 0), types.AxisY, types.Mid))
}
