// Package coords maps cubie positions to sticker indices.
//
// Positions use cube-local axes: +X right, +Y up, +Z toward the front face.
// Logical sticker indices follow the cube package layout; render indices
// are the mirrored indices a host uses when painting a face seen from
// inside its own frame.
package coords

import (
	"fmt"
	"iter"

	"github.com/SeamusWaldron/gocube_puzzle/internal/cube"
	"github.com/SeamusWaldron/gocube_puzzle/pkg/types"
)

// Position is a cubie's location in the 3x3x3 grid.
type Position struct {
	X, Y, Z types.Coord
}

// At builds a Position from plain ints, panicking on values outside {-1,0,1}.
func At(x, y, z int) Position {
	return Position{X: types.MustCoord(x), Y: types.MustCoord(y), Z: types.MustCoord(z)}
}

// Axis returns the coordinate along one axis.
func (p Position) Axis(a types.Axis) types.Coord {
	switch a {
	case types.AxisX:
		return p.X
	case types.AxisY:
		return p.Y
	case types.AxisZ:
		return p.Z
	default:
		panic(fmt.Sprintf("coords: unknown axis %q", string(a)))
	}
}

// IsCenter reports whether p is the hidden core cubie.
func (p Position) IsCenter() bool {
	return p.X == types.Mid && p.Y == types.Mid && p.Z == types.Mid
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z)
}

// Positions yields all 27 positions, x outermost, then y, then z.
// Each call returns a fresh sequence.
func Positions() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for _, x := range types.Coords {
			for _, y := range types.Coords {
				for _, z := range types.Coords {
					if !yield(Position{X: x, Y: y, Z: z}) {
						return
					}
				}
			}
		}
	}
}

// Interactive yields the 26 positions that carry stickers.
func Interactive() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for p := range Positions() {
			if p.IsCenter() {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}

// Faces records which outer faces a cubie shows a sticker on.
type Faces struct {
	Top, Bottom, Left, Right, Front, Back bool
}

// Orientation reports the outward-facing faces of the cubie at p.
func Orientation(p Position) Faces {
	return Faces{
		Top:    p.Y == types.Pos,
		Bottom: p.Y == types.Neg,
		Left:   p.X == types.Neg,
		Right:  p.X == types.Pos,
		Front:  p.Z == types.Pos,
		Back:   p.Z == types.Neg,
	}
}

// List returns the visible faces in U D F B R L order.
func (f Faces) List() []cube.Face {
	var out []cube.Face
	if f.Top {
		out = append(out, cube.U)
	}
	if f.Bottom {
		out = append(out, cube.D)
	}
	if f.Front {
		out = append(out, cube.F)
	}
	if f.Back {
		out = append(out, cube.B)
	}
	if f.Right {
		out = append(out, cube.R)
	}
	if f.Left {
		out = append(out, cube.L)
	}
	return out
}

// Has reports whether the face is among the visible ones.
func (f Faces) Has(face cube.Face) bool {
	switch face {
	case cube.U:
		return f.Top
	case cube.D:
		return f.Bottom
	case cube.F:
		return f.Front
	case cube.B:
		return f.Back
	case cube.R:
		return f.Right
	case cube.L:
		return f.Left
	default:
		return false
	}
}

func row(vertical types.Coord) int {
	mustValid(vertical)
	return int(types.Pos - vertical)
}

func col(horizontal types.Coord) int {
	mustValid(horizontal)
	return int(horizontal - types.Neg)
}

func mustValid(c types.Coord) {
	if !c.Valid() {
		panic(fmt.Sprintf("coords: coordinate %d out of range", int(c)))
	}
}

// IndexFromXY maps a cubie on the F or B face to a logical index.
func IndexFromXY(x, y types.Coord) int {
	return row(y)*3 + col(x)
}

// IndexFromXZ maps a cubie on the U or D face to a logical index.
func IndexFromXZ(x, z types.Coord) int {
	return row(z)*3 + col(x)
}

// IndexFromZY maps a cubie on the L or R face to a logical index.
func IndexFromZY(z, y types.Coord) int {
	return row(y)*3 + col(z)
}

// RenderIndex converts a logical index to the index a host paints.
// B and R mirror their columns, U mirrors its rows.
func RenderIndex(face cube.Face, idx int) int {
	if idx < 0 || idx > 8 {
		panic(fmt.Sprintf("coords: sticker index %d out of range", idx))
	}
	r, c := idx/3, idx%3
	switch face {
	case cube.B, cube.R:
		return r*3 + (2 - c)
	case cube.U:
		return (2-r)*3 + c
	default:
		return idx
	}
}

// StickerIndex returns the index into state.Facelets[face] of the sticker
// the cubie at p shows on face.
func StickerIndex(face cube.Face, p Position) int {
	var logical int
	switch face {
	case cube.U, cube.D:
		logical = IndexFromXZ(p.X, p.Z)
	case cube.L, cube.R:
		logical = IndexFromZY(p.Z, p.Y)
	case cube.F, cube.B:
		logical = IndexFromXY(p.X, p.Y)
	default:
		panic(fmt.Sprintf("coords: unknown face %d", int(face)))
	}
	return RenderIndex(face, logical)
}

// StickerColors returns the color on each visible face of the cubie at p.
func StickerColors(s cube.State, p Position) map[cube.Face]cube.Color {
	faces := Orientation(p).List()
	colors := make(map[cube.Face]cube.Color, len(faces))
	for _, f := range faces {
		colors[f] = s.Sticker(f, StickerIndex(f, p))
	}
	return colors
}

// InLayer reports whether the cubie at p turns with the given layer.
func InLayer(p Position, axis types.Axis, layer types.Coord) bool {
	return p.Axis(axis) == layer
}
