package gocube

import (
	"iter"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/SeamusWaldron/gocube_puzzle/internal/coords"
	"github.com/SeamusWaldron/gocube_puzzle/internal/rotation"
	"github.com/SeamusWaldron/gocube_puzzle/pkg/types"
)

// Axis is a cube-local rotation axis.
type Axis = types.Axis

const (
	AxisX = types.AxisX
	AxisY = types.AxisY
	AxisZ = types.AxisZ
)

// Coord is a cubie coordinate, -1, 0 or 1.
type Coord = types.Coord

// Position is a cubie location in the grid.
type Position = coords.Position

// RotationInfo is a resolved drag: axis, layer and direction.
type RotationInfo = rotation.Info

// RotationState is an in-flight layer rotation.
type RotationState = rotation.State

// Camera is the world-space screen basis of the active view.
type Camera = rotation.Camera

// CubiePositions yields all 27 grid positions.
func CubiePositions() iter.Seq[Position] {
	return coords.Positions()
}

// InteractiveCubies yields the 26 positions that carry stickers.
func InteractiveCubies() iter.Seq[Position] {
	return coords.Interactive()
}

// DetermineRotation resolves a cube-local drag on a face into a layer
// rotation. It returns false for drags along the face normal.
func DetermineRotation(localNormal, localDrag r3.Vec, cubie Position) (RotationInfo, bool) {
	return rotation.DetermineRotation(localNormal, localDrag, cubie)
}

// ComputeRotationAngle converts drag pixels to radians.
func ComputeRotationAngle(magnitude float64, sign int, sensitivity float64) float64 {
	return rotation.ComputeRotationAngle(magnitude, sign, sensitivity)
}

// SnapToQuarterTurn rounds an angle to the nearest quarter turn.
func SnapToQuarterTurn(angle float64) (snapped float64, quarterTurns int) {
	return rotation.SnapToQuarterTurn(angle)
}

// WorldToCubeLocal rotates a world vector into the cube's frame.
func WorldToCubeLocal(v r3.Vec, orientation quat.Number) r3.Vec {
	return rotation.WorldToCubeLocal(v, orientation)
}

// IndexFromXY maps a front or back cubie to a sticker index.
func IndexFromXY(x, y Coord) int { return coords.IndexFromXY(x, y) }

// IndexFromXZ maps an up or down cubie to a sticker index.
func IndexFromXZ(x, z Coord) int { return coords.IndexFromXZ(x, z) }

// IndexFromZY maps a left or right cubie to a sticker index.
func IndexFromZY(z, y Coord) int { return coords.IndexFromZY(z, y) }

// RenderIndex mirrors a logical index for the faces seen from behind.
func RenderIndex(face CubeFace, idx int) int { return coords.RenderIndex(face, idx) }

// StickerColors returns the colors to paint on the cubie at p.
func StickerColors(s State, p Position) map[CubeFace]Color {
	return coords.StickerColors(s, p)
}

// DefaultCamera looks down -Z with +Y up.
var DefaultCamera = rotation.DefaultCamera

// CubieAt builds a Position, panicking on values outside {-1, 0, 1}.
func CubieAt(x, y, z int) Position {
	return coords.At(x, y, z)
}

// CubeLocalToWorld rotates a cube-local vector into world space.
func CubeLocalToWorld(v r3.Vec, orientation quat.Number) r3.Vec {
	return rotation.CubeLocalToWorld(v, orientation)
}

// AxisAngle returns the orientation turning angle radians about axis.
func AxisAngle(axis r3.Vec, angle float64) quat.Number {
	return rotation.AxisAngle(axis, angle)
}

// Compose returns the orientation of applying first, then second.
func Compose(first, second quat.Number) quat.Number {
	return rotation.Compose(first, second)
}

// ViewFaces reports which cube faces point up and toward the viewer.
func ViewFaces(orientation quat.Number) (up, front CubeFace) {
	return rotation.ViewFaces(orientation)
}

// StickerIndex returns the facelet index the cubie at p shows on face.
func StickerIndex(face CubeFace, p Position) int {
	return coords.StickerIndex(face, p)
}
