// Package rotation holds the pure math that turns a drag on a cube face
// into a layer rotation.
//
// Every vector here is in cube-local space: world vectors are first
// rotated by the inverse of the cube's free orientation, so results do
// not depend on how the whole puzzle has been spun.
package rotation

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/SeamusWaldron/gocube_puzzle/internal/coords"
	"github.com/SeamusWaldron/gocube_puzzle/internal/cube"
	"github.com/SeamusWaldron/gocube_puzzle/pkg/types"
)

// Epsilon is the shortest vector treated as a usable direction.
const Epsilon = 0.001

// QuarterTurn is one 90 degree turn in radians.
const QuarterTurn = math.Pi / 2

// DefaultSensitivity converts drag pixels to radians.
const DefaultSensitivity = 0.01

// FaceName names the face a local normal points out of.
type FaceName string

const (
	FaceRight FaceName = "right"
	FaceLeft  FaceName = "left"
	FaceUp    FaceName = "up"
	FaceDown  FaceName = "down"
	FaceFront FaceName = "front"
	FaceBack  FaceName = "back"
)

// CubeFace returns the sticker grid for the named face.
func (f FaceName) CubeFace() cube.Face {
	switch f {
	case FaceRight:
		return cube.R
	case FaceLeft:
		return cube.L
	case FaceUp:
		return cube.U
	case FaceDown:
		return cube.D
	case FaceFront:
		return cube.F
	case FaceBack:
		return cube.B
	default:
		panic(fmt.Sprintf("rotation: unknown face name %q", string(f)))
	}
}

// Info is a resolved drag: which layer turns, and in which direction
// about the positive axis.
type Info struct {
	Axis  types.Axis
	Layer types.Coord
	Sign  int
}

// dominant picks the largest-magnitude component. Ties fall through to
// y, then z.
func dominant(v r3.Vec) (types.Axis, int) {
	absX, absY, absZ := math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)

	sign := func(c float64) int {
		if c > 0 {
			return 1
		}
		return -1
	}

	switch {
	case absX > absY && absX > absZ:
		return types.AxisX, sign(v.X)
	case absY > absZ:
		return types.AxisY, sign(v.Y)
	default:
		return types.AxisZ, sign(v.Z)
	}
}

// FaceFromLocalNormal classifies a normal by its largest signed component.
func FaceFromLocalNormal(n r3.Vec) FaceName {
	axis, sign := dominant(n)
	switch axis {
	case types.AxisX:
		if sign > 0 {
			return FaceRight
		}
		return FaceLeft
	case types.AxisY:
		if sign > 0 {
			return FaceUp
		}
		return FaceDown
	default:
		if sign > 0 {
			return FaceFront
		}
		return FaceBack
	}
}

// SnapToAxis returns the signed basis axis nearest to v.
func SnapToAxis(v r3.Vec) (types.Axis, int) {
	return dominant(v)
}

// AxisVector returns the unit vector along a signed basis axis.
func AxisVector(axis types.Axis, sign int) r3.Vec {
	s := float64(sign)
	switch axis {
	case types.AxisX:
		return r3.Vec{X: s}
	case types.AxisY:
		return r3.Vec{Y: s}
	case types.AxisZ:
		return r3.Vec{Z: s}
	default:
		panic(fmt.Sprintf("rotation: unknown axis %q", string(axis)))
	}
}

// ProjectToPlane removes the normal component of v and normalizes the
// rest. A residual shorter than Epsilon yields the zero vector.
func ProjectToPlane(v, normal r3.Vec) r3.Vec {
	n := r3.Unit(normal)
	projected := r3.Sub(v, r3.Scale(r3.Dot(v, n), n))
	if r3.Norm(projected) < Epsilon {
		return r3.Vec{}
	}
	return r3.Unit(projected)
}

// LayerFromPosition returns the cubie's coordinate on the rotation axis.
func LayerFromPosition(p coords.Position, axis types.Axis) types.Coord {
	return p.Axis(axis)
}

// DetermineRotation resolves a drag across a face into a layer rotation.
//
// The drag is projected onto the face plane and crossed with the normal;
// by the right-hand rule the result points along the rotation axis. It
// returns false when that cross product is too short to name an axis.
func DetermineRotation(normal, drag r3.Vec, p coords.Position) (Info, bool) {
	if r3.Norm(normal) < Epsilon {
		return Info{}, false
	}
	n := r3.Unit(normal)
	inPlane := ProjectToPlane(drag, n)
	raw := r3.Cross(n, inPlane)
	if r3.Norm(raw) < Epsilon {
		return Info{}, false
	}
	raw = r3.Unit(raw)

	axis, sign := SnapToAxis(raw)
	if r3.Dot(raw, AxisVector(axis, sign)) < 0 {
		sign = -sign
	}

	return Info{
		Axis:  axis,
		Layer: LayerFromPosition(p, axis),
		Sign:  sign,
	}, true
}

// ComputeRotationAngle converts a drag length in pixels to radians.
func ComputeRotationAngle(magnitude float64, sign int, sensitivity float64) float64 {
	return magnitude * sensitivity * float64(sign)
}

// SnapToQuarterTurn rounds an angle to the nearest quarter turn.
// Halfway values round away from zero.
func SnapToQuarterTurn(angle float64) (snapped float64, quarterTurns int) {
	quarterTurns = int(math.Round(angle / QuarterTurn))
	return float64(quarterTurns) * QuarterTurn, quarterTurns
}
