package rotation

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/SeamusWaldron/gocube_puzzle/internal/cube"
)

// Identity is the orientation of an unrotated cube: U up, F toward the viewer.
var Identity = quat.Number{Real: 1}

// raise lifts a vector to a pure quaternion.
func raise(v r3.Vec) quat.Number {
	return quat.Number{Imag: v.X, Jmag: v.Y, Kmag: v.Z}
}

// Rotate applies the rotation q to v. q need not be unit length.
func Rotate(v r3.Vec, q quat.Number) r3.Vec {
	if n := quat.Abs(q); n != 1 && n != 0 {
		q = quat.Scale(1/n, q)
	}
	p := quat.Mul(quat.Mul(q, raise(v)), quat.Conj(q))
	return r3.Vec{X: p.Imag, Y: p.Jmag, Z: p.Kmag}
}

// WorldToCubeLocal rotates a world vector into the cube's own frame.
func WorldToCubeLocal(v r3.Vec, orientation quat.Number) r3.Vec {
	return Rotate(v, quat.Conj(orientation))
}

// CubeLocalToWorld is the inverse of WorldToCubeLocal.
func CubeLocalToWorld(v r3.Vec, orientation quat.Number) r3.Vec {
	return Rotate(v, orientation)
}

// AxisAngle builds the rotation of angle radians about axis.
func AxisAngle(axis r3.Vec, angle float64) quat.Number {
	if r3.Norm(axis) == 0 {
		return Identity
	}
	q := quat.Scale(math.Sin(angle/2), raise(r3.Unit(axis)))
	q.Real = math.Cos(angle / 2)
	return q
}

// Compose returns the orientation reached by applying first, then second.
func Compose(first, second quat.Number) quat.Number {
	return quat.Mul(second, first)
}

// Camera is the screen basis of the active view, in world space.
type Camera struct {
	Right r3.Vec
	Up    r3.Vec
}

// DefaultCamera looks down -Z with +X to the right and +Y up.
var DefaultCamera = Camera{Right: r3.Vec{X: 1}, Up: r3.Vec{Y: 1}}

// DragVector turns a screen delta into a world vector.
// Screen y grows downward, so it is negated.
func DragVector(cam Camera, dx, dy float64) r3.Vec {
	return r3.Add(r3.Scale(dx, cam.Right), r3.Scale(-dy, cam.Up))
}

// ViewFaces reports which cube face points up and which faces the viewer
// under the given orientation.
func ViewFaces(orientation quat.Number) (up, front cube.Face) {
	// World +Y and +Z expressed in the cube's frame.
	localUp := WorldToCubeLocal(r3.Vec{Y: 1}, orientation)
	localFront := WorldToCubeLocal(r3.Vec{Z: 1}, orientation)
	return FaceFromLocalNormal(localUp).CubeFace(), FaceFromLocalNormal(localFront).CubeFace()
}
