package types

import "fmt"

// Axis is one of the three cube-local rotation axes.
// +X points right, +Y up, +Z toward the front face.
type Axis string

const (
	AxisX Axis = "x"
	AxisY Axis = "y"
	AxisZ Axis = "z"
)

// Index returns 0, 1 or 2 for x, y and z.
func (a Axis) Index() int {
	switch a {
	case AxisX:
		return 0
	case AxisY:
		return 1
	case AxisZ:
		return 2
	default:
		panic(fmt.Sprintf("types: unknown axis %q", string(a)))
	}
}

// Coord is a cubie's position along one axis.
type Coord int

const (
	Neg Coord = -1
	Mid Coord = 0
	Pos Coord = 1
)

// Coords lists every valid coordinate in ascending order.
var Coords = [3]Coord{Neg, Mid, Pos}

// Valid reports whether c is one of -1, 0 or 1.
func (c Coord) Valid() bool {
	return c >= Neg && c <= Pos
}

// MustCoord converts an int to a Coord, panicking when it is out of range.
func MustCoord(v int) Coord {
	c := Coord(v)
	if !c.Valid() {
		panic(fmt.Sprintf("types: coordinate %d out of range", v))
	}
	return c
}
