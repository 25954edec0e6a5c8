package rotation

import "github.com/SeamusWaldron/gocube_puzzle/pkg/types"

// Lock records whether a gesture's direction has been committed.
type Lock int

const (
	// LockNone lets the angle follow the drag in either direction.
	LockNone Lock = iota
	// LockDirection confines the angle to the direction held when the
	// drag first crossed half a quarter turn.
	LockDirection
)

func (l Lock) String() string {
	switch l {
	case LockNone:
		return "none"
	case LockDirection:
		return "direction"
	default:
		return "unknown"
	}
}

// State is an in-flight layer rotation. Angle is in radians about the
// positive axis.
type State struct {
	Axis  types.Axis
	Layer types.Coord
	Sign  int
	Angle float64
	Lock  Lock
}

// Info returns the resolved axis, layer and sign.
func (s State) Info() Info {
	return Info{Axis: s.Axis, Layer: s.Layer, Sign: s.Sign}
}
