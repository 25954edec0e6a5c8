package cube

import (
	"fmt"

	"github.com/SeamusWaldron/gocube_puzzle/pkg/types"
)

// strip is three stickers on one face that travel together during a turn.
type strip struct {
	face Face
	idx  [3]int
}

// ring is the four strips a quarter turn carries around a layer.
// On a clockwise turn each strip receives the next strip's stickers
// and the last strip receives the first's.
type ring [4]strip

// reversed returns the ring walked in the opposite direction.
func (r ring) reversed() ring {
	return ring{r[0], r[3], r[2], r[1]}
}

// layerTurn describes how one notation face moves stickers.
type layerTurn struct {
	face    Face // face whose own stickers rotate; ignored for slices
	rotates bool
	ring    ring
}

var layerTurns = map[types.Face]layerTurn{
	types.FaceU: {face: U, rotates: true, ring: ring{
		{F, [3]int{0, 1, 2}},
		{R, [3]int{0, 1, 2}},
		{B, [3]int{0, 1, 2}},
		{L, [3]int{0, 1, 2}},
	}},
	types.FaceD: {face: D, rotates: true, ring: ring{
		{F, [3]int{6, 7, 8}},
		{L, [3]int{6, 7, 8}},
		{B, [3]int{6, 7, 8}},
		{R, [3]int{6, 7, 8}},
	}},
	types.FaceR: {face: R, rotates: true, ring: ring{
		{U, [3]int{2, 5, 8}},
		{F, [3]int{2, 5, 8}},
		{D, [3]int{2, 5, 8}},
		{B, [3]int{6, 3, 0}},
	}},
	types.FaceL: {face: L, rotates: true, ring: ring{
		{U, [3]int{0, 3, 6}},
		{B, [3]int{8, 5, 2}},
		{D, [3]int{0, 3, 6}},
		{F, [3]int{0, 3, 6}},
	}},
	types.FaceF: {face: F, rotates: true, ring: ring{
		{U, [3]int{6, 7, 8}},
		{L, [3]int{8, 5, 2}},
		{D, [3]int{2, 1, 0}},
		{R, [3]int{0, 3, 6}},
	}},
	types.FaceB: {face: B, rotates: true, ring: ring{
		{U, [3]int{2, 1, 0}},
		{R, [3]int{8, 5, 2}},
		{D, [3]int{6, 7, 8}},
		{L, [3]int{0, 3, 6}},
	}},
	// Slices follow the outer face they share a direction with: M as L,
	// E as D, S as B. S matches the gesture table, where a positive z
	// slice rotation reads as S.
	types.FaceM: {ring: ring{
		{U, [3]int{1, 4, 7}},
		{B, [3]int{7, 4, 1}},
		{D, [3]int{1, 4, 7}},
		{F, [3]int{1, 4, 7}},
	}},
	types.FaceE: {ring: ring{
		{F, [3]int{3, 4, 5}},
		{L, [3]int{3, 4, 5}},
		{B, [3]int{3, 4, 5}},
		{R, [3]int{3, 4, 5}},
	}},
	types.FaceS: {ring: ring{
		{U, [3]int{5, 4, 3}},
		{R, [3]int{7, 4, 1}},
		{D, [3]int{3, 4, 5}},
		{L, [3]int{1, 4, 7}},
	}},
}

// rotateFaceCW rotates a face's own stickers 90 degrees clockwise.
func rotateFaceCW(f [9]Color) [9]Color {
	return [9]Color{f[6], f[3], f[0], f[7], f[4], f[1], f[8], f[5], f[2]}
}

// rotateFaceCCW rotates a face's own stickers 90 degrees counter-clockwise.
func rotateFaceCCW(f [9]Color) [9]Color {
	return [9]Color{f[2], f[5], f[8], f[1], f[4], f[7], f[0], f[3], f[6]}
}

// Apply returns the state after one quarter turn. The input is read only;
// every write lands in the returned copy.
//
// An unknown face or turn is a programming fault and panics.
func Apply(s State, m types.Move) State {
	turn, ok := layerTurns[m.Face]
	if !ok {
		panic(fmt.Sprintf("cube: unrecognized move %q", m.Notation()))
	}

	next := s
	switch m.Turn {
	case types.TurnCW:
		if turn.rotates {
			next.Facelets[turn.face] = rotateFaceCW(s.Facelets[turn.face])
		}
		cycleStrips(&next, s, turn.ring)
	case types.TurnCCW:
		if turn.rotates {
			next.Facelets[turn.face] = rotateFaceCCW(s.Facelets[turn.face])
		}
		cycleStrips(&next, s, turn.ring.reversed())
	default:
		panic(fmt.Sprintf("cube: unrecognized turn %d for face %s", int(m.Turn), m.Face))
	}
	return next
}

// ApplyAll applies a sequence of moves in order.
func ApplyAll(s State, moves ...types.Move) State {
	for _, m := range moves {
		s = Apply(s, m)
	}
	return s
}

// cycleStrips moves each strip's stickers, read from src, into the
// preceding strip of next.
func cycleStrips(next *State, src State, r ring) {
	for i := range r {
		dst := r[i]
		from := r[(i+1)%len(r)]
		for k := 0; k < 3; k++ {
			next.Facelets[dst.face][dst.idx[k]] = src.Facelets[from.face][from.idx[k]]
		}
	}
}
