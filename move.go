package gocube

import (
	"github.com/SeamusWaldron/gocube_puzzle/internal/notation"
	"github.com/SeamusWaldron/gocube_puzzle/pkg/types"
)

// Face is a turnable layer in standard notation.
type Face = types.Face

const (
	FaceR = types.FaceR // Right
	FaceL = types.FaceL // Left
	FaceU = types.FaceU // Up
	FaceD = types.FaceD // Down
	FaceF = types.FaceF // Front
	FaceB = types.FaceB // Back

	FaceM = types.FaceM // Middle slice
	FaceE = types.FaceE // Equator slice
	FaceS = types.FaceS // Standing slice
)

// Turn is the direction of a quarter turn.
type Turn = types.Turn

const (
	CW  = types.TurnCW  // Clockwise (90 degrees)
	CCW = types.TurnCCW // Counter-clockwise (90 degrees)
)

// Move is a single quarter turn of one layer.
type Move = types.Move

// ParseMove parses one notation token. Half turns such as "R2" expand to
// two quarter turns.
func ParseMove(s string) ([]Move, error) {
	return notation.ParseNotation(s)
}

// ParseMoves parses a space-separated sequence like "R U R' U'".
func ParseMoves(s string) ([]Move, error) {
	return notation.ParseSequence(s)
}

// FormatMoves formats moves as a space-separated string.
func FormatMoves(moves []Move) string {
	return notation.FormatSequence(moves)
}

// DescribeMoves describes a sequence, comma-separated.
func DescribeMoves(moves []Move) string {
	return notation.DescribeSequence(moves)
}

// InvertMoves returns the sequence that undoes moves.
func InvertMoves(moves []Move) []Move {
	return notation.Invert(moves)
}

// DescribeMove returns a plain-language description such as "R up".
func DescribeMove(m Move) string {
	return notation.Describe(m)
}

// ConvertToMove names quarterTurns of rotation about axis on one layer.
// It returns false when the count normalizes to zero or a half turn.
func ConvertToMove(axis Axis, layer Coord, quarterTurns int) (Move, bool) {
	return notation.ConvertToMove(axis, layer, quarterTurns)
}

// ConvertToMoves is ConvertToMove with half turns resolved to two moves.
func ConvertToMoves(axis Axis, layer Coord, quarterTurns int) []Move {
	return notation.ConvertToMoves(axis, layer, quarterTurns)
}
