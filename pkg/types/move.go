// Package types contains shared type definitions for the gocube puzzle engine.
package types

// Face represents a turnable layer in standard notation.
// The six outer faces plus the three middle slices.
type Face string

const (
	FaceU Face = "U" // Up
	FaceR Face = "R" // Right
	FaceF Face = "F" // Front
	FaceL Face = "L" // Left
	FaceD Face = "D" // Down
	FaceB Face = "B" // Back

	FaceM Face = "M" // Middle slice, turns like L
	FaceE Face = "E" // Equator slice, turns like D
	FaceS Face = "S" // Standing slice, turns like B
)

// IsSlice returns true for the middle slices M, E and S.
func (f Face) IsSlice() bool {
	return f == FaceM || f == FaceE || f == FaceS
}

// Turn represents the direction of a quarter turn.
type Turn int

const (
	TurnCW  Turn = 1  // Clockwise quarter turn, seen looking at the face
	TurnCCW Turn = -1 // Counter-clockwise quarter turn
)

// Move represents a single quarter turn of one layer.
type Move struct {
	Face Face `json:"face"`
	Turn Turn `json:"turn"`
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', M, E'
func (m Move) Notation() string {
	if m.Turn == TurnCCW {
		return string(m.Face) + "'"
	}
	return string(m.Face)
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Inverse returns the inverse of this move.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case TurnCW:
		inv.Turn = TurnCCW
	case TurnCCW:
		inv.Turn = TurnCW
	}
	return inv
}

// tokenFaces fixes the token order: the 12 base moves come first.
var tokenFaces = [...]Face{FaceU, FaceR, FaceF, FaceL, FaceD, FaceB, FaceM, FaceE, FaceS}

// BaseTokenCount is the number of tokens that encode outer-face moves.
const BaseTokenCount = 12

// TokenCount is the number of valid tokens, slices included.
const TokenCount = len(tokenFaces) * 2

// Token encodes the move as a single byte.
// Encoding: face*2 + turn_code where:
//   - face: U=0, R=1, F=2, L=3, D=4, B=5, M=6, E=7, S=8
//   - turn_code: CW=0, CCW=1
//
// Tokens below BaseTokenCount are the 12 base moves in the order
// U U' R R' F F' L L' D D' B B'.
func (m Move) Token() uint8 {
	var faceCode uint8
	for i, f := range tokenFaces {
		if f == m.Face {
			faceCode = uint8(i)
			break
		}
	}

	var turnCode uint8
	if m.Turn == TurnCCW {
		turnCode = 1
	}

	return faceCode*2 + turnCode
}

// MoveFromToken decodes a token back into a Move.
// Tokens outside [0, TokenCount) are a programming fault.
func MoveFromToken(token uint8) Move {
	if int(token) >= TokenCount {
		panic("types: move token out of range")
	}

	turn := TurnCW
	if token%2 == 1 {
		turn = TurnCCW
	}

	return Move{Face: tokenFaces[token/2], Turn: turn}
}

// BaseMoves returns the 12 outer-face quarter turns.
func BaseMoves() []Move {
	moves := make([]Move, BaseTokenCount)
	for i := range moves {
		moves[i] = MoveFromToken(uint8(i))
	}
	return moves
}

// AllMoves returns the 12 base moves followed by the 6 slice moves.
func AllMoves() []Move {
	moves := make([]Move, TokenCount)
	for i := range moves {
		moves[i] = MoveFromToken(uint8(i))
	}
	return moves
}
