package store

import (
	"math/rand/v2"

	"github.com/SeamusWaldron/gocube_puzzle/internal/rotation"
	"github.com/SeamusWaldron/gocube_puzzle/pkg/types"
)

// Action is a request to change the store. The concrete types below are
// the only actions.
type Action interface {
	actionName() string
}

// SetRotation replaces the in-flight layer rotation.
type SetRotation struct {
	Rotation rotation.State
}

// ClearRotation drops the in-flight rotation without touching the cube.
type ClearRotation struct{}

// CommitMoves applies quarter turns to the cube and ends any in-flight
// rotation. An empty list only ends the rotation.
type CommitMoves struct {
	Moves []types.Move
}

// Reset returns the cube to solved and clears history.
type Reset struct{}

// Scramble replaces the cube with a fresh scramble of the solved state.
// Zero Length uses the store's configured length; nil Rand uses the
// store's source.
type Scramble struct {
	Length int
	Rand   *rand.Rand
}

// Undo reverts the most recent committed move.
type Undo struct{}

func (SetRotation) actionName() string   { return "set_rotation" }
func (ClearRotation) actionName() string { return "clear_rotation" }
func (CommitMoves) actionName() string   { return "commit_moves" }
func (Reset) actionName() string         { return "reset" }
func (Scramble) actionName() string      { return "scramble" }
func (Undo) actionName() string          { return "undo" }
