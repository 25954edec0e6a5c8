package gocube

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/num/quat"

	"github.com/SeamusWaldron/gocube_puzzle/internal/gesture"
	"github.com/SeamusWaldron/gocube_puzzle/internal/store"
)

// GestureConfig tunes drag-to-rotate behavior.
type GestureConfig = gesture.Config

// GestureMode selects free or direction-locked dragging.
type GestureMode = gesture.Mode

const (
	ModeSmooth = gesture.ModeSmooth
	ModeLock   = gesture.ModeLock
)

// DefaultGestureConfig returns the default tuning.
func DefaultGestureConfig() GestureConfig {
	return gesture.DefaultConfig()
}

// Phase is the gesture lifecycle phase.
type Phase = gesture.Phase

const (
	PhaseIdle        = gesture.Idle
	PhaseAxisPending = gesture.AxisPending
	PhaseRotating    = gesture.Rotating
	PhaseSnapping    = gesture.Snapping
)

// Touch is a pointer landing on a cubie face.
type Touch = gesture.Touch

// Pointer is a screen position in pixels.
type Pointer = gesture.Pointer

// Snapshot is a read-only view of the widget's cube.
type Snapshot = store.Snapshot

// Widget is an interactive cube: a state store driven by a gesture
// controller. It is not safe for concurrent use; drive it from one loop.
type Widget struct {
	store      *store.Store
	controller *gesture.Controller
}

// NewWidget creates a widget holding a solved cube unless
// WithInitialState says otherwise.
func NewWidget(opts ...Option) (*Widget, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.gesture.Validate(); err != nil {
		return nil, fmt.Errorf("gocube: %w", err)
	}

	storeOpts := []store.Option{
		store.WithLogger(cfg.logger.Named("store")),
		store.WithHistoryLimit(cfg.historyLimit),
		store.WithScrambleLength(cfg.scrambleLength),
	}
	if cfg.rng != nil {
		storeOpts = append(storeOpts, store.WithRand(cfg.rng))
	}
	st := store.New(cfg.initial, storeOpts...)

	ctrl := gesture.New(st,
		gesture.WithConfig(cfg.gesture),
		gesture.WithLogger(cfg.logger.Named("gesture")),
		gesture.WithOrientation(cfg.orientation),
	)

	return &Widget{store: st, controller: ctrl}, nil
}

// State returns the committed cube state.
func (w *Widget) State() State {
	return w.store.State()
}

// Snapshot returns the cube, the in-flight rotation and the move history.
func (w *Widget) Snapshot() Snapshot {
	return w.store.Snapshot()
}

// IsSolved reports whether the committed state is solved.
func (w *Widget) IsSolved() bool {
	return w.store.State().IsSolved()
}

// Apply commits moves directly. It is ignored while a gesture is in
// flight and reports whether the moves were applied.
func (w *Widget) Apply(moves ...Move) bool {
	if w.controller.Phase() != PhaseIdle {
		return false
	}
	return w.store.Dispatch(store.CommitMoves{Moves: moves})
}

// ApplyNotation parses and commits a move sequence.
func (w *Widget) ApplyNotation(seq string) error {
	moves, err := ParseMoves(seq)
	if err != nil {
		return err
	}
	if !w.Apply(moves...) {
		return fmt.Errorf("gocube: gesture in progress")
	}
	return nil
}

// Scramble replaces the cube with a scramble of the solved state and
// returns the sequence used. Zero length uses the configured default.
// A drag in progress is cancelled; during a snap it returns nil and
// leaves the cube alone.
func (w *Widget) Scramble(length int) []Move {
	if w.controller.Phase() == PhaseSnapping {
		return nil
	}
	w.controller.Cancel()
	w.store.Dispatch(store.Scramble{Length: length})
	return w.store.Snapshot().Scramble
}

// Reset returns the cube to solved and reports whether it ran. It is
// refused during a snap.
func (w *Widget) Reset() bool {
	if w.controller.Phase() == PhaseSnapping {
		return false
	}
	w.controller.Cancel()
	w.store.Dispatch(store.Reset{})
	return true
}

// Undo reverts the last committed move. It does nothing mid-gesture.
func (w *Widget) Undo() bool {
	if w.controller.Phase() != PhaseIdle {
		return false
	}
	return w.store.Dispatch(store.Undo{})
}

// PointerDown starts a drag on a cubie face.
func (w *Widget) PointerDown(t Touch) bool { return w.controller.PointerDown(t) }

// PointerMove feeds the latest pointer position.
func (w *Widget) PointerMove(p Pointer) { w.controller.PointerMove(p) }

// PointerUp releases the drag.
func (w *Widget) PointerUp() { w.controller.PointerUp() }

// Update advances the snap animation. Call it once per frame.
func (w *Widget) Update(dt time.Duration) { w.controller.Update(dt) }

// Cancel abandons a gesture that has not started snapping.
func (w *Widget) Cancel() bool { return w.controller.Cancel() }

// Phase returns the gesture phase.
func (w *Widget) Phase() Phase { return w.controller.Phase() }

// Rotation returns the in-flight layer rotation and whether one exists.
func (w *Widget) Rotation() (RotationState, bool) { return w.store.Rotation() }

// Orientation returns the cube's free orientation.
func (w *Widget) Orientation() quat.Number { return w.controller.Orientation() }

// SetOrientation sets the cube's free orientation.
func (w *Widget) SetOrientation(q quat.Number) { w.controller.SetOrientation(q) }

// SetEnabled allows or blocks gestures.
func (w *Widget) SetEnabled(enabled bool) { w.controller.SetEnabled(enabled) }

// Subscribe registers fn for every visible change. Call the returned
// function to stop.
func (w *Widget) Subscribe(fn func(Snapshot)) func() {
	return w.store.Subscribe(fn)
}

// OnSolved registers fn for when a move or undo solves the cube.
func (w *Widget) OnSolved(fn func()) {
	w.store.OnSolved(fn)
}
