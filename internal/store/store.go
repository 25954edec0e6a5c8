// Package store holds the cube state and the in-flight rotation behind a
// single owned handle. Readers take snapshots; writers dispatch actions.
//
// A Store is not safe for concurrent use. Hosts drive it from one loop.
package store

import (
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/SeamusWaldron/gocube_puzzle/internal/cube"
	"github.com/SeamusWaldron/gocube_puzzle/internal/rotation"
	"github.com/SeamusWaldron/gocube_puzzle/internal/scramble"
	"github.com/SeamusWaldron/gocube_puzzle/pkg/types"
)

// DefaultHistoryLimit bounds the undo history.
const DefaultHistoryLimit = 1000

// Snapshot is a read-only view of the store. Slices are copies.
type Snapshot struct {
	State    cube.State
	Rotation rotation.State
	Rotating bool
	History  []types.Move
	Scramble []types.Move
}

// Solved reports whether the snapshot's cube is solved.
func (s Snapshot) Solved() bool {
	return s.State.IsSolved()
}

// Option configures a Store.
type Option func(*Store)

// WithHistoryLimit bounds how many committed moves Undo can revert.
// A limit of zero or less disables history.
func WithHistoryLimit(n int) Option {
	return func(s *Store) {
		s.historyLimit = n
	}
}

// WithLogger sets the logger for dispatched actions.
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithRand sets the random source used by Scramble actions.
func WithRand(r *rand.Rand) Option {
	return func(s *Store) {
		s.rng = r
	}
}

// WithScrambleLength sets the default scramble length.
func WithScrambleLength(n int) Option {
	return func(s *Store) {
		s.scrambleLength = n
	}
}

type subscriber struct {
	id int
	fn func(Snapshot)
}

// Store owns the cube state. The zero value is not usable; call New.
type Store struct {
	state    cube.State
	rotation rotation.State
	rotating bool
	history  []types.Move
	scramble []types.Move

	historyLimit   int
	scrambleLength int
	rng            *rand.Rand
	log            *zap.Logger

	subs     []subscriber
	nextSub  int
	onSolved []func()
}

// New creates a store holding initial.
func New(initial cube.State, opts ...Option) *Store {
	s := &Store{
		state:          initial,
		historyLimit:   DefaultHistoryLimit,
		scrambleLength: scramble.DefaultLength,
		log:            zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns the current state.
func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		State:    s.state,
		Rotation: s.rotation,
		Rotating: s.rotating,
		History:  append([]types.Move(nil), s.history...),
		Scramble: append([]types.Move(nil), s.scramble...),
	}
}

// State returns the current cube state.
func (s *Store) State() cube.State {
	return s.state
}

// Rotation returns the in-flight rotation and whether one exists.
func (s *Store) Rotation() (rotation.State, bool) {
	return s.rotation, s.rotating
}

// Subscribe registers fn to run after every dispatch that changes the cube
// or the in-flight rotation. The returned func removes the subscription.
func (s *Store) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	id := s.nextSub
	s.nextSub++
	s.subs = append(s.subs, subscriber{id: id, fn: fn})

	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// OnSolved registers fn to run when a committed move or undo turns an
// unsolved cube into a solved one.
func (s *Store) OnSolved(fn func()) {
	s.onSolved = append(s.onSolved, fn)
}

// Dispatch applies an action and reports whether the cube or the
// in-flight rotation changed.
func (s *Store) Dispatch(a Action) bool {
	beforeState := s.state.Fingerprint()
	beforeRot, beforeRotating := s.rotation, s.rotating
	wasSolved := s.state.IsSolved()

	solvable := false
	switch act := a.(type) {
	case SetRotation:
		s.rotation = act.Rotation
		s.rotating = true
	case ClearRotation:
		s.clearRotation()
	case CommitMoves:
		s.clearRotation()
		s.state = cube.ApplyAll(s.state, act.Moves...)
		s.record(act.Moves)
		solvable = len(act.Moves) > 0
	case Reset:
		s.clearRotation()
		s.state = cube.New()
		s.history = nil
		s.scramble = nil
	case Scramble:
		s.clearRotation()
		length := act.Length
		if length <= 0 {
			length = s.scrambleLength
		}
		rng := act.Rand
		if rng == nil {
			rng = s.rng
		}
		s.state, s.scramble = scramble.Scramble(cube.New(), length, rng)
		s.history = nil
	case Undo:
		if len(s.history) == 0 {
			return false
		}
		last := s.history[len(s.history)-1]
		s.history = s.history[:len(s.history)-1]
		s.clearRotation()
		s.state = cube.Apply(s.state, last.Inverse())
		solvable = true
	default:
		panic(fmt.Sprintf("store: unknown action %T", a))
	}

	changed := s.state.Fingerprint() != beforeState ||
		s.rotating != beforeRotating ||
		(s.rotating && s.rotation != beforeRot)

	s.log.Debug("dispatch",
		zap.String("action", a.actionName()),
		zap.Bool("changed", changed),
		zap.Int("history", len(s.history)),
	)

	if !changed {
		return false
	}

	s.notify()

	if solvable && !wasSolved && s.state.IsSolved() {
		s.log.Info("cube solved", zap.Int("moves", len(s.history)))
		for _, fn := range s.onSolved {
			fn()
		}
	}

	return true
}

func (s *Store) clearRotation() {
	s.rotation = rotation.State{}
	s.rotating = false
}

func (s *Store) record(moves []types.Move) {
	if s.historyLimit <= 0 {
		return
	}
	s.history = append(s.history, moves...)
	if over := len(s.history) - s.historyLimit; over > 0 {
		s.history = append([]types.Move(nil), s.history[over:]...)
	}
}

func (s *Store) notify() {
	if len(s.subs) == 0 {
		return
	}
	snap := s.Snapshot()
	// Copy so a subscriber may unsubscribe while being notified.
	subs := append([]subscriber(nil), s.subs...)
	for _, sub := range subs {
		sub.fn(snap)
	}
}
