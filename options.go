package gocube

import (
	"math/rand/v2"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/num/quat"

	"github.com/SeamusWaldron/gocube_puzzle/internal/gesture"
	"github.com/SeamusWaldron/gocube_puzzle/internal/rotation"
	"github.com/SeamusWaldron/gocube_puzzle/internal/store"
)

// Option configures a Widget.
type Option func(*config)

type config struct {
	logger         *zap.Logger
	gesture        gesture.Config
	rng            *rand.Rand
	initial        State
	historyLimit   int
	scrambleLength int
	orientation    quat.Number
}

func defaultConfig() *config {
	return &config{
		logger:         zap.NewNop(),
		gesture:        gesture.DefaultConfig(),
		initial:        CreateSolvedState(),
		historyLimit:   store.DefaultHistoryLimit,
		scrambleLength: DefaultScrambleLength,
		orientation:    rotation.Identity,
	}
}

// WithLogger sets the logger used by the store and the gesture controller.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithGestureConfig replaces the default gesture tuning. NewWidget
// rejects an invalid config.
func WithGestureConfig(g GestureConfig) Option {
	return func(c *config) {
		c.gesture = g
	}
}

// WithRand sets the source for scrambles. Use NewRand for reproducible
// sequences.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		c.rng = r
	}
}

// WithInitialState starts the widget from s instead of solved.
func WithInitialState(s State) Option {
	return func(c *config) {
		c.initial = s
	}
}

// WithHistoryLimit bounds how many moves Undo can revert.
// Zero or less disables undo.
func WithHistoryLimit(n int) Option {
	return func(c *config) {
		c.historyLimit = n
	}
}

// WithScrambleLength sets the default scramble length.
func WithScrambleLength(n int) Option {
	return func(c *config) {
		c.scrambleLength = n
	}
}

// WithOrientation sets the cube's starting free orientation.
func WithOrientation(q quat.Number) Option {
	return func(c *config) {
		c.orientation = q
	}
}
