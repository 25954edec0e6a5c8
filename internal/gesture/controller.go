// Package gesture turns pointer input on a cube face into layer moves.
//
// A Controller runs one gesture at a time through four phases:
//
//	Idle -> AxisPending -> Rotating -> Snapping -> Idle
//
// It writes the in-flight rotation and the committed moves through a
// store handle and never touches cube state directly.
package gesture

import (
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/SeamusWaldron/gocube_puzzle/internal/coords"
	"github.com/SeamusWaldron/gocube_puzzle/internal/notation"
	"github.com/SeamusWaldron/gocube_puzzle/internal/rotation"
	"github.com/SeamusWaldron/gocube_puzzle/internal/store"
)

// Phase is the controller's position in the gesture lifecycle.
type Phase int

const (
	Idle Phase = iota
	AxisPending
	Rotating
	Snapping
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case AxisPending:
		return "axis_pending"
	case Rotating:
		return "rotating"
	case Snapping:
		return "snapping"
	default:
		return "unknown"
	}
}

// Touch is a pointer landing on a cubie face.
type Touch struct {
	Normal r3.Vec // normal of the face hit, in cube-local space
	Cubie  coords.Position
	Camera rotation.Camera // screen basis at the moment of touch
	X, Y   float64         // screen position in pixels
}

// Pointer is a screen position in pixels; y grows downward.
type Pointer struct {
	X, Y float64
}

// Option configures a Controller.
type Option func(*Controller)

// WithConfig replaces the default tuning.
func WithConfig(cfg Config) Option {
	return func(c *Controller) {
		c.cfg = cfg
	}
}

// WithLogger sets the logger for phase transitions.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithOrientation sets the starting free orientation of the cube.
func WithOrientation(q quat.Number) Option {
	return func(c *Controller) {
		c.orientation = q
	}
}

// Controller is the gesture state machine. It is not safe for concurrent
// use; the host calls it from its input and frame loop.
type Controller struct {
	cfg         Config
	store       *store.Store
	log         *zap.Logger
	orientation quat.Number
	enabled     bool

	phase Phase
	id    string
	touch Touch

	info     rotation.Info
	dirX     float64 // unit screen direction of the drag that chose the axis
	dirY     float64
	angle    float64
	lock     rotation.Lock
	lockSign int

	snapFrom  float64
	snapTo    float64
	snapTurns int
	elapsed   time.Duration
}

// New creates a controller that dispatches into st.
func New(st *store.Store, opts ...Option) *Controller {
	c := &Controller{
		cfg:         DefaultConfig(),
		store:       st,
		log:         zap.NewNop(),
		orientation: rotation.Identity,
		enabled:     true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// GestureID returns the id of the gesture in flight, or "" when idle.
func (c *Controller) GestureID() string {
	return c.id
}

// Rotation returns the rotation being shown. It is the zero value while
// idle or axis-pending.
func (c *Controller) Rotation() rotation.State {
	if c.phase != Rotating && c.phase != Snapping {
		return rotation.State{}
	}
	return c.rotationState()
}

// Config returns the active tuning.
func (c *Controller) Config() Config {
	return c.cfg
}

// Orientation returns the cube's free orientation.
func (c *Controller) Orientation() quat.Number {
	return c.orientation
}

// SetOrientation updates the cube's free orientation. Gestures already
// past axis selection keep the axis they chose.
func (c *Controller) SetOrientation(q quat.Number) {
	c.orientation = q
}

// Enabled reports whether new gestures may start.
func (c *Controller) Enabled() bool {
	return c.enabled
}

// SetEnabled allows or blocks new gestures. Disabling cancels a gesture
// that has not started snapping.
func (c *Controller) SetEnabled(enabled bool) {
	c.enabled = enabled
	if !enabled {
		c.Cancel()
	}
}

// PointerDown starts a gesture. It is ignored unless the controller is
// idle and enabled.
func (c *Controller) PointerDown(t Touch) bool {
	if c.phase != Idle || !c.enabled {
		return false
	}

	c.touch = t
	c.id = uuid.NewString()
	c.info = rotation.Info{}
	c.angle = 0
	c.lock = rotation.LockNone
	c.lockSign = 0
	c.setPhase(AxisPending,
		zap.String("face", string(rotation.FaceFromLocalNormal(t.Normal))),
		zap.Stringer("cubie", t.Cubie),
	)
	return true
}

// PointerMove feeds the latest pointer position. Only the cumulative delta
// from the touch point matters, so dropped events are harmless.
func (c *Controller) PointerMove(p Pointer) {
	dx := p.X - c.touch.X
	dy := p.Y - c.touch.Y

	switch c.phase {
	case AxisPending:
		c.resolveAxis(dx, dy)
	case Rotating:
		c.track(dx, dy)
	}
}

func (c *Controller) resolveAxis(dx, dy float64) {
	if math.Abs(dx) < c.cfg.StartThreshold && math.Abs(dy) < c.cfg.StartThreshold {
		return
	}
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}

	world := rotation.DragVector(c.touch.Camera, dx, dy)
	local := rotation.WorldToCubeLocal(world, c.orientation)
	info, ok := rotation.DetermineRotation(c.touch.Normal, local, c.touch.Cubie)
	if !ok {
		c.log.Debug("gesture axis unresolved",
			zap.String("gesture_id", c.id),
			zap.Float64("dx", dx),
			zap.Float64("dy", dy),
		)
		return
	}

	c.info = info
	c.dirX, c.dirY = dx/length, dy/length
	c.angle = c.clamp(rotation.ComputeRotationAngle(length, info.Sign, c.cfg.Sensitivity))
	c.updateLock(c.angle)
	c.angle = c.confine(c.angle)

	c.setPhase(Rotating,
		zap.String("axis", string(info.Axis)),
		zap.Int("layer", int(info.Layer)),
		zap.Int("sign", info.Sign),
	)
	c.store.Dispatch(store.SetRotation{Rotation: c.rotationState()})
}

// track follows the signed drag along the initial screen direction, so
// moving back past the touch point reverses the rotation.
func (c *Controller) track(dx, dy float64) {
	signed := dx*c.dirX + dy*c.dirY
	dir := 1
	if signed < 0 {
		dir = -1
	}

	target := rotation.ComputeRotationAngle(math.Abs(signed), c.info.Sign*dir, c.cfg.Sensitivity)
	target = c.clamp(target)
	c.updateLock(target)
	target = c.confine(target)

	c.angle += (target - c.angle) * c.cfg.Smoothing
	c.store.Dispatch(store.SetRotation{Rotation: c.rotationState()})
}

func (c *Controller) clamp(angle float64) float64 {
	return math.Max(-c.cfg.MaxRotation, math.Min(c.cfg.MaxRotation, angle))
}

// updateLock commits the direction in ModeLock once the target passes
// the lock angle.
func (c *Controller) updateLock(target float64) {
	if c.cfg.Mode != ModeLock || c.lock == rotation.LockDirection {
		return
	}
	if math.Abs(target) < c.cfg.LockAngle {
		return
	}
	c.lock = rotation.LockDirection
	c.lockSign = 1
	if target < 0 {
		c.lockSign = -1
	}
	c.log.Debug("gesture direction locked",
		zap.String("gesture_id", c.id),
		zap.Int("direction", c.lockSign),
	)
}

// confine keeps a locked angle between zero and the max rotation on the
// locked side.
func (c *Controller) confine(angle float64) float64 {
	if c.lock != rotation.LockDirection {
		return angle
	}
	if angle*float64(c.lockSign) < 0 {
		return 0
	}
	return angle
}

// PointerUp ends the drag. A rotation smaller than the commit threshold
// is dropped; anything else settles on the nearest quarter turn.
func (c *Controller) PointerUp() {
	switch c.phase {
	case AxisPending:
		c.finish("released before axis")
	case Rotating:
		if math.Abs(c.angle) < c.cfg.MinCommitAngle {
			c.store.Dispatch(store.ClearRotation{})
			c.finish("below commit threshold")
			return
		}
		c.snapFrom = c.angle
		c.snapTo, c.snapTurns = rotation.SnapToQuarterTurn(c.angle)
		c.elapsed = 0
		c.setPhase(Snapping,
			zap.Float64("from", c.snapFrom),
			zap.Int("quarter_turns", c.snapTurns),
		)
		if c.cfg.SnapDuration <= 0 {
			c.Update(0)
		}
	}
}

// Update advances the snap animation by dt. The host calls it once per
// frame with a monotonic delta; it does nothing outside Snapping.
func (c *Controller) Update(dt time.Duration) {
	if c.phase != Snapping {
		return
	}

	c.elapsed += dt
	t := 1.0
	if c.cfg.SnapDuration > 0 {
		t = math.Min(1, float64(c.elapsed)/float64(c.cfg.SnapDuration))
	}

	c.angle = c.snapFrom + (c.snapTo-c.snapFrom)*easeOutCubic(t)
	if t < 1 {
		c.store.Dispatch(store.SetRotation{Rotation: c.rotationState()})
		return
	}

	moves := notation.ConvertToMoves(c.info.Axis, c.info.Layer, c.snapTurns)
	c.store.Dispatch(store.CommitMoves{Moves: moves})
	c.finish("committed", zap.String("moves", notation.FormatSequence(moves)))
}

// Cancel abandons the gesture without changing the cube. A snap in
// progress cannot be cancelled; Cancel reports whether it took effect.
func (c *Controller) Cancel() bool {
	switch c.phase {
	case Idle, Snapping:
		return false
	case Rotating:
		c.store.Dispatch(store.ClearRotation{})
	}
	c.finish("cancelled")
	return true
}

func (c *Controller) finish(reason string, fields ...zap.Field) {
	c.setPhase(Idle, append(fields, zap.String("reason", reason))...)
	c.id = ""
	c.info = rotation.Info{}
	c.angle = 0
	c.lock = rotation.LockNone
	c.lockSign = 0
}

func (c *Controller) setPhase(p Phase, fields ...zap.Field) {
	from := c.phase
	c.phase = p
	c.log.Debug("gesture phase",
		append([]zap.Field{
			zap.String("gesture_id", c.id),
			zap.Stringer("from", from),
			zap.Stringer("to", p),
		}, fields...)...,
	)
}

func (c *Controller) rotationState() rotation.State {
	return rotation.State{
		Axis:  c.info.Axis,
		Layer: c.info.Layer,
		Sign:  c.info.Sign,
		Angle: c.angle,
		Lock:  c.lock,
	}
}

func easeOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}
