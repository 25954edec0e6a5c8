package gesture

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/SeamusWaldron/gocube_puzzle/internal/rotation"
)

// angleSlack absorbs rounding when angles arrive in degrees.
const angleSlack = 1e-9

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("gesture: invalid config")

// Mode selects how the displayed angle follows the drag.
type Mode int

const (
	// ModeSmooth eases the angle toward the drag target every move.
	ModeSmooth Mode = iota
	// ModeLock also commits to a direction once the drag passes half a
	// quarter turn, after which the angle cannot swing back past zero.
	ModeLock
)

func (m Mode) String() string {
	switch m {
	case ModeSmooth:
		return "smooth"
	case ModeLock:
		return "lock"
	default:
		return "unknown"
	}
}

// ParseMode parses "smooth" or "lock".
func ParseMode(s string) (Mode, error) {
	switch s {
	case "smooth", "":
		return ModeSmooth, nil
	case "lock":
		return ModeLock, nil
	default:
		return ModeSmooth, fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, s)
	}
}

// Config tunes the gesture controller.
type Config struct {
	Sensitivity    float64       // radians per pixel of drag
	StartThreshold float64       // pixels on either axis before an axis is chosen
	MaxRotation    float64       // largest angle one gesture can show
	MinCommitAngle float64       // smaller releases are discarded
	LockAngle      float64       // ModeLock commits direction past this angle
	Smoothing      float64       // fraction of the gap closed per move, in (0, 1]
	SnapDuration   time.Duration // settle animation length
	Mode           Mode
}

// DefaultConfig returns the standard tuning.
func DefaultConfig() Config {
	return Config{
		Sensitivity:    rotation.DefaultSensitivity,
		StartThreshold: 5,
		MaxRotation:    math.Pi / 2,
		MinCommitAngle: 5 * math.Pi / 36,
		LockAngle:      math.Pi / 4,
		Smoothing:      0.3,
		SnapDuration:   250 * time.Millisecond,
		Mode:           ModeSmooth,
	}
}

// Validate checks that every field is usable.
func (c Config) Validate() error {
	switch {
	case c.Sensitivity <= 0:
		return fmt.Errorf("%w: sensitivity must be positive, got %v", ErrInvalidConfig, c.Sensitivity)
	case c.StartThreshold < 0:
		return fmt.Errorf("%w: start threshold must not be negative, got %v", ErrInvalidConfig, c.StartThreshold)
	case c.MaxRotation <= 0 || c.MaxRotation > math.Pi/2+angleSlack:
		return fmt.Errorf("%w: max rotation must be in (0, pi/2], got %v", ErrInvalidConfig, c.MaxRotation)
	case c.MinCommitAngle < 0 || c.MinCommitAngle >= c.MaxRotation:
		return fmt.Errorf("%w: min commit angle must be in [0, max rotation), got %v", ErrInvalidConfig, c.MinCommitAngle)
	case c.LockAngle <= 0 || c.LockAngle > c.MaxRotation+angleSlack:
		return fmt.Errorf("%w: lock angle must be in (0, max rotation], got %v", ErrInvalidConfig, c.LockAngle)
	case c.Smoothing <= 0 || c.Smoothing > 1:
		return fmt.Errorf("%w: smoothing must be in (0, 1], got %v", ErrInvalidConfig, c.Smoothing)
	case c.SnapDuration < 0:
		return fmt.Errorf("%w: snap duration must not be negative, got %v", ErrInvalidConfig, c.SnapDuration)
	case c.Mode != ModeSmooth && c.Mode != ModeLock:
		return fmt.Errorf("%w: unknown mode %d", ErrInvalidConfig, int(c.Mode))
	}
	return nil
}
