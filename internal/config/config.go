// Package config loads runtime settings from YAML and the environment.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/SeamusWaldron/gocube_puzzle/internal/gesture"
	"github.com/SeamusWaldron/gocube_puzzle/internal/logging"
	"github.com/SeamusWaldron/gocube_puzzle/internal/scramble"
	"github.com/SeamusWaldron/gocube_puzzle/internal/store"
)

// ErrInvalidConfig wraps every validation and decoding failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Environment variables read by ApplyEnv.
const (
	EnvLogLevel       = "GOCUBE_LOG_LEVEL"
	EnvSensitivity    = "GOCUBE_SENSITIVITY"
	EnvSnapDuration   = "GOCUBE_SNAP_DURATION"
	EnvScrambleLength = "GOCUBE_SCRAMBLE_LENGTH"
)

// Duration is a time.Duration written as "250ms" in YAML.
type Duration time.Duration

// UnmarshalYAML parses a Go duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML writes the duration as a string.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Gesture holds the tunable gesture settings. Angles are in degrees.
type Gesture struct {
	Sensitivity    float64  `yaml:"sensitivity"`
	StartThreshold float64  `yaml:"start_threshold_px"`
	MaxRotation    float64  `yaml:"max_rotation_deg"`
	MinCommit      float64  `yaml:"min_commit_deg"`
	LockAngle      float64  `yaml:"lock_deg"`
	Smoothing      float64  `yaml:"smoothing"`
	SnapDuration   Duration `yaml:"snap_duration"`
	Mode           string   `yaml:"mode"`
}

// Scramble holds scramble settings.
type Scramble struct {
	Length int `yaml:"length"`
}

// Config is the full settings tree.
type Config struct {
	LogLevel     string   `yaml:"log_level"`
	HistoryLimit int      `yaml:"history_limit"`
	Scramble     Scramble `yaml:"scramble"`
	Gesture      Gesture  `yaml:"gesture"`
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

// Default returns the built-in settings.
func Default() Config {
	g := gesture.DefaultConfig()
	return Config{
		LogLevel:     "warn",
		HistoryLimit: store.DefaultHistoryLimit,
		Scramble:     Scramble{Length: scramble.DefaultLength},
		Gesture: Gesture{
			Sensitivity:    g.Sensitivity,
			StartThreshold: g.StartThreshold,
			MaxRotation:    90,
			MinCommit:      25,
			LockAngle:      45,
			Smoothing:      g.Smoothing,
			SnapDuration:   Duration(g.SnapDuration),
			Mode:           g.Mode.String(),
		},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from environment variables. lookup is
// normally os.LookupEnv.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup(EnvSensitivity); ok && v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, EnvSensitivity, err)
		}
		c.Gesture.Sensitivity = f
	}
	if v, ok := lookup(EnvSnapDuration); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, EnvSnapDuration, err)
		}
		c.Gesture.SnapDuration = Duration(d)
	}
	if v, ok := lookup(EnvScrambleLength); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, EnvScrambleLength, err)
		}
		c.Scramble.Length = n
	}
	return nil
}

// GestureConfig converts the gesture settings for the controller.
func (c Config) GestureConfig() (gesture.Config, error) {
	mode, err := gesture.ParseMode(c.Gesture.Mode)
	if err != nil {
		return gesture.Config{}, err
	}
	return gesture.Config{
		Sensitivity:    c.Gesture.Sensitivity,
		StartThreshold: c.Gesture.StartThreshold,
		MaxRotation:    radians(c.Gesture.MaxRotation),
		MinCommitAngle: radians(c.Gesture.MinCommit),
		LockAngle:      radians(c.Gesture.LockAngle),
		Smoothing:      c.Gesture.Smoothing,
		SnapDuration:   time.Duration(c.Gesture.SnapDuration),
		Mode:           mode,
	}, nil
}

// Validate checks every section.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Scramble.Length < 1 {
		return fmt.Errorf("%w: scramble length must be at least 1, got %d", ErrInvalidConfig, c.Scramble.Length)
	}
	if c.HistoryLimit < 0 {
		return fmt.Errorf("%w: history limit must not be negative, got %d", ErrInvalidConfig, c.HistoryLimit)
	}
	g, err := c.GestureConfig()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := g.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
