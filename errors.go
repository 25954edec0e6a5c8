package gocube

import (
	appconfig "github.com/SeamusWaldron/gocube_puzzle/internal/config"
	"github.com/SeamusWaldron/gocube_puzzle/internal/gesture"
	"github.com/SeamusWaldron/gocube_puzzle/internal/notation"
)

// Sentinel errors for the gocube package.
var (
	// Parsing errors
	ErrInvalidNotation = notation.ErrInvalidNotation

	// Configuration errors
	ErrInvalidGestureConfig = gesture.ErrInvalidConfig
	ErrInvalidConfig        = appconfig.ErrInvalidConfig
)
