// Package cli implements the command-line interface for gocube.
package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	gocube "github.com/SeamusWaldron/gocube_puzzle"
	"github.com/SeamusWaldron/gocube_puzzle/internal/config"
	"github.com/SeamusWaldron/gocube_puzzle/internal/logging"
)

const version = "0.2.0"

var (
	// Global flags
	configPath string
	logLevel   string
	verbose    bool

	cfg    = config.Default()
	logger = zap.NewNop()
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "gocube",
	Short: "Interactive 3x3x3 cube",
	Long: `GoCube Puzzle - play with a 3x3x3 cube in the terminal, or drive the
move engine and gesture resolver from the command line.

Settings come from an optional YAML file, then GOCUBE_* environment
variables (a .env file in the working directory is honored), then flags.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func setup(cmd *cobra.Command, args []string) error {
	// A missing .env file is fine.
	_ = godotenv.Load()

	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := loaded.ApplyEnv(os.LookupEnv); err != nil {
		return err
	}
	if logLevel != "" {
		loaded.LogLevel = logLevel
	}
	if verbose {
		loaded.LogLevel = "debug"
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	l, err := logging.New(loaded.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	cfg = loaded
	logger = l
	return nil
}

// newWidget builds a widget from the loaded settings.
func newWidget(opts ...gocube.Option) (*gocube.Widget, error) {
	g, err := cfg.GestureConfig()
	if err != nil {
		return nil, err
	}
	base := []gocube.Option{
		gocube.WithLogger(logger),
		gocube.WithGestureConfig(g),
		gocube.WithHistoryLimit(cfg.HistoryLimit),
		gocube.WithScrambleLength(cfg.Scramble.Length),
	}
	return gocube.NewWidget(append(base, opts...)...)
}
