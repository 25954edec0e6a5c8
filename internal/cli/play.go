package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	gocube "github.com/SeamusWaldron/gocube_puzzle"
	"github.com/SeamusWaldron/gocube_puzzle/internal/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play with the cube in the terminal",
	Long: `Open an interactive cube. Face letters turn layers directly; the
arrow keys drag the selected front sticker the way a pointer would.`,
	RunE: runPlay,
}

var playScramble bool

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().BoolVarP(&playScramble, "scramble", "s", false, "Start from a scrambled cube")
}

func runPlay(cmd *cobra.Command, args []string) error {
	w, err := newWidget()
	if err != nil {
		return err
	}
	if playScramble {
		seq := w.Scramble(0)
		logger.Sugar().Infof("scramble: %s", gocube.FormatMoves(seq))
	}

	p := tea.NewProgram(tui.NewModel(w, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("play error: %w", err)
	}
	return nil
}
