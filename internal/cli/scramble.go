package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	gocube "github.com/SeamusWaldron/gocube_puzzle"
	"github.com/SeamusWaldron/gocube_puzzle/internal/tui"
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a scramble",
	Long: `Print a random scramble and the cube it produces. A non-zero seed
makes the scramble reproducible.`,
	RunE: runScramble,
}

var (
	scrambleLength int
	scrambleSeed   uint64
)

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVarP(&scrambleLength, "length", "n", 0, "Number of moves (default from config)")
	scrambleCmd.Flags().Uint64Var(&scrambleSeed, "seed", 0, "Random seed (0 for a random scramble)")
}

func runScramble(cmd *cobra.Command, args []string) error {
	length := scrambleLength
	if length <= 0 {
		length = cfg.Scramble.Length
	}

	var opts []gocube.Option
	if scrambleSeed != 0 {
		opts = append(opts, gocube.WithRand(gocube.NewRand(scrambleSeed)))
	}
	w, err := newWidget(opts...)
	if err != nil {
		return err
	}
	seq := w.Scramble(length)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Scramble: %s\n\n", gocube.FormatMoves(seq))
	fmt.Fprint(out, tui.RenderNet(w.State()))
	fmt.Fprintf(out, "\n%s\n", w.State().Debug())
	return nil
}
