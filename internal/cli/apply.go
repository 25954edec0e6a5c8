package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	gocube "github.com/SeamusWaldron/gocube_puzzle"
	"github.com/SeamusWaldron/gocube_puzzle/internal/tui"
)

var applyCmd = &cobra.Command{
	Use:   "apply <moves>",
	Short: "Apply a move sequence",
	Long: `Apply moves in standard notation and print the resulting cube.

Examples:
  gocube apply "R U R' U'"
  gocube apply --scramble-seed 42 "F2 M E' S"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

var applySeed uint64

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().Uint64Var(&applySeed, "scramble-seed", 0, "Start from the scramble with this seed")
}

func runApply(cmd *cobra.Command, args []string) error {
	moves, err := gocube.ParseMoves(strings.Join(args, " "))
	if err != nil {
		return err
	}

	var opts []gocube.Option
	if applySeed != 0 {
		opts = append(opts, gocube.WithRand(gocube.NewRand(applySeed)))
	}
	w, err := newWidget(opts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if applySeed != 0 {
		seq := w.Scramble(0)
		fmt.Fprintf(out, "Scramble: %s\n", gocube.FormatMoves(seq))
	}

	w.Apply(moves...)

	for i, m := range moves {
		fmt.Fprintf(out, "%3d. %-3s %s\n", i+1, m.Notation(), gocube.DescribeMove(m))
	}
	fmt.Fprintln(out)
	fmt.Fprint(out, tui.RenderNet(w.State()))
	fmt.Fprintln(out)
	if w.IsSolved() {
		fmt.Fprintln(out, "Solved")
	} else {
		fmt.Fprintln(out, "Not solved")
	}
	return nil
}
