package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r3"

	gocube "github.com/SeamusWaldron/gocube_puzzle"
)

var dragCmd = &cobra.Command{
	Use:   "drag",
	Short: "Resolve a drag gesture into a move",
	Long: `Run a single drag through the gesture controller and print the move
it commits. The face is given in the cube's own frame; --yaw spins the
cube about the vertical axis first.

Examples:
  gocube drag --face F --cubie 0,1,1 --dx 150
  gocube drag --face R --cubie 1,0,-1 --dy 120 --yaw 45`,
	RunE: runDrag,
}

var (
	dragFace  string
	dragCubie string
	dragDX    float64
	dragDY    float64
	dragYaw   float64
)

func init() {
	rootCmd.AddCommand(dragCmd)
	dragCmd.Flags().StringVar(&dragFace, "face", "F", "Face touched (U, D, F, B, R, L)")
	dragCmd.Flags().StringVar(&dragCubie, "cubie", "0,0,1", "Cubie touched as x,y,z")
	dragCmd.Flags().Float64Var(&dragDX, "dx", 0, "Horizontal drag in pixels")
	dragCmd.Flags().Float64Var(&dragDY, "dy", 0, "Vertical drag in pixels (down is positive)")
	dragCmd.Flags().Float64Var(&dragYaw, "yaw", 0, "Cube yaw in degrees")
}

var faceNormals = map[string]r3.Vec{
	"U": {Y: 1},
	"D": {Y: -1},
	"F": {Z: 1},
	"B": {Z: -1},
	"R": {X: 1},
	"L": {X: -1},
}

func parseCubie(s string) (gocube.Position, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return gocube.Position{}, fmt.Errorf("cubie %q: want x,y,z", s)
	}
	var c [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return gocube.Position{}, fmt.Errorf("cubie %q: %w", s, err)
		}
		if n < -1 || n > 1 {
			return gocube.Position{}, fmt.Errorf("cubie %q: coordinates must be -1, 0 or 1", s)
		}
		c[i] = n
	}
	return gocube.CubieAt(c[0], c[1], c[2]), nil
}

func runDrag(cmd *cobra.Command, args []string) error {
	normal, ok := faceNormals[strings.ToUpper(dragFace)]
	if !ok {
		return fmt.Errorf("unknown face %q", dragFace)
	}
	cubie, err := parseCubie(dragCubie)
	if err != nil {
		return err
	}
	if r3.Dot(normal, r3.Vec{X: float64(cubie.X), Y: float64(cubie.Y), Z: float64(cubie.Z)}) != 1 {
		return fmt.Errorf("cubie %s has no sticker on face %s", cubie, strings.ToUpper(dragFace))
	}

	w, err := newWidget(
		gocube.WithOrientation(gocube.AxisAngle(r3.Vec{Y: 1}, dragYaw*math.Pi/180)),
		gocube.WithHistoryLimit(4),
	)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	w.PointerDown(gocube.Touch{Normal: normal, Cubie: cubie, Camera: gocube.DefaultCamera})
	w.PointerMove(gocube.Pointer{X: dragDX, Y: dragDY})

	if rot, ok := w.Rotation(); ok {
		fmt.Fprintf(out, "Axis %s, layer %d, angle %.1f°\n", rot.Axis, rot.Layer, rot.Angle*180/math.Pi)
	} else {
		fmt.Fprintln(out, "No rotation resolved")
	}

	w.PointerUp()
	for w.Phase() == gocube.PhaseSnapping {
		w.Update(16 * time.Millisecond)
	}

	history := w.Snapshot().History
	if len(history) == 0 {
		fmt.Fprintln(out, "No move")
		return nil
	}
	fmt.Fprintf(out, "Move: %s (%s)\n", gocube.FormatMoves(history), gocube.DescribeMoves(history))
	return nil
}
