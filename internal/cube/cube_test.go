package cube

import (
	"testing"

	"github.com/SeamusWaldron/gocube_puzzle/pkg/types"
)

var (
	moveR      = types.Move{Face: types.FaceR, Turn: types.TurnCW}
	moveRPrime = types.Move{Face: types.FaceR, Turn: types.TurnCCW}
	moveU      = types.Move{Face: types.FaceU, Turn: types.TurnCW}
	moveUPrime = types.Move{Face: types.FaceU, Turn: types.TurnCCW}
)

func TestNewCubeIsSolved(t *testing.T) {
	c := New()
	if !c.IsSolved() {
		t.Error("New cube should be solved")
	}
}

func TestNewCubeColorScheme(t *testing.T) {
	c := New()
	want := map[Face]Color{U: Yellow, D: White, L: Red, R: Orange, F: Green, B: Blue}
	for face, color := range want {
		for i, got := range c.Face(face) {
			if got != color {
				t.Errorf("face %v sticker %d: got %v, want %v", face, i, got, color)
			}
		}
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	for _, m := range types.AllMoves() {
		c := Apply(New(), m)
		if c.IsSolved() {
			t.Errorf("Cube should not be solved after %s", m)
		}
	}
}

func TestFourQuarterTurnsReturnToSolved_AllMoves(t *testing.T) {
	for _, m := range types.AllMoves() {
		c := New()
		for i := 0; i < 4; i++ {
			c = Apply(c, m)
		}
		if !c.IsSolved() {
			t.Errorf("%s x 4 should return to solved", m)
			t.Log(c.String())
		}
	}
}

func TestMoveThenInverseRestores_AllMoves(t *testing.T) {
	// Start from a mixed state so restoring means more than staying solved.
	start := ApplyAll(New(), moveR, moveU, moveRPrime, types.Move{Face: types.FaceF, Turn: types.TurnCW})

	for _, m := range types.AllMoves() {
		c := Apply(Apply(start, m), m.Inverse())
		if !c.Equal(start) {
			t.Errorf("%s %s should restore the original state", m, m.Inverse())
			t.Log(c.String())
		}
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	for _, m := range types.AllMoves() {
		in := New()
		before := in
		out := Apply(in, m)
		if !in.Equal(before) {
			t.Errorf("%s mutated its input", m)
		}
		if out.Equal(in) {
			t.Errorf("%s returned an unchanged state", m)
		}
	}
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	// (R U R' U') x 6 = identity
	c := New()
	for i := 0; i < 6; i++ {
		c = ApplyAll(c, moveR, moveU, moveRPrime, moveUPrime)
	}
	if !c.IsSolved() {
		t.Error("Sexy move x 6 should return to solved")
		t.Log(c.String())
	}
}

func TestUMoveBringsRightRowToFront(t *testing.T) {
	c := Apply(New(), moveU)
	for i := 0; i < 3; i++ {
		if got := c.Sticker(F, i); got != Orange {
			t.Errorf("F[%d] after U: got %v, want %v", i, got, Orange)
		}
		if got := c.Sticker(L, i); got != Green {
			t.Errorf("L[%d] after U: got %v, want %v", i, got, Green)
		}
	}
	if got := c.Sticker(F, 3); got != Green {
		t.Errorf("F middle row should be untouched by U, got %v", got)
	}
}

func TestRMoveBringsFrontColumnUp(t *testing.T) {
	c := Apply(New(), moveR)
	for _, i := range []int{2, 5, 8} {
		if got := c.Sticker(U, i); got != Green {
			t.Errorf("U[%d] after R: got %v, want %v", i, got, Green)
		}
	}
	for _, i := range []int{0, 3, 6} {
		if got := c.Sticker(B, i); got != Yellow {
			t.Errorf("B[%d] after R: got %v, want %v", i, got, Yellow)
		}
	}
}

func TestSliceMovesCarryCenters(t *testing.T) {
	c := Apply(New(), types.Move{Face: types.FaceM, Turn: types.TurnCW})
	// M turns like L: the top center drops to the front, the back rises.
	if got := c.Sticker(F, 4); got != Yellow {
		t.Errorf("F center after M: got %v, want %v", got, Yellow)
	}
	if got := c.Sticker(U, 4); got != Blue {
		t.Errorf("U center after M: got %v, want %v", got, Blue)
	}
	if got := c.Sticker(R, 4); got != Orange {
		t.Errorf("R center should not move with M, got %v", got)
	}
}

func TestColorCountsPreserved(t *testing.T) {
	c := New()
	for i, m := range types.AllMoves() {
		c = Apply(c, m)
		if i%2 == 0 {
			c = Apply(c, moveR)
		}
	}
	for _, color := range Colors {
		if got := c.ColorCounts()[color]; got != 9 {
			t.Errorf("color %v: got %d stickers, want 9", color, got)
		}
	}
}

func TestUnknownMovePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Applying an unknown move should panic")
		}
	}()
	Apply(New(), types.Move{Face: "X", Turn: types.TurnCW})
}

func TestUnknownTurnPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Applying a half turn as one move should panic")
		}
	}()
	Apply(New(), types.Move{Face: types.FaceR, Turn: 2})
}

func TestScrambleAndReverse(t *testing.T) {
	c := New()

	scramble := []types.Move{
		moveR, moveU, moveRPrime, moveUPrime,
		{Face: types.FaceF, Turn: types.TurnCW},
		{Face: types.FaceD, Turn: types.TurnCW},
		{Face: types.FaceL, Turn: types.TurnCW},
		{Face: types.FaceL, Turn: types.TurnCW},
		{Face: types.FaceE, Turn: types.TurnCCW},
		{Face: types.FaceS, Turn: types.TurnCW},
	}

	c = ApplyAll(c, scramble...)
	if c.IsSolved() {
		t.Error("Cube should be scrambled after moves")
	}

	for i := len(scramble) - 1; i >= 0; i-- {
		c = Apply(c, scramble[i].Inverse())
	}

	if !c.Equal(New()) {
		t.Error("Cube should be solved after reversing scramble")
		t.Log(c.String())
	}
}

func TestFingerprint(t *testing.T) {
	a := New()
	b := New()
	if a.Fingerprint() != b.Fingerprint() {
		t.Error("Equal states should share a fingerprint")
	}
	if Apply(a, moveR).Fingerprint() == a.Fingerprint() {
		t.Error("R should change the fingerprint")
	}
}

func TestStringNet(t *testing.T) {
	out := New().String()
	if len(out) == 0 {
		t.Fatal("String should render a net")
	}
	// 9 rows: 3 for U, 3 for the L F R B band, 3 for D.
	rows := 0
	for _, ch := range out {
		if ch == '\n' {
			rows++
		}
	}
	if rows != 9 {
		t.Errorf("net rows: got %d, want 9", rows)
	}
}
