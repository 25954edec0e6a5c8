package gocube

import (
	"errors"
	"testing"
)

func TestNewStateIsSolved(t *testing.T) {
	s := CreateSolvedState()
	if !s.IsSolved() {
		t.Error("new state should be solved")
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	s := ApplyMove(CreateSolvedState(), R)
	if s.IsSolved() {
		t.Error("state should not be solved after R")
	}
}

func TestApplyMoveLeavesInputUnchanged(t *testing.T) {
	s := CreateSolvedState()
	_ = ApplyMove(s, F)
	if !s.IsSolved() {
		t.Error("ApplyMove must not modify its input")
	}
}

func TestFourQuarterTurns_AllFaces(t *testing.T) {
	for _, m := range []Move{R, L, U, D, F, B, M, E, S} {
		s := ApplyMoves(CreateSolvedState(), m, m, m, m)
		if !s.IsSolved() {
			t.Errorf("%v x 4 should return to solved", m)
			t.Log(s.String())
		}
	}
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	s := CreateSolvedState()
	for i := 0; i < 6; i++ {
		s = ApplyMoves(s, SexyMove...)
	}
	if !s.IsSolved() {
		t.Error("sexy move x 6 should return to solved")
		t.Log(s.String())
	}
}

func TestApplyNotation(t *testing.T) {
	s, err := ApplyNotation(CreateSolvedState(), "R U R' U'")
	if err != nil {
		t.Fatalf("ApplyNotation: %v", err)
	}
	want := ApplyMoves(CreateSolvedState(), SexyMove...)
	if !s.Equal(want) {
		t.Error("notation and predefined moves disagree")
	}

	if _, err := ApplyNotation(s, "R Q"); !errors.Is(err, ErrInvalidNotation) {
		t.Errorf("err = %v, want ErrInvalidNotation", err)
	}
}

func TestHalfTurnNotation(t *testing.T) {
	moves, err := ParseMoves("R2")
	if err != nil {
		t.Fatal(err)
	}
	if len(moves) != 2 || moves[0] != R || moves[1] != R {
		t.Errorf("R2 parsed as %v, want [R R]", moves)
	}
}

func TestScrambleAndReverse(t *testing.T) {
	s, seq := ScrambleWith(CreateSolvedState(), 0, NewRand(42))
	if len(seq) != DefaultScrambleLength {
		t.Fatalf("scramble length = %d, want %d", len(seq), DefaultScrambleLength)
	}
	s = ApplyMoves(s, InvertMoves(seq)...)
	if !s.IsSolved() {
		t.Error("inverse scramble should solve")
		t.Log(FormatMoves(seq))
	}
}

func TestScrambleIsReproducible(t *testing.T) {
	a := ScrambleSequence(25, NewRand(7))
	b := ScrambleSequence(25, NewRand(7))
	if FormatMoves(a) != FormatMoves(b) {
		t.Errorf("same seed gave %q and %q", FormatMoves(a), FormatMoves(b))
	}
}

func TestConvertToMove(t *testing.T) {
	m, ok := ConvertToMove(AxisY, 1, 1)
	if !ok || m != UPrime {
		t.Errorf("ConvertToMove(y, 1, 1) = %v, %v; want U'", m, ok)
	}
	if _, ok := ConvertToMove(AxisX, 0, 2); ok {
		t.Error("half turns should not convert to one move")
	}
	if got := ConvertToMoves(AxisX, 0, 2); len(got) != 2 || got[0] != M {
		t.Errorf("ConvertToMoves(x, 0, 2) = %v, want [M M]", got)
	}
}

func TestDescribeMove(t *testing.T) {
	if got := DescribeMove(R); got != "R up" {
		t.Errorf("DescribeMove(R) = %q", got)
	}
	if got := DescribeMoves([]Move{R, U}); got != "R up, Top rotate left" {
		t.Errorf("DescribeMoves(R U) = %q", got)
	}
}

func TestStickerColors(t *testing.T) {
	colors := StickerColors(CreateSolvedState(), CubieAt(-1, -1, 1))
	if len(colors) != 3 {
		t.Fatalf("corner shows %d stickers, want 3", len(colors))
	}
	if colors[CubeFaceD] != White || colors[CubeFaceF] != Green || colors[CubeFaceL] != Red {
		t.Errorf("unexpected corner colors %v", colors)
	}
}

func TestCubiePositions(t *testing.T) {
	n := 0
	for range CubiePositions() {
		n++
	}
	if n != 27 {
		t.Errorf("CubiePositions yielded %d, want 27", n)
	}
}
