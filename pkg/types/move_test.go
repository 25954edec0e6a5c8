package types

import "testing"

func TestMoveNotation(t *testing.T) {
	tests := []struct {
		move Move
		want string
	}{
		{Move{FaceR, TurnCW}, "R"},
		{Move{FaceR, TurnCCW}, "R'"},
		{Move{FaceM, TurnCW}, "M"},
		{Move{FaceS, TurnCCW}, "S'"},
	}
	for _, tt := range tests {
		if got := tt.move.Notation(); got != tt.want {
			t.Errorf("Notation() = %q, want %q", got, tt.want)
		}
	}
}

func TestMoveInverse(t *testing.T) {
	for _, m := range AllMoves() {
		inv := m.Inverse()
		if inv.Face != m.Face || inv.Turn != -m.Turn {
			t.Errorf("%s inverse = %s", m, inv)
		}
		if inv.Inverse() != m {
			t.Errorf("double inverse of %s = %s", m, inv.Inverse())
		}
	}
}

func TestTokenRoundTrip(t *testing.T) {
	for tok := 0; tok < TokenCount; tok++ {
		m := MoveFromToken(uint8(tok))
		if got := m.Token(); int(got) != tok {
			t.Errorf("token %d decoded to %s, re-encoded as %d", tok, m, got)
		}
	}
}

func TestBaseMoves(t *testing.T) {
	base := BaseMoves()
	if len(base) != 12 {
		t.Fatalf("BaseMoves() len = %d, want 12", len(base))
	}
	for _, m := range base {
		if m.Face.IsSlice() {
			t.Errorf("base move %s is a slice", m)
		}
	}
	if base[0] != (Move{FaceU, TurnCW}) || base[11] != (Move{FaceB, TurnCCW}) {
		t.Errorf("unexpected base move order: %v", base)
	}
	if len(AllMoves()) != 18 {
		t.Errorf("AllMoves() len = %d, want 18", len(AllMoves()))
	}
}

func TestMoveFromTokenOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MoveFromToken(18) should panic")
		}
	}()
	MoveFromToken(uint8(TokenCount))
}

func TestAxisIndex(t *testing.T) {
	if AxisX.Index() != 0 || AxisY.Index() != 1 || AxisZ.Index() != 2 {
		t.Error("axis indices should be 0, 1, 2")
	}
}

func TestMustCoord(t *testing.T) {
	if MustCoord(-1) != Neg || MustCoord(1) != Pos {
		t.Error("MustCoord should map -1 and 1 to Neg and Pos")
	}
	defer func() {
		if recover() == nil {
			t.Error("MustCoord(2) should panic")
		}
	}()
	MustCoord(2)
}
