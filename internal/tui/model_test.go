package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gocube "github.com/SeamusWaldron/gocube_puzzle"
)

func newModel(t *testing.T, opts ...gocube.Option) *Model {
	t.Helper()
	w, err := gocube.NewWidget(opts...)
	require.NoError(t, err)
	return NewModel(w, nil)
}

func press(m *Model, keys ...string) {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "left":
			msg = tea.KeyMsg{Type: tea.KeyLeft}
		case "right":
			msg = tea.KeyMsg{Type: tea.KeyRight}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m.Update(msg)
	}
}

func TestFaceKeys(t *testing.T) {
	m := newModel(t)

	press(m, "r")
	assert.Equal(t, gocube.ApplyMove(gocube.CreateSolvedState(), gocube.R), m.widget.State())

	press(m, "R")
	assert.True(t, m.widget.IsSolved())
	assert.True(t, m.solved)

	press(m, "m", "M")
	assert.True(t, m.widget.IsSolved())
}

func TestTargetsFaceViewer(t *testing.T) {
	m := newModel(t)
	require.Len(t, m.targets, 9)
	assert.Equal(t, gocube.CubieAt(-1, 1, 1), m.targets[0].cubie)
	assert.Equal(t, gocube.CubieAt(1, -1, 1), m.targets[8].cubie)
}

func TestArrowDragCommitsAfterSnap(t *testing.T) {
	m := newModel(t)

	press(m, "right", "right", "right", "right", "right")
	assert.Equal(t, gocube.PhaseRotating, m.widget.Phase())

	press(m, "enter")
	assert.Equal(t, gocube.PhaseSnapping, m.widget.Phase())

	start := time.Unix(0, 0)
	m.Update(tickMsg(start))
	m.Update(tickMsg(start.Add(time.Second)))

	assert.Equal(t, gocube.PhaseIdle, m.widget.Phase())
	assert.Equal(t, gocube.ApplyMove(gocube.CreateSolvedState(), gocube.UPrime), m.widget.State())
}

func TestEscCancelsDrag(t *testing.T) {
	m := newModel(t)

	press(m, "down", "down", "esc")
	assert.Equal(t, gocube.PhaseIdle, m.widget.Phase())
	assert.False(t, m.dragging)
	assert.True(t, m.widget.IsSolved())
}

func TestSpinChangesFront(t *testing.T) {
	m := newModel(t)

	press(m, ">")
	_, front := gocube.ViewFaces(m.widget.Orientation())
	assert.Equal(t, gocube.CubeFaceL, front)
	require.Len(t, m.targets, 9)
	for _, tg := range m.targets {
		assert.EqualValues(t, -1, tg.cubie.X)
	}

	press(m, "<")
	_, front = gocube.ViewFaces(m.widget.Orientation())
	assert.Equal(t, gocube.CubeFaceF, front)
}

func TestScrambleResetUndo(t *testing.T) {
	m := newModel(t, gocube.WithRand(gocube.NewRand(9)))

	press(m, "tab")
	assert.False(t, m.widget.IsSolved())
	assert.Len(t, m.widget.Snapshot().Scramble, gocube.DefaultScrambleLength)

	press(m, "0")
	assert.True(t, m.widget.IsSolved())

	press(m, "f", "z")
	assert.True(t, m.widget.IsSolved())
}

func TestQuit(t *testing.T) {
	m := newModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Equal(t, "Bye.\n", m.View())
}

func TestViewShowsState(t *testing.T) {
	m := newModel(t)
	press(m, "u")
	v := m.View()
	assert.Contains(t, v, "GoCube Puzzle")
	assert.Contains(t, v, "Moves: 1")
	assert.Contains(t, v, "front F")
}

func TestResetKeyWaitsForSnap(t *testing.T) {
	m := newModel(t)

	press(m, "right", "right", "right", "right", "right", "enter")
	require.Equal(t, gocube.PhaseSnapping, m.widget.Phase())

	press(m, "0", "tab")
	assert.Empty(t, m.widget.Snapshot().Scramble)

	start := time.Unix(0, 0)
	m.Update(tickMsg(start))
	m.Update(tickMsg(start.Add(time.Second)))
	assert.Equal(t, []gocube.Move{gocube.UPrime}, m.widget.Snapshot().History)

	press(m, "0")
	assert.True(t, m.widget.IsSolved())
}
