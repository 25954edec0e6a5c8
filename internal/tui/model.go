// Package tui is a terminal front end for the interactive cube. Keys stand
// in for the pointer: a selected front sticker is dragged with the arrows.
package tui

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"

	gocube "github.com/SeamusWaldron/gocube_puzzle"
)

const (
	frameInterval = 16 * time.Millisecond
	dragStep      = 40.0 // pixels per arrow press
	historyTail   = 20
)

type tickMsg time.Time

// target is one sticker that can be touched.
type target struct {
	normal r3.Vec
	cubie  gocube.Position
	x, y   float64
}

// Model drives a Widget from key presses.
type Model struct {
	widget *gocube.Widget
	log    *zap.Logger

	targets []target
	cursor  int

	dragging bool
	pointer  gocube.Pointer

	last     time.Time
	solved   bool
	err      error
	quitting bool
}

// NewModel returns a model for w.
func NewModel(w *gocube.Widget, log *zap.Logger) *Model {
	if log == nil {
		log = zap.NewNop()
	}
	m := &Model{widget: w, log: log}
	w.OnSolved(func() { m.solved = true })
	m.refreshTargets()
	return m
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) Init() tea.Cmd {
	return tick()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tickMsg:
		now := time.Time(msg)
		if !m.last.IsZero() {
			m.widget.Update(now.Sub(m.last))
		}
		m.last = now
		return m, tick()
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	m.err = nil

	switch key {
	case "q", "ctrl+c":
		m.quitting = true
		return tea.Quit

	case "tab":
		m.endDrag()
		seq := m.widget.Scramble(0)
		if seq == nil {
			break
		}
		m.solved = false
		m.log.Info("scrambled", zap.String("moves", gocube.FormatMoves(seq)))

	case "0":
		m.endDrag()
		if m.widget.Reset() {
			m.solved = false
		}

	case "z":
		m.widget.Undo()

	case "[":
		if !m.dragging {
			m.cursor = (m.cursor + len(m.targets) - 1) % len(m.targets)
		}
	case "]":
		if !m.dragging {
			m.cursor = (m.cursor + 1) % len(m.targets)
		}

	case "up":
		m.drag(0, -dragStep)
	case "down":
		m.drag(0, dragStep)
	case "left":
		m.drag(-dragStep, 0)
	case "right":
		m.drag(dragStep, 0)

	case "enter":
		if m.dragging {
			m.widget.PointerUp()
			m.dragging = false
		}

	case "esc":
		if m.dragging {
			m.widget.Cancel()
			m.dragging = false
		}

	case "<":
		m.spin(-math.Pi / 2)
	case ">":
		m.spin(math.Pi / 2)

	default:
		m.turn(key)
	}
	return nil
}

// turn applies a face letter: lowercase turns clockwise, uppercase
// counter-clockwise.
func (m *Model) turn(key string) {
	if len(key) != 1 || !strings.ContainsAny(key, "rludfbmesRLUDFBMES") {
		return
	}
	notation := strings.ToUpper(key)
	if key == notation {
		notation += "'"
	}
	if err := m.widget.ApplyNotation(notation); err != nil {
		m.err = err
	}
}

func (m *Model) drag(dx, dy float64) {
	if !m.dragging {
		if m.widget.Phase() != gocube.PhaseIdle {
			return
		}
		t := m.targets[m.cursor]
		touch := gocube.Touch{
			Normal: t.normal,
			Cubie:  t.cubie,
			Camera: gocube.DefaultCamera,
			X:      t.x,
			Y:      t.y,
		}
		if !m.widget.PointerDown(touch) {
			return
		}
		m.dragging = true
		m.pointer = gocube.Pointer{X: t.x, Y: t.y}
	}
	m.pointer.X += dx
	m.pointer.Y += dy
	m.widget.PointerMove(m.pointer)
}

func (m *Model) endDrag() {
	if m.dragging {
		m.widget.Cancel()
		m.dragging = false
	}
}

func (m *Model) spin(angle float64) {
	if m.dragging {
		return
	}
	q := gocube.Compose(m.widget.Orientation(), gocube.AxisAngle(r3.Vec{Y: 1}, angle))
	m.widget.SetOrientation(q)
	m.refreshTargets()
}

// refreshTargets lists the nine stickers facing the viewer, top row first.
func (m *Model) refreshTargets() {
	q := m.widget.Orientation()
	normal := snap(gocube.WorldToCubeLocal(r3.Vec{Z: 1}, q))

	m.targets = m.targets[:0]
	for p := range gocube.InteractiveCubies() {
		pos := r3.Vec{X: float64(p.X), Y: float64(p.Y), Z: float64(p.Z)}
		if r3.Dot(pos, normal) < 0.5 {
			continue
		}
		world := gocube.CubeLocalToWorld(pos, q)
		m.targets = append(m.targets, target{
			normal: normal,
			cubie:  p,
			x:      100 + 40*math.Round(world.X),
			y:      100 - 40*math.Round(world.Y),
		})
	}
	sort.Slice(m.targets, func(i, j int) bool {
		a, b := m.targets[i], m.targets[j]
		if a.y != b.y {
			return a.y < b.y
		}
		return a.x < b.x
	})
	if m.cursor >= len(m.targets) {
		m.cursor = 0
	}
}

func snap(v r3.Vec) r3.Vec {
	return r3.Vec{X: math.Round(v.X), Y: math.Round(v.Y), Z: math.Round(v.Z)}
}

func (m *Model) selected() *mark {
	if len(m.targets) == 0 {
		return nil
	}
	_, front := gocube.ViewFaces(m.widget.Orientation())
	return &mark{face: front, idx: gocube.StickerIndex(front, m.targets[m.cursor].cubie)}
}

func (m *Model) View() string {
	if m.quitting {
		return "Bye.\n"
	}

	var b strings.Builder
	s := m.widget.Snapshot()

	b.WriteString(titleStyle.Render("GoCube Puzzle"))
	b.WriteString("\n\n")
	b.WriteString(renderNet(s.State, m.selected()))
	b.WriteString("\n")

	up, front := gocube.ViewFaces(m.widget.Orientation())
	b.WriteString(statusStyle.Render(fmt.Sprintf("View: up %s, front %s   Gesture: %s", up, front, m.widget.Phase())))
	b.WriteString("\n")

	if rot, ok := m.widget.Rotation(); ok {
		b.WriteString(statusStyle.Render(fmt.Sprintf("Turning %s layer %d: %.0f°", rot.Axis, rot.Layer, rot.Angle*180/math.Pi)))
		b.WriteString("\n")
	}

	if s.Solved() {
		label := "Solved"
		if m.solved {
			label = "SOLVED!"
		}
		b.WriteString(solvedStyle.Render(label))
	} else {
		b.WriteString(fmt.Sprintf("Moves: %d", len(s.History)))
	}
	b.WriteString("\n")

	if n := len(s.History); n > 0 {
		tail := s.History
		prefix := ""
		if n > historyTail {
			tail = tail[n-historyTail:]
			prefix = "... "
		}
		b.WriteString(prefix + moveStyle.Render(gocube.FormatMoves(tail)))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("rludfbmes=turn (shift=prime)  [ ]=select  arrows=drag  enter=release  esc=cancel"))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("< >=spin  tab=scramble  0=reset  z=undo  q=quit"))
	b.WriteString("\n")

	return b.String()
}
