package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	gocube "github.com/SeamusWaldron/gocube_puzzle"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("0"))
)

var stickerColors = map[gocube.Color]lipgloss.Color{
	gocube.White:  lipgloss.Color("15"),
	gocube.Yellow: lipgloss.Color("11"),
	gocube.Red:    lipgloss.Color("9"),
	gocube.Orange: lipgloss.Color("208"),
	gocube.Green:  lipgloss.Color("10"),
	gocube.Blue:   lipgloss.Color("12"),
}

func sticker(c gocube.Color, marked bool) string {
	style := lipgloss.NewStyle().Background(stickerColors[c])
	if marked {
		return style.Inherit(cursorStyle).Render("<>")
	}
	return style.Render("  ")
}

// mark identifies one sticker in the net.
type mark struct {
	face gocube.CubeFace
	idx  int // facelet index
}

// RenderNet draws the state as a colored unfolded net with U above and D
// below the L F R B strip. Faces are drawn as seen from outside the cube.
func RenderNet(s gocube.State) string {
	return renderNet(s, nil)
}

func renderNet(s gocube.State, m *mark) string {
	row := func(face gocube.CubeFace, r int) string {
		var b strings.Builder
		for c := 0; c < 3; c++ {
			idx := r*3 + c
			b.WriteString(sticker(s.Sticker(face, idx), m != nil && m.face == face && m.idx == idx))
		}
		return b.String()
	}

	var b strings.Builder
	pad := strings.Repeat(" ", 7)
	for r := 0; r < 3; r++ {
		b.WriteString(pad + row(gocube.CubeFaceU, r) + "\n")
	}
	b.WriteString("\n")
	for r := 0; r < 3; r++ {
		b.WriteString(row(gocube.CubeFaceL, r) + " " +
			row(gocube.CubeFaceF, r) + " " +
			row(gocube.CubeFaceR, r) + " " +
			row(gocube.CubeFaceB, r) + "\n")
	}
	b.WriteString("\n")
	for r := 0; r < 3; r++ {
		b.WriteString(pad + row(gocube.CubeFaceD, r) + "\n")
	}
	return b.String()
}
