// Package cube provides the 3x3 sticker model and the pure move engine.
package cube

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Color represents a sticker color.
type Color byte

const (
	Yellow Color = 0 // Up face when solved
	White  Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Orange Color = 4 // Right face when solved
	Red    Color = 5 // Left face when solved
)

// Colors lists every sticker color.
var Colors = [6]Color{Yellow, White, Green, Blue, Orange, Red}

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// Name returns the lowercase color name.
func (c Color) Name() string {
	switch c {
	case White:
		return "white"
	case Yellow:
		return "yellow"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Red:
		return "red"
	case Orange:
		return "orange"
	default:
		return "unknown"
	}
}

// Face indexes one of the six sticker grids.
type Face int

const (
	U Face = 0 // Up
	D Face = 1 // Down
	F Face = 2 // Front
	B Face = 3 // Back
	R Face = 4 // Right
	L Face = 5 // Left
)

// Faces lists every face in index order.
var Faces = [6]Face{U, D, F, B, R, L}

func (f Face) String() string {
	switch f {
	case U:
		return "U"
	case D:
		return "D"
	case F:
		return "F"
	case B:
		return "B"
	case R:
		return "R"
	case L:
		return "L"
	default:
		return "?"
	}
}

// State is the color configuration of all six faces.
// Each face has 9 stickers indexed as seen from outside the cube:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// State is a value: assigning it copies every sticker, so a State handed
// to another owner can never be changed behind its back.
type State struct {
	// Facelets[face][position] = color
	Facelets [6][9]Color
}

// New creates a solved cube: yellow up, green front, orange right.
func New() State {
	var s State
	for _, face := range Faces {
		color := faceToSolvedColor(face)
		for i := 0; i < 9; i++ {
			s.Facelets[face][i] = color
		}
	}
	return s
}

// faceToSolvedColor returns the color of a face when solved.
func faceToSolvedColor(f Face) Color {
	switch f {
	case U:
		return Yellow
	case D:
		return White
	case F:
		return Green
	case B:
		return Blue
	case R:
		return Orange
	case L:
		return Red
	default:
		panic(fmt.Sprintf("cube: unknown face %d", int(f)))
	}
}

// SolvedColor returns the color a face carries on a solved cube.
func SolvedColor(f Face) Color {
	return faceToSolvedColor(f)
}

// IsSolved returns true if every face is a single color.
// Slice moves carry centers around, so the center is the reference
// rather than the face's home color.
func (s State) IsSolved() bool {
	for _, face := range Faces {
		center := s.Facelets[face][4]
		for i := 0; i < 9; i++ {
			if s.Facelets[face][i] != center {
				return false
			}
		}
	}
	return true
}

// Equal reports whether two states have identical stickers.
func (s State) Equal(other State) bool {
	return s.Facelets == other.Facelets
}

// Face returns a copy of one face's stickers.
func (s State) Face(f Face) [9]Color {
	return s.Facelets[f]
}

// Sticker returns the color at a logical index on a face.
func (s State) Sticker(f Face, idx int) Color {
	return s.Facelets[f][idx]
}

// ColorCounts returns how many stickers of each color the cube carries.
func (s State) ColorCounts() map[Color]int {
	counts := make(map[Color]int, len(Colors))
	for _, face := range Faces {
		for _, c := range s.Facelets[face] {
			counts[c]++
		}
	}
	return counts
}

// Fingerprint returns a 64-bit hash of the sticker layout.
func (s State) Fingerprint() uint64 {
	var buf [54]byte
	for f := 0; f < 6; f++ {
		for i := 0; i < 9; i++ {
			buf[f*9+i] = byte(s.Facelets[f][i])
		}
	}
	return xxhash.Sum64(buf[:])
}

// String returns a text representation of the cube as an unfolded net.
func (s State) String() string {
	var b strings.Builder

	// U face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(s.Facelets[U][row*3+col].String() + " ")
		}
		b.WriteString("\n")
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < 3; row++ {
		for _, face := range []Face{L, F, R, B} {
			for col := 0; col < 3; col++ {
				b.WriteString(s.Facelets[face][row*3+col].String() + " ")
			}
		}
		b.WriteString("\n")
	}

	// D face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(s.Facelets[D][row*3+col].String() + " ")
		}
		b.WriteString("\n")
	}

	return b.String()
}

// Debug returns a simple debug string.
func (s State) Debug() string {
	return fmt.Sprintf("Solved: %v Fingerprint: %016x", s.IsSolved(), s.Fingerprint())
}
