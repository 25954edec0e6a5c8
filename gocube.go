// Package gocube is a 3x3x3 puzzle engine for interactive cube widgets.
//
// It owns the sticker state, applies quarter turns, and turns pointer
// drags on a rendered cube into named moves. Drawing the cube, spinning
// it freely and scheduling frames are left to the host.
//
// # Features
//
//   - Immutable cube state with pure move application
//   - Standard notation including the M, E and S slices
//   - Drag-to-turn gesture resolution, independent of free orientation
//   - Render index mapping for mirrored faces
//   - Seeded scrambles for reproducible fixtures
//
// # Quick Start
//
// Work with states directly:
//
//	s := gocube.CreateSolvedState()
//	s = gocube.ApplyMoves(s, gocube.R, gocube.U, gocube.RPrime, gocube.UPrime)
//	fmt.Println("Solved:", s.IsSolved())
//
//	moves, err := gocube.ParseMoves("F B2 L' M")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	s = gocube.ApplyMoves(s, moves...)
//
// # Widget
//
// A Widget bundles the owned state with the gesture state machine:
//
//	w, err := gocube.NewWidget(gocube.WithLogger(logger))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	w.OnSolved(func() { fmt.Println("Solved!") })
//
//	w.PointerDown(gocube.Touch{Normal: n, Cubie: pos, Camera: cam, X: x, Y: y})
//	w.PointerMove(gocube.Pointer{X: x2, Y: y2})
//	w.PointerUp()
//
//	// every frame
//	w.Update(dt)
//
// # Gesture Phases
//
// A gesture passes through Idle, AxisPending, Rotating and Snapping. A
// release under 25 degrees is discarded; anything else settles on the
// nearest quarter turn and commits the resulting move.
package gocube
