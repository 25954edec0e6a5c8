package gocube

// Predefined moves for convenience.
// Use these instead of constructing Move structs manually.
//
// Example:
//
//	s = gocube.ApplyMoves(s, gocube.R, gocube.U, gocube.RPrime, gocube.UPrime)
var (
	// Right face moves
	R      = Move{Face: FaceR, Turn: CW}  // Right clockwise
	RPrime = Move{Face: FaceR, Turn: CCW} // Right counter-clockwise

	// Left face moves
	L      = Move{Face: FaceL, Turn: CW}  // Left clockwise
	LPrime = Move{Face: FaceL, Turn: CCW} // Left counter-clockwise

	// Up face moves
	U      = Move{Face: FaceU, Turn: CW}  // Up clockwise
	UPrime = Move{Face: FaceU, Turn: CCW} // Up counter-clockwise

	// Down face moves
	D      = Move{Face: FaceD, Turn: CW}  // Down clockwise
	DPrime = Move{Face: FaceD, Turn: CCW} // Down counter-clockwise

	// Front face moves
	F      = Move{Face: FaceF, Turn: CW}  // Front clockwise
	FPrime = Move{Face: FaceF, Turn: CCW} // Front counter-clockwise

	// Back face moves
	B      = Move{Face: FaceB, Turn: CW}  // Back clockwise
	BPrime = Move{Face: FaceB, Turn: CCW} // Back counter-clockwise

	// Slice moves
	M      = Move{Face: FaceM, Turn: CW}  // Middle, as L
	MPrime = Move{Face: FaceM, Turn: CCW} // Middle, as L'
	E      = Move{Face: FaceE, Turn: CW}  // Equator, as D
	EPrime = Move{Face: FaceE, Turn: CCW} // Equator, as D'
	S      = Move{Face: FaceS, Turn: CW}  // Standing, as B
	SPrime = Move{Face: FaceS, Turn: CCW} // Standing, as B'
)

// Common algorithms
var (
	// SexyMove is R U R' U'. Six repetitions return to the start.
	SexyMove = []Move{R, U, RPrime, UPrime}

	// Sledgehammer is R' F R F'.
	Sledgehammer = []Move{RPrime, F, R, FPrime}
)
