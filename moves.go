package gocube

// Predefined moves for convenience.
//
// Example:
//
//	cube.Apply(gocube.R, gocube.U, gocube.RPrime, gocube.UPrime)
var (
	F      = Move{Face: Front, Rotation: Clockwise}
	FPrime = Move{Face: Front, Rotation: CounterClockwise}

	B      = Move{Face: Back, Rotation: Clockwise}
	BPrime = Move{Face: Back, Rotation: CounterClockwise}

	L      = Move{Face: Left, Rotation: Clockwise}
	LPrime = Move{Face: Left, Rotation: CounterClockwise}

	R      = Move{Face: Right, Rotation: Clockwise}
	RPrime = Move{Face: Right, Rotation: CounterClockwise}

	U      = Move{Face: Top, Rotation: Clockwise}
	UPrime = Move{Face: Top, Rotation: CounterClockwise}

	D      = Move{Face: Bottom, Rotation: Clockwise}
	DPrime = Move{Face: Bottom, Rotation: CounterClockwise}
)

// SexyMove is R U R' U'. Six repetitions return the cube to its
// starting state.
var SexyMove = []Move{R, U, RPrime, UPrime}
