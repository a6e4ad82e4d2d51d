// Package gocube models a 3x3x3 cubelet puzzle: 27 colored sub-cubes that
// can be turned face by face, scrambled and reset.
//
// # Model
//
// A Cube stores 27 Cubelets in a flat array addressed by (col, row, depth).
// Each cubelet carries one Color per side; interior sides are Empty. A face
// turn shifts the 8 boundary cubelets of one layer by a quarter turn and
// re-orients each of them about the turning axis.
//
// # Quick Start
//
//	cube := gocube.NewCube()
//
//	// Apply moves using predefined constants
//	cube.Apply(gocube.R, gocube.U, gocube.RPrime, gocube.UPrime)
//
//	// Or from notation
//	if err := cube.ApplyNotation("F B' L D"); err != nil {
//	    log.Fatal(err)
//	}
//
//	top := cube.FaceColors(gocube.Top)
//	fmt.Println(top[0][0], cube.IsSolved())
//
// # Scrambling
//
// Scramble draws random clockwise face turns until 25 progress points are
// reached. The random source can be injected for reproducible sequences:
//
//	cube := gocube.NewCube(gocube.WithSeed(42))
//	moves := cube.Scramble()
//	fmt.Println(gocube.FormatMoves(moves))
//
// # Solved Layout
//
//	Front  Red      Back    Orange
//	Left   Blue     Right   Green
//	Top    Yellow   Bottom  White
package gocube
