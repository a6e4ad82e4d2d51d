package gocube

import "math/rand/v2"

// ScrambleLength is the progress count a scramble must reach.
const ScrambleLength = 25

// Source supplies random integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// globalSource draws from the process-wide math/rand/v2 generator.
type globalSource struct{}

func (globalSource) IntN(n int) int {
	return rand.IntN(n)
}

// Scrambler produces clockwise-only scramble sequences.
type Scrambler struct {
	source Source
}

// NewScrambler creates a scrambler drawing faces from src. A nil source
// falls back to the process-wide generator.
func NewScrambler(src Source) *Scrambler {
	if src == nil {
		src = globalSource{}
	}
	return &Scrambler{source: src}
}

// Scramble spins random faces of c clockwise until the progress counter
// reaches ScrambleLength and returns the executed moves in order.
//
// A face drawn for the third time in a row is still executed, but costs
// two progress points: three clockwise turns equal one counter-clockwise
// turn. A fourth repeat would undo the previous three and is redrawn.
func (s *Scrambler) Scramble(c *Cube) []Move {
	var (
		last, last2, last3 Face = -1, -1, -1
		count              int
		moves              = make([]Move, 0, ScrambleLength+ScrambleLength/2)
	)

	for count != ScrambleLength {
		face := Faces[s.source.IntN(len(Faces))]

		if face == last && face == last2 {
			if face == last3 {
				continue
			}
			count -= 2
		}

		m := Move{Face: face, Rotation: Clockwise}
		c.SpinFace(m)
		moves = append(moves, m)

		last3, last2, last = last2, last, face
		count++
	}

	return moves
}

// Scramble randomizes the cube using its configured source and returns
// the executed moves.
func (c *Cube) Scramble() []Move {
	return NewScrambler(c.source).Scramble(c)
}
