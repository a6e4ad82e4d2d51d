package gocube

import (
	"fmt"
	"strings"
)

// Axis is one of the three rotation axes. X runs along columns, Y along
// rows and Z along depth.
type Axis int

const (
	AxisX Axis = 0
	AxisY Axis = 1
	AxisZ Axis = 2
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return "?"
	}
}

// Size is the number of cubelets along each axis.
const Size = 3

// Cube is a 3x3x3 puzzle made of 27 cubelets.
//
// Cubelets are addressed by (col, row, depth):
//
//	col   0 = left   .. 2 = right
//	row   0 = top    .. 2 = bottom
//	depth 0 = front  .. 2 = back
type Cube struct {
	cubelets [Size * Size * Size]Cubelet
	source   Source
}

// NewCube creates a solved cube.
func NewCube(opts ...Option) *Cube {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	c := &Cube{source: cfg.source}
	c.Reset()
	return c
}

func index(col, row, depth int) int {
	return col + Size*row + Size*Size*depth
}

// At returns the cubelet at (col, row, depth). Coordinates must be in [0,2].
func (c *Cube) At(col, row, depth int) Cubelet {
	return c.cubelets[index(col, row, depth)]
}

// Reset puts every cubelet back in its solved position and orientation.
func (c *Cube) Reset() {
	for depth := 0; depth < Size; depth++ {
		for row := 0; row < Size; row++ {
			for col := 0; col < Size; col++ {
				c.cubelets[index(col, row, depth)] = MustCubelet(
					colorIf(depth == 0, Red),
					colorIf(depth == 2, Orange),
					colorIf(col == 0, Blue),
					colorIf(col == 2, Green),
					colorIf(row == 0, Yellow),
					colorIf(row == 2, White),
				)
			}
		}
	}
}

func colorIf(cond bool, color Color) Color {
	if cond {
		return color
	}
	return Empty
}

// SolvedColor returns the color a face shows when the cube is solved.
func SolvedColor(f Face) Color {
	switch f {
	case Front:
		return Red
	case Back:
		return Orange
	case Left:
		return Blue
	case Right:
		return Green
	case Top:
		return Yellow
	case Bottom:
		return White
	default:
		return Empty
	}
}

// faceTurn maps a face onto the layer it spins.
type faceTurn struct {
	axis     Axis
	layer    int
	inverted bool // face looks against the axis' positive direction
}

var faceTurns = [6]faceTurn{
	Front:  {axis: AxisZ, layer: 0},
	Back:   {axis: AxisZ, layer: 2, inverted: true},
	Left:   {axis: AxisX, layer: 0},
	Right:  {axis: AxisX, layer: 2, inverted: true},
	Top:    {axis: AxisY, layer: 0},
	Bottom: {axis: AxisY, layer: 2, inverted: true},
}

// SpinFace turns one face of the cube a quarter turn.
// Moves with an unknown face are ignored.
func (c *Cube) SpinFace(m Move) {
	if !m.Face.Valid() {
		return
	}
	t := faceTurns[m.Face]
	r := m.Rotation
	if t.inverted {
		r = r.Inverse()
	}
	c.rotateAxis(t.axis, r, t.layer)
}

// ApplyMove applies a single move. It is the boundary name for SpinFace.
func (c *Cube) ApplyMove(m Move) {
	c.SpinFace(m)
}

// Apply applies moves in order.
func (c *Cube) Apply(moves ...Move) {
	for _, m := range moves {
		c.SpinFace(m)
	}
}

// ApplyNotation parses and applies a notation string such as "F U' R".
func (c *Cube) ApplyNotation(s string) error {
	moves, err := ParseMoves(s)
	if err != nil {
		return err
	}
	c.Apply(moves...)
	return nil
}

// Rings list the 8 boundary positions of a layer as in-plane coordinates,
// corners and edges interleaved. X uses (row, depth), Y uses (col, depth)
// and Z uses (col, row).
var rings = [3][8][2]int{
	AxisX: {{0, 0}, {0, 1}, {0, 2}, {1, 2}, {2, 2}, {2, 1}, {2, 0}, {1, 0}},
	AxisY: {{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}, {1, 2}, {0, 2}, {0, 1}},
	AxisZ: {{2, 0}, {1, 0}, {0, 0}, {0, 1}, {0, 2}, {1, 2}, {2, 2}, {2, 1}},
}

// ringIndex returns the flat index of ring slot i of a layer.
func ringIndex(a Axis, layer, i int) int {
	p := rings[a][i]
	switch a {
	case AxisX:
		return index(layer, p[0], p[1])
	case AxisY:
		return index(p[0], layer, p[1])
	default:
		return index(p[0], p[1], layer)
	}
}

// RotateAxis turns one layer of the cube about an axis. Layer 1 is the
// middle slice.
func (c *Cube) RotateAxis(a Axis, r Rotation, layer int) error {
	if a < AxisX || a > AxisZ {
		return fmt.Errorf("%w: %d", ErrInvalidAxis, a)
	}
	if layer < 0 || layer >= Size {
		return fmt.Errorf("%w: %d", ErrInvalidLayer, layer)
	}
	c.rotateAxis(a, r, layer)
	return nil
}

// rotateAxis shifts the ring by two slots and re-orients the moved
// cubelets. The layer center stays put.
func (c *Cube) rotateAxis(a Axis, r Rotation, layer int) {
	shift := 2
	if r == CounterClockwise {
		shift = 6
	}

	var snapshot [8]Cubelet
	for i := range snapshot {
		snapshot[i] = c.cubelets[ringIndex(a, layer, i)]
	}

	for i := range snapshot {
		moved := snapshot[(i+shift)%8]
		moved.rotate(a, r)
		c.cubelets[ringIndex(a, layer, i)] = moved
	}
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := *c
	return &clone
}

// Equal reports whether both cubes hold the same cubelets in the same
// orientations.
func (c *Cube) Equal(other *Cube) bool {
	return c.cubelets == other.cubelets
}

// ColorCounts returns how many facelets of each color the cube holds,
// Empty included.
func (c *Cube) ColorCounts() map[Color]int {
	counts := make(map[Color]int, 7)
	for _, cl := range c.cubelets {
		for _, color := range cl.colors {
			counts[color]++
		}
	}
	return counts
}

// IsSolved returns true if every face shows its solved color. A whole-cube
// rotation made with RotateAxis is not solved.
func (c *Cube) IsSolved() bool {
	for _, f := range Faces {
		grid := c.FaceColors(f)
		want := SolvedColor(f)
		for row := 0; row < Size; row++ {
			for col := 0; col < Size; col++ {
				if grid[row][col] != want {
					return false
				}
			}
		}
	}
	return true
}

// String returns a text net of the cube:
//
//	      U
//	L  F  R  B
//	      D
func (c *Cube) String() string {
	var b strings.Builder

	writeRow := func(grid FaceGrid, row int) {
		for col := 0; col < Size; col++ {
			b.WriteString(grid[row][col].String())
			b.WriteByte(' ')
		}
	}

	top := c.FaceColors(Top)
	for row := 0; row < Size; row++ {
		b.WriteString("      ")
		writeRow(top, row)
		b.WriteString("\n")
	}

	sides := []FaceGrid{c.FaceColors(Left), c.FaceColors(Front), c.FaceColors(Right), c.FaceColors(Back)}
	for row := 0; row < Size; row++ {
		for _, grid := range sides {
			writeRow(grid, row)
		}
		b.WriteString("\n")
	}

	bottom := c.FaceColors(Bottom)
	for row := 0; row < Size; row++ {
		b.WriteString("      ")
		writeRow(bottom, row)
		b.WriteString("\n")
	}

	return b.String()
}
