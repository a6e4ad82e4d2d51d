package gocube

import "fmt"

// Color is the color of a single facelet.
type Color byte

const (
	White  Color = 0 // Bottom face when solved
	Yellow Color = 1 // Top face when solved
	Orange Color = 2 // Back face when solved
	Red    Color = 3 // Front face when solved
	Green  Color = 4 // Right face when solved
	Blue   Color = 5 // Left face when solved
	Empty  Color = 6 // Interior facelet, never visible
)

// Colors lists the six puzzle colors (Empty excluded).
var Colors = [6]Color{White, Yellow, Orange, Red, Green, Blue}

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Orange:
		return "O"
	case Red:
		return "R"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Empty:
		return "."
	default:
		return "?"
	}
}

// Cubelet is one of the 27 sub-cubes. It holds one color per side,
// indexed by Face.
type Cubelet struct {
	colors [6]Color
}

// NewCubelet creates a cubelet from its six side colors. It fails with
// ErrOppositeColors if two opposite sides are both colored.
func NewCubelet(front, back, left, right, top, bottom Color) (Cubelet, error) {
	c := Cubelet{colors: [6]Color{front, back, left, right, top, bottom}}
	for _, f := range [3]Face{Front, Left, Top} {
		if c.colors[f] != Empty && c.colors[f.Opposite()] != Empty {
			return Cubelet{}, fmt.Errorf("%w: %s=%s %s=%s", ErrOppositeColors,
				f.Name(), c.colors[f], f.Opposite().Name(), c.colors[f.Opposite()])
		}
	}
	return c, nil
}

// MustCubelet is like NewCubelet but panics on an invalid color layout.
func MustCubelet(front, back, left, right, top, bottom Color) Cubelet {
	c, err := NewCubelet(front, back, left, right, top, bottom)
	if err != nil {
		panic(err)
	}
	return c
}

// Color returns the color on side f.
func (c Cubelet) Color(f Face) Color {
	return c.colors[f]
}

// Per-axis side cycles. A clockwise turn gives each listed side the old
// color of the next side in the list; counter-clockwise takes the previous.
var (
	cycleX = [4]Face{Top, Back, Bottom, Front}
	cycleY = [4]Face{Front, Right, Back, Left}
	cycleZ = [4]Face{Top, Left, Bottom, Right}
)

// RotateX turns the cubelet about the X (column) axis.
func (c *Cubelet) RotateX(r Rotation) {
	c.cycle(cycleX, r)
}

// RotateY turns the cubelet about the Y (row) axis.
func (c *Cubelet) RotateY(r Rotation) {
	c.cycle(cycleY, r)
}

// RotateZ turns the cubelet about the Z (depth) axis.
func (c *Cubelet) RotateZ(r Rotation) {
	c.cycle(cycleZ, r)
}

// rotate dispatches to the operator for axis a.
func (c *Cubelet) rotate(a Axis, r Rotation) {
	switch a {
	case AxisX:
		c.RotateX(r)
	case AxisY:
		c.RotateY(r)
	case AxisZ:
		c.RotateZ(r)
	}
}

func (c *Cubelet) cycle(order [4]Face, r Rotation) {
	step := 1
	if r == CounterClockwise {
		step = 3
	}
	old := c.colors
	for i, f := range order {
		c.colors[f] = old[order[(i+step)%4]]
	}
}
