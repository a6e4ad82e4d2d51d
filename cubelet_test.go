package gocube

import (
	"errors"
	"testing"
)

func TestNewCubeletRejectsOppositeColors(t *testing.T) {
	tests := []struct {
		name   string
		colors [6]Color
	}{
		{"front/back", [6]Color{Red, Orange, Empty, Empty, Empty, Empty}},
		{"left/right", [6]Color{Empty, Empty, Blue, Green, Empty, Empty}},
		{"top/bottom", [6]Color{Empty, Empty, Empty, Empty, Yellow, White}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := tt.colors
			_, err := NewCubelet(c[0], c[1], c[2], c[3], c[4], c[5])
			if !errors.Is(err, ErrOppositeColors) {
				t.Errorf("got %v, want ErrOppositeColors", err)
			}
		})
	}
}

func TestNewCubeletAcceptsCorner(t *testing.T) {
	c, err := NewCubelet(Red, Empty, Blue, Empty, Yellow, Empty)
	if err != nil {
		t.Fatal(err)
	}
	if c.Color(Front) != Red || c.Color(Left) != Blue || c.Color(Top) != Yellow {
		t.Errorf("unexpected colors: %v", c)
	}
}

func TestMustCubeletPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustCubelet should panic on opposite colors")
		}
	}()
	MustCubelet(Red, Orange, Empty, Empty, Empty, Empty)
}

// distinct gives every side its own color so cycles are visible.
func distinct() Cubelet {
	return Cubelet{colors: [6]Color{White, Yellow, Orange, Red, Green, Blue}}
}

func TestCubeletRotations(t *testing.T) {
	tests := []struct {
		name   string
		rotate func(*Cubelet, Rotation)
		r      Rotation
		want   map[Face]Face // side -> side whose old color it takes
	}{
		{"X CW", (*Cubelet).RotateX, Clockwise, map[Face]Face{Top: Back, Back: Bottom, Bottom: Front, Front: Top, Left: Left, Right: Right}},
		{"X CCW", (*Cubelet).RotateX, CounterClockwise, map[Face]Face{Top: Front, Front: Bottom, Bottom: Back, Back: Top, Left: Left, Right: Right}},
		{"Y CW", (*Cubelet).RotateY, Clockwise, map[Face]Face{Front: Right, Right: Back, Back: Left, Left: Front, Top: Top, Bottom: Bottom}},
		{"Y CCW", (*Cubelet).RotateY, CounterClockwise, map[Face]Face{Front: Left, Left: Back, Back: Right, Right: Front, Top: Top, Bottom: Bottom}},
		{"Z CW", (*Cubelet).RotateZ, Clockwise, map[Face]Face{Top: Left, Left: Bottom, Bottom: Right, Right: Top, Front: Front, Back: Back}},
		{"Z CCW", (*Cubelet).RotateZ, CounterClockwise, map[Face]Face{Top: Right, Right: Bottom, Bottom: Left, Left: Top, Front: Front, Back: Back}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := distinct()
			c := orig
			tt.rotate(&c, tt.r)
			for side, from := range tt.want {
				if c.Color(side) != orig.Color(from) {
					t.Errorf("%s = %v, want old %s (%v)", side.Name(), c.Color(side), from.Name(), orig.Color(from))
				}
			}
		})
	}
}

func TestCubeletRotationIdentities(t *testing.T) {
	ops := map[string]func(*Cubelet, Rotation){
		"X": (*Cubelet).RotateX,
		"Y": (*Cubelet).RotateY,
		"Z": (*Cubelet).RotateZ,
	}

	for name, op := range ops {
		for _, r := range []Rotation{Clockwise, CounterClockwise} {
			c := distinct()
			for i := 0; i < 4; i++ {
				op(&c, r)
			}
			if c != distinct() {
				t.Errorf("%s %v x 4 should be the identity", name, r)
			}
		}

		c := distinct()
		op(&c, Clockwise)
		op(&c, CounterClockwise)
		if c != distinct() {
			t.Errorf("%s CW then CCW should be the identity", name)
		}
	}
}
