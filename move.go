package gocube

import (
	"fmt"
	"strings"
)

// Face identifies one of the six external faces of the cube. The same
// values name the six sides of a single cubelet.
type Face int

const (
	Front  Face = 0
	Back   Face = 1
	Left   Face = 2
	Right  Face = 3
	Top    Face = 4
	Bottom Face = 5
)

// Faces lists every face in declaration order.
var Faces = [6]Face{Front, Back, Left, Right, Top, Bottom}

// String returns the notation letter of the face.
func (f Face) String() string {
	switch f {
	case Front:
		return "F"
	case Back:
		return "B"
	case Left:
		return "L"
	case Right:
		return "R"
	case Top:
		return "U"
	case Bottom:
		return "D"
	default:
		return "?"
	}
}

// Name returns the long name of the face.
func (f Face) Name() string {
	switch f {
	case Front:
		return "front"
	case Back:
		return "back"
	case Left:
		return "left"
	case Right:
		return "right"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// Opposite returns the face on the other side of the cube.
func (f Face) Opposite() Face {
	return f ^ 1
}

// Valid reports whether f is one of the six faces.
func (f Face) Valid() bool {
	return f >= Front && f <= Bottom
}

// ParseFace converts a notation token (F, B, L, R, U, D) into a Face.
func ParseFace(s string) (Face, error) {
	switch strings.TrimSpace(s) {
	case "F", "f":
		return Front, nil
	case "B", "b":
		return Back, nil
	case "L", "l":
		return Left, nil
	case "R", "r":
		return Right, nil
	case "U", "u":
		return Top, nil
	case "D", "d":
		return Bottom, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidFace, s)
	}
}

// Rotation is the direction of a quarter turn.
type Rotation int

const (
	Clockwise        Rotation = 0
	CounterClockwise Rotation = 1
)

// String returns "CW" or "CCW".
func (r Rotation) String() string {
	if r == CounterClockwise {
		return "CCW"
	}
	return "CW"
}

// Inverse returns the opposite direction.
func (r Rotation) Inverse() Rotation {
	if r == Clockwise {
		return CounterClockwise
	}
	return Clockwise
}

// Move is a single quarter turn of one face.
type Move struct {
	Face     Face     // Which face to turn
	Rotation Rotation // Direction, as seen looking at that face
}

// Notation returns the standard cube notation string for this move.
// Examples: F, F', U, U'
func (m Move) Notation() string {
	if m.Rotation == CounterClockwise {
		return m.Face.String() + "'"
	}
	return m.Face.String()
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Inverse returns the move that undoes m.
func (m Move) Inverse() Move {
	return Move{Face: m.Face, Rotation: m.Rotation.Inverse()}
}

// ParseMove parses a standard notation string into a Move.
// Examples: F, F', U, U'
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 2 {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	face, err := ParseFace(s[:1])
	if err != nil {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	rotation := Clockwise
	if len(s) == 2 {
		switch s[1] {
		case '\'', '`':
			rotation = CounterClockwise
		default:
			return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
		}
	}

	return Move{Face: face, Rotation: rotation}, nil
}

// ParseMoves parses a space-separated sequence of moves.
// Example: "F U F' U'"
// The first invalid token aborts parsing.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}
