package gocube

// Tracker wraps a Cube and keeps the history of applied moves.
type Tracker struct {
	cube        *Cube
	moves       []Move
	moveHistory bool
	onMove      func(m Move)
}

// NewTracker creates a new cube tracker starting from a solved state.
func NewTracker(opts ...Option) *Tracker {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return &Tracker{
		cube:        NewCube(WithSource(cfg.source)),
		moveHistory: cfg.moveHistory,
	}
}

// OnMove sets a callback that fires after every applied move, including
// scramble and undo moves.
func (t *Tracker) OnMove(cb func(m Move)) {
	t.onMove = cb
}

// Reset resets the tracker to a solved cube and clears the history.
func (t *Tracker) Reset() {
	t.cube.Reset()
	t.moves = nil
}

// ApplyMove applies a move and records it.
func (t *Tracker) ApplyMove(m Move) {
	t.cube.ApplyMove(m)
	t.record(m)
}

// ApplyMoves applies multiple moves.
func (t *Tracker) ApplyMoves(moves []Move) {
	for _, m := range moves {
		t.ApplyMove(m)
	}
}

// Scramble scrambles the cube and records every executed move.
func (t *Tracker) Scramble() []Move {
	moves := t.cube.Scramble()
	for _, m := range moves {
		t.record(m)
	}
	return moves
}

// Undo reverts the most recent move. It returns the inverse move that was
// applied and false when there is nothing to undo.
func (t *Tracker) Undo() (Move, bool) {
	if len(t.moves) == 0 {
		return Move{}, false
	}

	last := t.moves[len(t.moves)-1]
	t.moves = t.moves[:len(t.moves)-1]

	inv := last.Inverse()
	t.cube.ApplyMove(inv)
	if t.onMove != nil {
		t.onMove(inv)
	}
	return inv, true
}

func (t *Tracker) record(m Move) {
	if t.moveHistory {
		t.moves = append(t.moves, m)
	}
	if t.onMove != nil {
		t.onMove(m)
	}
}

// Moves returns a copy of the recorded history.
func (t *Tracker) Moves() []Move {
	out := make([]Move, len(t.moves))
	copy(out, t.moves)
	return out
}

// MoveCount returns the number of recorded moves.
func (t *Tracker) MoveCount() int {
	return len(t.moves)
}

// IsSolved returns true if the cube is solved.
func (t *Tracker) IsSolved() bool {
	return t.cube.IsSolved()
}

// FaceColors returns the visible colors of one face.
func (t *Tracker) FaceColors(f Face) FaceGrid {
	return t.cube.FaceColors(f)
}

// Cube returns the underlying cube for inspection.
func (t *Tracker) Cube() *Cube {
	return t.cube
}
