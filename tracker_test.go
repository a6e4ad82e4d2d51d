package gocube

import (
	"slices"
	"testing"
)

func TestTrackerReset(t *testing.T) {
	tr := NewTracker()
	if !tr.IsSolved() {
		t.Fatal("New tracker should start solved")
	}

	tr.ApplyMove(R)
	if tr.IsSolved() {
		t.Error("Tracker should not be solved after R")
	}
	if tr.MoveCount() != 1 {
		t.Errorf("MoveCount = %d, want 1", tr.MoveCount())
	}

	tr.Reset()
	if !tr.IsSolved() {
		t.Error("Reset should return to solved")
	}
	if len(tr.Moves()) != 0 {
		t.Errorf("Reset should clear history, got %v", tr.Moves())
	}
}

func TestTrackerUndo(t *testing.T) {
	tr := NewTracker()
	tr.ApplyMoves([]Move{F, R, UPrime})

	inv, ok := tr.Undo()
	if !ok || inv != U {
		t.Fatalf("Undo = %v, %v; want U, true", inv, ok)
	}

	tr.Undo()
	tr.Undo()
	if !tr.IsSolved() {
		t.Error("undoing every move should return to solved")
		t.Log(tr.Cube().String())
	}

	if _, ok := tr.Undo(); ok {
		t.Error("nothing left to undo")
	}
}

func TestTrackerOnMove(t *testing.T) {
	tr := NewTracker(WithSeed(3))
	var seen []Move
	tr.OnMove(func(m Move) { seen = append(seen, m) })

	tr.ApplyMove(F)
	scramble := tr.Scramble()
	tr.Undo()

	if len(seen) != 1+len(scramble)+1 {
		t.Fatalf("callback fired %d times, want %d", len(seen), 1+len(scramble)+1)
	}
	if seen[0] != F {
		t.Errorf("first callback = %v, want F", seen[0])
	}
	if !slices.Equal(seen[1:1+len(scramble)], scramble) {
		t.Error("scramble moves should reach the callback in order")
	}
	if last, want := seen[len(seen)-1], scramble[len(scramble)-1].Inverse(); last != want {
		t.Errorf("undo callback = %v, want %v", last, want)
	}
}

func TestTrackerWithoutHistory(t *testing.T) {
	tr := NewTracker(WithMoveHistory(false))
	tr.ApplyMove(B)

	if tr.MoveCount() != 0 {
		t.Errorf("MoveCount = %d, want 0", tr.MoveCount())
	}
	if _, ok := tr.Undo(); ok {
		t.Error("Undo should fail without history")
	}
	if tr.IsSolved() {
		t.Error("the move should still turn the cube")
	}
}

func TestTrackerMovesIsCopy(t *testing.T) {
	tr := NewTracker()
	tr.ApplyMove(L)

	moves := tr.Moves()
	moves[0] = R
	if tr.Moves()[0] != L {
		t.Error("Moves should return a copy")
	}
}
