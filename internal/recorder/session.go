// Package recorder ties a simulated cube to the move journal.
package recorder

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SeamusWaldron/gocube_sim"
	"github.com/SeamusWaldron/gocube_sim/internal/storage"
)

var (
	ErrAlreadyRecording = errors.New("recorder: session already in progress")
	ErrNotRecording     = errors.New("recorder: no session in progress")
)

// SessionState represents the current state of a recording session.
type SessionState int

const (
	StateIdle SessionState = iota
	StateRecording
	StateEnded
)

// String returns the string representation of the session state.
func (s SessionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRecording:
		return "recording"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Session drives a cube and journals every change while recording. A nil
// database disables the journal; the cube still works.
type Session struct {
	tracker *gocube.Tracker
	log     *slog.Logger

	sessionRepo *storage.SessionRepository
	moveRepo    *storage.MoveRepository

	mu        sync.RWMutex
	state     SessionState
	sessionID string
	startTime time.Time
	moveIndex int
}

// NewSession creates a session manager around a solved cube.
func NewSession(db *storage.DB, log *slog.Logger, opts ...gocube.Option) *Session {
	if log == nil {
		log = slog.Default()
	}

	s := &Session{
		tracker: gocube.NewTracker(opts...),
		log:     log,
		state:   StateIdle,
	}
	if db != nil {
		s.sessionRepo = storage.NewSessionRepository(db)
		s.moveRepo = storage.NewMoveRepository(db)
	}
	return s
}

// Journaled reports whether moves are written to a database.
func (s *Session) Journaled() bool {
	return s.sessionRepo != nil
}

// State returns the current session state.
func (s *Session) State() SessionState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// SessionID returns the journal ID of the current session, empty when the
// journal is disabled.
func (s *Session) SessionID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessionID
}

// ElapsedMs returns the elapsed time since session start in milliseconds.
func (s *Session) ElapsedMs() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != StateRecording {
		return 0
	}
	return time.Since(s.startTime).Milliseconds()
}

// Start begins recording. The seed and notes are stored with the session.
func (s *Session) Start(seed int64, notes string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateRecording {
		return "", ErrAlreadyRecording
	}

	id := ""
	if s.sessionRepo != nil {
		var err error
		id, err = s.sessionRepo.Create(seed, notes)
		if err != nil {
			return "", fmt.Errorf("failed to start session: %w", err)
		}
	}

	s.sessionID = id
	s.startTime = time.Now()
	s.moveIndex = 0
	s.state = StateRecording

	s.log.Info("session started", "session_id", id, "seed", seed)
	return id, nil
}

// End stops recording.
func (s *Session) End() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateRecording {
		return ErrNotRecording
	}

	if s.sessionRepo != nil {
		if err := s.sessionRepo.End(s.sessionID); err != nil {
			return fmt.Errorf("failed to end session: %w", err)
		}
	}

	s.state = StateEnded
	s.log.Info("session ended",
		"session_id", s.sessionID,
		"moves", s.moveIndex,
		"solved", s.tracker.IsSolved())
	return nil
}

// Apply turns the cube and journals the moves as manual moves.
func (s *Session) Apply(moves ...gocube.Move) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tracker.ApplyMoves(moves)
	return s.journal(moves, storage.SourceManual)
}

// Scramble scrambles the cube and returns the executed moves.
func (s *Session) Scramble() ([]gocube.Move, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	moves := s.tracker.Scramble()
	s.log.Debug("cube scrambled", "moves", len(moves))
	return moves, s.journal(moves, storage.SourceScramble)
}

// Undo reverts the most recent move. It returns false when there is
// nothing to undo.
func (s *Session) Undo() (gocube.Move, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, ok := s.tracker.Undo()
	if !ok {
		return gocube.Move{}, false, nil
	}
	return inv, true, s.journal([]gocube.Move{inv}, storage.SourceUndo)
}

// Reset returns the cube to the solved state.
func (s *Session) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tracker.Reset()
	if !s.recording() {
		return nil
	}

	if _, err := s.moveRepo.CreateReset(s.sessionID, s.moveIndex, s.tsMs()); err != nil {
		return err
	}
	s.moveIndex++
	return nil
}

func (s *Session) recording() bool {
	return s.state == StateRecording && s.moveRepo != nil
}

func (s *Session) tsMs() int64 {
	return time.Since(s.startTime).Milliseconds()
}

// journal must be called with mu held.
func (s *Session) journal(moves []gocube.Move, source storage.Source) error {
	if len(moves) == 0 || !s.recording() {
		return nil
	}

	if err := s.moveRepo.CreateBatch(s.sessionID, s.moveIndex, s.tsMs(), moves, source); err != nil {
		s.log.Error("failed to journal moves", "session_id", s.sessionID, "error", err)
		return err
	}
	s.moveIndex += len(moves)
	s.log.Debug("moves journaled",
		"session_id", s.sessionID,
		"source", string(source),
		"notation", gocube.FormatMoves(moves))
	return nil
}

// JournalCount returns the number of journal rows written this session.
func (s *Session) JournalCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.moveIndex
}

// MoveCount returns the number of moves in the undo history.
func (s *Session) MoveCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tracker.MoveCount()
}

// Moves returns the undo history.
func (s *Session) Moves() []gocube.Move {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tracker.Moves()
}

// IsSolved returns true if the cube is solved.
func (s *Session) IsSolved() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tracker.IsSolved()
}

// FaceColors returns the visible colors of one face.
func (s *Session) FaceColors(f gocube.Face) gocube.FaceGrid {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tracker.FaceColors(f)
}

// Snapshot returns a copy of the cube.
func (s *Session) Snapshot() *gocube.Cube {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tracker.Cube().Clone()
}
