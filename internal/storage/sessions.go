package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// timeFormat sorts lexically in chronological order.
const timeFormat = "2006-01-02T15:04:05.000000Z"

// Session is one play session in the journal.
type Session struct {
	SessionID string
	StartedAt time.Time
	EndedAt   *time.Time
	Seed      *int64
	Notes     *string
	Label     *string
}

// SessionRepository provides CRUD operations for sessions.
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create creates a new session and returns its ID. A zero seed is stored
// as NULL.
func (r *SessionRepository) Create(seed int64, notes string) (string, error) {
	id := uuid.New().String()
	startedAt := time.Now().UTC()

	var seedPtr *int64
	if seed != 0 {
		seedPtr = &seed
	}
	var notesPtr *string
	if notes != "" {
		notesPtr = &notes
	}

	_, err := r.db.Exec(`
		INSERT INTO sessions (session_id, started_at, seed, notes)
		VALUES (?, ?, ?, ?)
	`, id, startedAt.Format(timeFormat), seedPtr, notesPtr)
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	r.db.log.Debug("session created", "session_id", id)
	return id, nil
}

// End marks a session as finished.
func (r *SessionRepository) End(sessionID string) error {
	res, err := r.db.Exec(`
		UPDATE sessions SET ended_at = ? WHERE session_id = ?
	`, time.Now().UTC().Format(timeFormat), sessionID)
	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	return requireRow(res, sessionID)
}

// requireRow maps a statement that touched no rows to ErrNotFound.
func requireRow(res sql.Result, sessionID string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
	}
	return nil
}

// SetLabel attaches a short label to a session.
func (r *SessionRepository) SetLabel(sessionID, label string) error {
	res, err := r.db.Exec("UPDATE sessions SET label = ? WHERE session_id = ?", label, sessionID)
	if err != nil {
		return fmt.Errorf("failed to label session: %w", err)
	}
	return requireRow(res, sessionID)
}

const sessionColumns = "session_id, started_at, ended_at, seed, notes, label"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (Session, error) {
	var s Session
	var startedAtStr string
	var endedAtStr sql.NullString

	if err := row.Scan(&s.SessionID, &startedAtStr, &endedAtStr, &s.Seed, &s.Notes, &s.Label); err != nil {
		return Session{}, err
	}

	s.StartedAt, _ = time.Parse(timeFormat, startedAtStr)
	if endedAtStr.Valid {
		t, _ := time.Parse(timeFormat, endedAtStr.String)
		s.EndedAt = &t
	}
	return s, nil
}

// Get retrieves a session by ID.
func (r *SessionRepository) Get(sessionID string) (*Session, error) {
	row := r.db.QueryRow("SELECT "+sessionColumns+" FROM sessions WHERE session_id = ?", sessionID)
	s, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &s, nil
}

// GetLast retrieves the most recent session.
func (r *SessionRepository) GetLast() (*Session, error) {
	sessions, err := r.List(1)
	if err != nil {
		return nil, err
	}
	if len(sessions) == 0 {
		return nil, fmt.Errorf("last session: %w", ErrNotFound)
	}
	return &sessions[0], nil
}

// List retrieves recent sessions, newest first.
func (r *SessionRepository) List(limit int) ([]Session, error) {
	rows, err := r.db.Query(`
		SELECT `+sessionColumns+`
		FROM sessions
		ORDER BY started_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}

// Delete deletes a session and its moves (cascading).
func (r *SessionRepository) Delete(sessionID string) error {
	res, err := r.db.Exec("DELETE FROM sessions WHERE session_id = ?", sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return requireRow(res, sessionID)
}
