package storage

import (
	"database/sql"
	"fmt"

	"github.com/SeamusWaldron/gocube_sim"
)

// Source records why a move was applied.
type Source string

const (
	SourceManual   Source = "manual"
	SourceScramble Source = "scramble"
	SourceUndo     Source = "undo"
	SourceReset    Source = "reset"
)

// MoveRecord represents a move in the database.
type MoveRecord struct {
	MoveID    int64
	SessionID string
	MoveIndex int
	Face      string
	Rotation  int
	Notation  string
	Source    Source
	TsMs      int64
}

// IsReset reports whether the record marks a reset instead of a turn.
func (m MoveRecord) IsReset() bool {
	return m.Source == SourceReset
}

// Move converts the record back into a cube move.
func (m MoveRecord) Move() (gocube.Move, error) {
	if m.IsReset() {
		return gocube.Move{}, fmt.Errorf("move %d is a reset marker", m.MoveIndex)
	}
	face, err := gocube.ParseFace(m.Face)
	if err != nil {
		return gocube.Move{}, fmt.Errorf("move %d: %w", m.MoveIndex, err)
	}
	return gocube.Move{Face: face, Rotation: gocube.Rotation(m.Rotation)}, nil
}

// MoveRepository provides CRUD operations for moves.
type MoveRepository struct {
	db *DB
}

// NewMoveRepository creates a new move repository.
func NewMoveRepository(db *DB) *MoveRepository {
	return &MoveRepository{db: db}
}

const insertMove = `
	INSERT INTO moves (session_id, move_index, face, rotation, notation, source, ts_ms)
	VALUES (?, ?, ?, ?, ?, ?, ?)
`

// Create stores one move and returns its ID.
func (r *MoveRepository) Create(sessionID string, moveIndex int, tsMs int64, move gocube.Move, source Source) (int64, error) {
	result, err := r.db.Exec(insertMove,
		sessionID, moveIndex, move.Face.String(), int(move.Rotation), move.Notation(), string(source), tsMs)
	if err != nil {
		return 0, fmt.Errorf("failed to create move: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get move ID: %w", err)
	}

	return id, nil
}

// CreateReset stores a reset marker at the given index.
func (r *MoveRepository) CreateReset(sessionID string, moveIndex int, tsMs int64) (int64, error) {
	result, err := r.db.Exec(insertMove,
		sessionID, moveIndex, "", 0, "reset", string(SourceReset), tsMs)
	if err != nil {
		return 0, fmt.Errorf("failed to create reset marker: %w", err)
	}
	return result.LastInsertId()
}

// CreateBatch stores multiple moves in a single transaction.
func (r *MoveRepository) CreateBatch(sessionID string, startIndex int, tsMs int64, moves []gocube.Move, source Source) error {
	return r.db.Transaction(func(tx *sql.Tx) error {
		for i, move := range moves {
			_, err := tx.Exec(insertMove,
				sessionID, startIndex+i, move.Face.String(), int(move.Rotation), move.Notation(), string(source), tsMs)
			if err != nil {
				return fmt.Errorf("failed to create move %d: %w", startIndex+i, err)
			}
		}
		return nil
	})
}

// GetBySession retrieves all moves for a session in order.
func (r *MoveRepository) GetBySession(sessionID string) ([]MoveRecord, error) {
	rows, err := r.db.Query(`
		SELECT move_id, session_id, move_index, face, rotation, notation, source, ts_ms
		FROM moves
		WHERE session_id = ?
		ORDER BY move_index
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		err := rows.Scan(&m.MoveID, &m.SessionID, &m.MoveIndex, &m.Face, &m.Rotation, &m.Notation, &m.Source, &m.TsMs)
		if err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		moves = append(moves, m)
	}

	return moves, rows.Err()
}

// Count returns the number of moves for a session.
func (r *MoveRepository) Count(sessionID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM moves WHERE session_id = ?", sessionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count moves: %w", err)
	}
	return count, nil
}

// ToMoves converts records to cube moves, keeping their order. Moves
// before the last reset marker are dropped.
func ToMoves(records []MoveRecord) ([]gocube.Move, error) {
	var moves []gocube.Move
	for _, r := range records {
		if r.IsReset() {
			moves = moves[:0]
			continue
		}
		m, err := r.Move()
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// Replay applies a session's journal to a fresh solved cube.
func Replay(records []MoveRecord) (*gocube.Cube, error) {
	moves, err := ToMoves(records)
	if err != nil {
		return nil, err
	}
	c := gocube.NewCube()
	c.Apply(moves...)
	return c, nil
}
