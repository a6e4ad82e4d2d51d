package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/gocube_sim"
	"github.com/SeamusWaldron/gocube_sim/internal/logger"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "nested", "journal.db"), logger.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenAppliesMigrations(t *testing.T) {
	db := openTestDB(t)

	version, err := db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, len(migrations), version)
	assert.Contains(t, db.Path(), "journal.db")
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")

	db, err := Open(path, logger.Discard())
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = Open(path, logger.Discard())
	require.NoError(t, err)
	defer db.Close()

	version, err := db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, 2, version)
}

func TestSessionLifecycle(t *testing.T) {
	db := openTestDB(t)
	repo := NewSessionRepository(db)

	id, err := repo.Create(42, "warmup")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	s, err := repo.Get(id)
	require.NoError(t, err)
	assert.Nil(t, s.EndedAt)
	require.NotNil(t, s.Seed)
	assert.Equal(t, int64(42), *s.Seed)
	require.NotNil(t, s.Notes)
	assert.Equal(t, "warmup", *s.Notes)
	assert.False(t, s.StartedAt.IsZero())

	require.NoError(t, repo.SetLabel(id, "pb attempt"))
	require.NoError(t, repo.End(id))

	s, err = repo.Get(id)
	require.NoError(t, err)
	assert.NotNil(t, s.EndedAt)
	require.NotNil(t, s.Label)
	assert.Equal(t, "pb attempt", *s.Label)
}

func TestSessionZeroSeedIsNull(t *testing.T) {
	db := openTestDB(t)
	repo := NewSessionRepository(db)

	id, err := repo.Create(0, "")
	require.NoError(t, err)

	s, err := repo.Get(id)
	require.NoError(t, err)
	assert.Nil(t, s.Seed)
	assert.Nil(t, s.Notes)
}

func TestSessionNotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewSessionRepository(db)

	_, err := repo.Get("missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.End("missing"), ErrNotFound)
	assert.ErrorIs(t, repo.Delete("missing"), ErrNotFound)
	assert.ErrorIs(t, repo.SetLabel("missing", "x"), ErrNotFound)

	_, err = repo.GetLast()
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionListNewestFirst(t *testing.T) {
	db := openTestDB(t)
	repo := NewSessionRepository(db)

	var ids []string
	for i := 0; i < 3; i++ {
		id, err := repo.Create(0, "")
		require.NoError(t, err)
		ids = append(ids, id)
	}

	sessions, err := repo.List(2)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, ids[2], sessions[0].SessionID)
	assert.Equal(t, ids[1], sessions[1].SessionID)

	last, err := repo.GetLast()
	require.NoError(t, err)
	assert.Equal(t, ids[2], last.SessionID)
}

func TestMovesRoundTripAndCascade(t *testing.T) {
	db := openTestDB(t)
	sessions := NewSessionRepository(db)
	moves := NewMoveRepository(db)

	id, err := sessions.Create(0, "")
	require.NoError(t, err)

	_, err = moves.Create(id, 0, 10, gocube.RPrime, SourceManual)
	require.NoError(t, err)
	require.NoError(t, moves.CreateBatch(id, 1, 20, []gocube.Move{gocube.U, gocube.F}, SourceScramble))

	records, err := moves.GetBySession(id)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "R'", records[0].Notation)
	assert.Equal(t, SourceManual, records[0].Source)
	assert.Equal(t, SourceScramble, records[2].Source)

	got, err := ToMoves(records)
	require.NoError(t, err)
	assert.Equal(t, []gocube.Move{gocube.RPrime, gocube.U, gocube.F}, got)

	require.NoError(t, sessions.Delete(id))
	count, err := moves.Count(id)
	require.NoError(t, err)
	assert.Zero(t, count, "moves should be deleted with their session")
}

func TestDuplicateMoveIndexRejected(t *testing.T) {
	db := openTestDB(t)
	id, err := NewSessionRepository(db).Create(0, "")
	require.NoError(t, err)

	moves := NewMoveRepository(db)
	_, err = moves.Create(id, 0, 0, gocube.F, SourceManual)
	require.NoError(t, err)

	err = moves.CreateBatch(id, 1, 0, []gocube.Move{gocube.B, gocube.L}, SourceManual)
	require.NoError(t, err)

	err = moves.CreateBatch(id, 2, 0, []gocube.Move{gocube.D, gocube.D}, SourceManual)
	assert.Error(t, err)

	count, err := moves.Count(id)
	require.NoError(t, err)
	assert.Equal(t, 3, count, "failed batch should roll back")
}

func TestReplayHonorsResetMarkers(t *testing.T) {
	db := openTestDB(t)
	id, err := NewSessionRepository(db).Create(0, "")
	require.NoError(t, err)

	moves := NewMoveRepository(db)
	require.NoError(t, moves.CreateBatch(id, 0, 0, []gocube.Move{gocube.F, gocube.R}, SourceManual))
	_, err = moves.CreateReset(id, 2, 5)
	require.NoError(t, err)
	_, err = moves.Create(id, 3, 6, gocube.U, SourceManual)
	require.NoError(t, err)

	records, err := moves.GetBySession(id)
	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.True(t, records[2].IsReset())

	_, err = records[2].Move()
	assert.Error(t, err)

	c, err := Replay(records)
	require.NoError(t, err)

	want := gocube.NewCube()
	want.ApplyMove(gocube.U)
	assert.True(t, c.Equal(want))
}
