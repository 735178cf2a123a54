package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"whisper-vault/internal/app/repository"
)

// TestSQLiteDB_Interface verifies SQLiteDB implements TranscriptionDAO interface
func TestSQLiteDB_Interface(t *testing.T) {
	var _ repository.TranscriptionDAO = (*SQLiteDB)(nil)
}

func newTestDB(t *testing.T) *SQLiteDB {
	t.Helper()
	db, err := NewSQLiteDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, db.EnsureSchema(context.Background()))
	return db
}

func TestSQLiteDB_RoundTrip(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	first, err := db.CreateAudioFile(ctx, "user-1", "http://minio/audio/user-1/a.mp3")
	require.NoError(t, err)
	assert.NotZero(t, first.ID)

	second, err := db.CreateAudioFile(ctx, "user-1", "http://minio/audio/user-1/b.mp3")
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)

	_, err = db.CreateTranscription(ctx, "user-1", first.ID, "first text")
	require.NoError(t, err)
	_, err = db.CreateTranscription(ctx, "user-1", second.ID, "second\ntext")
	require.NoError(t, err)

	other, err := db.CreateAudioFile(ctx, "user-2", "http://minio/audio/user-2/c.mp3")
	require.NoError(t, err)
	_, err = db.CreateTranscription(ctx, "user-2", other.ID, "someone else")
	require.NoError(t, err)

	got, err := db.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "first text", got[0].TranscriptionText)
	assert.Equal(t, first.ID, got[0].AudioFileID)
	assert.Equal(t, "http://minio/audio/user-1/a.mp3", got[0].FileURL)
	assert.Equal(t, "second\ntext", got[1].TranscriptionText)
	assert.Equal(t, "http://minio/audio/user-1/b.mp3", got[1].FileURL)
	assert.False(t, got[0].CreatedAt.IsZero())
}

func TestSQLiteDB_ListByUser_Empty(t *testing.T) {
	db := newTestDB(t)

	got, err := db.ListByUser(context.Background(), "nobody")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSQLiteDB_ForeignKeyEnforced(t *testing.T) {
	db := newTestDB(t)

	_, err := db.CreateTranscription(context.Background(), "user-1", 999, "orphan")
	assert.Error(t, err)
}

func TestSQLiteDB_DeleteAudioFileCascades(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	audio, err := db.CreateAudioFile(ctx, "user-1", "http://minio/audio/user-1/a.mp3")
	require.NoError(t, err)
	_, err = db.CreateTranscription(ctx, "user-1", audio.ID, "text")
	require.NoError(t, err)

	require.NoError(t, db.DeleteAudioFile(ctx, audio.ID))

	got, err := db.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNewSQLiteDB_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data", "vault.db")

	db, err := NewSQLiteDB("file:" + path)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.EnsureSchema(context.Background()))
	assert.FileExists(t, path)
}

func TestWithForeignKeys(t *testing.T) {
	assert.Equal(t, ":memory:?_foreign_keys=on", withForeignKeys(":memory:"))
	assert.Equal(t, "file:x.db?cache=shared&_foreign_keys=on", withForeignKeys("file:x.db?cache=shared"))
	assert.Equal(t, "file:x.db?_fk=1", withForeignKeys("file:x.db?_fk=1"))
}
