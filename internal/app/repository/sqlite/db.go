package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"whisper-vault/internal/app/repository"
)

const schema = `
CREATE TABLE IF NOT EXISTS audiofiles (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id    TEXT NOT NULL,
	file_url   TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL
);

CREATE TABLE IF NOT EXISTS transcriptions (
	id                 INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id            TEXT NOT NULL,
	audio_file_id      INTEGER NOT NULL REFERENCES audiofiles (id) ON DELETE CASCADE,
	transcription_text TEXT NOT NULL,
	created_at         TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_audiofiles_user_id ON audiofiles (user_id);
CREATE INDEX IF NOT EXISTS idx_transcriptions_user_id ON transcriptions (user_id);
`

// SQLiteDB is the sqlite-backed TranscriptionDAO.
type SQLiteDB struct {
	*repository.CommonDB
}

// NewSQLiteDB opens the database at dsn, creating the parent directory of a
// file path when needed. Foreign keys are switched on for every connection.
func NewSQLiteDB(dsn string) (*SQLiteDB, error) {
	if err := ensureDir(dsn); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", withForeignKeys(dsn))
	if err != nil {
		return nil, err
	}
	// sqlite serializes writers; one connection also keeps :memory: databases
	// from splitting across the pool
	db.SetMaxOpenConns(1)

	return &SQLiteDB{CommonDB: repository.NewCommonDB(db, "sqlite3")}, nil
}

// EnsureSchema creates the tables and indexes if they do not exist.
func (sdb *SQLiteDB) EnsureSchema(ctx context.Context) error {
	if _, err := sdb.DB().ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create sqlite schema: %w", err)
	}
	return nil
}

func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys=") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=on"
	}
	return dsn + "?_foreign_keys=on"
}

func ensureDir(dsn string) error {
	path := strings.TrimPrefix(dsn, "file:")
	if i := strings.Index(path, "?"); i >= 0 {
		path = path[:i]
	}
	if path == "" || strings.Contains(path, ":memory:") {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}
	return nil
}
