package pg

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"whisper-vault/internal/app/repository"
)

const schema = `
CREATE TABLE IF NOT EXISTS audiofiles (
	id         BIGSERIAL PRIMARY KEY,
	user_id    TEXT NOT NULL,
	file_url   TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS transcriptions (
	id                 BIGSERIAL PRIMARY KEY,
	user_id            TEXT NOT NULL,
	audio_file_id      BIGINT NOT NULL REFERENCES audiofiles (id) ON DELETE CASCADE,
	transcription_text TEXT NOT NULL,
	created_at         TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_audiofiles_user_id ON audiofiles (user_id);
CREATE INDEX IF NOT EXISTS idx_transcriptions_user_id ON transcriptions (user_id);
`

// PostgresDB is the postgres-backed TranscriptionDAO.
type PostgresDB struct {
	*repository.CommonDB
}

// NewPostgresDB opens a connection pool. sql.Open does not dial; use Ping or
// EnsureSchema to verify connectivity.
func NewPostgresDB(connectionString string) (*PostgresDB, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, err
	}
	return &PostgresDB{CommonDB: repository.NewCommonDB(db, "postgres")}, nil
}

// EnsureSchema creates the tables and indexes if they do not exist.
func (pdb *PostgresDB) EnsureSchema(ctx context.Context) error {
	if _, err := pdb.DB().ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create postgres schema: %w", err)
	}
	return nil
}
