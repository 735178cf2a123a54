package migrate

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// DefaultBatchSize is the number of rows copied per transaction.
const DefaultBatchSize = 1000

// Result reports how many rows were copied per table.
type Result struct {
	AudioFiles     int
	Transcriptions int
}

type table struct {
	name    string
	selectQ string
	insertQ string
}

var tables = []table{
	{
		name:    "audiofiles",
		selectQ: `SELECT id, user_id, file_url, created_at FROM audiofiles WHERE id > ? ORDER BY id LIMIT ?`,
		insertQ: `INSERT INTO audiofiles (id, user_id, file_url, created_at) VALUES ($1, $2, $3, $4) ON CONFLICT (id) DO NOTHING`,
	},
	{
		name:    "transcriptions",
		selectQ: `SELECT id, user_id, audio_file_id, transcription_text, created_at FROM transcriptions WHERE id > ? ORDER BY id LIMIT ?`,
		insertQ: `INSERT INTO transcriptions (id, user_id, audio_file_id, transcription_text, created_at) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (id) DO NOTHING`,
	},
}

// SQLiteToPostgres copies every audiofiles and transcriptions row from a sqlite
// database into postgres, keeping ids. Rows already present are skipped, so an
// interrupted run can simply be repeated. Both schemas must already exist.
func SQLiteToPostgres(ctx context.Context, sqliteDB, postgresDB *sql.DB, batchSize int, logger *zap.Logger) (*Result, error) {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	counts := make([]int, len(tables))
	// audiofiles first so transcription foreign keys resolve
	for i, t := range tables {
		copied, err := copyTable(ctx, sqliteDB, postgresDB, t, batchSize, logger)
		if err != nil {
			return nil, err
		}
		counts[i] = copied

		if err := resetSequence(ctx, postgresDB, t.name); err != nil {
			return nil, err
		}
	}

	return &Result{AudioFiles: counts[0], Transcriptions: counts[1]}, nil
}

func copyTable(ctx context.Context, src, dst *sql.DB, t table, batchSize int, logger *zap.Logger) (int, error) {
	var lastID int64
	total := 0

	for {
		batch, maxID, err := readBatch(ctx, src, t, lastID, batchSize)
		if err != nil {
			return total, err
		}
		if len(batch) == 0 {
			return total, nil
		}

		if err := writeBatch(ctx, dst, t, batch); err != nil {
			return total, err
		}

		total += len(batch)
		lastID = maxID
		logger.Info("Copied batch",
			zap.String("table", t.name),
			zap.Int("rows", len(batch)),
			zap.Int64("last_id", lastID),
		)

		if len(batch) < batchSize {
			return total, nil
		}
	}
}

func readBatch(ctx context.Context, src *sql.DB, t table, afterID int64, limit int) ([][]interface{}, int64, error) {
	rows, err := src.QueryContext(ctx, t.selectQ, afterID, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("read %s: %w", t.name, err)
	}
	defer rows.Close()

	var batch [][]interface{}
	maxID := afterID
	for rows.Next() {
		var (
			id        int64
			createdAt time.Time
			values    []interface{}
		)
		switch t.name {
		case "audiofiles":
			var userID, fileURL string
			if err := rows.Scan(&id, &userID, &fileURL, &createdAt); err != nil {
				return nil, 0, fmt.Errorf("scan %s: %w", t.name, err)
			}
			values = []interface{}{id, userID, fileURL, createdAt}
		default:
			var userID, text string
			var audioFileID int64
			if err := rows.Scan(&id, &userID, &audioFileID, &text, &createdAt); err != nil {
				return nil, 0, fmt.Errorf("scan %s: %w", t.name, err)
			}
			values = []interface{}{id, userID, audioFileID, text, createdAt}
		}
		batch = append(batch, values)
		maxID = id
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("read %s: %w", t.name, err)
	}
	return batch, maxID, nil
}

func writeBatch(ctx context.Context, dst *sql.DB, t table, batch [][]interface{}) error {
	tx, err := dst.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin %s batch: %w", t.name, err)
	}

	stmt, err := tx.PrepareContext(ctx, t.insertQ)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare %s insert: %w", t.name, err)
	}
	defer stmt.Close()

	for _, values := range batch {
		if _, err := stmt.ExecContext(ctx, values...); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert %s row %v: %w", t.name, values[0], err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit %s batch: %w", t.name, err)
	}
	return nil
}

// resetSequence moves the BIGSERIAL sequence past the copied ids.
func resetSequence(ctx context.Context, dst *sql.DB, name string) error {
	query := fmt.Sprintf(
		`SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), COALESCE((SELECT MAX(id) FROM %[1]s), 0) + 1, false)`,
		name,
	)
	if _, err := dst.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("reset %s sequence: %w", name, err)
	}
	return nil
}
