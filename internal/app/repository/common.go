package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	apperrors "whisper-vault/internal/app/errors"
	"whisper-vault/internal/app/model"
)

// CommonDB implements TranscriptionDAO for any database/sql driver that
// supports INSERT ... RETURNING (postgres, sqlite >= 3.35).
type CommonDB struct {
	db           *sql.DB
	driverName   string
	placeholders PlaceholderFunc
	now          func() time.Time
}

// PlaceholderFunc generates parameter placeholders for different SQL dialects
type PlaceholderFunc func(n int) string

// NewCommonDB creates a new CommonDB instance
func NewCommonDB(db *sql.DB, driverName string) *CommonDB {
	var placeholders PlaceholderFunc

	switch driverName {
	case "postgres":
		placeholders = func(n int) string { return fmt.Sprintf("$%d", n) }
	default:
		placeholders = func(n int) string { return "?" }
	}

	return &CommonDB{
		db:           db,
		driverName:   driverName,
		placeholders: placeholders,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// CreateAudioFile inserts an audiofiles row and returns it with its new id.
func (c *CommonDB) CreateAudioFile(ctx context.Context, userID, fileURL string) (*model.AudioFile, error) {
	query := fmt.Sprintf(
		`INSERT INTO audiofiles (user_id, file_url, created_at) VALUES (%s, %s, %s) RETURNING id`,
		c.placeholders(1), c.placeholders(2), c.placeholders(3),
	)

	audioFile := &model.AudioFile{
		UserID:    userID,
		FileURL:   fileURL,
		CreatedAt: c.now(),
	}
	if err := c.db.QueryRowContext(ctx, query, userID, fileURL, audioFile.CreatedAt).Scan(&audioFile.ID); err != nil {
		return nil, apperrors.Step(apperrors.ErrInsertFailed, err)
	}

	return audioFile, nil
}

// DeleteAudioFile removes an audiofiles row by id.
func (c *CommonDB) DeleteAudioFile(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM audiofiles WHERE id = %s`, c.placeholders(1))

	if _, err := c.db.ExecContext(ctx, query, id); err != nil {
		return apperrors.Step(apperrors.ErrDeleteFailed, err)
	}
	return nil
}

// CreateTranscription inserts a transcriptions row linked to audioFileID.
func (c *CommonDB) CreateTranscription(ctx context.Context, userID string, audioFileID int64, text string) (*model.TranscriptionRecord, error) {
	query := fmt.Sprintf(
		`INSERT INTO transcriptions (user_id, audio_file_id, transcription_text, created_at)
		 VALUES (%s, %s, %s, %s) RETURNING id`,
		c.placeholders(1), c.placeholders(2), c.placeholders(3), c.placeholders(4),
	)

	record := &model.TranscriptionRecord{
		UserID:            userID,
		AudioFileID:       audioFileID,
		TranscriptionText: text,
		CreatedAt:         c.now(),
	}
	err := c.db.QueryRowContext(ctx, query, userID, audioFileID, text, record.CreatedAt).Scan(&record.ID)
	if err != nil {
		return nil, apperrors.Step(apperrors.ErrInsertFailed, err)
	}

	return record, nil
}

// ListByUser retrieves all transcriptions for a user with their audio URL.
func (c *CommonDB) ListByUser(ctx context.Context, userID string) ([]model.UserTranscription, error) {
	query := fmt.Sprintf(
		`SELECT t.id, t.user_id, t.audio_file_id, t.transcription_text, t.created_at, a.file_url
		 FROM transcriptions t
		 JOIN audiofiles a ON a.id = t.audio_file_id
		 WHERE t.user_id = %s
		 ORDER BY t.id ASC`,
		c.placeholders(1),
	)

	rows, err := c.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, apperrors.Step(apperrors.ErrQueryFailed, err)
	}
	defer rows.Close()

	transcriptions := make([]model.UserTranscription, 0)
	for rows.Next() {
		var t model.UserTranscription
		err := rows.Scan(
			&t.ID,
			&t.UserID,
			&t.AudioFileID,
			&t.TranscriptionText,
			&t.CreatedAt,
			&t.FileURL,
		)
		if err != nil {
			return nil, apperrors.Step(apperrors.ErrScanFailed, err)
		}
		transcriptions = append(transcriptions, t)
	}

	if err = rows.Err(); err != nil {
		return nil, apperrors.Step(apperrors.ErrQueryFailed, err)
	}

	return transcriptions, nil
}

// Close closes the database connection
func (c *CommonDB) Close() error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// DB returns the underlying database connection
func (c *CommonDB) DB() *sql.DB {
	return c.db
}

// DriverName returns the database/sql driver the connection was opened with.
func (c *CommonDB) DriverName() string {
	return c.driverName
}
