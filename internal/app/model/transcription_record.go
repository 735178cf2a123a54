package model

import "time"

// TranscriptionRecord holds the text produced for one AudioFile.
type TranscriptionRecord struct {
	ID                int64
	UserID            string
	AudioFileID       int64
	TranscriptionText string
	CreatedAt         time.Time
}

// UserTranscription is a transcription joined with the URL of its audio file.
type UserTranscription struct {
	TranscriptionRecord
	FileURL string
}
