package model

import "time"

// AudioFile is the metadata row for an uploaded audio blob.
type AudioFile struct {
	ID        int64
	UserID    string
	FileURL   string
	CreatedAt time.Time
}
