// Package archive packs a user's transcriptions into a zip file.
package archive

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zip"
	"github.com/samber/lo"

	"whisper-vault/internal/app/model"
)

// Entry is one file inside the archive.
type Entry struct {
	Name    string
	Content string
	// SourceURL is stored as the entry comment.
	SourceURL string
}

// EntryName returns the file name of the i-th (1-based) transcription.
func EntryName(i int) string {
	return fmt.Sprintf("transcription_%d.txt", i)
}

// Entries maps transcriptions, in order, to archive entries.
func Entries(transcriptions []model.UserTranscription) []Entry {
	return lo.Map(transcriptions, func(t model.UserTranscription, i int) Entry {
		return Entry{
			Name:      EntryName(i + 1),
			Content:   t.TranscriptionText,
			SourceURL: t.FileURL,
		}
	})
}

// Build writes a zip with one entry per transcription to w. An empty slice
// yields a valid archive with no entries.
func Build(w io.Writer, transcriptions []model.UserTranscription) error {
	zw := zip.NewWriter(w)

	for _, entry := range Entries(transcriptions) {
		header := &zip.FileHeader{
			Name:    entry.Name,
			Method:  zip.Deflate,
			Comment: entry.SourceURL,
		}
		f, err := zw.CreateHeader(header)
		if err != nil {
			zw.Close()
			return fmt.Errorf("create %s: %w", entry.Name, err)
		}
		if _, err := io.WriteString(f, entry.Content); err != nil {
			zw.Close()
			return fmt.Errorf("write %s: %w", entry.Name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finalize archive: %w", err)
	}
	return nil
}
