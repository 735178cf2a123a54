package export

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"

	"whisper-vault/internal/app/model"
)

func TestToExcel(t *testing.T) {
	created := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	transcriptions := []model.UserTranscription{
		{
			TranscriptionRecord: model.TranscriptionRecord{ID: 7, UserID: "user-1", AudioFileID: 3, TranscriptionText: "hello", CreatedAt: created},
			FileURL:             "http://storage.test/audio/user-1/a.mp3",
		},
		{
			TranscriptionRecord: model.TranscriptionRecord{ID: 9, UserID: "user-1", AudioFileID: 4, TranscriptionText: "line 1\nline 2", CreatedAt: created},
			FileURL:             "http://storage.test/audio/user-1/b.mp3",
		},
	}

	path := filepath.Join(t.TempDir(), "out.xlsx")
	require.NoError(t, ToExcel(transcriptions, path))

	file, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	sheet, ok := file.Sheet[SheetName]
	require.True(t, ok)
	require.Len(t, sheet.Rows, 3)

	assert.Equal(t, "ID", sheet.Rows[0].Cells[0].Value)
	assert.Equal(t, "7", sheet.Rows[1].Cells[0].Value)
	assert.Equal(t, "http://storage.test/audio/user-1/a.mp3", sheet.Rows[1].Cells[3].Value)
	assert.Equal(t, "2024-01-15T10:30:00Z", sheet.Rows[1].Cells[4].Value)
	assert.Equal(t, "line 1\nline 2", sheet.Rows[2].Cells[5].Value)
}

func TestToExcel_BadPath(t *testing.T) {
	err := ToExcel(nil, filepath.Join(t.TempDir(), "missing", "dir", "out.xlsx"))
	assert.Error(t, err)
}
