package archive

import (
	"bytes"
	"io"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"whisper-vault/internal/app/model"
)

func readArchive(t *testing.T, data []byte) *zip.Reader {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	return zr
}

func TestBuild_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Build(&buf, nil))

	zr := readArchive(t, buf.Bytes())
	assert.Empty(t, zr.File)
}

func TestBuild_Entries(t *testing.T) {
	texts := []string{
		"first recording",
		"",
		"Line 1\nLine 2\n",
		"Hello, 世界 🎵",
	}
	transcriptions := make([]model.UserTranscription, 0, len(texts))
	for i, text := range texts {
		transcriptions = append(transcriptions, model.UserTranscription{
			TranscriptionRecord: model.TranscriptionRecord{
				ID:                int64(40 + i),
				UserID:            "user-1",
				TranscriptionText: text,
			},
			FileURL: "http://localhost:9000/audio/user-1/clip.mp3",
		})
	}

	var buf bytes.Buffer
	require.NoError(t, Build(&buf, transcriptions))

	zr := readArchive(t, buf.Bytes())
	require.Len(t, zr.File, len(texts))

	for i, f := range zr.File {
		assert.Equal(t, EntryName(i+1), f.Name)
		assert.Equal(t, "http://localhost:9000/audio/user-1/clip.mp3", f.Comment)

		rc, err := f.Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		rc.Close()
		require.NoError(t, err)
		assert.Equal(t, texts[i], string(content))
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestBuild_WriterError(t *testing.T) {
	err := Build(failingWriter{}, []model.UserTranscription{{
		TranscriptionRecord: model.TranscriptionRecord{TranscriptionText: "text"},
	}})
	assert.Error(t, err)
}

func TestEntryName(t *testing.T) {
	assert.Equal(t, "transcription_1.txt", EntryName(1))
	assert.Equal(t, "transcription_12.txt", EntryName(12))
}
