// Package export writes transcriptions to spreadsheets.
package export

import (
	"fmt"
	"time"

	"github.com/tealeg/xlsx"

	"whisper-vault/internal/app/model"
)

// SheetName is the name of the single sheet written by ToExcel.
const SheetName = "Transcriptions"

var header = []string{"ID", "User", "Audio File ID", "Audio URL", "Created At", "Transcription"}

// ToExcel writes one row per transcription to outputFilePath.
func ToExcel(transcriptions []model.UserTranscription, outputFilePath string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(SheetName)
	if err != nil {
		return err
	}

	headerRow := sheet.AddRow()
	for _, title := range header {
		headerRow.AddCell().Value = title
	}

	for _, t := range transcriptions {
		row := sheet.AddRow()
		row.AddCell().Value = fmt.Sprint(t.ID)
		row.AddCell().Value = t.UserID
		row.AddCell().Value = fmt.Sprint(t.AudioFileID)
		row.AddCell().Value = t.FileURL
		row.AddCell().Value = t.CreatedAt.Format(time.RFC3339)
		row.AddCell().Value = t.TranscriptionText
	}

	if err := file.Save(outputFilePath); err != nil {
		return fmt.Errorf("save %s: %w", outputFilePath, err)
	}
	return nil
}
