package export

import (
	"fmt"

	"github.com/spf13/cobra"

	"whisper-vault/cmd/whisper-vault/cmd/shared"
	"whisper-vault/internal/app"
	"whisper-vault/internal/app/export"
)

var userID string
var outputFilePath string

func init() {
	Cmd.Flags().StringVarP(&userID, "user", "u", "", "user whose transcripts to export")
	Cmd.Flags().StringVarP(&outputFilePath, "output", "o", "", "output .xlsx file")

	Cmd.MarkFlagRequired("user")
	Cmd.MarkFlagRequired("output")
}

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the specified user's transcripts to excel",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := shared.Load()
		if err != nil {
			return err
		}
		defer logger.Sync()

		dao, cleanup, err := app.InitializeRepository(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer cleanup()

		transcriptions, err := dao.ListByUser(cmd.Context(), userID)
		if err != nil {
			return err
		}

		if err := export.ToExcel(transcriptions, outputFilePath); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "export finished, %d rows written to %v\n", len(transcriptions), outputFilePath)
		return nil
	},
}
