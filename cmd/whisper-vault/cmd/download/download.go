package download

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"whisper-vault/cmd/whisper-vault/cmd/shared"
)

var (
	serverURL  string
	userID     string
	outputPath string
	timeout    time.Duration
)

func init() {
	Cmd.Flags().StringVarP(&serverURL, "server", "s", shared.DefaultServerURL(), "whisper-vault server URL")
	Cmd.Flags().StringVarP(&userID, "user", "u", "", "user whose transcripts to download")
	Cmd.Flags().DurationVar(&timeout, "timeout", shared.DefaultClientTimeout, "request timeout")
	Cmd.Flags().StringVarP(&outputPath, "output", "o", "transcriptions.zip", "output file")

	Cmd.MarkFlagRequired("user")
}

// Cmd represents the download command
var Cmd = &cobra.Command{
	Use:   "download",
	Short: "Download a user's transcripts as a zip archive",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := os.Create(outputPath)
		if err != nil {
			return err
		}

		n, err := shared.NewClient(serverURL, timeout).DownloadTranscriptions(cmd.Context(), userID, out)
		if closeErr := out.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			os.Remove(outputPath)
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Saved transcripts to %s (%d bytes)\n", outputPath, n)
		return nil
	},
}
