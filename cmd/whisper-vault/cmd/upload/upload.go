package upload

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"whisper-vault/cmd/whisper-vault/cmd/shared"
	"whisper-vault/internal/client"
)

var (
	serverURL     string
	userID        string
	downloadPath  string
	forceProgress bool
	timeout       time.Duration
)

func init() {
	Cmd.Flags().StringVarP(&serverURL, "server", "s", shared.DefaultServerURL(), "whisper-vault server URL")
	Cmd.Flags().StringVarP(&userID, "user", "u", "", "user the files belong to")
	Cmd.Flags().StringVarP(&downloadPath, "download", "d", "", "download the transcripts zip here once every file is transcribed")
	Cmd.Flags().DurationVar(&timeout, "timeout", shared.DefaultClientTimeout, "per-request timeout")
	Cmd.Flags().BoolVar(&forceProgress, "progress", false, "show the progress bar even when stderr is not a terminal")

	Cmd.MarkFlagRequired("user")
}

// Cmd represents the upload command
var Cmd = &cobra.Command{
	Use:   "upload FILE...",
	Short: "Upload up to 5 audio files for transcription",
	Long: `Upload up to 5 audio files, one at a time, in the order given.

- Stops at the first file that fails; the rest are not sent
- With --download, fetches the transcripts zip when all files succeeded`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session := client.NewSession(shared.NewClient(serverURL, timeout), userID)
		if err := session.SelectFiles(args); err != nil {
			return err
		}

		showBar := client.ShouldShowProgress(forceProgress)
		pm := client.NewProgressManager(client.ProgressConfig{Enabled: showBar, Writer: cmd.ErrOrStderr()})
		bar := pm.CreateBar(len(args), "Transcribing")

		err := session.Start(cmd.Context(), func(done, total int, percent float64) {
			bar.SetCurrent(done)
			if !showBar {
				fmt.Fprintf(cmd.ErrOrStderr(), "Transcribed %d/%d (%.0f%%)\n", done, total, percent)
			}
		})
		if err != nil {
			bar.Abort()
		}
		pm.Wait()
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "All %d files uploaded and transcribed successfully\n", len(args))

		if downloadPath == "" {
			return nil
		}
		return saveArchive(cmd, session, downloadPath)
	},
}

func saveArchive(cmd *cobra.Command, session *client.Session, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}

	n, err := session.Download(cmd.Context(), out)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(path)
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved transcripts to %s (%d bytes)\n", path, n)
	return nil
}
