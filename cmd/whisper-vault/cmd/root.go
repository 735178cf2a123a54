package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"whisper-vault/cmd/whisper-vault/cmd/download"
	"whisper-vault/cmd/whisper-vault/cmd/export"
	"whisper-vault/cmd/whisper-vault/cmd/migrate"
	"whisper-vault/cmd/whisper-vault/cmd/serve"
	"whisper-vault/cmd/whisper-vault/cmd/shared"
	"whisper-vault/cmd/whisper-vault/cmd/upload"
	"whisper-vault/cmd/whisper-vault/cmd/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "whisper-vault",
	Short: "Upload audio, transcribe it and download the transcripts",
	Long: `whisper-vault stores uploaded audio in object storage, transcribes it with a
speech-to-text provider and keeps the transcripts in a database.
- serve runs the HTTP API
- upload and download talk to a running server
- export and migrate work on the database directly`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(upload.Cmd)
	rootCmd.AddCommand(download.Cmd)
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(migrate.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().StringVarP(&shared.ConfigFile, "config", "c", "", "YAML config file (environment variables override it)")
	rootCmd.PersistentFlags().BoolVarP(&shared.Verbose, "verbose", "V", false, "development logging")
}
