// @title whisper-vault API
// @version 1.0
// @description Upload audio for transcription and download the transcripts as a zip archive.
// @BasePath /api
package main

import (
	"fmt"
	"os"

	"whisper-vault/cmd/whisper-vault/cmd"
	"whisper-vault/internal/config"
)

func main() {
	if _, err := config.LoadEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	cmd.Execute()
}
