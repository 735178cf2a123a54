package migrate

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"whisper-vault/cmd/whisper-vault/cmd/shared"
	"whisper-vault/internal/app"
	"whisper-vault/internal/app/repository/migrate"
	"whisper-vault/internal/app/repository/sqlite"
	"whisper-vault/internal/config"
)

var (
	fromSQLite string
	batchSize  int
)

func init() {
	Cmd.Flags().StringVar(&fromSQLite, "from-sqlite", "", "copy rows from this sqlite database into the configured postgres database")
	Cmd.Flags().IntVar(&batchSize, "batch-size", migrate.DefaultBatchSize, "rows per transaction when copying")
}

// Cmd represents the migrate command
var Cmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the database schema, optionally copying data from sqlite",
	Long: `Create the audiofiles and transcriptions tables in the configured database.

- With --from-sqlite, copies every row from a sqlite database into postgres,
  keeping ids, then moves the postgres id sequences past the copied rows`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := shared.Load()
		if err != nil {
			return err
		}
		defer logger.Sync()

		if fromSQLite != "" && cfg.Database.Driver != config.DriverPostgres {
			return fmt.Errorf("--from-sqlite needs DB_DRIVER=%s, got %s", config.DriverPostgres, cfg.Database.Driver)
		}

		dao, cleanup, err := app.InitializeRepository(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer cleanup()
		logger.Info("Schema is up to date", zap.String("driver", cfg.Database.Driver))

		if fromSQLite == "" {
			return nil
		}

		if _, err := os.Stat(fromSQLite); err != nil {
			return fmt.Errorf("source database: %w", err)
		}

		dst, ok := dao.(interface{ DB() *sql.DB })
		if !ok {
			return fmt.Errorf("repository %T does not expose its connection", dao)
		}

		src, err := sqlite.NewSQLiteDB(fromSQLite)
		if err != nil {
			return err
		}
		defer src.Close()

		result, err := migrate.SQLiteToPostgres(cmd.Context(), src.DB(), dst.DB(), batchSize, logger)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "migrated %d audio files and %d transcriptions\n", result.AudioFiles, result.Transcriptions)
		return nil
	},
}
