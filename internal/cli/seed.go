package cli

import (
	"github.com/spf13/cobra"

	"github.com/fundverse/backend/internal/seed"
	"github.com/fundverse/backend/internal/storage"
)

func newSeedCommand(opts *RootOptions) *cobra.Command {
	var (
		dbPath string
		file   string
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the database with demo data",
		Long:  "Seed inserts demo ideas and campaigns into an empty database. A database that already holds ideas is left unchanged.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			if dbPath != "" {
				cfg.Storage.Path = dbPath
			}
			if file != "" {
				cfg.Seed.File = file
			}
			log := newLogger(cfg)

			entries := seed.Builtin()
			if cfg.Seed.File != "" {
				entries, err = seed.LoadFile(cfg.Seed.File)
				if err != nil {
					return err
				}
			}

			st, err := storage.Open(cfg.Storage.Path)
			if err != nil {
				return err
			}
			defer st.Close()

			result, err := seed.Run(st, entries)
			if err != nil {
				return err
			}
			if result.Skipped {
				log.Info().Str("db", cfg.Storage.Path).Msg("database already seeded, nothing to do")
				return nil
			}
			log.Info().Int("ideas", result.Ideas).Int("campaigns", result.Campaigns).Str("db", cfg.Storage.Path).Msg("database seeded")
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "path to the database file")
	cmd.Flags().StringVar(&file, "file", "", "YAML file with seed entries (defaults to builtin demo data)")

	return cmd
}
