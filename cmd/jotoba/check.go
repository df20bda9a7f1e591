package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jotoba/jotoba-go/internal/config"
	"github.com/jotoba/jotoba-go/internal/logging"
)

// newCheckCmd loads the four resource files, runs ResourceStorage.Check and
// logs per-entity counts; a load failure or missing feature is logged and
// returned, so the command exits non-zero. Index files are not opened or
// enumerated.
func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the resource store without starting the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.New(cmd.OutOrStdout(), zerolog.InfoLevel)
			log := logging.Component(&logger, "check")

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("check: %w", err)
			}

			rs, err := loadResources(cfg)
			if err != nil {
				log.Error().Err(err).Msg("failed to load resource files")
				return err
			}

			if err := rs.Check(); err != nil {
				log.Error().Err(err).Msg("resource check failed")
				return err
			}

			log.Info().
				Int("words", rs.Words().Len()).
				Int("kanji", rs.Kanji().Len()).
				Int("names", rs.Names().Len()).
				Int("sentences", rs.Sentences().Len()).
				Msg("resource store OK")
			return nil
		},
	}
}
