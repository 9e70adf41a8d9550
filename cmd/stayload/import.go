package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/camm-health/stayload/internal/exitcode"
	"github.com/camm-health/stayload/internal/ingest"
	"github.com/camm-health/stayload/internal/logging"
	"github.com/camm-health/stayload/internal/repo"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Parse and validate a roster file locally",
	RunE:  runImport,
}

func init() {
	f := importCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Path to roster file (required)")
	f.StringVar(&cfg.OutPath, "out", "", "Write accepted episodes as JSON to this path")
	_ = importCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	loadConfigFile(log)

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	outcome, summary, err := ingest.Run(log, &cfg, time.Now())
	if err != nil {
		if pe, ok := err.(*ingest.PipelineError); ok {
			log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("import failed")
			if pe.Phase == "preflight" {
				os.Exit(exitcode.ValidationError)
			}
			os.Exit(exitcode.ReadError)
		}
		log.Error().Err(err).Msg("import failed")
		os.Exit(exitcode.ReadError)
	}

	episodes := repo.NewEpisodeRepository()
	episodes.AddAll(outcome.Records)

	if cfg.OutPath != "" {
		if err := episodes.SaveJSON(cfg.OutPath); err != nil {
			log.Error().Err(err).Msg("writing episodes file failed")
			os.Exit(exitcode.WriteError)
		}
		log.Info().Str("out", cfg.OutPath).Int("episodes", episodes.Count()).Msg("episodes written")
	}

	report := outcome.Report()
	fmt.Printf("Imported %d of %d rows (%.1fs, sha256 %.12s)\n",
		report.Imported, summary.RowsRead, summary.DurationTotal.Seconds(), summary.FileSHA256)
	for _, issue := range report.Errors {
		fmt.Printf("  - %s\n", issue)
	}

	if report.Imported == 0 && len(report.Errors) > 0 {
		os.Exit(exitcode.ValidationError)
	}
	if len(report.Errors) > 0 {
		os.Exit(exitcode.PartialSuccess)
	}
	return nil
}
